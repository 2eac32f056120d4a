package main

// sqrt_sweep measures Tonelli–Shanks behavior across moduli with varying
// 2-adicity. NTT-friendly primes (p ≡ 1 mod 2^k, generated with lattigo)
// are the worst case for the descent loop, small sieved primes the common
// case. Results go to JSONL (and optionally CSV) for plot_sqrt_sweep.

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"

	"modular-sqrt/sqrtmod"
)

const (
	defaultJSONLPath  = "Additionnals/sqrt_sweep.jsonl"
	defaultLogQSpec   = "30,40,50,55,60"
	defaultAdicity    = 16
	defaultPerLogQ    = 3
	defaultSamples    = 200
	defaultSmallLimit = 2000
	defaultSeed       = "sqrt-sweep-v1"
)

// SweepRow is one prime's measurements.
type SweepRow struct {
	Prime      string  `json:"Prime"`
	Bits       int     `json:"Bits"`
	Adicity    int     `json:"Adicity"`
	Samples    int     `json:"Samples"`
	Residues   int     `json:"Residues"`
	AvgMicros  float64 `json:"AvgMicros"`
	MaxMicros  float64 `json:"MaxMicros"`
	FastPath   bool    `json:"FastPath"`
	ResiduePct float64 `json:"ResiduePct"`
}

func parseIntList(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad list entry %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// smallOddPrimes sieves the odd primes in (2, limit].
func smallOddPrimes(limit int) []*big.Int {
	if limit < 3 {
		return nil
	}
	composite := make([]bool, limit+1)
	var out []*big.Int
	for i := 3; i <= limit; i += 2 {
		if composite[i] {
			continue
		}
		out = append(out, big.NewInt(int64(i)))
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return out
}

// adicity returns s with p-1 = q*2^s, q odd.
func adicity(p *big.Int) int {
	q := new(big.Int).Sub(p, big.NewInt(1))
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	return s
}

// sampleBig draws a uniform-ish value in [0, p) from the PRNG stream.
func sampleBig(prng io.Reader, p *big.Int, buf []byte) (*big.Int, error) {
	if _, err := io.ReadFull(prng, buf); err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, p)
	return v, nil
}

func measurePrime(p *big.Int, samples int, seed []byte) (SweepRow, error) {
	row := SweepRow{
		Prime:    p.String(),
		Bits:     p.BitLen(),
		Adicity:  adicity(p),
		Samples:  samples,
		FastPath: adicity(p) == 1,
	}
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return row, fmt.Errorf("keyed prng: %w", err)
	}
	buf := make([]byte, (p.BitLen()+7)/8+8)
	var total, max time.Duration
	for i := 0; i < samples; i++ {
		n, err := sampleBig(prng, p, buf)
		if err != nil {
			return row, err
		}
		start := time.Now()
		_, ok, err := sqrtmod.SqrtMod(n, p)
		elapsed := time.Since(start)
		if err != nil {
			return row, fmt.Errorf("SqrtMod(%s, %s): %w", n, p, err)
		}
		if ok {
			row.Residues++
		}
		total += elapsed
		if elapsed > max {
			max = elapsed
		}
	}
	row.AvgMicros = float64(total.Microseconds()) / float64(samples)
	row.MaxMicros = float64(max.Microseconds())
	row.ResiduePct = 100 * float64(row.Residues) / float64(samples)
	return row, nil
}

func writeCSV(path string, rows []SweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"prime", "bits", "adicity", "samples", "residues", "avg_us", "max_us"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Prime,
			strconv.Itoa(r.Bits),
			strconv.Itoa(r.Adicity),
			strconv.Itoa(r.Samples),
			strconv.Itoa(r.Residues),
			strconv.FormatFloat(r.AvgMicros, 'f', 3, 64),
			strconv.FormatFloat(r.MaxMicros, 'f', 3, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	logqSpec := flag.String("logq", defaultLogQSpec, "comma-separated bit sizes for NTT-friendly primes")
	adicityLog := flag.Int("adicity", defaultAdicity, "log2 of the 2-adic factor for generated primes (p ≡ 1 mod 2^k)")
	perLogQ := flag.Int("per-logq", defaultPerLogQ, "primes generated per bit size")
	smallLimit := flag.Int("small", defaultSmallLimit, "also sweep sieved odd primes up to this bound (0 to skip)")
	samples := flag.Int("samples", defaultSamples, "radicands sampled per prime")
	seed := flag.String("seed", defaultSeed, "PRNG seed, same seed reproduces the sweep")
	outPath := flag.String("out", defaultJSONLPath, "JSONL output path")
	csvPath := flag.String("csv", "", "optional CSV output path")
	flag.Parse()

	logqs, err := parseIntList(*logqSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqrt_sweep: %v\n", err)
		os.Exit(1)
	}

	var primes []*big.Int
	if *smallLimit > 0 {
		primes = append(primes, smallOddPrimes(*smallLimit)...)
	}
	nthRoot := 1 << *adicityLog
	for _, lq := range logqs {
		for _, q := range ring.GenerateNTTPrimes(lq, nthRoot, *perLogQ) {
			primes = append(primes, new(big.Int).SetUint64(q))
		}
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqrt_sweep: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	enc := json.NewEncoder(w)

	start := time.Now()
	rows := make([]SweepRow, 0, len(primes))
	for i, p := range primes {
		row, err := measurePrime(p, *samples, []byte(*seed))
		if err != nil {
			fmt.Fprintf(os.Stderr, "sqrt_sweep: prime %s: %v\n", p, err)
			os.Exit(1)
		}
		rows = append(rows, row)
		if err := enc.Encode(row); err != nil {
			fmt.Fprintf(os.Stderr, "sqrt_sweep: encode: %v\n", err)
			os.Exit(1)
		}
		if (i+1)%100 == 0 || i == len(primes)-1 {
			fmt.Printf("swept %d/%d primes (%.1fs)\n", i+1, len(primes), time.Since(start).Seconds())
		}
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, rows); err != nil {
			fmt.Fprintf(os.Stderr, "sqrt_sweep: csv: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), *outPath)
}
