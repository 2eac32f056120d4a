package bench

import (
	"math/big"
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"

	"modular-sqrt/internal/modarith"
	"modular-sqrt/sqrtmod"
)

// residueSamples builds deterministic known residues mod p (squares of
// PRNG draws), so every benchmark iteration runs the full root recovery.
func residueSamples(b *testing.B, p *big.Int, count int) []*big.Int {
	b.Helper()
	prng, err := utils.NewKeyedPRNG([]byte("sqrtmod-bench"))
	if err != nil {
		b.Fatalf("keyed prng: %v", err)
	}
	buf := make([]byte, (p.BitLen()+7)/8+8)
	out := make([]*big.Int, count)
	for i := range out {
		if _, err := prng.Read(buf); err != nil {
			b.Fatalf("prng read: %v", err)
		}
		x := new(big.Int).SetBytes(buf)
		x.Mod(x, p)
		n := new(big.Int).Mul(x, x)
		n.Mod(n, p)
		out[i] = n
	}
	return out
}

func benchSqrtMod(b *testing.B, p *big.Int) {
	samples := residueSamples(b, p, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := samples[i%len(samples)]
		if _, ok, err := sqrtmod.SqrtMod(n, p); err != nil || !ok {
			b.Fatalf("SqrtMod(%s, %s): ok=%v err=%v", n, p, ok, err)
		}
	}
}

// secp256k1's modulus is ≡ 3 (mod 4): the closed-form path.
func BenchmarkSqrtModFastPath(b *testing.B) {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Sub(p, big.NewInt(977))
	benchSqrtMod(b, p)
}

// NTT-friendly primes are ≡ 1 (mod 2^17) here, forcing a deep descent.
func BenchmarkSqrtModDeepDescent(b *testing.B) {
	q := ring.GenerateNTTPrimes(60, 1<<17, 1)[0]
	benchSqrtMod(b, new(big.Int).SetUint64(q))
}

// NIST P-224 has 2-adicity 96, the deepest descent among standard curves.
func BenchmarkSqrtModP224(b *testing.B) {
	p := new(big.Int).Lsh(big.NewInt(1), 224)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 96))
	p.Add(p, big.NewInt(1))
	benchSqrtMod(b, p)
}

func BenchmarkModPow256(b *testing.B) {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Sub(p, big.NewInt(977))
	base := big.NewInt(3)
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Rsh(exp, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		modarith.ModPow(base, exp, p)
	}
}
