package main

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"modular-sqrt/curve"
	"modular-sqrt/sqrtmod"
)

func usage() {
	fmt.Println(`usage: sqrtcli <sqrt|legendre|decompress> [options]

Subcommands:
  sqrt        Compute r with r*r ≡ n (mod p) for an odd prime p
              Flags:
                -n   <int>    radicand, decimal or 0x-hex, may be negative (required)
                -p   <int>    odd prime modulus (required)
                -max-trials <int>  cap on the non-residue search; 0 = unbounded (default 0)
              Output: the root in [0, p), or "no root" when n is a non-residue

  legendre    Print the residue status of n mod p (1, -1 or 0)
              Flags: -n, -p as above

  decompress  Recover a curve point from its abscissa (SEC1 style)
              Flags:
                -curve <secp256k1|p256>  preset curve (default: secp256k1)
                -x     <int>             abscissa, decimal or 0x-hex (required)
                -odd                     select the odd ordinate`)
	os.Exit(1)
}

func parseBig(name, s string) *big.Int {
	s = strings.TrimSpace(s)
	if s == "" {
		fmt.Fprintf(os.Stderr, "missing required flag -%s\n", name)
		usage()
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid integer for -%s: %q\n", name, s)
		os.Exit(1)
	}
	if neg {
		v.Neg(v)
	}
	return v
}

func runSqrt(args []string) {
	fs := flag.NewFlagSet("sqrt", flag.ExitOnError)
	nStr := fs.String("n", "", "radicand")
	pStr := fs.String("p", "", "odd prime modulus")
	maxTrials := fs.Int("max-trials", 0, "cap on the non-residue search (0 = unbounded)")
	fs.Parse(args)

	n := parseBig("n", *nStr)
	p := parseBig("p", *pStr)
	r, ok, err := sqrtmod.SqrtModCapped(n, p, *maxTrials)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqrt: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("no root")
		os.Exit(2)
	}
	fmt.Println(r.String())
}

func runLegendre(args []string) {
	fs := flag.NewFlagSet("legendre", flag.ExitOnError)
	nStr := fs.String("n", "", "integer")
	pStr := fs.String("p", "", "odd prime modulus")
	fs.Parse(args)

	sym, err := sqrtmod.Legendre(parseBig("n", *nStr), parseBig("p", *pStr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "legendre: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(sym)
}

func runDecompress(args []string) {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	curveName := fs.String("curve", "secp256k1", "preset curve")
	xStr := fs.String("x", "", "abscissa")
	odd := fs.Bool("odd", false, "select the odd ordinate")
	fs.Parse(args)

	var c *curve.Curve
	switch strings.ToLower(*curveName) {
	case "secp256k1":
		c = curve.Secp256k1()
	case "p256":
		c = curve.P256()
	default:
		fmt.Fprintf(os.Stderr, "unknown curve %q\n", *curveName)
		usage()
	}
	pt, err := c.Decompress(parseBig("x", *xStr), *odd)
	if errors.Is(err, curve.ErrNotOnCurve) {
		fmt.Println("not on curve")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "decompress: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("x = %s\ny = %s\n", pt.X.String(), pt.Y.String())
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "sqrt":
		runSqrt(os.Args[2:])
	case "legendre":
		runLegendre(os.Args[2:])
	case "decompress":
		runDecompress(os.Args[2:])
	default:
		usage()
	}
}
