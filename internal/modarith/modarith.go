package modarith

// Package modarith provides the big-integer arithmetic helpers the square-root
// code builds on: Euclidean normalization and modular exponentiation by
// square-and-multiply. It is self-contained and has no dependency on the rest
// of the module.

import "math/big"

var one = big.NewInt(1)

// ModPow returns base^exp mod mod for exp >= 0, computed left-to-right by
// square-and-multiply over the bits of exp. It panics on a negative exponent
// or a non-positive modulus; callers validate inputs that originate outside
// the module.
func ModPow(base, exp, mod *big.Int) *big.Int {
	if exp.Sign() < 0 {
		panic("modarith: negative exponent")
	}
	if mod.Sign() <= 0 {
		panic("modarith: non-positive modulus")
	}
	if mod.Cmp(one) == 0 {
		return new(big.Int)
	}
	b := new(big.Int).Mod(base, mod)
	acc := big.NewInt(1)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		acc.Mul(acc, acc)
		acc.Mod(acc, mod)
		if exp.Bit(i) == 1 {
			acc.Mul(acc, b)
			acc.Mod(acc, mod)
		}
	}
	return acc
}

// Norm returns the Euclidean residue of n modulo p, in [0, p). big.Int.Mod
// already returns a non-negative result for positive p, so this also covers
// negative n.
func Norm(n, p *big.Int) *big.Int {
	return new(big.Int).Mod(n, p)
}
