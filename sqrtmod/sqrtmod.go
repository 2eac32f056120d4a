package sqrtmod

// Package sqrtmod computes square roots modulo an odd prime with the
// Tonelli–Shanks algorithm over arbitrary-precision integers. It is the
// primitive behind curve-point decompression: given a prime p and an
// integer n, recover r in [0, p) with r*r ≡ n (mod p), or report that n
// is a quadratic non-residue.
//
// The algorithm is fully deterministic: the quadratic non-residue needed
// by the general path is the smallest z >= 2 failing Euler's criterion,
// so repeated calls with the same (n, p) always return the same root of
// the pair {r, p-r}.

import (
	"errors"
	"math/big"
	"os"

	"modular-sqrt/internal/modarith"
)

var (
	// ErrInvalidModulus reports a modulus that is even or not greater
	// than 2. This is a precondition failure, distinct from the
	// "no root exists" outcome.
	ErrInvalidModulus = errors.New("sqrtmod: modulus must be an odd integer greater than 2")

	// ErrModulusNotPrime is returned by SqrtModCapped when the
	// non-residue search exhausts its trial budget. For a genuine prime
	// at least half of [1, p-1] are non-residues, so hitting the cap is
	// strong evidence the modulus is composite.
	ErrModulusNotPrime = errors.New("sqrtmod: non-residue search exceeded trial cap, modulus is likely not prime")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// SqrtMod returns a square root of n modulo the odd prime p. The root r
// satisfies r*r ≡ n (mod p) exactly and lies in [0, p); the other root is
// p-r. ok is false when n is a quadratic non-residue modulo p. err is
// non-nil only for an invalid modulus. n may be any integer, including
// negative; it is normalized into [0, p) first. Neither argument is
// modified.
//
// Correctness requires p to be prime; that is the caller's contract and is
// not verified here. A composite modulus can make the non-residue search
// loop without bound — callers handling untrusted moduli should use
// SqrtModCapped instead.
func SqrtMod(n, p *big.Int) (r *big.Int, ok bool, err error) {
	return SqrtModCapped(n, p, 0)
}

// SqrtModCapped is SqrtMod with a bound on the quadratic non-residue
// search: after maxTrials candidates it gives up and returns
// ErrModulusNotPrime. maxTrials <= 0 means unbounded, which is identical
// to SqrtMod. The cap only guards the search; it proves nothing about
// primality.
func SqrtModCapped(n, p *big.Int, maxTrials int) (*big.Int, bool, error) {
	if err := checkModulus(p); err != nil {
		return nil, false, err
	}
	a := modarith.Norm(n, p)
	if a.Sign() == 0 {
		// 0 is its own root; skipping the residue test here keeps the
		// descent loop free of the degenerate t == 0 case.
		return new(big.Int), true, nil
	}

	half := new(big.Int).Sub(p, one)
	half.Rsh(half, 1) // (p-1)/2
	if modarith.ModPow(a, half, p).Cmp(one) != 0 {
		// Euler's criterion: a^((p-1)/2) is 1 for residues and p-1 for
		// non-residues when p is prime.
		return nil, false, nil
	}

	// Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	if s == 1 {
		// p ≡ 3 (mod 4): a^((p+1)/4) is a closed-form root.
		e := new(big.Int).Add(p, one)
		e.Rsh(e, 2)
		return modarith.ModPow(a, e, p), true, nil
	}

	z, err := findNonResidue(p, half, maxTrials)
	if err != nil {
		return nil, false, err
	}
	r, ok := descend(a, p, q, z, s)
	if !ok {
		// Unreachable for prime p once a passed the residue test; a
		// composite modulus can land here. Merged with the non-residue
		// outcome on purpose, traced for diagnosis.
		dbg(os.Stderr, "[sqrtmod] descent exhausted order bound for p=%s, modulus is not prime\n", p.String())
		return nil, false, nil
	}
	return r, true, nil
}

// Legendre reports the quadratic residue status of n modulo the odd prime
// p via Euler's criterion: 1 for a residue, -1 for a non-residue, 0 when
// n ≡ 0 (mod p).
func Legendre(n, p *big.Int) (int, error) {
	if err := checkModulus(p); err != nil {
		return 0, err
	}
	a := modarith.Norm(n, p)
	if a.Sign() == 0 {
		return 0, nil
	}
	half := new(big.Int).Sub(p, one)
	half.Rsh(half, 1)
	if modarith.ModPow(a, half, p).Cmp(one) == 0 {
		return 1, nil
	}
	return -1, nil
}

func checkModulus(p *big.Int) error {
	if p.Cmp(two) <= 0 || p.Bit(0) == 0 {
		return ErrInvalidModulus
	}
	return nil
}

// findNonResidue returns the least z >= 2 with z^((p-1)/2) ≠ 1 (mod p).
// For prime p at least half of [1, p-1] qualify, so the scan is short in
// practice. maxTrials > 0 bounds it for untrusted moduli.
func findNonResidue(p, half *big.Int, maxTrials int) (*big.Int, error) {
	z := new(big.Int).Set(two)
	for trials := 0; ; trials++ {
		if maxTrials > 0 && trials >= maxTrials {
			return nil, ErrModulusNotPrime
		}
		if modarith.ModPow(z, half, p).Cmp(one) != 0 {
			return z, nil
		}
		z.Add(z, one)
	}
}

// descend runs the Tonelli–Shanks order-descent loop for a known residue a
// with p-1 = q*2^s (q odd) and non-residue z. Each iteration finds the
// least i >= 1 with t^(2^i) ≡ 1 and requires i < m, so m strictly
// decreases and the loop terminates within s iterations. ok is false when
// no admissible i exists, which cannot happen for a genuine prime.
func descend(a, p, q, z *big.Int, s int) (root *big.Int, ok bool) {
	c := modarith.ModPow(z, q, p)
	e := new(big.Int).Add(q, one)
	e.Rsh(e, 1)
	r := modarith.ModPow(a, e, p) // candidate root a^((q+1)/2)
	t := modarith.ModPow(a, q, p) // residual error term
	m := s

	for t.Cmp(one) != 0 {
		// Least i >= 1 with t^(2^i) == 1, by repeated squaring.
		i := 1
		sq := new(big.Int).Mul(t, t)
		sq.Mod(sq, p)
		for sq.Cmp(one) != 0 && i < m {
			sq.Mul(sq, sq)
			sq.Mod(sq, p)
			i++
		}
		if i >= m {
			return nil, false
		}

		// b = c^(2^(m-i-1))
		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b)
			b.Mod(b, p)
		}

		c.Mul(b, b)
		c.Mod(c, p)
		r.Mul(r, b)
		r.Mod(r, p)
		t.Mul(t, c)
		t.Mod(t, p)
		m = i
	}
	return r, true
}
