package curve

// Package curve implements SEC1-style point decompression for short
// Weierstrass curves y^2 = x^3 + ax + b over F_p, built on the sqrtmod
// package. It is an example consumer of the square-root primitive, not a
// general elliptic-curve library: there is no group law, no scalar
// arithmetic and no constant-time guarantee.

import (
	"errors"
	"fmt"
	"math/big"

	"modular-sqrt/internal/modarith"
	"modular-sqrt/sqrtmod"
)

var (
	// ErrNotOnCurve reports an abscissa whose curve polynomial value is a
	// quadratic non-residue, i.e. no point with that x exists.
	ErrNotOnCurve = errors.New("curve: x is not the abscissa of any curve point")

	// ErrNoOddRoot reports a decompression request for the odd root of
	// y = 0, which has no second root.
	ErrNoOddRoot = errors.New("curve: y is zero, no odd root exists")
)

var one = big.NewInt(1)

// Curve describes y^2 = x^3 + Ax + B over F_p.
type Curve struct {
	Name    string
	P, A, B *big.Int
}

// Point is an affine curve point. The point at infinity is not
// representable; decompression never produces it.
type Point struct {
	X, Y *big.Int
}

// NewCurve validates the field prime and the non-singularity condition
// 4A^3 + 27B^2 ≠ 0 (mod p). Primality of p itself is the caller's
// contract, as for sqrtmod.
func NewCurve(name string, p, a, b *big.Int) (*Curve, error) {
	if p.Cmp(big.NewInt(2)) <= 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("curve %s: %w", name, sqrtmod.ErrInvalidModulus)
	}
	an := modarith.Norm(a, p)
	bn := modarith.Norm(b, p)
	disc := new(big.Int).Mul(an, an)
	disc.Mul(disc, an)
	disc.Mul(disc, big.NewInt(4))
	t := new(big.Int).Mul(bn, bn)
	t.Mul(t, big.NewInt(27))
	disc.Add(disc, t)
	disc.Mod(disc, p)
	if disc.Sign() == 0 {
		return nil, fmt.Errorf("curve %s: singular, 4a^3 + 27b^2 ≡ 0 (mod p)", name)
	}
	return &Curve{Name: name, P: new(big.Int).Set(p), A: an, B: bn}, nil
}

// rhs returns x^3 + Ax + B mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	v := new(big.Int).Mul(x, x)
	v.Mod(v, c.P)
	v.Mul(v, x)
	v.Add(v, new(big.Int).Mul(c.A, x))
	v.Add(v, c.B)
	v.Mod(v, c.P)
	return v
}

// YFromX recovers one ordinate for the given abscissa. ok is false when
// x^3 + Ax + B is a quadratic non-residue. The returned y is the root
// sqrtmod deterministically picks; the other ordinate is p-y.
func (c *Curve) YFromX(x *big.Int) (y *big.Int, ok bool) {
	// The modulus was validated in NewCurve, so the error cannot fire.
	y, ok, _ = sqrtmod.SqrtMod(c.rhs(x), c.P)
	return y, ok
}

// Decompress recovers the point with the given abscissa whose ordinate has
// the requested parity, as in SEC1 compressed encodings.
func (c *Curve) Decompress(x *big.Int, yOdd bool) (*Point, error) {
	xn := modarith.Norm(x, c.P)
	y, ok := c.YFromX(xn)
	if !ok {
		return nil, ErrNotOnCurve
	}
	if y.Sign() == 0 {
		if yOdd {
			return nil, ErrNoOddRoot
		}
		return &Point{X: xn, Y: y}, nil
	}
	if (y.Bit(0) == 1) != yOdd {
		y = new(big.Int).Sub(c.P, y)
	}
	return &Point{X: xn, Y: y}, nil
}

// IsOnCurve reports whether pt satisfies the curve equation.
func (c *Curve) IsOnCurve(pt *Point) bool {
	if pt == nil || pt.X == nil || pt.Y == nil {
		return false
	}
	if pt.X.Sign() < 0 || pt.X.Cmp(c.P) >= 0 || pt.Y.Sign() < 0 || pt.Y.Cmp(c.P) >= 0 {
		return false
	}
	lhs := new(big.Int).Mul(pt.Y, pt.Y)
	lhs.Mod(lhs, c.P)
	return lhs.Cmp(c.rhs(pt.X)) == 0
}
