package curve

import "math/big"

// Secp256k1 returns the Bitcoin curve y^2 = x^3 + 7 over
// p = 2^256 - 2^32 - 977 (p ≡ 3 mod 4, so decompression takes the
// closed-form square-root path).
func Secp256k1() *Curve {
	p := new(big.Int).Lsh(one, 256)
	p.Sub(p, new(big.Int).Lsh(one, 32))
	p.Sub(p, big.NewInt(977))
	c, err := NewCurve("secp256k1", p, new(big.Int), big.NewInt(7))
	if err != nil {
		panic("curve: secp256k1 preset: " + err.Error())
	}
	return c
}

// P256 returns the NIST P-256 curve over p = 2^256 - 2^224 + 2^192 + 2^96 - 1
// with a = -3 and the standard b constant.
func P256() *Curve {
	p := new(big.Int).Lsh(one, 256)
	p.Sub(p, new(big.Int).Lsh(one, 224))
	p.Add(p, new(big.Int).Lsh(one, 192))
	p.Add(p, new(big.Int).Lsh(one, 96))
	p.Sub(p, one)
	a := new(big.Int).Sub(p, big.NewInt(3))
	b, okB := new(big.Int).SetString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	if !okB {
		panic("curve: p256 preset: bad b constant")
	}
	c, err := NewCurve("p256", p, a, b)
	if err != nil {
		panic("curve: p256 preset: " + err.Error())
	}
	return c
}
