package curve

import (
	"encoding/binary"
	"errors"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// hashTrialCap bounds the try-and-increment loop. Each candidate abscissa
// lands on the curve with probability about 1/2, so 128 misses in a row
// has negligible probability for a genuine prime field.
const hashTrialCap = 128

// ErrHashToPoint reports that no candidate abscissa landed on the curve
// within the trial cap.
var ErrHashToPoint = errors.New("curve: hash-to-point exhausted its trial cap")

// HashToPoint maps a message to a curve point by try-and-increment:
// candidate abscissas are drawn from SHAKE128(msg || counter) until one
// has a square curve polynomial value. The mapping is deterministic in
// msg. It is suitable for tests and protocol prototyping, not for
// constant-time hashing to a curve.
func (c *Curve) HashToPoint(msg []byte) (*Point, error) {
	byteLen := (c.P.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	var ctr [8]byte
	for i := uint64(0); i < hashTrialCap; i++ {
		binary.BigEndian.PutUint64(ctr[:], i)
		h := sha3.NewShake128()
		h.Write(msg)
		h.Write(ctr[:])
		h.Read(buf)
		x := new(big.Int).SetBytes(buf)
		x.Mod(x, c.P)
		if y, ok := c.YFromX(x); ok {
			return &Point{X: x, Y: y}, nil
		}
	}
	return nil, ErrHashToPoint
}
