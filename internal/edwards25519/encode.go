package edwards25519

import (
	"bytes"

	"github.com/yuzonightly/ed25519/internal/field"
)

// Encode returns the canonical 32-byte compressed encoding of p: the
// little-endian encoding of y with bit 255 set to the LSB of x.
func Encode(p *P3) [32]byte {
	var recip, x, y field.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)

	var out [32]byte
	copy(out[:], y.Bytes())
	out[31] |= byte(x.IsNegative()) << 7
	return out
}

// Decode parses a 32-byte compressed point encoding into P3, reporting
// ok=false if the encoding does not correspond to a point on the curve.
// Implements RFC 8032 §5.1.3: reject y >= p, recover u = y^2-1,
// v = d*y^2+1, a candidate root x0 = (u*v^7)^((p-5)/8) * u * v^3, accept
// it directly if v*x0^2 = u, accept x0*sqrt(-1) if v*x0^2 = -u, and
// otherwise reject.
func Decode(in []byte) (P3, bool) {
	sign := int(in[31] >> 7)

	var y field.Element
	y.SetBytes(in)

	// y is in range iff its canonical encoding reproduces the input bits.
	var yIn [32]byte
	copy(yIn[:], in[:32])
	yIn[31] &= 0x7f
	if !bytes.Equal(y.Bytes(), yIn[:]) {
		return P3{}, false
	}

	x, ok := recoverX(&y, sign)
	if !ok {
		return P3{}, false
	}

	var p P3
	p.X = x
	p.Y = y
	p.Z.One()
	p.T.Multiply(&x, &y)
	return p, true
}
