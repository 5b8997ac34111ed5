// Package edwards25519 implements group arithmetic on the twisted Edwards
// curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// over GF(2^255-19), the curve used by Ed25519. Point representations,
// conversions and the addition/doubling formulas are grounded on
// ok-john-edwards25519/internal/edwards25519/edwards25519.go (itself
// descended from gtank/ristretto255 and filippo.io/edwards25519), adapted
// here onto this module's own internal/field package and renamed to the
// P2/P3/P1P1/Cached/Precomp vocabulary used throughout the rest of this
// repository.
package edwards25519

import "github.com/yuzonightly/ed25519/internal/field"

// P2 is the projective point representation (X, Y, Z); affine (x, y) =
// (X/Z, Y/Z).
type P2 struct {
	X, Y, Z field.Element
}

// P3 is the extended point representation (X, Y, Z, T) with X*Y = Z*T.
type P3 struct {
	X, Y, Z, T field.Element
}

// P1P1 is the completed point representation (X:Z, Y:T); affine (x, y) =
// (X/Z, Y/T). It is the result type of additions and doublings, before
// renormalization into P2 or P3.
type P1P1 struct {
	X, Y, Z, T field.Element
}

// Cached holds (Y+X, Y-X, Z, 2d*T) for a P3 point, used as the right-hand
// operand of a P3+Cached addition.
type Cached struct {
	YplusX, YminusX, Z, T2d field.Element
}

// Precomp holds (y+x, y-x, 2d*x*y) with an implicit Z = 1, used as the
// right-hand operand of a P3+Precomp addition; entries of the fixed-base
// table are stored in this form.
type Precomp struct {
	YplusX, YminusX, XY2d field.Element
}

// Zero constructors; also serve as the group identities.

func (v *P2) Zero() *P2 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	return v
}

func (v *P3) Zero() *P3 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.Zero()
	return v
}

func (v *Precomp) Zero() *Precomp {
	v.YplusX.One()
	v.YminusX.One()
	v.XY2d.Zero()
	return v
}

// Conversions.

func (v *P2) FromP1P1(p *P1P1) *P2 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

func (v *P2) FromP3(p *P3) *P2 {
	v.X.Set(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	return v
}

func (v *P3) FromP1P1(p *P1P1) *P3 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

func (v *P3) FromP2(p *P2) *P3 {
	v.X.Multiply(&p.X, &p.Z)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Square(&p.Z)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

func (v *Cached) FromP3(p *P3) *Cached {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Subtract(&p.Y, &p.X)
	v.Z.Set(&p.Z)
	v.T2d.Multiply(&p.T, &twoD)
	return v
}

// FromP3 normalizes p (via a field inversion) into affine Precomp form;
// used only while building the fixed-base table, never on a hot path.
func (v *Precomp) FromP3(p *P3) *Precomp {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Subtract(&p.Y, &p.X)
	v.XY2d.Multiply(&p.T, &twoD)

	var invZ field.Element
	invZ.Invert(&p.Z)
	v.YplusX.Multiply(&v.YplusX, &invZ)
	v.YminusX.Multiply(&v.YminusX, &invZ)
	v.XY2d.Multiply(&v.XY2d, &invZ)
	return v
}

// Re-addition and subtraction.

func (v *P3) Add(p, q *P3) *P3 {
	var result P1P1
	var qCached Cached
	qCached.FromP3(q)
	result.Add(p, &qCached)
	return v.FromP1P1(&result)
}

func (v *P3) Sub(p, q *P3) *P3 {
	var result P1P1
	var qCached Cached
	qCached.FromP3(q)
	result.Sub(p, &qCached)
	return v.FromP1P1(&result)
}

func (v *P1P1) Add(p *P3, q *Cached) *P1P1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.T, &q.T2d)
	ZZ2.Multiply(&p.Z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&ZZ2, &TT2d)
	v.T.Subtract(&ZZ2, &TT2d)
	return v
}

func (v *P1P1) Sub(p *P3, q *Cached) *P1P1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YminusX) // roles of Y+X, Y-X swapped
	MM.Multiply(&YminusX, &q.YplusX)
	TT2d.Multiply(&p.T, &q.T2d)
	ZZ2.Multiply(&p.Z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&ZZ2, &TT2d) // 2d*T contribution negated
	v.T.Add(&ZZ2, &TT2d)
	return v
}

func (v *P1P1) AddPrecomp(p *P3, q *Precomp) *P1P1 {
	var YplusX, YminusX, PP, MM, TT2d, Z2 field.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.T, &q.XY2d)
	Z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&Z2, &TT2d)
	v.T.Subtract(&Z2, &TT2d)
	return v
}

func (v *P1P1) SubPrecomp(p *P3, q *Precomp) *P1P1 {
	var YplusX, YminusX, PP, MM, TT2d, Z2 field.Element

	YplusX.Add(&p.Y, &p.X)
	YminusX.Subtract(&p.Y, &p.X)

	PP.Multiply(&YplusX, &q.YminusX)
	MM.Multiply(&YminusX, &q.YplusX)
	TT2d.Multiply(&p.T, &q.XY2d)
	Z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&Z2, &TT2d)
	v.T.Add(&Z2, &TT2d)
	return v
}

// Doubling.

func (v *P1P1) Double(p *P2) *P1P1 {
	var XX, YY, ZZ2, XplusYsq field.Element

	XX.Square(&p.X)
	YY.Square(&p.Y)
	ZZ2.Square(&p.Z)
	ZZ2.Add(&ZZ2, &ZZ2)
	XplusYsq.Add(&p.X, &p.Y)
	XplusYsq.Square(&XplusYsq)

	v.Y.Add(&YY, &XX)
	v.Z.Subtract(&YY, &XX)
	v.X.Subtract(&XplusYsq, &v.Y)
	v.T.Subtract(&ZZ2, &v.Z)
	return v
}

// Double sets v = 2p using the dedicated doubling formula, routed through
// P1P1 and back.
func (v *P3) Double(p *P3) *P3 {
	var p2 P2
	p2.FromP3(p)
	var r P1P1
	r.Double(&p2)
	return v.FromP1P1(&r)
}

// Negation and equality.

func (v *P3) Neg(p *P3) *P3 {
	v.X.Negate(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	v.T.Negate(&p.T)
	return v
}

// Equal reports whether v and u represent the same point, comparing
// X/Z and Y/Z cross-multiplied to avoid an inversion.
func (v *P3) Equal(u *P3) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.X, &u.Z)
	t2.Multiply(&u.X, &v.Z)
	t3.Multiply(&v.Y, &u.Z)
	t4.Multiply(&u.Y, &v.Z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}
