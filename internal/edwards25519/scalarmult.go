package edwards25519

import "github.com/yuzonightly/ed25519/internal/scalar"

// Select sets v to a if cond == 1, or b if cond == 0, constant-time in cond.
func (v *Precomp) Select(a, b *Precomp, cond int) *Precomp {
	v.YplusX.Select(&a.YplusX, &b.YplusX, cond)
	v.YminusX.Select(&a.YminusX, &b.YminusX, cond)
	v.XY2d.Select(&a.XY2d, &b.XY2d, cond)
	return v
}

// negative returns 1 if b < 0, 0 otherwise, constant-time.
func negative(b int8) int {
	return int(uint8(b>>7)) & 1
}

// equal returns 1 if b == c, 0 otherwise, constant-time.
func equal(b, c int8) int {
	x := uint8(b) ^ uint8(c)
	y := uint32(x)
	y--
	y >>= 31
	return int(y)
}

// selectPrecompRow does a constant-time lookup of precompBase[pos][|b|-1],
// negated if b is negative, returning the identity if b == 0. Implements
// the Precomp::select described in the fixed-base multiplication
// algorithm: every row is masked with a constant-time equality check and
// OR'd into an accumulator, then the sign is applied with a final
// constant-time negation.
func selectPrecompRow(pos int, b int8) Precomp {
	bNegative := negative(b)
	mask := uint8(0) - uint8(bNegative)
	bAbs := int8(uint8(b) - ((mask & uint8(b)) << 1))

	var t Precomp
	t.Zero()
	row := &precompBase[pos]
	for i := int8(1); i <= 8; i++ {
		t.Select(&row[i-1], &t, equal(bAbs, i))
	}

	var minusT Precomp
	minusT.YplusX = t.YminusX
	minusT.YminusX = t.YplusX
	minusT.XY2d.Negate(&t.XY2d)
	t.Select(&minusT, &t, bNegative)

	return t
}

// ScalarBaseMult returns [s]B, computed via the constant-time radix-16
// windowed multiplication against the precomputed base-point table.
// s is consumed as a 32-byte little-endian scalar; callers pass the
// hash-derived, clamped or ℓ-reduced value.
func ScalarBaseMult(s [32]byte) P3 {
	ensureTables()
	e := scalar.SignedRadix16(s)

	var h P3
	h.Zero()

	for i := 1; i < 64; i += 2 {
		row := selectPrecompRow(i/2, e[i])
		var r P1P1
		r.AddPrecomp(&h, &row)
		h.FromP1P1(&r)
	}

	h.Double(&h)
	h.Double(&h)
	h.Double(&h)
	h.Double(&h)

	for i := 0; i < 64; i += 2 {
		row := selectPrecompRow(i/2, e[i])
		var r P1P1
		r.AddPrecomp(&h, &row)
		h.FromP1P1(&r)
	}

	return h
}
