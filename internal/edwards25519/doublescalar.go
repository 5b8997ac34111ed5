package edwards25519

import "github.com/yuzonightly/ed25519/internal/scalar"

// VarTimeDoubleScalarBaseMult returns [a]A + [b]B in P2, using signed
// sliding windows over odd-multiple tables. Not constant-time: reserved
// for verification, where A, a and b are all public.
func VarTimeDoubleScalarBaseMult(a [32]byte, A *P3, b [32]byte) P2 {
	ensureTables()

	aSlide := scalar.Slide(a)
	bSlide := scalar.Slide(b)
	ai := oddMultiples(A)

	i := 255
	for i >= 0 && aSlide[i] == 0 && bSlide[i] == 0 {
		i--
	}

	var r P2
	r.Zero()

	if i < 0 {
		return r
	}

	var t P1P1
	var u P3

	t.Double(&r)

	for ; i >= 0; i-- {
		u.FromP1P1(&t)

		if aSlide[i] > 0 {
			t.Add(&u, &ai[aSlide[i]/2])
			u.FromP1P1(&t)
		} else if aSlide[i] < 0 {
			t.Sub(&u, &ai[-aSlide[i]/2])
			u.FromP1P1(&t)
		}

		if bSlide[i] > 0 {
			t.Add(&u, &bi[bSlide[i]/2])
			u.FromP1P1(&t)
		} else if bSlide[i] < 0 {
			t.Sub(&u, &bi[-bSlide[i]/2])
			u.FromP1P1(&t)
		}

		r.FromP1P1(&t)
		if i > 0 {
			t.Double(&r)
		}
	}

	return r
}
