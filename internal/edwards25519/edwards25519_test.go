package edwards25519_test

import (
	"testing"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"github.com/yuzonightly/ed25519/internal/edwards25519"
	"github.com/yuzonightly/ed25519/internal/scalar"
)

func genScalar(t *rapid.T, label string) [32]byte {
	var s [32]byte
	b := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, label)
	copy(s[:], b)
	return scalar.Reduce(append(append([]byte{}, s[:]...), make([]byte, 32)...))
}

// The fixed-base windowed table and the plain double-and-add reference must
// agree on every scalar; this is the "must hold for both the precomputed-
// table and a reference square-and-add implementation" property.
func TestScalarBaseMultMatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genScalar(t, "s")

		viaTable := edwards25519.ScalarBaseMult(s)
		viaRef := edwards25519.ScalarBaseMultVartime(s)

		assert.Equal(t, 1, viaTable.Equal(&viaRef))
	})
}

// TestScalarBaseMultVector checks spec §8 vector 5: a*B encoded against a
// known 32-byte output.
func TestScalarBaseMultVector(t *testing.T) {
	a := [32]byte{
		0xd0, 0x72, 0xf8, 0xdd, 0x9c, 0x07, 0xfa, 0x7b,
		0xc8, 0xd2, 0x2a, 0x4b, 0x32, 0x5d, 0x26, 0x30,
		0x1e, 0xe9, 0x20, 0x2f, 0x6d, 0xb8, 0x9a, 0xa7,
		0xc3, 0x73, 0x15, 0x29, 0xe3, 0x7e, 0x43, 0x7c,
	}
	want := [32]byte{
		0xd4, 0xcf, 0x85, 0x95, 0x57, 0x18, 0x30, 0x64,
		0x4b, 0xd1, 0x4a, 0xf4, 0x16, 0x95, 0x4d, 0x09,
		0xab, 0x71, 0x59, 0x75, 0x1a, 0xd9, 0xe0, 0xf7,
		0xa6, 0xcb, 0xd9, 0x23, 0x79, 0xe7, 0x1a, 0x66,
	}

	viaTable := edwards25519.ScalarBaseMult(a)
	viaRef := edwards25519.ScalarBaseMultVartime(a)

	enc := edwards25519.Encode(&viaTable)
	assert.DeepEqual(t, enc[:], want[:])

	encRef := edwards25519.Encode(&viaRef)
	assert.DeepEqual(t, encRef[:], want[:])
}

func TestDoublingMatchesAddingToSelf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genScalar(t, "s")
		p := edwards25519.ScalarBaseMult(s)

		var doubled, added edwards25519.P3
		doubled.Double(&p)
		added.Add(&p, &p)

		assert.Equal(t, 1, doubled.Equal(&added))
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genScalar(t, "s")
		p := edwards25519.ScalarBaseMult(s)
		enc := edwards25519.Encode(&p)

		back, ok := edwards25519.Decode(enc[:])
		assert.Assert(t, ok)
		assert.Equal(t, 1, back.Equal(&p))

		reenc := edwards25519.Encode(&back)
		assert.DeepEqual(t, enc, reenc)
	})
}

func TestDecodeRejectsNonPoints(t *testing.T) {
	// All-0xff is not a valid point encoding on edwards25519 (y is not even
	// in range after masking, or the recovered x^2 has no root).
	var bad [32]byte
	for i := range bad {
		bad[i] = 0xff
	}
	_, ok := edwards25519.Decode(bad[:])
	assert.Assert(t, !ok)
}

func TestVarTimeDoubleScalarBaseMultAgreesWithNaive(t *testing.T) {
	// [a]A + [b]B, computed via the sliding-window double-scalar routine,
	// must match the same quantity computed by two independent
	// double-and-add scalar multiplications added together.
	rapid.Check(t, func(t *rapid.T) {
		aScalar := genScalar(t, "aScalar")
		bScalar := genScalar(t, "bScalar")
		aPointScalar := genScalar(t, "aPointScalar")

		A := edwards25519.ScalarBaseMult(aPointScalar)

		viaWindowed := edwards25519.VarTimeDoubleScalarBaseMult(aScalar, &A, bScalar)
		var viaWindowedP3 edwards25519.P3
		viaWindowedP3.FromP2(&viaWindowed)

		aA := edwards25519.ScalarMultVartime(aScalar, &A)
		bB := edwards25519.ScalarBaseMultVartime(bScalar)
		var want edwards25519.P3
		want.Add(&aA, &bB)

		assert.Equal(t, 1, viaWindowedP3.Equal(&want))
	})
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genScalar(t, "s")
		p := edwards25519.ScalarBaseMult(s)

		var zero, sum edwards25519.P3
		zero.Zero()
		sum.Add(&p, &zero)

		assert.Equal(t, 1, sum.Equal(&p))
	})
}

// TestDecodeAcceptsSmallOrderPoint covers one entry of the "Taming the many
// EdDSAs" cofactor/canonical-encoding battery: the order-2 point (0, -1) is
// a valid curve point and must decode successfully even though it lies
// outside the prime-order subgroup. It is derived here via field arithmetic
// (y = -1, x = 0) rather than transcribed from the published test vectors,
// whose exact byte literals are not present in the retrieval pack.
func TestDecodeAcceptsSmallOrderPoint(t *testing.T) {
	var identity edwards25519.P3
	identity.Zero()
	idEnc := edwards25519.Encode(&identity)

	back, ok := edwards25519.Decode(idEnc[:])
	assert.Assert(t, ok)
	assert.Equal(t, 1, back.Equal(&identity))

	var orderTwo edwards25519.P3
	orderTwo.Zero()
	orderTwo.Y.Negate(&orderTwo.Y) // (0, -1)
	enc := edwards25519.Encode(&orderTwo)

	back2, ok := edwards25519.Decode(enc[:])
	assert.Assert(t, ok)
	assert.Equal(t, 1, back2.Equal(&orderTwo))

	// Adding the order-2 point to itself returns the identity.
	var doubled edwards25519.P3
	doubled.Add(&orderTwo, &orderTwo)
	assert.Equal(t, 1, doubled.Equal(&identity))
}

func TestNegAndAddCancels(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genScalar(t, "s")
		p := edwards25519.ScalarBaseMult(s)

		var negP, sum, zero edwards25519.P3
		negP.Neg(&p)
		sum.Add(&p, &negP)
		zero.Zero()

		assert.Equal(t, 1, sum.Equal(&zero))
	})
}
