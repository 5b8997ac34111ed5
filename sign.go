// Grounded on the teacher package's signing and verification glue
// (zed/sign.go: Secret.Sign, Public.Verify), reworked to the cofactor-less,
// strict-S verification equation and the sentinel-error return style
// described in errors.go.
package ed25519

import (
	"crypto/sha512"

	"github.com/yuzonightly/ed25519/internal/edwards25519"
	"github.com/yuzonightly/ed25519/internal/scalar"
)

// Sign produces a detached signature over msg using kp's secret key,
// following RFC 8032 §5.1.6:
//
//	h = SHA-512(secret); a = clamp(h[0:32]); prefix = h[32:64]
//	A = enc([a]B)
//	r = reduce(SHA-512(prefix || msg))
//	R = enc([r]B)
//	k = reduce(SHA-512(R || A || msg))
//	S = (k*a + r) mod ℓ
//	signature = R || S
func (kp Keypair) Sign(msg []byte) Signature {
	e := expand(kp.Secret)
	defer e.zero()

	A := kp.Public.b

	rh := sha512.New()
	rh.Write(e.prefix[:])
	rh.Write(msg)
	var rDigest [64]byte
	rh.Sum(rDigest[:0])
	r := scalar.Reduce(rDigest[:])
	for i := range rDigest {
		rDigest[i] = 0
	}

	Rpoint := edwards25519.ScalarBaseMult(r)
	Renc := edwards25519.Encode(&Rpoint)

	kh := sha512.New()
	kh.Write(Renc[:])
	kh.Write(A[:])
	kh.Write(msg)
	var kDigest [64]byte
	kh.Sum(kDigest[:0])
	k := scalar.Reduce(kDigest[:])
	for i := range kDigest {
		kDigest[i] = 0
	}

	S := scalar.MultiplyAdd(k, e.scalar, r)
	r = [32]byte{}

	var sig Signature
	copy(sig.b[:32], Renc[:])
	copy(sig.b[32:], S[:])
	return sig
}

// Verify checks that sig is a valid signature over msg under pk, per RFC
// 8032 §5.1.7, using the cofactor-less equation [S]B = R + [k]A:
//
//	reject if S >= ℓ
//	decode pk into A; reject if the encoding is not a valid point
//	k = reduce(SHA-512(R || pk || msg))
//	compute [S]B - [k]A and compare its encoding to R
//
// It returns nil on success. On failure it returns ErrInvalidSignature for
// a structural problem (non-canonical S or an undecodable public key) or
// ErrSignatureMismatch if the group equation does not hold; callers must
// not use the distinction to infer anything beyond valid/invalid.
func (pk PublicKey) Verify(msg []byte, sig Signature) error {
	var S [32]byte
	copy(S[:], sig.b[32:])
	if !scalar.IsCanonical(S) {
		return ErrInvalidSignature
	}

	A, ok := edwards25519.Decode(pk.b[:])
	if !ok {
		return ErrInvalidSignature
	}

	var R [32]byte
	copy(R[:], sig.b[:32])

	kh := sha512.New()
	kh.Write(R[:])
	kh.Write(pk.b[:])
	kh.Write(msg)
	var kDigest [64]byte
	kh.Sum(kDigest[:0])
	k := scalar.Reduce(kDigest[:])

	// [S]B - [k]A == R  <=>  [S]B + [-k mod ℓ]A == R, so negate k and
	// drive it through the same double-scalar-base routine used for
	// [a]A + [b]B with a = -k, b = S.
	negK := negateScalarModL(k)

	checkP2 := edwards25519.VarTimeDoubleScalarBaseMult(negK, &A, S)
	var checkP3 edwards25519.P3
	checkP3.FromP2(&checkP2)
	checkEnc := edwards25519.Encode(&checkP3)

	var diff byte
	for i := range checkEnc {
		diff |= checkEnc[i] ^ R[i]
	}
	if diff != 0 {
		return ErrSignatureMismatch
	}
	return nil
}

// negateScalarModL returns (ℓ - s) mod ℓ for a canonical 32-byte scalar s,
// i.e. -s mod ℓ, via multiply_add against zero: (-1*s + 0) is equivalent
// over the field of scalars to ℓ - s once reduced, since MultiplyAdd
// reduces its result into [0, ℓ).
func negateScalarModL(s [32]byte) [32]byte {
	var minusOne [32]byte
	// ℓ - 1, little-endian: the canonical representative of -1 mod ℓ.
	copy(minusOne[:], []byte{
		0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	})
	var zero [32]byte
	return scalar.MultiplyAdd(s, minusOne, zero)
}
