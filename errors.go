package ed25519

import "errors"

// Error taxonomy for this package. Generalizes the teacher's
// panic-on-malformed-input constructors into the sentinel-error idiom used
// by golang.org/x/crypto/ed25519 and hdevalence/ed25519consensus: byte
// conversions return an error instead of panicking, and Verify returns a
// single error so callers cannot branch on anything finer-grained than
// "valid or not".
var (
	// ErrInvalidSecretKey is returned when a byte slice cannot be
	// interpreted as a 32-byte secret key.
	ErrInvalidSecretKey = errors.New("ed25519: invalid secret key")

	// ErrInvalidPublicKey is returned when a byte slice cannot be
	// interpreted as a 32-byte public key. Note this covers length only;
	// a length-correct encoding that fails to decode to a curve point is
	// reported as ErrInvalidSignature at verification time, not here.
	ErrInvalidPublicKey = errors.New("ed25519: invalid public key")

	// ErrInvalidSignatureLength is returned when a byte slice is not
	// exactly 64 bytes.
	ErrInvalidSignatureLength = errors.New("ed25519: invalid signature length")

	// ErrInvalidKeypair is returned when a byte slice cannot be
	// interpreted as a 64-byte secret||public keypair encoding.
	ErrInvalidKeypair = errors.New("ed25519: invalid keypair encoding")

	// ErrInvalidSignature is returned when verification fails because of
	// a structural problem: S is not in [0, ℓ), or the public key
	// encoding does not decode to a point on the curve.
	ErrInvalidSignature = errors.New("ed25519: invalid signature")

	// ErrSignatureMismatch is returned when verification fails because
	// the group equation [S]B = R + [k]A does not hold.
	ErrSignatureMismatch = errors.New("ed25519: signature mismatch")

	// ErrWeakPublicKey is reserved for future extensions; the current
	// core never returns it.
	ErrWeakPublicKey = errors.New("ed25519: weak public key")

	// ErrInvalidNoise is reserved for future extensions; the current
	// core never returns it.
	ErrInvalidNoise = errors.New("ed25519: invalid noise")
)
