// Package ed25519 implements the Ed25519 digital signature scheme defined
// in RFC 8032: keypair generation, detached signing, and cofactor-less
// verification over edwards25519.
//
// Grounded on the teacher package's key and wire-format layer
// (zed/keys.go: Public, Secret, their Key()/Point()/Scalar() accessors and
// From*Key constructors), restructured around Go sentinel errors instead of
// panics and renamed to the SecretKey/PublicKey/Signature/Keypair
// vocabulary used throughout this module's design.
package ed25519

import (
	"crypto/rand"
	"crypto/sha512"

	"github.com/yuzonightly/ed25519/internal/edwards25519"
)

const (
	// SecretKeySize is the size, in bytes, of a secret key.
	SecretKeySize = 32
	// PublicKeySize is the size, in bytes, of a public key.
	PublicKeySize = 32
	// SignatureSize is the size, in bytes, of a signature.
	SignatureSize = 64
	// KeypairSize is the size, in bytes, of a serialized keypair
	// (secret || public).
	KeypairSize = SecretKeySize + PublicKeySize
)

// SecretKey holds 32 bytes of uniform random secret material. It owns its
// buffer exclusively; callers must call Zero when finished with it, since
// the zero value is not itself meaningful key material to retain.
type SecretKey struct {
	b [SecretKeySize]byte
}

// PublicKey is the compressed encoding of a public point A = [a]B. It is
// immutable and freely copyable.
type PublicKey struct {
	b [PublicKeySize]byte
}

// Signature is a detached Ed25519 signature, enc(R) || S.
type Signature struct {
	b [SignatureSize]byte
}

// Keypair owns a SecretKey and its corresponding PublicKey by value.
type Keypair struct {
	Secret SecretKey
	Public PublicKey
}

// NewSecretKey validates and copies b into a SecretKey.
func NewSecretKey(b []byte) (SecretKey, error) {
	if len(b) != SecretKeySize {
		return SecretKey{}, ErrInvalidSecretKey
	}
	var sk SecretKey
	copy(sk.b[:], b)
	return sk, nil
}

// NewPublicKey validates and copies b into a PublicKey. Only the length is
// validated here; whether the encoding decodes to a valid curve point is
// checked by Verify, each time it is called.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, ErrInvalidPublicKey
	}
	var pk PublicKey
	copy(pk.b[:], b)
	return pk, nil
}

// NewSignature validates and copies b into a Signature.
func NewSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, ErrInvalidSignatureLength
	}
	var sig Signature
	copy(sig.b[:], b)
	return sig, nil
}

// NewKeypairFromBytes parses a 64-byte secret||public encoding into a
// Keypair.
func NewKeypairFromBytes(b []byte) (Keypair, error) {
	if len(b) != KeypairSize {
		return Keypair{}, ErrInvalidKeypair
	}
	sk, err := NewSecretKey(b[:SecretKeySize])
	if err != nil {
		return Keypair{}, ErrInvalidKeypair
	}
	pk, err := NewPublicKey(b[SecretKeySize:])
	if err != nil {
		return Keypair{}, ErrInvalidKeypair
	}
	return Keypair{Secret: sk, Public: pk}, nil
}

// Bytes returns the 32-byte encoding of sk.
func (sk SecretKey) Bytes() [SecretKeySize]byte { return sk.b }

// Bytes returns the 32-byte compressed encoding of pk.
func (pk PublicKey) Bytes() [PublicKeySize]byte { return pk.b }

// Bytes returns the 64-byte encoding of sig.
func (sig Signature) Bytes() [SignatureSize]byte { return sig.b }

// Bytes returns the 64-byte secret||public encoding of kp.
func (kp Keypair) Bytes() [KeypairSize]byte {
	var out [KeypairSize]byte
	copy(out[:SecretKeySize], kp.Secret.b[:])
	copy(out[SecretKeySize:], kp.Public.b[:])
	return out
}

// Zero scrubs sk's buffer. Callers that generated or loaded sensitive
// secret-key material should call this once the key is no longer needed.
func (sk *SecretKey) Zero() {
	for i := range sk.b {
		sk.b[i] = 0
	}
}

// expandedSecret holds the two 32-byte halves of SHA-512(secret): the
// clamped scalar and the nonce-derivation prefix. It is wiped after each
// use by the caller that derives it.
type expandedSecret struct {
	scalar [32]byte
	prefix [32]byte
}

func (e *expandedSecret) zero() {
	for i := range e.scalar {
		e.scalar[i] = 0
	}
	for i := range e.prefix {
		e.prefix[i] = 0
	}
}

// expand computes h = SHA-512(sk) and applies RFC 8032's bit-clamp to its
// low half: h[0] &= 248; h[31] &= 63; h[31] |= 64.
func expand(sk SecretKey) expandedSecret {
	h := sha512.Sum512(sk.b[:])

	var e expandedSecret
	copy(e.scalar[:], h[:32])
	copy(e.prefix[:], h[32:])

	e.scalar[0] &= 248
	e.scalar[31] &= 63
	e.scalar[31] |= 64

	for i := range h {
		h[i] = 0
	}
	return e
}

// publicFromSecret derives A = enc([a]B), where a is sk's clamped scalar.
func publicFromSecret(sk SecretKey) PublicKey {
	e := expand(sk)
	defer e.zero()

	A := edwards25519.ScalarBaseMult(e.scalar)
	enc := edwards25519.Encode(&A)

	var pk PublicKey
	copy(pk.b[:], enc[:])
	return pk
}

// NewKeypairFromSecret derives the public key for a supplied secret key
// and returns the resulting Keypair.
func NewKeypairFromSecret(sk SecretKey) Keypair {
	return Keypair{Secret: sk, Public: publicFromSecret(sk)}
}

// Generate creates a new Keypair using a cryptographically secure random
// secret key. It fails only if the system RNG fails.
func Generate() (Keypair, error) {
	var buf [SecretKeySize]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Keypair{}, err
	}
	sk, err := NewSecretKey(buf[:])
	for i := range buf {
		buf[i] = 0
	}
	if err != nil {
		return Keypair{}, err
	}
	return NewKeypairFromSecret(sk), nil
}
