package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"golang.org/x/crypto/sha3"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = 32
	// HashID identifies the used hash as a string.
	HashID = "SHAKE128"
	// PrivateKeySize is the size of a signing key in bytes.
	PrivateKeySize = ed25519.PrivateKeySize
	// PublicKeySize is the size of a verification key in bytes.
	PublicKeySize = ed25519.PublicKeySize
)

// SigningKey is an ed25519 private key used to sign tree roots.
type SigningKey ed25519.PrivateKey

// VerifKey is an ed25519 public key used to verify signed tree roots.
type VerifKey ed25519.PublicKey

// Digest hashes all passed byte slices.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) []byte {
	h := sha3.NewShake128()
	for _, m := range ms {
		h.Write(m)
	}
	ret := make([]byte, HashSizeByte)
	h.Read(ret)
	return ret
}

// GenerateKey returns a fresh random signing key.
func GenerateKey() (SigningKey, error) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	return SigningKey(sk), err
}

// Sign signs the message with the signing key key.
func (key SigningKey) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(key), message)
}

// Public returns the verification key corresponding to key.
func (key SigningKey) Public() (VerifKey, bool) {
	pk, ok := ed25519.PrivateKey(key).Public().(ed25519.PublicKey)
	return VerifKey(pk), ok
}

// Verify verifies the signature sig of message under the
// verification key pk.
func (pk VerifKey) Verify(message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pk), message, sig)
}

// MakeRand returns a random slice of bytes.
// It returns an error if there was a problem while generating
// the random slice.
// It is different from the 'standard' random byte generation as it
// hashes its output before returning it; by hashing the system's
// PRNG output before it is send over the wire, we aim to make the
// random output less predictable (even if the system's PRNG isn't
// as unpredictable as desired).
func MakeRand() ([]byte, error) {
	r := make([]byte, HashSizeByte)
	if _, err := rand.Read(r); err != nil {
		return nil, err
	}
	// Do not directly reveal bytes from rand.Read on the wire
	return Digest(r), nil
}
