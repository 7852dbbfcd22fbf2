package mlkem

import "crypto/rand"

// RNG is the capability ML-KEM needs from a random number source: fill
// a caller-provided buffer with random bytes, or report failure.
type RNG interface {
	FillBytes(out []byte) error
}

// CryptoRandRNG is the default RNG, backed by crypto/rand.Reader.
type CryptoRandRNG struct{}

// FillBytes reads len(out) random bytes from crypto/rand.Reader.
func (CryptoRandRNG) FillBytes(out []byte) error {
	_, err := rand.Read(out)
	return err
}
