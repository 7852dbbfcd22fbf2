package mlkem

import (
	"fmt"

	"github.com/heron-crypto/mlkem/ring"
)

// EncapsKey is the public encapsulation key. It is safe to share and
// store in the clear.
type EncapsKey struct {
	params Parameters
	bytes  []byte
}

// Bytes returns the encoded encapsulation key. The returned slice is a
// copy; mutating it does not affect the key.
func (ek EncapsKey) Bytes() []byte {
	out := make([]byte, len(ek.bytes))
	copy(out, ek.bytes)
	return out
}

// EncapsKeyFromBytes deserializes an encapsulation key, checking that
// every 384-byte chunk decodes to canonical (< Q) coefficients.
func EncapsKeyFromBytes(params Parameters, b []byte) (EncapsKey, error) {
	if len(b) != params.ekLen {
		return EncapsKey{}, fmt.Errorf("%w: encapsulation key has length %d, want %d", ErrInvalidEncoding, len(b), params.ekLen)
	}
	for i := 0; i < params.K(); i++ {
		if _, err := ring.ByteDecode(12, b[384*i:384*(i+1)]); err != nil {
			return EncapsKey{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return EncapsKey{params: params, bytes: out}, nil
}

// DecapsKey is the private decapsulation key. Its storage must be
// zeroed once it is no longer needed; call Zeroize.
type DecapsKey struct {
	params Parameters
	bytes  []byte
}

// Bytes returns the encoded decapsulation key. The returned slice is a
// copy; mutating it does not affect the key.
func (dk DecapsKey) Bytes() []byte {
	out := make([]byte, len(dk.bytes))
	copy(out, dk.bytes)
	return out
}

// Zeroize overwrites the key's internal storage with zeros. The
// DecapsKey must not be used afterwards.
func (dk DecapsKey) Zeroize() {
	ring.Zeroize(dk.bytes)
}

// DecapsKeyFromBytes deserializes a decapsulation key, checking that
// the embedded copy of the encapsulation key is itself valid and that
// the embedded hash matches H(ek).
func DecapsKeyFromBytes(params Parameters, b []byte) (DecapsKey, error) {
	if len(b) != params.dkLen {
		return DecapsKey{}, fmt.Errorf("%w: decapsulation key has length %d, want %d", ErrInvalidEncoding, len(b), params.dkLen)
	}
	dkPKELen := params.kpke.DkLen
	ekBytes := b[dkPKELen : dkPKELen+params.ekLen]
	hEmbedded := b[dkPKELen+params.ekLen : dkPKELen+params.ekLen+32]

	ek, err := EncapsKeyFromBytes(params, ekBytes)
	if err != nil {
		return DecapsKey{}, err
	}
	h := hashEK(ek.bytes)
	if !ring.ConstantTimeCompare(h[:], hEmbedded) {
		return DecapsKey{}, fmt.Errorf("%w: embedded hash does not match H(ek)", ErrInvalidEncoding)
	}

	out := make([]byte, len(b))
	copy(out, b)
	return DecapsKey{params: params, bytes: out}, nil
}

// CipherText is the ciphertext produced by Encaps and consumed by
// Decaps. It is public.
type CipherText struct {
	params Parameters
	bytes  []byte
}

// Bytes returns the encoded ciphertext. The returned slice is a copy.
func (ct CipherText) Bytes() []byte {
	out := make([]byte, len(ct.bytes))
	copy(out, ct.bytes)
	return out
}

// CipherTextFromBytes deserializes a ciphertext. The only check is
// length: any byte string of the correct length is accepted, since
// Decaps handles semantic validity via implicit rejection.
func CipherTextFromBytes(params Parameters, b []byte) (CipherText, error) {
	if len(b) != params.ctLen {
		return CipherText{}, fmt.Errorf("%w: ciphertext has length %d, want %d", ErrInvalidEncoding, len(b), params.ctLen)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return CipherText{params: params, bytes: out}, nil
}

// SharedSecretKey is the 32-byte key agreed by Encaps and Decaps. Its
// storage must be zeroed once consumed; call Zeroize. Equality checks
// on the raw bytes must always go through a constant-time comparison.
type SharedSecretKey struct {
	bytes [32]byte
}

// Bytes returns a copy of the shared secret's 32 bytes.
func (k SharedSecretKey) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, k.bytes[:])
	return out
}

// Equal reports whether k and other hold the same secret, in constant
// time.
func (k SharedSecretKey) Equal(other SharedSecretKey) bool {
	return ring.ConstantTimeCompare(k.bytes[:], other.bytes[:])
}

// Zeroize overwrites the shared secret's storage with zeros.
func (k *SharedSecretKey) Zeroize() {
	ring.Zeroize(k.bytes[:])
}

// SharedSecretKeyFromBytes deserializes a 32-byte shared secret.
func SharedSecretKeyFromBytes(b []byte) (SharedSecretKey, error) {
	if len(b) != 32 {
		return SharedSecretKey{}, fmt.Errorf("%w: shared secret has length %d, want 32", ErrInvalidEncoding, len(b))
	}
	var k SharedSecretKey
	copy(k.bytes[:], b)
	return k, nil
}
