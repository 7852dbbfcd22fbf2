package mlkem

import (
	"github.com/heron-crypto/mlkem/internal/sha3io"
	"github.com/heron-crypto/mlkem/kpke"
	"github.com/heron-crypto/mlkem/ring"
)

// hashEK computes H(ek), the 32-byte digest embedded in every
// DecapsKey. It is recomputed on every Encaps call and checked by
// DecapsKeyFromBytes; Decaps reads the embedded copy instead.
func hashEK(ek []byte) [32]byte {
	return sha3io.H(ek)
}

// KeyGenInternal runs the deterministic core of key generation from the
// two 32-byte seeds d (expanded into the K-PKE keypair) and z (the
// implicit-rejection secret).
func (p Parameters) KeyGenInternal(d, z [32]byte) (EncapsKey, DecapsKey) {
	ekPKE, dkPKE, err := kpke.KeyGen(p.kpke, d[:])
	if err != nil {
		// generateMatrix only fails if the XOF reader itself errors,
		// which golang.org/x/crypto/sha3's in-memory Shake never does.
		panic(err)
	}

	h := hashEK(ekPKE)
	dkBytes := make([]byte, 0, p.dkLen)
	dkBytes = append(dkBytes, dkPKE...)
	dkBytes = append(dkBytes, ekPKE...)
	dkBytes = append(dkBytes, h[:]...)
	dkBytes = append(dkBytes, z[:]...)

	ek := EncapsKey{params: p, bytes: ekPKE}
	dk := DecapsKey{params: p, bytes: dkBytes}
	return ek, dk
}

// KeyGenFromSeed is the public, infallible entry point for deterministic
// key generation.
func (p Parameters) KeyGenFromSeed(d, z [32]byte) (EncapsKey, DecapsKey) {
	return p.KeyGenInternal(d, z)
}

// KeyGenWithRNG draws fresh seeds from rng and generates a keypair.
func (p Parameters) KeyGenWithRNG(rng RNG) (EncapsKey, DecapsKey, error) {
	var d, z [32]byte
	if err := rng.FillBytes(d[:]); err != nil {
		return EncapsKey{}, DecapsKey{}, ErrRNGFailure
	}
	if err := rng.FillBytes(z[:]); err != nil {
		return EncapsKey{}, DecapsKey{}, ErrRNGFailure
	}
	ek, dk := p.KeyGenInternal(d, z)
	return ek, dk, nil
}

// KeyGen generates a keypair using the OS-backed default RNG.
func (p Parameters) KeyGen() (EncapsKey, DecapsKey, error) {
	return p.KeyGenWithRNG(CryptoRandRNG{})
}

// EncapsInternal runs the deterministic core of encapsulation from the
// 32-byte message m.
func (p Parameters) EncapsInternal(ek EncapsKey, m [32]byte) (SharedSecretKey, CipherText) {
	h := hashEK(ek.bytes)
	gIn := append(append([]byte{}, m[:]...), h[:]...)
	k, r := sha3io.G(gIn)

	cBytes, err := kpke.Encrypt(p.kpke, ek.bytes, m[:], r[:])
	if err != nil {
		// ek was validated on construction; Encrypt only fails on a
		// malformed ek, which EncapsKeyFromBytes already rejects.
		panic(err)
	}

	ss, _ := SharedSecretKeyFromBytes(k[:])
	ct := CipherText{params: p, bytes: cBytes}
	ring.Zeroize(k[:])
	return ss, ct
}

// EncapsFromSeed is the public, infallible entry point for deterministic
// encapsulation.
func (p Parameters) EncapsFromSeed(ek EncapsKey, m [32]byte) (SharedSecretKey, CipherText) {
	return p.EncapsInternal(ek, m)
}

// EncapsWithRNG draws a fresh message from rng and encapsulates against
// ek.
func (p Parameters) EncapsWithRNG(ek EncapsKey, rng RNG) (SharedSecretKey, CipherText, error) {
	var m [32]byte
	if err := rng.FillBytes(m[:]); err != nil {
		return SharedSecretKey{}, CipherText{}, ErrRNGFailure
	}
	ss, ct := p.EncapsInternal(ek, m)
	return ss, ct, nil
}

// Encaps encapsulates against ek using the OS-backed default RNG.
func (p Parameters) Encaps(ek EncapsKey) (SharedSecretKey, CipherText, error) {
	return p.EncapsWithRNG(ek, CryptoRandRNG{})
}

// DecapsInternal recovers the shared secret for ct under dk. It never
// fails: a malformed or tampered ciphertext yields the implicit
// rejection key J(z, ct) instead of an error, selected in constant
// time so a caller cannot distinguish the two outcomes by timing.
func (p Parameters) DecapsInternal(dk DecapsKey, ct CipherText) SharedSecretKey {
	dkPKELen := p.kpke.DkLen
	dkPKE := dk.bytes[:dkPKELen]
	ekPKE := dk.bytes[dkPKELen : dkPKELen+p.ekLen]
	h := dk.bytes[dkPKELen+p.ekLen : dkPKELen+p.ekLen+32]
	z := dk.bytes[dkPKELen+p.ekLen+32:]

	mPrime := kpke.Decrypt(p.kpke, dkPKE, ct.bytes)

	gIn := append(append([]byte{}, mPrime...), h...)
	kPrime, rPrime := sha3io.G(gIn)

	kBar := sha3io.J(z, ct.bytes)

	cPrime, err := kpke.Encrypt(p.kpke, ekPKE, mPrime, rPrime[:])
	if err != nil {
		panic(err)
	}

	equal := ring.ConstantTimeCompare(ct.bytes, cPrime)
	out := kPrime
	ring.ConstantTimeSelect(equal, out[:], kBar[:])

	ss, _ := SharedSecretKeyFromBytes(out[:])
	ring.Zeroize(mPrime)
	ring.Zeroize(kPrime[:])
	ring.Zeroize(rPrime[:])
	return ss
}

// Decaps recovers the shared secret for ct under dk. It never fails.
func (p Parameters) Decaps(dk DecapsKey, ct CipherText) SharedSecretKey {
	return p.DecapsInternal(dk, ct)
}
