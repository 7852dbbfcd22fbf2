// Package sha3io adapts golang.org/x/crypto/sha3 to the five hash/XOF
// shapes ML-KEM needs: G, H, J, PRF and XOF. Each is a thin wrapper; the
// cryptographic work is entirely delegated to x/crypto/sha3.
package sha3io

import "golang.org/x/crypto/sha3"

// G hashes x with SHA3-512 and splits the 64-byte digest into its two
// 32-byte halves (a, b).
func G(x []byte) (a, b [32]byte) {
	sum := sha3.Sum512(x)
	copy(a[:], sum[:32])
	copy(b[:], sum[32:])
	return
}

// H hashes x with SHA3-256.
func H(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// J squeezes SHAKE-256 over z||c into a 32-byte output, used as the
// implicit-rejection pseudorandom key.
func J(z, c []byte) [32]byte {
	h := sha3.NewShake256()
	h.Write(z)
	h.Write(c)
	var out [32]byte
	h.Read(out[:])
	return out
}

// PRF squeezes SHAKE-256 over s||b into n bytes (n = 64*eta for the
// centered-binomial samplers).
func PRF(s []byte, b byte, n int) []byte {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})
	out := make([]byte, n)
	h.Read(out)
	return out
}

// XOF returns a SHAKE-128 reader seeded on rho||i||j, consumed by
// SampleNTT to derive one entry of the public matrix A-hat.
func XOF(rho []byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{i, j})
	return h
}
