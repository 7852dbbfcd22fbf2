package kpke

import (
	"github.com/heron-crypto/mlkem/internal/sha3io"
	"github.com/heron-crypto/mlkem/ring"
)

// generateMatrix expands the public seed rho into the K*K matrix
// A-hat, with A[i][j] drawn from SampleNTT(XOF(rho, j, i)) — note the
// transposed argument order, which FIPS 203 uses so that KeyGen and
// Encrypt (which walk the matrix in different orders) regenerate
// exactly the same entries from the same seed.
func generateMatrix(rho []byte, k int) (ring.Matrix, error) {
	a := ring.NewMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			xof := sha3io.XOF(rho, byte(j), byte(i))
			p, err := ring.SampleNTT(xof)
			if err != nil {
				return nil, err
			}
			a[i][j] = p
		}
	}
	return a, nil
}

// KeyGen runs K-PKE.KeyGen on the 32-byte seed d, returning the encoded
// public key ekPKE (384*K+32 bytes) and private key dkPKE (384*K
// bytes).
func KeyGen(p Params, d []byte) (ekPKE, dkPKE []byte, err error) {
	gIn := append(append([]byte{}, d...), byte(p.K))
	rho, sigma := sha3io.G(gIn)

	a, err := generateMatrix(rho[:], p.K)
	if err != nil {
		return nil, nil, err
	}

	var n byte
	s := ring.NewVector(p.K)
	for i := 0; i < p.K; i++ {
		s[i] = ring.SamplePolyCBD(p.Eta1, sha3io.PRF(sigma[:], n, 64*p.Eta1))
		n++
	}
	e := ring.NewVector(p.K)
	for i := 0; i < p.K; i++ {
		e[i] = ring.SamplePolyCBD(p.Eta1, sha3io.PRF(sigma[:], n, 64*p.Eta1))
		n++
	}

	sHat := make(ring.Vector, p.K)
	for i := range s {
		sHat[i] = s[i].CopyNew()
	}
	sHat.NTT()
	eHat := make(ring.Vector, p.K)
	for i := range e {
		eHat[i] = e[i].CopyNew()
	}
	eHat.NTT()

	tHat := a.MulVectorNTT(sHat)
	tHat.Add(tHat, eHat)

	ekPKE = make([]byte, 0, p.EkLen)
	for i := 0; i < p.K; i++ {
		ekPKE = append(ekPKE, ring.ByteEncode(12, tHat[i])...)
	}
	ekPKE = append(ekPKE, rho[:]...)

	dkPKE = make([]byte, 0, p.DkLen)
	for i := 0; i < p.K; i++ {
		dkPKE = append(dkPKE, ring.ByteEncode(12, sHat[i])...)
	}

	ring.ZeroizeVector(s)
	ring.ZeroizeVector(e)
	return ekPKE, dkPKE, nil
}

// Encrypt runs K-PKE.Encrypt, producing a ciphertext of length p.CtLen
// from the encoded public key, the 32-byte message m and the 32-byte
// encryption randomness r.
func Encrypt(p Params, ekPKE, m, r []byte) ([]byte, error) {
	tHat := make(ring.Vector, p.K)
	for i := 0; i < p.K; i++ {
		poly, err := ring.ByteDecode(12, ekPKE[384*i:384*(i+1)])
		if err != nil {
			return nil, err
		}
		tHat[i] = poly
	}
	rho := ekPKE[384*p.K : 384*p.K+32]

	a, err := generateMatrix(rho, p.K)
	if err != nil {
		return nil, err
	}

	var n byte
	y := ring.NewVector(p.K)
	for i := 0; i < p.K; i++ {
		y[i] = ring.SamplePolyCBD(p.Eta1, sha3io.PRF(r, n, 64*p.Eta1))
		n++
	}
	e1 := ring.NewVector(p.K)
	for i := 0; i < p.K; i++ {
		e1[i] = ring.SamplePolyCBD(p.Eta2, sha3io.PRF(r, n, 64*p.Eta2))
		n++
	}
	e2 := ring.SamplePolyCBD(p.Eta2, sha3io.PRF(r, n, 64*p.Eta2))
	n++

	yHat := make(ring.Vector, p.K)
	for i := range y {
		yHat[i] = y[i].CopyNew()
	}
	yHat.NTT()

	u := a.MulTransposeVectorNTT(yHat)
	u.InvNTT()
	u.Add(u, e1)

	muCoeffs, err := ring.ByteDecode(1, m)
	if err != nil {
		return nil, err
	}
	mu := ring.Decompress(1, muCoeffs)

	vPoly := ring.DotNTT(tHat, yHat)
	ring.InvNTT(vPoly)
	v := ring.NewPoly()
	v.Add(vPoly, e2)
	v.Add(v, mu)

	c := make([]byte, 0, p.CtLen)
	for i := 0; i < p.K; i++ {
		c = append(c, ring.ByteEncode(p.Du, ring.Compress(p.Du, u[i]))...)
	}
	c = append(c, ring.ByteEncode(p.Dv, ring.Compress(p.Dv, v))...)

	ring.ZeroizeVector(y)
	ring.ZeroizePoly(e2)
	return c, nil
}

// Decrypt runs K-PKE.Decrypt, recovering the 32-byte message encoded in
// c under the private key dkPKE.
func Decrypt(p Params, dkPKE, c []byte) []byte {
	c1Len := 32 * p.Du * p.K
	c1, c2 := c[:c1Len], c[c1Len:]

	u := ring.NewVector(p.K)
	chunkLen := 32 * p.Du
	for i := 0; i < p.K; i++ {
		encoded, _ := ring.ByteDecode(p.Du, c1[i*chunkLen:(i+1)*chunkLen])
		u[i] = ring.Decompress(p.Du, encoded)
	}
	vEncoded, _ := ring.ByteDecode(p.Dv, c2)
	v := ring.Decompress(p.Dv, vEncoded)

	sHat := make(ring.Vector, p.K)
	for i := 0; i < p.K; i++ {
		poly, _ := ring.ByteDecode(12, dkPKE[384*i:384*(i+1)])
		sHat[i] = poly
	}

	uHat := make(ring.Vector, p.K)
	for i := range u {
		uHat[i] = u[i].CopyNew()
	}
	uHat.NTT()

	wPoly := ring.DotNTT(sHat, uHat)
	ring.InvNTT(wPoly)

	w := ring.NewPoly()
	w.Sub(v, wPoly)

	return ring.ByteEncode(1, ring.Compress(1, w))
}
