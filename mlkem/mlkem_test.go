package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var allParams = []Parameters{Kem512, Kem768, Kem1024}

func randomArray32() [32]byte {
	var b [32]byte
	rand.Read(b[:])
	return b
}

// Property 1: KEM correctness.
func TestKeyGenEncapsDecapsCorrectness(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			d, z, m := randomArray32(), randomArray32(), randomArray32()
			ek, dk := p.KeyGenFromSeed(d, z)
			k1, ct := p.EncapsFromSeed(ek, m)
			k2 := p.Decaps(dk, ct)
			require.True(t, k1.Equal(k2))
		})
	}
}

// Property 2: SerDes round-trip.
func TestSerDesRoundTrip(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			ek, dk, err := p.KeyGen()
			require.NoError(t, err)
			k, ct, err := p.Encaps(ek)
			require.NoError(t, err)

			ek2, err := EncapsKeyFromBytes(p, ek.Bytes())
			require.NoError(t, err)
			require.Equal(t, ek.Bytes(), ek2.Bytes())

			dk2, err := DecapsKeyFromBytes(p, dk.Bytes())
			require.NoError(t, err)
			require.Equal(t, dk.Bytes(), dk2.Bytes())

			ct2, err := CipherTextFromBytes(p, ct.Bytes())
			require.NoError(t, err)
			require.Equal(t, ct.Bytes(), ct2.Bytes())

			k2, err := SharedSecretKeyFromBytes(k.Bytes())
			require.NoError(t, err)
			require.Equal(t, k.Bytes(), k2.Bytes())
		})
	}
}

// Property 5: implicit rejection on a tampered ciphertext must not
// recover the original shared secret.
func TestImplicitRejectionOnTamperedCiphertext(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			d, z, m := randomArray32(), randomArray32(), randomArray32()
			ek, dk := p.KeyGenFromSeed(d, z)
			k, ct := p.EncapsFromSeed(ek, m)

			tampered := ct.Bytes()
			tampered[0] ^= 0x01
			ct2, err := CipherTextFromBytes(p, tampered)
			require.NoError(t, err)

			got := p.Decaps(dk, ct2)
			require.False(t, k.Equal(got))
		})
	}
}

// Property 6: keypair validation.
func TestValidateKeypair(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			ek, dk, err := p.KeyGen()
			require.NoError(t, err)
			require.True(t, p.ValidateKeypair(ek.Bytes(), dk.Bytes()))

			tampered := dk.Bytes()
			tampered[0] ^= 0x01
			require.False(t, p.ValidateKeypair(ek.Bytes(), tampered))
		})
	}
}

// Property 7: non-canonical encapsulation keys are rejected.
func TestEncapsKeyFromBytesRejectsNonCanonical(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			ek, _, err := p.KeyGen()
			require.NoError(t, err)
			b := ek.Bytes()
			// Force the first 12-bit coefficient to 0xFFF (4095 >= q),
			// which is non-canonical regardless of the surrounding bits.
			b[0] = 0xFF
			b[1] |= 0x0F
			_, err = EncapsKeyFromBytes(p, b)
			require.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestDecapsKeyFromBytesRejectsHashMismatch(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			_, dk, err := p.KeyGen()
			require.NoError(t, err)
			b := dk.Bytes()
			b[len(b)-33] ^= 0x01 // flip a bit inside the embedded hash
			_, err = DecapsKeyFromBytes(p, b)
			require.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}
