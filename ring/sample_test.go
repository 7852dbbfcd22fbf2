package ring

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestSampleNTTProducesCanonicalCoefficients(t *testing.T) {
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)

	h := sha3.NewShake128()
	h.Write(seed)

	p, err := SampleNTT(h)
	require.NoError(t, err)
	for _, v := range p {
		require.Less(t, int(v), Q)
	}
}

func TestSampleNTTDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)

	h1 := sha3.NewShake128()
	h1.Write(seed)
	p1, err := SampleNTT(h1)
	require.NoError(t, err)

	h2 := sha3.NewShake128()
	h2.Write(seed)
	p2, err := SampleNTT(h2)
	require.NoError(t, err)

	require.True(t, p1.Equal(p2))
}

func TestSamplePolyCBDRange(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := make([]byte, 64*eta)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		p := SamplePolyCBD(eta, buf)
		for _, v := range p {
			require.Less(t, int(v), Q)
		}
	}
}
