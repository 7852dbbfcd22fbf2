package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(rng *rand.Rand) *Poly {
	p := NewPoly()
	for i := range p {
		p[i] = Elem(rng.Intn(Q))
	}
	return p
}

func TestNTTInvNTTRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		f := randomPoly(rng)
		got := f.CopyNew()
		NTT(got)
		InvNTT(got)
		require.True(t, f.Equal(got))
	}
}

func TestMultiplyNTTsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	f := randomPoly(rng)
	one := NewPoly()
	one[0] = 1
	NTT(f)
	NTT(one)
	got := MultiplyNTTs(f, one)
	require.True(t, f.Equal(got))
}
