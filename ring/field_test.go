package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldAddSub(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		a := Elem(rng.Intn(Q))
		b := Elem(rng.Intn(Q))

		require.Less(t, int(Add(a, b)), Q)
		require.Equal(t, (int(a)+int(b))%Q, int(Add(a, b)))

		require.Less(t, int(Sub(a, b)), Q)
		require.Equal(t, ((int(a)-int(b))%Q+Q)%Q, int(Sub(a, b)))
	}
}

func TestFieldMul(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		a := Elem(rng.Intn(Q))
		b := Elem(rng.Intn(Q))
		got := Mul(a, b)
		require.Less(t, int(got), Q)
		require.Equal(t, (int(a)*int(b))%Q, int(got))
	}
}

func TestBaseCaseMultiply(t *testing.T) {
	gamma := gammaTable[0]
	c0, c1 := BaseCaseMultiply(1, 0, 1, 0, gamma)
	require.Equal(t, Elem(1), c0)
	require.Equal(t, Elem(0), c1)
}

func TestBarrettReduceMatchesMod(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		x := uint32(rng.Intn(8 * Q))
		require.Equal(t, int(x%Q), int(BarrettReduce(x)))
	}
}

func TestBaseCaseMultiplyRawMatchesReduced(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		a0 := Elem(rng.Intn(Q))
		a1 := Elem(rng.Intn(Q))
		b0 := Elem(rng.Intn(Q))
		b1 := Elem(rng.Intn(Q))
		gamma := gammaTable[rng.Intn(N/2)]

		wantC0, wantC1 := BaseCaseMultiply(a0, a1, b0, b1, gamma)
		rawC0, rawC1 := BaseCaseMultiplyRaw(a0, a1, b0, b1, gamma)
		require.Equal(t, wantC0, BarrettReduce(rawC0))
		require.Equal(t, wantC1, BarrettReduce(rawC1))
	}
}
