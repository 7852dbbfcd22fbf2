package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, d := range []int{1, 4, 5, 10, 11} {
		p := randomPoly(rng)
		c := Compress(d, p)
		for _, v := range c {
			require.Less(t, int(v), 1<<uint(d))
		}
		decompressed := Decompress(d, c)
		for _, v := range decompressed {
			require.Less(t, int(v), Q)
		}
	}
}

func TestCompress1IsMessageBit(t *testing.T) {
	p := NewPoly()
	p[0] = 0
	p[1] = Q / 2
	c := Compress(1, p)
	require.Equal(t, Elem(0), c[0])
	require.Equal(t, Elem(1), c[1])
}
