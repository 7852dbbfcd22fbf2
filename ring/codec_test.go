package ring

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	for d := 1; d <= 12; d++ {
		d := d
		t.Run("", func(t *testing.T) {
			b := make([]byte, 32*d)
			_, err := rand.Read(b)
			require.NoError(t, err)

			p, err := ByteDecode(d, b)
			if d == 12 {
				// With uniformly random input almost every draw holds
				// a 12-bit chunk >= Q (all 256 are canonical with
				// probability about 1e-23); such draws only check that
				// the error is ErrInvalidEncoding.
				if err != nil {
					require.ErrorIs(t, err, ErrInvalidEncoding)
					return
				}
			} else {
				require.NoError(t, err)
			}

			got := ByteEncode(d, p)
			require.Equal(t, b, got)
		})
	}
}

func TestByteDecode12RejectsNonCanonical(t *testing.T) {
	p := NewPoly()
	p[0] = Q // out of range
	b := ByteEncode(12, p)
	_, err := ByteDecode(12, b)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
