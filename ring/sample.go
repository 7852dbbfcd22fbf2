package ring

import (
	"io"
	"math/bits"
)

// SampleNTT draws bytes from r (a SHAKE-128 XOF reader keyed on a public
// seed) and produces a polynomial in the NTT domain by rejection
// sampling 12-bit candidates three bytes at a time. The seed driving r
// is always public, so the data-dependent rejection loop here is not a
// secrecy-relevant timing channel.
func SampleNTT(r io.Reader) (*Poly, error) {
	p := NewPoly()
	var buf [3]byte
	i := 0
	for i < N {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d1 := uint16(buf[0]) | (uint16(buf[1]&0x0F) << 8)
		d2 := uint16(buf[1]>>4) | (uint16(buf[2]) << 4)
		if d1 < Q {
			p[i] = Elem(d1)
			i++
		}
		if i < N && d2 < Q {
			p[i] = Elem(d2)
			i++
		}
	}
	return p, nil
}

// SamplePolyCBD draws a polynomial whose coefficients follow the
// centered binomial distribution of parameter eta from a 64*eta-byte
// PRF output. It consumes the bytes through a rolling bit buffer so
// every coefficient costs the same fixed number of operations,
// regardless of the sampled value.
func SamplePolyCBD(eta int, buf []byte) *Poly {
	p := NewPoly()
	var acc uint64
	var accBits int
	pos := 0
	width := 2 * eta
	mask := uint64(1)<<uint(eta) - 1
	for i := 0; i < N; i++ {
		for accBits < width {
			acc |= uint64(buf[pos]) << accBits
			pos++
			accBits += 8
		}
		chunk := acc & (uint64(1)<<uint(width) - 1)
		acc >>= uint(width)
		accBits -= width
		x := bits.OnesCount64(chunk & mask)
		y := bits.OnesCount64(chunk >> uint(eta))
		p[i] = Sub(Elem(x), Elem(y))
	}
	return p
}
