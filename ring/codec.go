package ring

import "errors"

// ErrInvalidEncoding reports a decoded coefficient that is not canonical
// (only possible for ByteDecode with d == 12, the modulus check point).
var ErrInvalidEncoding = errors.New("ring: invalid encoding: coefficient out of range")

// ByteEncode packs the 256 coefficients of p, each assumed < 2^d (or < Q
// when d == 12), into 32*d bytes using a little-endian rolling bit
// buffer, LSB-first.
func ByteEncode(d int, p *Poly) []byte {
	out := make([]byte, 32*d)
	var buf uint32
	var bits int
	pos := 0
	for i := 0; i < N; i++ {
		buf |= uint32(p[i]) << bits
		bits += d
		for bits >= 8 {
			out[pos] = byte(buf)
			pos++
			buf >>= 8
			bits -= 8
		}
	}
	return out
}

// ByteDecode unpacks 32*d bytes into 256 coefficients. For d < 12 every
// value is inherently < 2^d and decoding cannot fail. For d == 12, any
// decoded value >= Q is rejected as non-canonical, per spec: this is the
// sole modulus check performed on externally supplied encapsulation
// keys.
func ByteDecode(d int, b []byte) (*Poly, error) {
	p := NewPoly()
	var buf uint32
	var bits int
	pos := 0
	mask := uint32(1)<<uint(d) - 1
	for i := 0; i < N; i++ {
		for bits < d {
			buf |= uint32(b[pos]) << bits
			pos++
			bits += 8
		}
		v := buf & mask
		buf >>= uint(d)
		bits -= d
		if d == 12 && v >= Q {
			return nil, ErrInvalidEncoding
		}
		p[i] = Elem(v)
	}
	return p, nil
}
