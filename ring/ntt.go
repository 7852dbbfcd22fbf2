package ring

// nInv is 128^-1 mod Q, the scale factor applied at the end of InvNTT.
const nInv Elem = 3303

// NTT transforms p from the standard basis to the NTT basis in place,
// following the teacher's layered butterfly structure but fixed to the
// single modulus Q and degree N of ML-KEM.
func NTT(p *Poly) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < N; start += 2 * length {
			z := zetaPow[k]
			k++
			for j := start; j < start+length; j++ {
				t := Mul(z, p[j+length])
				p[j+length] = Sub(p[j], t)
				p[j] = Add(p[j], t)
			}
		}
	}
}

// InvNTT transforms p from the NTT basis back to the standard basis in
// place.
func InvNTT(p *Poly) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < N; start += 2 * length {
			z := zetaPow[k]
			k--
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = Add(t, p[j+length])
				p[j+length] = Mul(z, Sub(p[j+length], t))
			}
		}
	}
	for i := range p {
		p[i] = Mul(p[i], nInv)
	}
}

// MultiplyNTTs computes the pointwise product of f and g in the NTT
// domain, combining each coefficient pair via BaseCaseMultiply with the
// per-pair modulus gamma = zeta^(2*BitRev7(i)+1).
func MultiplyNTTs(f, g *Poly) *Poly {
	h := NewPoly()
	for i := 0; i < N/2; i++ {
		gamma := gammaTable[i]
		h[2*i], h[2*i+1] = BaseCaseMultiply(f[2*i], f[2*i+1], g[2*i], g[2*i+1], gamma)
	}
	return h
}

// rawPair holds one base-case product pair before final reduction, used
// by DotNTT and the Matrix multiplies to sum a vector's worth of terms
// with a single BarrettReduce at the end instead of reducing after every
// term.
type rawPair struct {
	c0, c1 uint32
}

// accumulateRaw adds the pointwise product of f and g into acc, term
// unreduced.
func accumulateRaw(acc *[N / 2]rawPair, f, g *Poly) {
	for i := 0; i < N/2; i++ {
		c0, c1 := BaseCaseMultiplyRaw(f[2*i], f[2*i+1], g[2*i], g[2*i+1], gammaTable[i])
		acc[i].c0 += c0
		acc[i].c1 += c1
	}
}

// reduceRaw reduces every accumulated pair back to canonical Z_q
// elements, producing the final polynomial.
func reduceRaw(acc *[N / 2]rawPair) *Poly {
	h := NewPoly()
	for i := 0; i < N/2; i++ {
		h[2*i] = BarrettReduce(acc[i].c0)
		h[2*i+1] = BarrettReduce(acc[i].c1)
	}
	return h
}
