package ring

// Zeroize overwrites b with zeros in place. Call it on any buffer that
// held key material, randomness, or a derived secret once it has served
// its purpose.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroizePoly clears every coefficient of p.
func ZeroizePoly(p *Poly) {
	for i := range p {
		p[i] = 0
	}
}

// ZeroizeVector clears every polynomial in v.
func ZeroizeVector(v Vector) {
	for _, p := range v {
		ZeroizePoly(p)
	}
}
