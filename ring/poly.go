package ring

// Poly is a length-N sequence of field elements, interpreted either as a
// coefficient vector of R_q = Z_q[X]/(X^256+1) (standard basis) or, once
// transformed by NTT, as 128 pairs of coefficients in T_q (NTT basis).
type Poly [N]Elem

// NewPoly returns the zero polynomial.
func NewPoly() *Poly {
	return new(Poly)
}

// CopyNew returns an independent copy of p.
func (p *Poly) CopyNew() *Poly {
	q := *p
	return &q
}

// Equal reports whether p and other hold identical coefficients.
func (p *Poly) Equal(other *Poly) bool {
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Add sets p = a+b entrywise mod Q.
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = Add(a[i], b[i])
	}
}

// Sub sets p = a-b entrywise mod Q.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = Sub(a[i], b[i])
	}
}
