package ring

// Vector is a poly-vector of dimension K, one polynomial per module
// rank.
type Vector []*Poly

// NewVector allocates a zeroed vector of dimension k.
func NewVector(k int) Vector {
	v := make(Vector, k)
	for i := range v {
		v[i] = NewPoly()
	}
	return v
}

// NTT transforms every entry of v to the NTT domain in place.
func (v Vector) NTT() {
	for _, p := range v {
		NTT(p)
	}
}

// InvNTT transforms every entry of v back to the standard basis in
// place.
func (v Vector) InvNTT() {
	for _, p := range v {
		InvNTT(p)
	}
}

// Add sets v = a+b entrywise.
func (v Vector) Add(a, b Vector) {
	for i := range v {
		v[i].Add(a[i], b[i])
	}
}

// DotNTT computes the dot product sum_i a[i]*b[i] in the NTT domain. Each
// vector term is accumulated unreduced (accumulateRaw) and the whole sum
// is brought back to canonical form in a single BarrettReduce pass per
// coefficient, rather than reducing after every term.
func DotNTT(a, b Vector) *Poly {
	var acc [N / 2]rawPair
	for i := range a {
		accumulateRaw(&acc, a[i], b[i])
	}
	return reduceRaw(&acc)
}

// Matrix is a K*K poly-matrix, Matrix[i][j] addressing row i, column j.
type Matrix []Vector

// NewMatrix allocates a zeroed k*k matrix.
func NewMatrix(k int) Matrix {
	m := make(Matrix, k)
	for i := range m {
		m[i] = NewVector(k)
	}
	return m
}

// MulVectorNTT computes w = A . s in the NTT domain: w[i] = sum_j A[i][j]*s[j].
func (a Matrix) MulVectorNTT(s Vector) Vector {
	k := len(a)
	w := make(Vector, k)
	for i := 0; i < k; i++ {
		var acc [N / 2]rawPair
		for j := 0; j < k; j++ {
			accumulateRaw(&acc, a[i][j], s[j])
		}
		w[i] = reduceRaw(&acc)
	}
	return w
}

// MulTransposeVectorNTT computes y = A^T . s in the NTT domain:
// y[i] = sum_j A[j][i]*s[j].
func (a Matrix) MulTransposeVectorNTT(s Vector) Vector {
	k := len(a)
	y := make(Vector, k)
	for i := 0; i < k; i++ {
		var acc [N / 2]rawPair
		for j := 0; j < k; j++ {
			accumulateRaw(&acc, a[j][i], s[j])
		}
		y[i] = reduceRaw(&acc)
	}
	return y
}
