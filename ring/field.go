// Package ring implements arithmetic over Z_q[X]/(X^256+1), q = 3329: the
// field element type, the number-theoretic transform, the byte and
// compression codecs, and the samplers that together form the
// cryptographic core of ML-KEM (FIPS 203).
package ring

// Q is the ML-KEM field modulus.
const Q = 3329

// N is the fixed polynomial degree shared by every parameter set.
const N = 256

// barrettM is the Barrett-style reduction constant ceil(2^36/Q), used to
// approximate division by Q with a single multiply-and-shift.
const barrettM = 20642679
const barrettShift = 36

// Elem is an element of Z_q, always held in canonical form (< Q).
type Elem uint16

// Add returns a+b mod Q. The conditional reduction is done with an
// arithmetic-shift mask rather than a data-dependent branch, so its
// timing does not depend on a or b — both flow from secret CBD samples
// and the secret vector ŝ.
func Add(a, b Elem) Elem {
	s := int32(a) + int32(b) - Q
	s += (s >> 31) & Q
	return Elem(s)
}

// Sub returns a-b mod Q, branch-free for the same reason as Add.
func Sub(a, b Elem) Elem {
	s := int32(a) - int32(b)
	s += (s >> 31) & Q
	return Elem(s)
}

// Mul returns a*b mod Q via Barrett-style reduction: the product is
// multiplied by barrettM and shifted right by barrettShift to obtain an
// exact quotient estimate, which for this M and Q always leaves a
// canonical remainder without a further conditional subtract.
func Mul(a, b Elem) Elem {
	prod := uint64(a) * uint64(b)
	quot := (prod * barrettM) >> barrettShift
	return Elem(prod - quot*Q)
}

// BarrettReduce reduces a uint32 accumulator (as produced by summing
// several field products, e.g. across DotNTT's vector dimension) down to
// a canonical Z_q element, branch-free like Add and Sub. The quotient
// estimate is exact for every x below 2^25, far above the largest sum
// DotNTT forms (8*(Q-1) for K = 4); for larger x it can overshoot by one
// and the result is then not x mod Q.
func BarrettReduce(x uint32) Elem {
	quot := (uint64(x) * barrettM) >> barrettShift
	r := int32(x) - int32(quot)*Q - Q
	r += (r >> 31) & Q
	return Elem(r)
}

// BaseCaseMultiply computes (a0+a1*X)*(b0+b1*X) mod (X^2-gamma), returning
// the pair (c0, c1) of the degree-one result used by MultiplyNTTs.
func BaseCaseMultiply(a0, a1, b0, b1, gamma Elem) (c0, c1 Elem) {
	c0 = Add(Mul(a0, b0), Mul(Mul(a1, b1), gamma))
	c1 = Add(Mul(a0, b1), Mul(a1, b0))
	return
}

// BaseCaseMultiplyRaw computes the same pair as BaseCaseMultiply but
// leaves each half unreduced (bounded by 2Q), so a caller accumulating
// a dot product across several vector entries can sum raw terms with a
// plain uint32 add and reduce once at the end via BarrettReduce, instead
// of reducing after every term.
func BaseCaseMultiplyRaw(a0, a1, b0, b1, gamma Elem) (c0, c1 uint32) {
	c0 = uint32(Mul(a0, b0)) + uint32(Mul(Mul(a1, b1), gamma))
	c1 = uint32(Mul(a0, b1)) + uint32(Mul(a1, b0))
	return
}
