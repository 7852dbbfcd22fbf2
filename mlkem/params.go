// Package mlkem provides the ML-KEM-512, ML-KEM-768 and ML-KEM-1024
// parameter sets and their key generation, encapsulation and
// decapsulation operations.
package mlkem

import (
	"fmt"

	"github.com/heron-crypto/mlkem/kpke"
)

// ParametersLiteral is the user-facing, unchecked description of a
// security level: the five integer constants that FIPS 203 varies
// across ML-KEM-512/768/1024. Build a Parameters value from a literal
// with NewParametersFromLiteral, mirroring the literal/checked-struct
// split the rest of the ecosystem uses for lattice scheme parameters.
type ParametersLiteral struct {
	Name string `json:"name"`
	K    int    `json:"k"`
	Eta1 int    `json:"eta1"`
	Eta2 int    `json:"eta2"`
	Du   int    `json:"du"`
	Dv   int    `json:"dv"`
}

// Parameters is the validated, immutable parameter set for one ML-KEM
// security level. Values are safe for concurrent use: every exported
// method depends only on its arguments (including, for KeyGen and
// Encaps, the random bytes drawn from the RNG) plus these constants.
type Parameters struct {
	name  string
	kpke  kpke.Params
	ekLen int
	dkLen int
	ctLen int
	ssLen int
}

// NewParametersFromLiteral validates lit and derives the byte lengths
// of the encapsulation key, decapsulation key and ciphertext.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.K < 2 || lit.K > 4 {
		return Parameters{}, fmt.Errorf("mlkem: invalid parameters %q: k=%d out of range", lit.Name, lit.K)
	}
	p := kpke.NewParams(lit.K, lit.Eta1, lit.Eta2, lit.Du, lit.Dv)
	return Parameters{
		name:  lit.Name,
		kpke:  p,
		ekLen: p.EkLen,
		dkLen: 768*lit.K + 96,
		ctLen: p.CtLen,
		ssLen: 32,
	}, nil
}

// Name returns the parameter set's label ("ML-KEM-512", ...).
func (p Parameters) Name() string { return p.name }

// K returns the module rank of the parameter set.
func (p Parameters) K() int { return p.kpke.K }

// EncapsKeyLen returns the encoded length of an EncapsKey.
func (p Parameters) EncapsKeyLen() int { return p.ekLen }

// DecapsKeyLen returns the encoded length of a DecapsKey.
func (p Parameters) DecapsKeyLen() int { return p.dkLen }

// CipherTextLen returns the encoded length of a CipherText.
func (p Parameters) CipherTextLen() int { return p.ctLen }

func mustParams(lit ParametersLiteral) Parameters {
	p, err := NewParametersFromLiteral(lit)
	if err != nil {
		panic(err)
	}
	return p
}

// Kem512, Kem768 and Kem1024 are the three standardized ML-KEM security
// levels.
var (
	Kem512  = mustParams(ParametersLiteral{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4})
	Kem768  = mustParams(ParametersLiteral{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4})
	Kem1024 = mustParams(ParametersLiteral{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5})
)
