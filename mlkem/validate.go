package mlkem

// ValidateKeypair performs an offline, variable-time check that ekBytes
// and dkBytes form a matching, well-formed keypair: it re-derives the
// embedded ek copy and hash inside dk, and additionally runs a live
// encaps/decaps round-trip. It is not intended to run on a hot or
// secret-dependent path.
func (p Parameters) ValidateKeypair(ekBytes, dkBytes []byte) bool {
	ek, err := EncapsKeyFromBytes(p, ekBytes)
	if err != nil {
		return false
	}
	dk, err := DecapsKeyFromBytes(p, dkBytes)
	if err != nil {
		return false
	}

	dkPKELen := p.kpke.DkLen
	embeddedEK := dk.bytes[dkPKELen : dkPKELen+p.ekLen]
	for i := range embeddedEK {
		if embeddedEK[i] != ek.bytes[i] {
			return false
		}
	}

	ss1, ct, err := p.Encaps(ek)
	if err != nil {
		return false
	}
	ss2 := p.Decaps(dk, ct)
	return ss1.Equal(ss2)
}
