package ring

import "crypto/subtle"

// ConstantTimeCompare reports whether a and b hold identical contents,
// in time independent of where (or whether) they first differ. Both
// slices must have equal, public length.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeSelect copies reject into dst when equal is false (the
// implicit-rejection path), and leaves dst untouched otherwise. The
// bool is turned into crypto/subtle's 0/1 selector by one conditional
// assignment; the copy itself is done by subtle.ConstantTimeCopy, which
// does not branch on the selector or on the buffer contents.
func ConstantTimeSelect(equal bool, dst, reject []byte) {
	v := 1
	if equal {
		v = 0
	}
	subtle.ConstantTimeCopy(v, dst, reject)
}
