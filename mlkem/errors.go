package mlkem

import "errors"

// ErrRNGFailure is returned when the caller-supplied random number
// generator fails during key generation or encapsulation.
var ErrRNGFailure = errors.New("mlkem: random number generator failed")

// ErrInvalidEncoding is returned by the *FromBytes functions when a
// deserialized key fails its structural or modulus-canonicity checks.
var ErrInvalidEncoding = errors.New("mlkem: invalid encoding")
