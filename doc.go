// Package mlkem implements the Module-Lattice-Based Key-Encapsulation
// Mechanism Standard (FIPS 203, ML-KEM).
//
// ML-KEM is a post-quantum key-encapsulation mechanism built on the
// conjectured hardness of the Module Learning With Errors problem over
// the ring Z_q[X]/(X^256+1), q = 3329. This root package holds no code;
// the mlkem subpackage carries the three standardized parameter sets,
// ML-KEM-512, ML-KEM-768 and ML-KEM-1024, as package-level Parameters
// values, and exposes key generation, encapsulation and decapsulation
// over each.
//
// The cryptographic core lives in the ring and kpke subpackages: ring
// holds field and polynomial arithmetic, the number-theoretic
// transform, samplers and the byte/compression codecs; kpke holds the
// underlying CPA-secure public-key encryption scheme (K-PKE) that
// ML-KEM wraps with a Fujisaki-Okamoto style transform to obtain
// CCA-security with implicit rejection.
package mlkem
