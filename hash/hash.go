// Package hash defines the byte-level digest contract consumed by the
// merkle verifier, plus pair-hash helpers over 32-byte nodes.
package hash

import "bytes"

// Hasher is an incremental 32-byte digest computation.
type Hasher interface {
	// Update absorbs more input. It may be called any number of times.
	Update(input []byte)
	// Finalize pads the state and returns the digest. The hasher must
	// not be used afterwards.
	Finalize() [32]byte
}

// Builder creates independent Hasher instances. Hashers built by the
// same Builder produce identical digests for identical input streams.
type Builder interface {
	New() Hasher
}

// One hashes a single byte string with a fresh hasher.
func One(b Builder, input []byte) [32]byte {
	h := b.New()
	h.Update(input)
	return h.Finalize()
}

// Pair hashes the concatenation x || y.
func Pair(b Builder, x, y [32]byte) [32]byte {
	h := b.New()
	h.Update(x[:])
	h.Update(y[:])
	return h.Finalize()
}

// CommutativePair hashes the lexicographically smaller of (x, y) first,
// so the result does not depend on argument order.
func CommutativePair(b Builder, x, y [32]byte) [32]byte {
	if bytes.Compare(x[:], y[:]) >= 0 {
		x, y = y, x
	}
	return Pair(b, x, y)
}
