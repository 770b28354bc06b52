package merkle

import (
	"errors"

	"github.com/hashbeam/crypto/field"
)

// ErrNoLeaves reports an accumulation over an empty leaf set.
var ErrNoLeaves = errors.New("merkle: accumulate needs at least one leaf")

// Compressor combines two field elements into one tree node.
// *poseidon2.Params satisfies it.
type Compressor interface {
	Compress(x, y *field.Element) field.Element
}

// Accumulator computes the root of a complete binary Merkle tree over
// field elements, pairing nodes with an algebraic compression function
// instead of a byte-level hash.
type Accumulator struct {
	c Compressor
}

// NewAccumulator returns an accumulator over the given compression
// function.
func NewAccumulator(c Compressor) *Accumulator {
	return &Accumulator{c: c}
}

// Accumulate returns the Merkle root of set. The set is padded with
// copies of its last element up to the next power of two, so the
// shallowest complete tree holding every leaf is hashed.
func (a *Accumulator) Accumulate(set []field.Element) (field.Element, error) {
	if len(set) == 0 {
		return field.Element{}, ErrNoLeaves
	}

	bound := 2
	for bound < len(set) {
		bound *= 2
	}
	nodes := make([]field.Element, bound)
	copy(nodes, set)
	for i := len(set); i < bound; i++ {
		nodes[i] = set[len(set)-1]
	}

	for len(nodes) > 1 {
		next := nodes[:len(nodes)/2]
		for i := range next {
			next[i] = a.c.Compress(&nodes[2*i], &nodes[2*i+1])
		}
		nodes = next
	}
	return nodes[0], nil
}
