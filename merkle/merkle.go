// Package merkle verifies inclusion proofs against a Merkle root built
// with sorted pair hashing, as produced by OpenZeppelin's merkle-tree
// library.
//
// Avoid leaf values that are exactly 64 bytes long before hashing, or
// use a hash other than Keccak-256 for the leaves: the concatenation of
// two sorted inner nodes could otherwise be reinterpreted as a leaf.
package merkle

import (
	"errors"

	"github.com/hashbeam/crypto/hash"
)

var (
	// ErrInvalidProofLength reports a multi-proof whose flag count does
	// not match the leaf and proof counts.
	ErrInvalidProofLength = errors.New("merkle: flag count does not match leaves and proof")
	// ErrInvalidRootChild reports a multi-proof step that would read
	// past the available hashes.
	ErrInvalidRootChild = errors.New("merkle: proof step reads past available hashes")
	// ErrInvalidTotalHashes reports a multi-proof that does not reduce
	// to a single root candidate.
	ErrInvalidTotalHashes = errors.New("merkle: proof does not reduce to a single root")
)

// Verify reports whether leaf belongs to the tree with the given root.
// proof holds the sibling hashes on the path from the leaf up to the
// root; each level is folded in with the commutative pair hash.
func Verify(b hash.Builder, proof [][32]byte, root, leaf [32]byte) bool {
	current := leaf
	for _, sibling := range proof {
		current = hash.CommutativePair(b, current, sibling)
	}
	return current == root
}

// VerifyMultiProof reports whether all leaves belong to the tree with
// the given root, using a single combined proof.
//
// proofFlags drives the reconstruction: for each flag one node is taken
// from the work queue (leaves first, then previously computed hashes)
// and paired with either a second queue node (flag set) or the next
// proof entry (flag clear). The last computed hash must equal root.
//
// Not every tree shape admits multi-proofs. It is sufficient that the
// tree is complete and that the proven leaves appear in the opposite of
// their tree order, read right to left from the deepest layer up.
func VerifyMultiProof(b hash.Builder, proof [][32]byte, proofFlags []bool, root [32]byte, leaves [][32]byte) (bool, error) {
	totalHashes := len(proofFlags)
	if len(leaves)+len(proof) != totalHashes+1 {
		return false, ErrInvalidProofLength
	}
	if totalHashes == 0 {
		// exactly one of leaves or proof holds the root candidate
		if len(leaves) == 1 {
			return leaves[0] == root, nil
		}
		return proof[0] == root, nil
	}

	hashes := make([][32]byte, 0, totalHashes)
	var leafPos, hashPos, proofPos int
	next := func() ([32]byte, bool) {
		if leafPos < len(leaves) {
			h := leaves[leafPos]
			leafPos++
			return h, true
		}
		if hashPos < len(hashes) {
			h := hashes[hashPos]
			hashPos++
			return h, true
		}
		return [32]byte{}, false
	}

	for _, flag := range proofFlags {
		a, ok := next()
		if !ok {
			return false, ErrInvalidRootChild
		}
		var sib [32]byte
		if flag {
			sib, ok = next()
			if !ok {
				return false, ErrInvalidRootChild
			}
		} else {
			if proofPos == len(proof) {
				return false, ErrInvalidRootChild
			}
			sib = proof[proofPos]
			proofPos++
		}
		hashes = append(hashes, hash.CommutativePair(b, a, sib))
	}

	if len(hashes)-hashPos != 1 || proofPos != len(proof) {
		return false, ErrInvalidTotalHashes
	}
	return hashes[len(hashes)-1] == root, nil
}
