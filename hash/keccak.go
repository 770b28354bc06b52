package hash

import (
	stdhash "hash"

	"golang.org/x/crypto/sha3"
)

// Keccak256 builds legacy Keccak-256 hashers, the digest used by
// Ethereum and by OpenZeppelin merkle trees. The zero value is ready to
// use.
type Keccak256 struct{}

func (Keccak256) New() Hasher {
	return &keccakState{h: sha3.NewLegacyKeccak256()}
}

type keccakState struct {
	h stdhash.Hash
}

func (k *keccakState) Update(input []byte) {
	k.h.Write(input)
}

func (k *keccakState) Finalize() [32]byte {
	var out [32]byte
	k.h.Sum(out[:0])
	return out
}
