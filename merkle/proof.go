package merkle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/fxamacker/cbor/v2"

	"github.com/hashbeam/crypto/hash"
)

var proofEncMode = func() cbor.EncMode {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return m
}()

// Proof is a single inclusion proof with a stable wire form.
type Proof struct {
	Leaf     [32]byte
	Siblings [][32]byte
}

// Verify checks the proof against root.
func (p *Proof) Verify(b hash.Builder, root [32]byte) bool {
	return Verify(b, p.Siblings, root, p.Leaf)
}

type proofWire struct {
	Leaf     []byte   `cbor:"1,keyasint"`
	Siblings [][]byte `cbor:"2,keyasint"`
}

// MarshalBinary encodes the proof as CBOR.
func (p *Proof) MarshalBinary() ([]byte, error) {
	return proofEncMode.Marshal(proofWire{
		Leaf:     p.Leaf[:],
		Siblings: nodesToWire(p.Siblings),
	})
}

// UnmarshalBinary decodes a CBOR proof.
func (p *Proof) UnmarshalBinary(data []byte) error {
	var w proofWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("merkle: decode proof: %w", err)
	}
	leaf, err := nodeFromWire(w.Leaf)
	if err != nil {
		return err
	}
	siblings, err := nodesFromWire(w.Siblings)
	if err != nil {
		return err
	}
	p.Leaf = leaf
	p.Siblings = siblings
	return nil
}

// MultiProof is a combined proof for several leaves. On the wire the
// flags are packed into a bitset.
type MultiProof struct {
	Leaves [][32]byte
	Hashes [][32]byte
	Flags  []bool
}

// Verify checks the multi-proof against root.
func (p *MultiProof) Verify(b hash.Builder, root [32]byte) (bool, error) {
	return VerifyMultiProof(b, p.Hashes, p.Flags, root, p.Leaves)
}

type multiProofWire struct {
	Leaves [][]byte `cbor:"1,keyasint"`
	Hashes [][]byte `cbor:"2,keyasint"`
	Flags  []byte   `cbor:"3,keyasint"`
}

// MarshalBinary encodes the multi-proof as CBOR.
func (p *MultiProof) MarshalBinary() ([]byte, error) {
	bs := bitset.New(uint(len(p.Flags)))
	for i, f := range p.Flags {
		if f {
			bs.Set(uint(i))
		}
	}
	flags, err := bs.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("merkle: pack flags: %w", err)
	}
	return proofEncMode.Marshal(multiProofWire{
		Leaves: nodesToWire(p.Leaves),
		Hashes: nodesToWire(p.Hashes),
		Flags:  flags,
	})
}

// UnmarshalBinary decodes a CBOR multi-proof.
func (p *MultiProof) UnmarshalBinary(data []byte) error {
	var w multiProofWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("merkle: decode multi-proof: %w", err)
	}
	leaves, err := nodesFromWire(w.Leaves)
	if err != nil {
		return err
	}
	hashes, err := nodesFromWire(w.Hashes)
	if err != nil {
		return err
	}
	var bs bitset.BitSet
	if err := bs.UnmarshalBinary(w.Flags); err != nil {
		return fmt.Errorf("merkle: unpack flags: %w", err)
	}
	flags := make([]bool, bs.Len())
	for i := range flags {
		flags[i] = bs.Test(uint(i))
	}
	p.Leaves = leaves
	p.Hashes = hashes
	p.Flags = flags
	return nil
}

func nodesToWire(nodes [][32]byte) [][]byte {
	out := make([][]byte, len(nodes))
	for i := range nodes {
		out[i] = nodes[i][:]
	}
	return out
}

func nodeFromWire(b []byte) ([32]byte, error) {
	var n [32]byte
	if len(b) != len(n) {
		return n, fmt.Errorf("merkle: node is %d bytes, want %d", len(b), len(n))
	}
	copy(n[:], b)
	return n, nil
}

func nodesFromWire(wire [][]byte) ([][32]byte, error) {
	out := make([][32]byte, len(wire))
	for i := range wire {
		n, err := nodeFromWire(wire[i])
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
