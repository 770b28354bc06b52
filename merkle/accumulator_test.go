package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashbeam/crypto/field"
	"github.com/hashbeam/crypto/poseidon2"
)

func accLeaves(p *poseidon2.Params, n int) []field.Element {
	out := make([]field.Element, n)
	for i := range out {
		p.F.FromUint64(&out[i], uint64(i+1))
	}
	return out
}

func TestAccumulateSmallTrees(t *testing.T) {
	p := poseidon2.Vesta()
	acc := NewAccumulator(p)
	set := accLeaves(p, 4)

	// one leaf pads to a pair of itself
	root, err := acc.Accumulate(set[:1])
	require.NoError(t, err)
	require.Equal(t, p.Compress(&set[0], &set[0]), root)

	root, err = acc.Accumulate(set[:2])
	require.NoError(t, err)
	require.Equal(t, p.Compress(&set[0], &set[1]), root)

	// three leaves pad with the last one
	root, err = acc.Accumulate(set[:3])
	require.NoError(t, err)
	left := p.Compress(&set[0], &set[1])
	right := p.Compress(&set[2], &set[2])
	require.Equal(t, p.Compress(&left, &right), root)

	root, err = acc.Accumulate(set)
	require.NoError(t, err)
	right = p.Compress(&set[2], &set[3])
	require.Equal(t, p.Compress(&left, &right), root)
}

func TestAccumulateOrderSensitive(t *testing.T) {
	p := poseidon2.Vesta()
	acc := NewAccumulator(p)
	set := accLeaves(p, 4)

	root, err := acc.Accumulate(set)
	require.NoError(t, err)

	set[0], set[1] = set[1], set[0]
	swapped, err := acc.Accumulate(set)
	require.NoError(t, err)
	require.NotEqual(t, root, swapped)
}

func TestAccumulateLeavesUntouched(t *testing.T) {
	p := poseidon2.Goldilocks12()
	acc := NewAccumulator(p)

	set := accLeaves(p, 5)
	saved := make([]field.Element, len(set))
	copy(saved, set)

	// five leaves pad to a depth-3 tree
	root, err := acc.Accumulate(set)
	require.NoError(t, err)
	require.Equal(t, saved, set)

	l01 := p.Compress(&set[0], &set[1])
	l23 := p.Compress(&set[2], &set[3])
	l44 := p.Compress(&set[4], &set[4])
	left := p.Compress(&l01, &l23)
	right := p.Compress(&l44, &l44)
	require.Equal(t, p.Compress(&left, &right), root)
}

func TestAccumulateEmptySet(t *testing.T) {
	acc := NewAccumulator(poseidon2.Vesta())
	_, err := acc.Accumulate(nil)
	require.ErrorIs(t, err, ErrNoLeaves)
}
