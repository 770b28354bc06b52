package poseidon2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashbeam/crypto/field"
)

func TestSpongeMatchesPermutation(t *testing.T) {
	p := Vesta()

	x := p.F.MustFromDecimal("3")
	y := p.F.MustFromDecimal("4")

	s := NewSponge(p)
	s.Absorb(x)
	s.Absorb(y)
	got := s.Squeeze()

	state := make([]field.Element, p.Width)
	state[0] = x
	state[1] = y
	p.Permute(state)
	require.Equal(t, state[0], got)
}

func TestSpongeAbsorbOverflowsIntoPermutation(t *testing.T) {
	p := Vesta()
	rate := p.Width - p.Capacity

	in := make([]field.Element, rate+1)
	for i := range in {
		p.F.FromUint64(&in[i], uint64(i+1))
	}

	s := NewSponge(p)
	s.AbsorbBatch(in)
	got := s.Squeeze()

	// first rate elements fill the state, the permutation runs, then the
	// overflow element is added on top
	state := make([]field.Element, p.Width)
	copy(state, in[:rate])
	p.Permute(state)
	p.F.Add(&state[0], &state[0], &in[rate])
	p.Permute(state)
	require.Equal(t, state[0], got)
}

func TestSpongeSqueezeBatch(t *testing.T) {
	p := Vesta()
	rate := p.Width - p.Capacity

	x := p.F.MustFromDecimal("5")

	s1 := NewSponge(p)
	s1.Absorb(x)
	batch := s1.SqueezeBatch(rate + 1)

	s2 := NewSponge(p)
	s2.Absorb(x)
	for i := range batch {
		require.Equal(t, batch[i], s2.Squeeze(), "output %d", i)
	}

	// crossing the rate forces a second permutation, outputs keep changing
	require.NotEqual(t, batch[0], batch[rate])
}

func TestSpongeAbsorbAfterSqueezePanics(t *testing.T) {
	p := Vesta()

	s := NewSponge(p)
	s.Absorb(p.F.One())
	_ = s.Squeeze()
	require.Panics(t, func() { s.Absorb(p.F.One()) })
}

func TestSpongeUpdateFinalize(t *testing.T) {
	p := Vesta()

	input := make([]byte, 40)
	for i := range input {
		input[i] = byte(i + 1)
	}

	s := NewSponge(p)
	s.Update(input)
	digest := s.Finalize()

	// Update chunks into 32-byte little-endian integers
	s2 := NewSponge(p)
	s2.Absorb(p.F.ReduceBytesLE(input[:32]))
	s2.Absorb(p.F.ReduceBytesLE(input[32:]))
	out := s2.Squeeze()
	u := p.F.ToUint(&out)
	require.Equal(t, u.BytesLE(), digest)
}

func TestSpongeDeterminism(t *testing.T) {
	p := Goldilocks12()

	run := func() field.Element {
		s := NewSponge(p)
		for i := uint64(0); i < 10; i++ {
			var e field.Element
			p.F.FromUint64(&e, i*i+1)
			s.Absorb(e)
		}
		return s.Squeeze()
	}
	require.Equal(t, run(), run())
}
