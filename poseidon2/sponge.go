package poseidon2

import (
	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/field"
)

// Sponge wraps the permutation in an absorb/squeeze interface. The rate
// occupies the first Width-Capacity state positions; absorbed elements
// are added into successive rate positions and squeezing reads them back
// from position 0 after a permutation. A sponge that has squeezed cannot
// absorb again.
type Sponge struct {
	params    *Params
	state     []field.Element
	index     int
	squeezing bool
}

// NewSponge returns an empty sponge in absorbing state.
func NewSponge(p *Params) *Sponge {
	return &Sponge{
		params: p,
		state:  make([]field.Element, p.Width),
	}
}

func (s *Sponge) rate() int {
	return s.params.Width - s.params.Capacity
}

// Absorb adds one element into the next free rate position, permuting
// when the rate is full. Panics if the sponge has already squeezed.
func (s *Sponge) Absorb(x field.Element) {
	if s.squeezing {
		panic("poseidon2: cannot absorb while squeezing")
	}
	if s.index == s.rate() {
		s.params.Permute(s.state)
		s.index = 0
	}
	s.params.F.Add(&s.state[s.index], &s.state[s.index], &x)
	s.index++
}

// AbsorbBatch absorbs a slice of elements in order.
func (s *Sponge) AbsorbBatch(xs []field.Element) {
	for i := range xs {
		s.Absorb(xs[i])
	}
}

// Squeeze returns the next output element, permuting on the transition
// from absorbing and whenever the rate is exhausted.
func (s *Sponge) Squeeze() field.Element {
	if !s.squeezing || s.index == s.rate() {
		s.params.Permute(s.state)
		s.squeezing = true
		s.index = 0
	}
	out := s.state[s.index]
	s.index++
	return out
}

// SqueezeBatch returns the next n output elements.
func (s *Sponge) SqueezeBatch(n int) []field.Element {
	out := make([]field.Element, n)
	for i := range out {
		out[i] = s.Squeeze()
	}
	return out
}

// Update absorbs a byte stream, chunked into 32-byte little-endian
// integers reduced into the field. It makes the sponge usable where a
// byte-level hasher is expected.
func (s *Sponge) Update(input []byte) {
	for len(input) > 0 {
		n := arith.Bytes
		if len(input) < n {
			n = len(input)
		}
		var chunk [arith.Bytes]byte
		copy(chunk[:], input[:n])
		s.Absorb(s.params.F.ReduceBytesLE(chunk[:]))
		input = input[n:]
	}
}

// Finalize squeezes one element and returns its 32-byte little-endian
// encoding.
func (s *Sponge) Finalize() [32]byte {
	out := s.Squeeze()
	u := s.params.F.ToUint(&out)
	return u.BytesLE()
}
