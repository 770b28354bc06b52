// Package poseidon2 implements the Poseidon2 permutation and a sponge on
// top of it.
//
// The permutation runs external (full) rounds around a run of internal
// (partial) rounds: the S-box x^d applies to the whole state in external
// rounds and to the first element only in internal rounds. The external
// linear layer is the circulant [2,1,..] matrix for widths 2 and 3 and the
// M4-block construction for larger widths; the internal layer adds the
// state sum to a diagonal scaling.
//
// https://eprint.iacr.org/2023/323.pdf
package poseidon2

import (
	"fmt"

	"github.com/hashbeam/crypto/field"
)

// Params bundles a Poseidon2 parameter set. Tables are validated by
// NewParams; the mathematical content (MDS property, constant provenance)
// is trusted.
type Params struct {
	// F is the field the permutation works over.
	F *field.Params
	// Width T of the permutation state.
	Width int
	// Degree of the S-box x^d.
	Degree uint64
	// RoundsF is the total number of external rounds, half before and
	// half after the internal run. RoundsP is the internal round count.
	RoundsF, RoundsP int
	// Capacity is the number of state positions the sponge must not
	// write into; the rate is Width - Capacity.
	Capacity int

	// DiagM1 holds the internal matrix diagonal minus the all-ones
	// matrix, used for widths >= 4.
	DiagM1 []field.Element
	// RoundConstants has RoundsF+RoundsP rows of Width constants;
	// internal rounds consume only column 0.
	RoundConstants [][]field.Element
}

var validWidths = map[int]bool{2: true, 3: true, 4: true, 8: true, 12: true, 16: true, 20: true, 24: true}

// NewParams validates table shapes and returns the parameter set.
func NewParams(f *field.Params, width int, degree uint64, roundsF, roundsP, capacity int,
	diagM1 []field.Element, roundConstants [][]field.Element) *Params {
	if !validWidths[width] {
		panic(fmt.Sprintf("poseidon2: unsupported state width %d", width))
	}
	if roundsF%2 != 0 {
		panic("poseidon2: external rounds must split evenly around the internal run")
	}
	if capacity <= 0 || capacity >= width {
		panic("poseidon2: capacity must leave a nonempty rate")
	}
	if width >= 4 && len(diagM1) != width {
		panic("poseidon2: internal diagonal length must equal the width")
	}
	if len(roundConstants) != roundsF+roundsP {
		panic("poseidon2: round constant table height must equal the round count")
	}
	for _, rc := range roundConstants {
		if len(rc) != width {
			panic("poseidon2: round constant row length must equal the width")
		}
	}
	return &Params{
		F:              f,
		Width:          width,
		Degree:         degree,
		RoundsF:        roundsF,
		RoundsP:        roundsP,
		Capacity:       capacity,
		DiagM1:         diagM1,
		RoundConstants: roundConstants,
	}
}

// Permute applies the permutation to state in place. len(state) must
// equal Width.
func (p *Params) Permute(state []field.Element) {
	if len(state) != p.Width {
		panic(fmt.Sprintf("poseidon2: state size %d, want %d", len(state), p.Width))
	}

	// linear layer at the beginning
	p.matmulExternal(state)

	half := p.RoundsF / 2
	for r := 0; r < half; r++ {
		p.externalRound(state, r)
	}
	for r := half; r < half+p.RoundsP; r++ {
		p.internalRound(state, r)
	}
	for r := half + p.RoundsP; r < p.RoundsF+p.RoundsP; r++ {
		p.externalRound(state, r)
	}
}

func (p *Params) externalRound(state []field.Element, round int) {
	rc := p.RoundConstants[round]
	for i := range state {
		p.F.Add(&state[i], &state[i], &rc[i])
	}
	for i := range state {
		p.sbox(&state[i])
	}
	p.matmulExternal(state)
}

func (p *Params) internalRound(state []field.Element, round int) {
	p.F.Add(&state[0], &state[0], &p.RoundConstants[round][0])
	p.sbox(&state[0])
	p.matmulInternal(state)
}

func (p *Params) sbox(x *field.Element) {
	p.F.ExpUint64(x, x, p.Degree)
}

// matmulExternal applies the external MDS layer M_E.
func (p *Params) matmulExternal(state []field.Element) {
	f := p.F
	switch p.Width {
	case 2:
		// circ(2, 1)
		var sum field.Element
		f.Add(&sum, &state[0], &state[1])
		f.Add(&state[0], &state[0], &sum)
		f.Add(&state[1], &state[1], &sum)
	case 3:
		// circ(2, 1, 1)
		var sum field.Element
		f.Add(&sum, &state[0], &state[1])
		f.Add(&sum, &sum, &state[2])
		f.Add(&state[0], &state[0], &sum)
		f.Add(&state[1], &state[1], &sum)
		f.Add(&state[2], &state[2], &sum)
	case 4:
		p.matmulM4(state)
	default:
		p.matmulM4(state)

		// second cheap matrix: each position gains the sum over blocks
		// of its residue class mod 4
		t4 := p.Width / 4
		var stored [4]field.Element
		for l := 0; l < 4; l++ {
			stored[l] = state[l]
			for j := 1; j < t4; j++ {
				f.Add(&stored[l], &stored[l], &state[4*j+l])
			}
		}
		for i := range state {
			f.Add(&state[i], &state[i], &stored[i%4])
		}
	}
}

// matmulM4 applies the 4x4 kernel to each consecutive 4-block.
func (p *Params) matmulM4(state []field.Element) {
	f := p.F
	for i := 0; i < p.Width/4; i++ {
		s := state[i*4 : i*4+4]
		var t0, t1, t2, t3, t4, t5, t6, t7 field.Element
		f.Add(&t0, &s[0], &s[1])
		f.Add(&t1, &s[2], &s[3])
		f.Double(&t2, &s[1])
		f.Add(&t2, &t2, &t1)
		f.Double(&t3, &s[3])
		f.Add(&t3, &t3, &t0)
		f.Double(&t4, &t1)
		f.Double(&t4, &t4)
		f.Add(&t4, &t4, &t3)
		f.Double(&t5, &t0)
		f.Double(&t5, &t5)
		f.Add(&t5, &t5, &t2)
		f.Add(&t6, &t3, &t5)
		f.Add(&t7, &t2, &t4)
		s[0] = t6
		s[1] = t5
		s[2] = t7
		s[3] = t4
	}
}

// matmulInternal applies the internal layer M_I = diag + 1·1ᵀ.
func (p *Params) matmulInternal(state []field.Element) {
	f := p.F
	switch p.Width {
	case 2:
		// [2, 1]
		// [1, 3]
		var sum field.Element
		f.Add(&sum, &state[0], &state[1])
		f.Add(&state[0], &state[0], &sum)
		f.Double(&state[1], &state[1])
		f.Add(&state[1], &state[1], &sum)
	case 3:
		// [2, 1, 1]
		// [1, 2, 1]
		// [1, 1, 3]
		var sum field.Element
		f.Add(&sum, &state[0], &state[1])
		f.Add(&sum, &sum, &state[2])
		f.Add(&state[0], &state[0], &sum)
		f.Add(&state[1], &state[1], &sum)
		f.Double(&state[2], &state[2])
		f.Add(&state[2], &state[2], &sum)
	default:
		var sum field.Element
		sum = state[0]
		for i := 1; i < len(state); i++ {
			f.Add(&sum, &sum, &state[i])
		}
		for i := range state {
			f.Mul(&state[i], &state[i], &p.DiagM1[i])
			f.Add(&state[i], &state[i], &sum)
		}
	}
}

// Compress is the two-to-one Merkle compression permutation([x, y, 0])[0].
// The width must be at least 3.
func (p *Params) Compress(x, y *field.Element) field.Element {
	if p.Width < 3 {
		panic("poseidon2: compress needs width >= 3")
	}
	state := make([]field.Element, p.Width)
	state[0] = *x
	state[1] = *y
	p.Permute(state)
	return state[0]
}
