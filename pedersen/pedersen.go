// Package pedersen implements the Starknet-style Pedersen hash of two
// base-field elements as a linear combination of fixed curve points, plus
// a streaming hasher over element sequences following the Starknet
// hash-of-many convention.
package pedersen

import (
	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/curve/sw"
	"github.com/hashbeam/crypto/field"
)

// Params bundles the hash's curve points and the input split geometry.
// Each Pᵢ must lie in the curve's prime-order subgroup.
type Params struct {
	Curve *sw.Curve

	P0, P1, P2, P3, P4 sw.Affine

	// LowPartBits is the bit boundary splitting each input into a low
	// and a high scalar.
	LowPartBits uint
	// NElementBitsHash bounds the effective input bit length; inputs are
	// split, not rejected, so callers who need the bound must enforce it.
	NElementBitsHash uint

	lowMask arith.Uint
}

// NewParams validates the points and precomputes the split mask.
func NewParams(c *sw.Curve, p0, p1, p2, p3, p4 sw.Affine, lowPartBits, nElementBitsHash uint) *Params {
	for _, pt := range []sw.Affine{p0, p1, p2, p3, p4} {
		if !c.IsOnCurve(&pt) {
			panic("pedersen: constant point not on curve")
		}
	}
	if lowPartBits >= uint(c.Fp.BitLen()) {
		panic("pedersen: low part split must be below the field bit size")
	}
	p := &Params{
		Curve:            c,
		P0:               p0,
		P1:               p1,
		P2:               p2,
		P3:               p3,
		P4:               p4,
		LowPartBits:      lowPartBits,
		NElementBitsHash: nElementBitsHash,
	}
	// lowMask = 2^LowPartBits - 1
	one := arith.FromUint64(1)
	mask := arith.FromUint64(1)
	for i := uint(0); i < lowPartBits; i++ {
		mask = mask.Shl1()
	}
	mask, _ = arith.SubBorrow(&mask, &one)
	p.lowMask = mask
	return p
}

// split returns (v mod 2^LowPartBits, v >> LowPartBits).
func (p *Params) split(v arith.Uint) (lo, hi arith.Uint) {
	for i := range lo {
		lo[i] = v[i] & p.lowMask[i]
	}
	hi = v
	for i := uint(0); i < p.LowPartBits; i++ {
		hi = hi.Shr1()
	}
	return lo, hi
}

// Hash computes P₀ + x_low·P₁ + x_high·P₂ + y_low·P₃ + y_high·P₄ and
// returns the affine x-coordinate of the sum. ok is false when the sum is
// the group identity.
func (p *Params) Hash(x, y field.Element) (h field.Element, ok bool) {
	fp := p.Curve.Fp
	xLo, xHi := p.split(fp.ToUint(&x))
	yLo, yHi := p.split(fp.ToUint(&y))

	var acc, term sw.Jac
	acc.FromAffine(p.Curve, &p.P0)
	for _, part := range []struct {
		base   *sw.Affine
		scalar arith.Uint
	}{
		{&p.P1, xLo},
		{&p.P2, xHi},
		{&p.P3, yLo},
		{&p.P4, yHi},
	} {
		if part.scalar.IsZero() {
			continue
		}
		term.ScalarMulMixed(p.Curve, part.base, part.scalar)
		acc.Add(p.Curve, &term)
	}

	if acc.IsIdentity() {
		return field.Element{}, false
	}
	var aff sw.Affine
	aff.FromJacobian(p.Curve, &acc)
	return aff.X, true
}

// Hasher accumulates elements for a hash-of-many: h₀ = H(0, x₀),
// hᵢ = H(hᵢ₋₁, xᵢ), and Finalize returns H(hₙ₋₁, n). The zero count hash
// is H(0, 0).
type Hasher struct {
	params *Params
	acc    field.Element
	count  uint64
}

// NewHasher returns a fresh streaming hasher.
func (p *Params) NewHasher() *Hasher {
	return &Hasher{params: p}
}

// Update absorbs one element into the chain.
func (h *Hasher) Update(x field.Element) {
	// the chained accumulator never lands on the identity for the
	// shipped parameter sets; treat it as a parameter violation
	acc, ok := h.params.Hash(h.acc, x)
	if !ok {
		panic("pedersen: chained hash hit the group identity")
	}
	h.acc = acc
	h.count++
}

// Finalize closes the chain with the element count and returns the digest.
func (h *Hasher) Finalize() field.Element {
	var n field.Element
	h.params.Curve.Fp.FromUint64(&n, h.count)
	acc, ok := h.params.Hash(h.acc, n)
	if !ok {
		panic("pedersen: chained hash hit the group identity")
	}
	return acc
}
