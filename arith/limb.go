// Package arith implements the fixed-width unsigned integer and the 64-bit
// limb primitives the field layer is built on.
//
// All big integers are little-endian sequences of 64-bit limbs. The helpers
// in this file return widened results explicitly; nothing here reduces
// modulo anything.
package arith

import "math/bits"

// Mac returns the low 64 bits of a + b*c and the upper 64 bits as carry.
func Mac(a, b, c uint64) (lo, carry uint64) {
	hi, lo := bits.Mul64(b, c)
	lo, cc := bits.Add64(lo, a, 0)
	return lo, hi + cc
}

// CarryingMac returns the low 64 bits of a + b*c + carry and the upper 64
// bits as the new carry.
func CarryingMac(a, b, c, carry uint64) (lo, carryOut uint64) {
	hi, lo := bits.Mul64(b, c)
	lo, cc := bits.Add64(lo, a, 0)
	hi += cc
	lo, cc = bits.Add64(lo, carry, 0)
	return lo, hi + cc
}

// MacDiscard returns only the upper 64 bits of a + b*c.
func MacDiscard(a, b, c uint64) (carry uint64) {
	hi, lo := bits.Mul64(b, c)
	_, cc := bits.Add64(lo, a, 0)
	return hi + cc
}

// Adc returns a + b + carry and the outgoing carry. carry must be 0 or 1.
func Adc(a, b, carry uint64) (sum, carryOut uint64) {
	return addWithCarry(a, b, carry)
}

func addWithCarry(a, b, carry uint64) (uint64, uint64) {
	sum, c := bits.Add64(a, b, carry)
	return sum, c
}

// Sbb returns a - b - borrow and the outgoing borrow. borrow must be 0 or 1.
func Sbb(a, b, borrow uint64) (diff, borrowOut uint64) {
	diff, bb := bits.Sub64(a, b, borrow)
	return diff, bb
}

// MulWide returns the 128-bit product of a and b as (hi, lo).
func MulWide(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// mulWideGeneric composes the 128-bit product from four 32-bit partial
// products. It exists for targets without a fast 64x64 multiplier and must
// stay bit-identical to MulWide.
func mulWideGeneric(a, b uint64) (hi, lo uint64) {
	aLo := a & 0xffffffff
	aHi := a >> 32
	bLo := b & 0xffffffff
	bHi := b >> 32

	lolo := aLo * bLo
	lohi := aLo * bHi
	hilo := aHi * bLo
	hihi := aHi * bHi

	// cross terms overlap the middle 64 bits of the result
	mid, midCarry := bits.Add64(lohi, hilo, 0)
	lo, c := bits.Add64(lolo, mid<<32, 0)
	hi = hihi + (mid >> 32) + (midCarry << 32) + c
	return hi, lo
}
