package arith

import "iter"

// BitsBE iterates the 256 bits of z, most significant first.
func (z *Uint) BitsBE() iter.Seq[bool] {
	v := *z
	return func(yield func(bool) bool) {
		for i := Bits; i > 0; i-- {
			if !yield(v.Bit(uint(i-1)) == 1) {
				return
			}
		}
	}
}

// BitsBETrimmed iterates the bits of z most significant first, skipping
// leading zeros. Yields nothing for z == 0. This is the iteration order
// used by double-and-add scalar multiplication and exponentiation.
func (z *Uint) BitsBETrimmed() iter.Seq[bool] {
	v := *z
	n := v.BitLen()
	return func(yield func(bool) bool) {
		for i := n; i > 0; i-- {
			if !yield(v.Bit(uint(i-1)) == 1) {
				return
			}
		}
	}
}

// BitsLE iterates the 256 bits of z, least significant first.
func (z *Uint) BitsLE() iter.Seq[bool] {
	v := *z
	return func(yield func(bool) bool) {
		for i := uint(0); i < Bits; i++ {
			if !yield(v.Bit(i) == 1) {
				return
			}
		}
	}
}

// BitsLETrimmed iterates the bits of z least significant first, stopping
// after the highest set bit.
func (z *Uint) BitsLETrimmed() iter.Seq[bool] {
	v := *z
	n := uint(v.BitLen())
	return func(yield func(bool) bool) {
		for i := uint(0); i < n; i++ {
			if !yield(v.Bit(i) == 1) {
				return
			}
		}
	}
}
