package arith

import (
	"encoding/binary"
	"errors"
	"math/big"
	"math/bits"
)

const (
	// Limbs is the number of 64-bit limbs in a Uint.
	Limbs = 4
	// Bits is the width of a Uint.
	Bits = Limbs * 64
	// Bytes is the byte size of a Uint.
	Bytes = Limbs * 8
)

// Uint is a 256-bit unsigned integer, least significant limb first.
// Arithmetic is modulo 2^256 with explicit carry/borrow out; the zero value
// is the integer 0 and is ready to use.
type Uint [Limbs]uint64

var ErrBytesLength = errors.New("arith: byte slice length must be 32")

// FromUint64 returns v as a Uint.
func FromUint64(v uint64) Uint {
	return Uint{v}
}

// IsZero reports whether z is 0.
func (z *Uint) IsZero() bool {
	return z[0]|z[1]|z[2]|z[3] == 0
}

// IsOdd reports whether the lowest bit of z is set.
func (z *Uint) IsOdd() bool {
	return z[0]&1 == 1
}

// Cmp compares z and x, returning -1, 0 or +1.
func (z *Uint) Cmp(x *Uint) int {
	for i := Limbs - 1; i >= 0; i-- {
		if z[i] < x[i] {
			return -1
		}
		if z[i] > x[i] {
			return 1
		}
	}
	return 0
}

// Equal reports whether z == x.
func (z *Uint) Equal(x *Uint) bool {
	return *z == *x
}

// AddCarry returns x + y mod 2^256 and the outgoing carry.
func AddCarry(x, y *Uint) (Uint, uint64) {
	var z Uint
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)
	return z, c
}

// SubBorrow returns x - y mod 2^256 and the outgoing borrow.
func SubBorrow(x, y *Uint) (Uint, uint64) {
	var z Uint
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	return z, b
}

// AddAssign sets z = z + x mod 2^256 and returns the carry.
func (z *Uint) AddAssign(x *Uint) uint64 {
	var c uint64
	*z, c = AddCarry(z, x)
	return c
}

// SubAssign sets z = z - x mod 2^256 and returns the borrow.
func (z *Uint) SubAssign(x *Uint) uint64 {
	var b uint64
	*z, b = SubBorrow(z, x)
	return b
}

// MulWideUint returns the 512-bit product x*y as (lo, hi).
func MulWideUint(x, y *Uint) (lo, hi Uint) {
	var r [2 * Limbs]uint64
	for i := 0; i < Limbs; i++ {
		var carry uint64
		for j := 0; j < Limbs; j++ {
			r[i+j], carry = CarryingMac(r[i+j], x[i], y[j], carry)
		}
		r[i+Limbs] = carry
	}
	copy(lo[:], r[:Limbs])
	copy(hi[:], r[Limbs:])
	return lo, hi
}

// Neg returns the two's complement of z modulo 2^256.
func (z *Uint) Neg() Uint {
	var zero Uint
	r, _ := SubBorrow(&zero, z)
	return r
}

// Shl1 returns z << 1 modulo 2^256.
func (z *Uint) Shl1() Uint {
	var r Uint
	r[3] = z[3]<<1 | z[2]>>63
	r[2] = z[2]<<1 | z[1]>>63
	r[1] = z[1]<<1 | z[0]>>63
	r[0] = z[0] << 1
	return r
}

// Shr1 returns z >> 1.
func (z *Uint) Shr1() Uint {
	var r Uint
	r[0] = z[0]>>1 | z[1]<<63
	r[1] = z[1]>>1 | z[2]<<63
	r[2] = z[2]>>1 | z[3]<<63
	r[3] = z[3] >> 1
	return r
}

// Shr1Assign sets z = z >> 1.
func (z *Uint) Shr1Assign() {
	*z = z.Shr1()
}

// Bit returns bit i of z (0 or 1). Out-of-range bits are 0.
func (z *Uint) Bit(i uint) uint64 {
	if i >= Bits {
		return 0
	}
	return z[i/64] >> (i % 64) & 1
}

// BitLen returns the position of the highest set bit, 0 for z == 0.
func (z *Uint) BitLen() int {
	for i := Limbs - 1; i >= 0; i-- {
		if z[i] != 0 {
			return i*64 + bits.Len64(z[i])
		}
	}
	return 0
}

// FromBytesLE parses a 32-byte little-endian encoding.
func FromBytesLE(b []byte) (Uint, error) {
	var z Uint
	if len(b) != Bytes {
		return z, ErrBytesLength
	}
	for i := 0; i < Limbs; i++ {
		z[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return z, nil
}

// BytesLE returns the 32-byte little-endian encoding of z.
func (z *Uint) BytesLE() [Bytes]byte {
	var b [Bytes]byte
	for i := 0; i < Limbs; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], z[i])
	}
	return b
}

// BigInt returns z as a math/big integer.
func (z *Uint) BigInt() *big.Int {
	b := z.BytesLE()
	// big.Int wants big-endian
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return new(big.Int).SetBytes(b[:])
}

// FromBigInt converts v to a Uint. v must be in [0, 2^256).
func FromBigInt(v *big.Int) (Uint, error) {
	var z Uint
	if v.Sign() < 0 || v.BitLen() > Bits {
		return z, errors.New("arith: value out of range")
	}
	// assemble from bytes rather than v.Bits(), whose word size is
	// platform-dependent
	var buf [Bytes]byte
	v.FillBytes(buf[:])
	for i := 0; i < Limbs; i++ {
		z[i] = binary.BigEndian.Uint64(buf[Bytes-(i+1)*8:])
	}
	return z, nil
}

// MustFromDecimal parses a decimal literal, panicking on malformed input or
// overflow. Intended for constants.
func MustFromDecimal(s string) Uint {
	return mustParse(s, 10)
}

// MustFromHex parses a hex literal with optional 0x prefix, panicking on
// malformed input or overflow. Intended for constants.
func MustFromHex(s string) Uint {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return mustParse(s, 16)
}

func mustParse(s string, base int) Uint {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("arith: malformed integer literal: " + s)
	}
	z, err := FromBigInt(v)
	if err != nil {
		panic("arith: integer literal overflows 256 bits: " + s)
	}
	return z
}

// String returns the decimal representation of z.
func (z *Uint) String() string {
	return z.BigInt().String()
}
