// Package field implements prime field arithmetic in Montgomery form.
//
// A field is described by a Params value carrying the modulus, a
// multiplicative generator and the Montgomery constants derived at
// construction time. Elements are plain 4-limb values holding x·R mod M;
// all operations are methods on *Params with a destination-first pointer
// convention:
//
//	var z field.Element
//	p.Mul(&z, &x, &y)
//
// Hot paths (add, sub, mul, square) are branch-free on the element data
// except for the final conditional subtract.
package field

import (
	"math/big"
	"math/bits"

	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/logger"
)

// Element is a prime field element in Montgomery representation. The zero
// value is the field's zero. Elements are comparable with ==, but only
// within the same field.
type Element arith.Uint

// IsZero reports whether z is the additive identity.
func (z *Element) IsZero() bool {
	return z[0]|z[1]|z[2]|z[3] == 0
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return *z == *x
}

// Params bundles a prime modulus with its derived Montgomery constants.
// The mathematical content (primality, generator order) is trusted; the
// structural invariants (odd modulus, nonzero reduced generator) are
// checked at construction. Moduli up to the full 256-bit width are
// supported; the carry paths in Add, Mul and Inverse account for values
// that wrap the word boundary.
type Params struct {
	// Name identifies the field in logs and errors.
	Name string
	// Modulus is the field characteristic M.
	Modulus arith.Uint

	generator Element    // multiplicative generator, Montgomery form
	one       Element    // R mod M
	rSquare   arith.Uint // R² mod M
	inv       uint64     // -M⁻¹ mod 2^64
	bitLen    int
	spareBit  bool // M < 2^255, allows skipping carry tracking in add
}

// NewParams derives the Montgomery constants for the given modulus and
// multiplicative generator, both decimal literals. It panics on malformed
// input: even or oversized modulus, zero generator. Primality is assumed,
// not checked.
func NewParams(name, modulus, generator string) *Params {
	p := &Params{Name: name}
	p.Modulus = arith.MustFromDecimal(modulus)
	if !p.Modulus.IsOdd() {
		panic("field: modulus must be odd: " + name)
	}
	p.bitLen = p.Modulus.BitLen()
	p.spareBit = p.bitLen < arith.Bits-1

	// inv = -M⁻¹ mod 2^64, by the Newton iteration x <- x·(2 - M·x)
	// folded into 63 square-and-multiply steps on the low limb.
	inv := uint64(1)
	for i := 0; i < 63; i++ {
		inv *= inv
		inv *= p.Modulus[0]
	}
	p.inv = -inv

	// R = 2^256 mod M and R² mod M, derived once with math/big.
	m := p.Modulus.BigInt()
	r := new(big.Int).Lsh(big.NewInt(1), arith.Bits)
	r.Mod(r, m)
	r2 := new(big.Int).Mul(r, r)
	r2.Mod(r2, m)
	one, err := arith.FromBigInt(r)
	if err != nil {
		panic("field: " + err.Error())
	}
	p.one = Element(one)
	p.rSquare, err = arith.FromBigInt(r2)
	if err != nil {
		panic("field: " + err.Error())
	}

	g := arith.MustFromDecimal(generator)
	if g.IsZero() || g.Cmp(&p.Modulus) >= 0 {
		panic("field: generator must be nonzero and reduced: " + name)
	}
	if ok := p.FromUint(&p.generator, g); !ok {
		panic("field: generator out of range: " + name)
	}

	log := logger.Logger().With().Str("field", name).Logger()
	log.Debug().Int("bits", p.bitLen).Uint64("inv", p.inv).Msg("derived montgomery constants")
	return p
}

// BitLen returns the bit length of the modulus.
func (p *Params) BitLen() int { return p.bitLen }

// Zero returns the additive identity.
func (p *Params) Zero() Element { return Element{} }

// One returns the multiplicative identity (R mod M).
func (p *Params) One() Element { return p.one }

// Generator returns the multiplicative generator.
func (p *Params) Generator() Element { return p.generator }

// geModulus reports whether the raw value of z is >= M.
func (p *Params) geModulus(z *Element) bool {
	for i := arith.Limbs - 1; i >= 0; i-- {
		if z[i] > p.Modulus[i] {
			return true
		}
		if z[i] < p.Modulus[i] {
			return false
		}
	}
	return true
}

func (p *Params) subModulus(z *Element) {
	var b uint64
	z[0], b = bits.Sub64(z[0], p.Modulus[0], 0)
	z[1], b = bits.Sub64(z[1], p.Modulus[1], b)
	z[2], b = bits.Sub64(z[2], p.Modulus[2], b)
	z[3], _ = bits.Sub64(z[3], p.Modulus[3], b)
}

func (p *Params) addModulus(z *Element) uint64 {
	var c uint64
	z[0], c = bits.Add64(z[0], p.Modulus[0], 0)
	z[1], c = bits.Add64(z[1], p.Modulus[1], c)
	z[2], c = bits.Add64(z[2], p.Modulus[2], c)
	z[3], c = bits.Add64(z[3], p.Modulus[3], c)
	return c
}

// Add sets z = x + y.
func (p *Params) Add(z, x, y *Element) {
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)
	if (!p.spareBit && c != 0) || p.geModulus(z) {
		p.subModulus(z)
	}
}

// Double sets z = 2x.
func (p *Params) Double(z, x *Element) {
	p.Add(z, x, x)
}

// Sub sets z = x - y.
func (p *Params) Sub(z, x, y *Element) {
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	if b != 0 {
		p.addModulus(z)
	}
}

// Neg sets z = -x.
func (p *Params) Neg(z, x *Element) {
	if x.IsZero() {
		*z = Element{}
		return
	}
	m := Element(p.Modulus)
	var b uint64
	z[0], b = bits.Sub64(m[0], x[0], 0)
	z[1], b = bits.Sub64(m[1], x[1], b)
	z[2], b = bits.Sub64(m[2], x[2], b)
	z[3], _ = bits.Sub64(m[3], x[3], b)
}

// Mul sets z = x·y, both in Montgomery form, using CIOS multiplication.
func (p *Params) Mul(z, x, y *Element) {
	var t [arith.Limbs + 2]uint64
	for i := 0; i < arith.Limbs; i++ {
		// t += x * y[i]
		var c uint64
		t[0], c = arith.CarryingMac(t[0], x[0], y[i], c)
		t[1], c = arith.CarryingMac(t[1], x[1], y[i], c)
		t[2], c = arith.CarryingMac(t[2], x[2], y[i], c)
		t[3], c = arith.CarryingMac(t[3], x[3], y[i], c)
		t[4], c = bits.Add64(t[4], c, 0)
		t[5] = c

		// t = (t + m·M) >> 64 with m chosen so the low limb cancels
		m := t[0] * p.inv
		c = arith.MacDiscard(t[0], m, p.Modulus[0])
		t[0], c = arith.CarryingMac(t[1], m, p.Modulus[1], c)
		t[1], c = arith.CarryingMac(t[2], m, p.Modulus[2], c)
		t[2], c = arith.CarryingMac(t[3], m, p.Modulus[3], c)
		t[3], c = bits.Add64(t[4], c, 0)
		t[4] = t[5] + c
	}
	z[0], z[1], z[2], z[3] = t[0], t[1], t[2], t[3]
	if t[4] != 0 || p.geModulus(z) {
		p.subModulus(z)
	}
}

// Square sets z = x². Shares the multiplication path.
func (p *Params) Square(z, x *Element) {
	p.Mul(z, x, x)
}

// Inverse sets z = x⁻¹ and returns true, or returns false for x = 0.
// Binary extended GCD on the Montgomery representation; the b accumulator
// starts at R² so the Montgomery factor survives the reduction.
func (p *Params) Inverse(z, x *Element) bool {
	if x.IsZero() {
		return false
	}

	u := arith.Uint(*x)
	v := p.Modulus
	b := p.rSquare
	var c arith.Uint

	oneU := arith.FromUint64(1)
	for !u.Equal(&oneU) && !v.Equal(&oneU) {
		for !u.IsOdd() {
			u.Shr1Assign()
			var carry uint64
			if b.IsOdd() {
				// b+M can carry out for a full-width modulus; the
				// halving keeps bit 256
				carry = b.AddAssign(&p.Modulus)
			}
			b.Shr1Assign()
			b[3] |= carry << 63
		}
		for !v.IsOdd() {
			v.Shr1Assign()
			var carry uint64
			if c.IsOdd() {
				carry = c.AddAssign(&p.Modulus)
			}
			c.Shr1Assign()
			c[3] |= carry << 63
		}
		if v.Cmp(&u) <= 0 {
			u.SubAssign(&v)
			if b.SubAssign(&c) != 0 {
				b.AddAssign(&p.Modulus)
			}
		} else {
			v.SubAssign(&u)
			if c.SubAssign(&b) != 0 {
				c.AddAssign(&p.Modulus)
			}
		}
	}
	if u.Equal(&oneU) {
		*z = Element(b)
	} else {
		*z = Element(c)
	}
	return true
}

// Exp sets z = x^e by square-and-multiply over the big-endian bits of e,
// skipping leading zeros.
func (p *Params) Exp(z, x *Element, e arith.Uint) {
	res := p.one
	base := *x
	for bit := range e.BitsBETrimmed() {
		p.Square(&res, &res)
		if bit {
			p.Mul(&res, &res, &base)
		}
	}
	*z = res
}

// ExpUint64 sets z = x^e for a word-sized exponent.
func (p *Params) ExpUint64(z, x *Element, e uint64) {
	p.Exp(z, x, arith.FromUint64(e))
}

// FromUint converts v out of plain integer representation into Montgomery
// form. Returns false if v >= M.
func (p *Params) FromUint(z *Element, v arith.Uint) bool {
	if v.Cmp(&p.Modulus) >= 0 {
		return false
	}
	ev := Element(v)
	r2 := Element(p.rSquare)
	p.Mul(z, &ev, &r2)
	return true
}

// ToUint converts z back to plain integer representation by a Montgomery
// reduction of (z, 0).
func (p *Params) ToUint(z *Element) arith.Uint {
	var t [arith.Limbs]uint64
	t[0], t[1], t[2], t[3] = z[0], z[1], z[2], z[3]
	for i := 0; i < arith.Limbs; i++ {
		m := t[0] * p.inv
		c := arith.MacDiscard(t[0], m, p.Modulus[0])
		t[0], c = arith.CarryingMac(t[1], m, p.Modulus[1], c)
		t[1], c = arith.CarryingMac(t[2], m, p.Modulus[2], c)
		t[2], c = arith.CarryingMac(t[3], m, p.Modulus[3], c)
		t[3] = c
	}
	out := Element{t[0], t[1], t[2], t[3]}
	if p.geModulus(&out) {
		p.subModulus(&out)
	}
	return arith.Uint(out)
}

// FromUint64 sets z to the field element v mod M.
func (p *Params) FromUint64(z *Element, v uint64) {
	u := arith.FromUint64(v)
	if u.Cmp(&p.Modulus) >= 0 {
		// only possible for sub-64-bit moduli
		r := v % p.Modulus[0]
		u = arith.FromUint64(r)
	}
	p.FromUint(z, u)
}

// MustFromDecimal parses a reduced decimal literal into an element,
// panicking on malformed or out-of-range input. Intended for constants.
func (p *Params) MustFromDecimal(s string) Element {
	var z Element
	if !p.FromUint(&z, arith.MustFromDecimal(s)) {
		panic("field: literal not reduced mod " + p.Name + ": " + s)
	}
	return z
}

// MustFromHex is MustFromDecimal for hex literals with optional 0x prefix.
func (p *Params) MustFromHex(s string) Element {
	var z Element
	if !p.FromUint(&z, arith.MustFromHex(s)) {
		panic("field: literal not reduced mod " + p.Name + ": " + s)
	}
	return z
}

// ReduceBytesLE interprets b as a little-endian integer and reduces it
// mod M. Not a hot path; used when absorbing untrusted byte streams.
func (p *Params) ReduceBytesLE(b []byte) Element {
	buf := make([]byte, len(b))
	copy(buf, b)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, p.Modulus.BigInt())
	u, _ := arith.FromBigInt(v)
	var z Element
	p.FromUint(&z, u)
	return z
}
