// Package sw implements Short-Weierstrass curves y² = x³ + ax + b over a
// prime field, with Jacobian projective arithmetic and affine views.
//
// A Curve value bundles the two fields and the coefficients; point methods
// take the curve as their first argument and chain on the receiver.
package sw

import (
	"fmt"

	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/field"
)

// Curve describes one Short-Weierstrass curve instance.
type Curve struct {
	Name string

	// Fp is the base field, Fr the scalar field of the prime-order
	// subgroup.
	Fp, Fr *field.Params

	A, B field.Element
	Gen  Affine

	// Cofactor of the prime-order subgroup and its inverse in Fr.
	Cofactor    arith.Uint
	CofactorInv field.Element

	aIsZero bool
}

// Affine is a point in affine coordinates. The identity is flagged
// explicitly; its X, Y are meaningless.
type Affine struct {
	X, Y     field.Element
	Infinity bool
}

// Jac is a point in Jacobian coordinates (X/Z², Y/Z³). Z = 0 is the
// identity.
type Jac struct {
	X, Y, Z field.Element
}

// CofactorIsOne reports whether the whole curve group is the prime-order
// subgroup.
func (c *Curve) CofactorIsOne() bool {
	one := arith.FromUint64(1)
	return c.Cofactor.Equal(&one)
}

// Identity returns the group identity in Jacobian form.
func (c *Curve) Identity() Jac {
	return Jac{}
}

// Generator returns the subgroup generator in Jacobian form.
func (c *Curve) Generator() Jac {
	var g Jac
	g.FromAffine(c, &c.Gen)
	return g
}

// Set sets p to a and returns p.
func (p *Jac) Set(a *Jac) *Jac {
	*p = *a
	return p
}

// IsIdentity reports whether p is the group identity.
func (p *Jac) IsIdentity() bool {
	return p.Z.IsZero()
}

// FromAffine sets p to the Jacobian form of a (Z = 1) and returns p.
func (p *Jac) FromAffine(c *Curve, a *Affine) *Jac {
	if a.Infinity {
		*p = Jac{}
		return p
	}
	p.X = a.X
	p.Y = a.Y
	p.Z = c.Fp.One()
	return p
}

// FromJacobian sets a to the affine view of p, costing one field inverse.
// The identity maps to the affine identity flag.
func (a *Affine) FromJacobian(c *Curve, p *Jac) *Affine {
	if p.IsIdentity() {
		*a = Affine{Infinity: true}
		return a
	}
	fp := c.Fp
	var zInv, zInv2, zInv3 field.Element
	fp.Inverse(&zInv, &p.Z)
	fp.Square(&zInv2, &zInv)
	fp.Mul(&zInv3, &zInv2, &zInv)
	fp.Mul(&a.X, &p.X, &zInv2)
	fp.Mul(&a.Y, &p.Y, &zInv3)
	a.Infinity = false
	return a
}

// Neg sets p = -a and returns p.
func (p *Jac) Neg(c *Curve, a *Jac) *Jac {
	p.X = a.X
	c.Fp.Neg(&p.Y, &a.Y)
	p.Z = a.Z
	return p
}

// Neg returns -a.
func (a *Affine) Neg(c *Curve) Affine {
	if a.Infinity {
		return *a
	}
	r := Affine{X: a.X}
	c.Fp.Neg(&r.Y, &a.Y)
	return r
}

// Equal reports whether p and a are the same group element. Both
// identities compare equal; otherwise coordinates are compared after
// cross-multiplying by the Z terms.
func (p *Jac) Equal(c *Curve, a *Jac) bool {
	if p.IsIdentity() {
		return a.IsIdentity()
	}
	if a.IsIdentity() {
		return false
	}
	fp := c.Fp
	var pZZ, aZZ, l, r field.Element
	fp.Square(&pZZ, &p.Z)
	fp.Square(&aZZ, &a.Z)
	fp.Mul(&l, &p.X, &aZZ)
	fp.Mul(&r, &a.X, &pZZ)
	if !l.Equal(&r) {
		return false
	}
	fp.Mul(&pZZ, &pZZ, &p.Z)
	fp.Mul(&aZZ, &aZZ, &a.Z)
	fp.Mul(&l, &p.Y, &aZZ)
	fp.Mul(&r, &a.Y, &pZZ)
	return l.Equal(&r)
}

// Add point addition, no assumptions on z.
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-3.html#addition-add-2007-bl
func (p *Jac) Add(c *Curve, a *Jac) *Jac {
	// p is infinity, return a
	if p.Z.IsZero() {
		p.Set(a)
		return p
	}

	// a is infinity, return p
	if a.Z.IsZero() {
		return p
	}

	fp := c.Fp
	var Z1Z1, Z2Z2, U1, U2, S1, S2, H, I, J, r, V, t field.Element

	// Z1Z1 = a.Z ^ 2
	fp.Square(&Z1Z1, &a.Z)

	// Z2Z2 = p.Z ^ 2
	fp.Square(&Z2Z2, &p.Z)

	// U1 = a.X * Z2Z2
	fp.Mul(&U1, &a.X, &Z2Z2)

	// U2 = p.X * Z1Z1
	fp.Mul(&U2, &p.X, &Z1Z1)

	// S1 = a.Y * p.Z * Z2Z2
	fp.Mul(&S1, &a.Y, &p.Z)
	fp.Mul(&S1, &S1, &Z2Z2)

	// S2 = p.Y * a.Z * Z1Z1
	fp.Mul(&S2, &p.Y, &a.Z)
	fp.Mul(&S2, &S2, &Z1Z1)

	// if p == a, we double instead
	if U1.Equal(&U2) && S1.Equal(&S2) {
		return p.Double(c)
	}

	// H = U2 - U1
	fp.Sub(&H, &U2, &U1)

	// I = (2*H)^2
	fp.Double(&I, &H)
	fp.Square(&I, &I)

	// J = H*I
	fp.Mul(&J, &H, &I)

	// r = 2*(S2-S1)
	fp.Sub(&r, &S2, &S1)
	fp.Double(&r, &r)

	// V = U1*I
	fp.Mul(&V, &U1, &I)

	// res.X = r^2-J-2*V
	fp.Square(&p.X, &r)
	fp.Sub(&p.X, &p.X, &J)
	fp.Sub(&p.X, &p.X, &V)
	fp.Sub(&p.X, &p.X, &V)

	// res.Y = r*(V-X3)-2*S1*J
	fp.Sub(&p.Y, &V, &p.X)
	fp.Mul(&p.Y, &p.Y, &r)
	fp.Mul(&t, &S1, &J)
	fp.Double(&t, &t)
	fp.Sub(&p.Y, &p.Y, &t)

	// res.Z = ((a.Z+p.Z)^2-Z1Z1-Z2Z2)*H
	fp.Add(&p.Z, &p.Z, &a.Z)
	fp.Square(&p.Z, &p.Z)
	fp.Sub(&p.Z, &p.Z, &Z1Z1)
	fp.Sub(&p.Z, &p.Z, &Z2Z2)
	fp.Mul(&p.Z, &p.Z, &H)

	return p
}

// AddMixed point addition, assumes a is in affine coordinates (z == 1).
// http://www.hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-madd-2007-bl
func (p *Jac) AddMixed(c *Curve, a *Affine) *Jac {
	// if a is infinity return p
	if a.Infinity {
		return p
	}
	// p is infinity, return a
	if p.Z.IsZero() {
		p.X = a.X
		p.Y = a.Y
		p.Z = c.Fp.One()
		return p
	}

	fp := c.Fp
	var Z1Z1, U2, S2, H, HH, I, J, r, V field.Element

	// Z1Z1 = p.Z ^ 2
	fp.Square(&Z1Z1, &p.Z)

	// U2 = a.X * Z1Z1
	fp.Mul(&U2, &a.X, &Z1Z1)

	// S2 = a.Y * p.Z * Z1Z1
	fp.Mul(&S2, &a.Y, &p.Z)
	fp.Mul(&S2, &S2, &Z1Z1)

	// if p == a, we double instead
	if U2.Equal(&p.X) && S2.Equal(&p.Y) {
		return p.Double(c)
	}

	// H = U2 - p.X
	fp.Sub(&H, &U2, &p.X)
	fp.Square(&HH, &H)

	// I = 4*HH
	fp.Double(&I, &HH)
	fp.Double(&I, &I)

	// J = H*I
	fp.Mul(&J, &H, &I)

	// r = 2*(S2-Y1)
	fp.Sub(&r, &S2, &p.Y)
	fp.Double(&r, &r)

	// V = X1*I
	fp.Mul(&V, &p.X, &I)

	// res.X = r^2-J-2*V
	fp.Square(&p.X, &r)
	fp.Sub(&p.X, &p.X, &J)
	fp.Sub(&p.X, &p.X, &V)
	fp.Sub(&p.X, &p.X, &V)

	// res.Y = r*(V-X3)-2*Y1*J
	fp.Mul(&J, &J, &p.Y)
	fp.Double(&J, &J)
	fp.Sub(&p.Y, &V, &p.X)
	fp.Mul(&p.Y, &p.Y, &r)
	fp.Sub(&p.Y, &p.Y, &J)

	// res.Z = (p.Z+H)^2-Z1Z1-HH
	fp.Add(&p.Z, &p.Z, &H)
	fp.Square(&p.Z, &p.Z)
	fp.Sub(&p.Z, &p.Z, &Z1Z1)
	fp.Sub(&p.Z, &p.Z, &HH)

	return p
}

// Sub sets p = p - a and returns p.
func (p *Jac) Sub(c *Curve, a *Jac) *Jac {
	var n Jac
	n.Neg(c, a)
	return p.Add(c, &n)
}

// Double doubles a point in Jacobian coordinates, general a coefficient.
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
func (p *Jac) Double(c *Curve) *Jac {
	fp := c.Fp
	var XX, YY, YYYY, ZZ, S, M, T field.Element

	// XX = X1^2
	fp.Square(&XX, &p.X)

	// YY = Y1^2
	fp.Square(&YY, &p.Y)

	// YYYY = YY^2
	fp.Square(&YYYY, &YY)

	// ZZ = Z1^2
	fp.Square(&ZZ, &p.Z)

	// S = 2*((X1+YY)^2-XX-YYYY)
	fp.Add(&S, &p.X, &YY)
	fp.Square(&S, &S)
	fp.Sub(&S, &S, &XX)
	fp.Sub(&S, &S, &YYYY)
	fp.Double(&S, &S)

	// M = 3*XX+a*ZZ^2
	fp.Double(&M, &XX)
	fp.Add(&M, &M, &XX)
	if !c.aIsZero {
		var aZZ2 field.Element
		fp.Square(&aZZ2, &ZZ)
		fp.Mul(&aZZ2, &aZZ2, &c.A)
		fp.Add(&M, &M, &aZZ2)
	}

	// res.Z = (Y1+Z1)^2-YY-ZZ
	fp.Add(&p.Z, &p.Z, &p.Y)
	fp.Square(&p.Z, &p.Z)
	fp.Sub(&p.Z, &p.Z, &YY)
	fp.Sub(&p.Z, &p.Z, &ZZ)

	// res.X = M^2-2*S
	fp.Square(&T, &M)
	p.X = T
	fp.Double(&T, &S)
	fp.Sub(&p.X, &p.X, &T)

	// res.Y = M*(S-X3)-8*YYYY
	fp.Sub(&p.Y, &S, &p.X)
	fp.Mul(&p.Y, &p.Y, &M)
	fp.Double(&YYYY, &YYYY)
	fp.Double(&YYYY, &YYYY)
	fp.Double(&YYYY, &YYYY)
	fp.Sub(&p.Y, &p.Y, &YYYY)

	return p
}

// ScalarMul sets p = scalar·a by double-and-add over the big-endian bits
// of scalar with leading zeros skipped, and returns p.
func (p *Jac) ScalarMul(c *Curve, a *Jac, scalar arith.Uint) *Jac {
	var res Jac
	base := *a
	for bit := range scalar.BitsBETrimmed() {
		res.Double(c)
		if bit {
			res.Add(c, &base)
		}
	}
	return p.Set(&res)
}

// ScalarMulMixed sets p = scalar·a for an affine base, saving the
// projective conversion on every addition.
func (p *Jac) ScalarMulMixed(c *Curve, a *Affine, scalar arith.Uint) *Jac {
	var res Jac
	base := *a
	for bit := range scalar.BitsBETrimmed() {
		res.Double(c)
		if bit {
			res.AddMixed(c, &base)
		}
	}
	return p.Set(&res)
}

// ClearCofactor multiplies p by the curve cofactor, mapping any curve
// point into the prime-order subgroup.
func (p *Jac) ClearCofactor(c *Curve, a *Jac) *Jac {
	return p.ScalarMul(c, a, c.Cofactor)
}

// IsOnCurve reports whether a satisfies y² = x³ + ax + b. The identity is
// on the curve.
func (c *Curve) IsOnCurve(a *Affine) bool {
	if a.Infinity {
		return true
	}
	fp := c.Fp
	var lhs, rhs, t field.Element
	fp.Square(&lhs, &a.Y)
	fp.Square(&rhs, &a.X)
	fp.Mul(&rhs, &rhs, &a.X)
	if !c.aIsZero {
		fp.Mul(&t, &c.A, &a.X)
		fp.Add(&rhs, &rhs, &t)
	}
	fp.Add(&rhs, &rhs, &c.B)
	return lhs.Equal(&rhs)
}

// IsInSubGroup reports whether p lies in the prime-order subgroup, by
// multiplying with the scalar field characteristic.
func (c *Curve) IsInSubGroup(p *Jac) bool {
	var t Jac
	t.ScalarMul(c, p, c.Fr.Modulus)
	return t.IsIdentity()
}

// NewAffine builds an affine point from coordinates, panicking if the
// point is off-curve or outside the prime-order subgroup. Use
// NewAffineUnchecked for trusted inputs.
func (c *Curve) NewAffine(x, y field.Element) Affine {
	a := Affine{X: x, Y: y}
	if !c.IsOnCurve(&a) {
		panic(fmt.Sprintf("sw: point not on curve %s", c.Name))
	}
	var j Jac
	j.FromAffine(c, &a)
	if !c.IsInSubGroup(&j) {
		panic(fmt.Sprintf("sw: point not in prime-order subgroup of %s", c.Name))
	}
	return a
}

// NewAffineUnchecked builds an affine point without any validation.
func (c *Curve) NewAffineUnchecked(x, y field.Element) Affine {
	return Affine{X: x, Y: y}
}

// Equal reports whether two affine points are the same group element.
func (a *Affine) Equal(b *Affine) bool {
	if a.Infinity || b.Infinity {
		return a.Infinity == b.Infinity
	}
	return a.X.Equal(&b.X) && a.Y.Equal(&b.Y)
}
