// Package twistededwards implements Twisted-Edwards curves
// a·x² + y² = 1 + d·x²·y² over a prime field, in extended projective
// coordinates (X, Y, T, Z) with T·Z = X·Y.
//
// The package mirrors the Short-Weierstrass layout: a Curve value carries
// the fields and coefficients, point methods take it as first argument.
package twistededwards

import (
	"fmt"

	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/field"
)

// Curve describes one Twisted-Edwards curve instance.
type Curve struct {
	Name string

	Fp, Fr *field.Params

	A, D field.Element
	Gen  Affine

	Cofactor    arith.Uint
	CofactorInv field.Element
}

// Affine is a point in affine coordinates. The identity is (0, 1); no
// separate flag is needed.
type Affine struct {
	X, Y field.Element
}

// Extended is a point in extended projective coordinates. The identity is
// (0, 1, 0, 1); Z is never zero for well-formed points.
type Extended struct {
	X, Y, T, Z field.Element
}

// Identity returns the group identity in extended form.
func (c *Curve) Identity() Extended {
	one := c.Fp.One()
	return Extended{Y: one, Z: one}
}

// IdentityAffine returns the group identity (0, 1).
func (c *Curve) IdentityAffine() Affine {
	return Affine{Y: c.Fp.One()}
}

// Generator returns the subgroup generator in extended form.
func (c *Curve) Generator() Extended {
	var g Extended
	g.FromAffine(c, &c.Gen)
	return g
}

// Set sets p to a and returns p.
func (p *Extended) Set(a *Extended) *Extended {
	*p = *a
	return p
}

// IsIdentity reports whether p is the group identity.
func (p *Extended) IsIdentity(c *Curve) bool {
	// X = 0 and Y = Z
	return p.X.IsZero() && p.Y.Equal(&p.Z)
}

// FromAffine sets p to the extended form of a (Z = 1, T = X·Y).
func (p *Extended) FromAffine(c *Curve, a *Affine) *Extended {
	p.X = a.X
	p.Y = a.Y
	c.Fp.Mul(&p.T, &a.X, &a.Y)
	p.Z = c.Fp.One()
	return p
}

// FromExtended sets a to the affine view of p, costing one field inverse.
func (a *Affine) FromExtended(c *Curve, p *Extended) *Affine {
	fp := c.Fp
	var zInv field.Element
	if !fp.Inverse(&zInv, &p.Z) {
		panic("twistededwards: extended point with Z = 0")
	}
	fp.Mul(&a.X, &p.X, &zInv)
	fp.Mul(&a.Y, &p.Y, &zInv)
	return a
}

// Neg sets p = -a (negated X and T) and returns p.
func (p *Extended) Neg(c *Curve, a *Extended) *Extended {
	c.Fp.Neg(&p.X, &a.X)
	p.Y = a.Y
	c.Fp.Neg(&p.T, &a.T)
	p.Z = a.Z
	return p
}

// Neg returns -a.
func (a *Affine) Neg(c *Curve) Affine {
	r := Affine{Y: a.Y}
	c.Fp.Neg(&r.X, &a.X)
	return r
}

// Equal reports whether p and a are the same group element, comparing
// X·Z' and Y·Z' cross terms.
func (p *Extended) Equal(c *Curve, a *Extended) bool {
	fp := c.Fp
	var l, r field.Element
	fp.Mul(&l, &p.X, &a.Z)
	fp.Mul(&r, &a.X, &p.Z)
	if !l.Equal(&r) {
		return false
	}
	fp.Mul(&l, &p.Y, &a.Z)
	fp.Mul(&r, &a.Y, &p.Z)
	return l.Equal(&r)
}

// Add unified point addition; exception-free for the curve parameters
// shipped here, and also correct for p == a.
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#addition-add-2008-hwcd
func (p *Extended) Add(c *Curve, a *Extended) *Extended {
	fp := c.Fp
	var A, B, C, D, E, F, G, H field.Element

	// A = X1*X2
	fp.Mul(&A, &p.X, &a.X)

	// B = Y1*Y2
	fp.Mul(&B, &p.Y, &a.Y)

	// C = d*T1*T2
	fp.Mul(&C, &p.T, &a.T)
	fp.Mul(&C, &C, &c.D)

	// D = Z1*Z2
	fp.Mul(&D, &p.Z, &a.Z)

	// E = (X1+Y1)*(X2+Y2)-A-B
	var t field.Element
	fp.Add(&E, &p.X, &p.Y)
	fp.Add(&t, &a.X, &a.Y)
	fp.Mul(&E, &E, &t)
	fp.Sub(&E, &E, &A)
	fp.Sub(&E, &E, &B)

	// F = D-C, G = D+C, H = B-a*A
	fp.Sub(&F, &D, &C)
	fp.Add(&G, &D, &C)
	fp.Mul(&t, &A, &c.A)
	fp.Sub(&H, &B, &t)

	// X3 = E*F, Y3 = G*H, T3 = E*H, Z3 = F*G
	fp.Mul(&p.X, &E, &F)
	fp.Mul(&p.Y, &G, &H)
	fp.Mul(&p.T, &E, &H)
	fp.Mul(&p.Z, &F, &G)

	return p
}

// AddMixed point addition with an affine second operand (Z2 = 1).
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#addition-madd-2008-hwcd
func (p *Extended) AddMixed(c *Curve, a *Affine) *Extended {
	fp := c.Fp
	var A, B, C, E, F, G, H, t field.Element

	// A = X1*x2
	fp.Mul(&A, &p.X, &a.X)

	// B = Y1*y2
	fp.Mul(&B, &p.Y, &a.Y)

	// C = d*T1*x2*y2
	fp.Mul(&C, &a.X, &a.Y)
	fp.Mul(&C, &C, &p.T)
	fp.Mul(&C, &C, &c.D)

	// E = (X1+Y1)*(x2+y2)-A-B
	fp.Add(&E, &p.X, &p.Y)
	fp.Add(&t, &a.X, &a.Y)
	fp.Mul(&E, &E, &t)
	fp.Sub(&E, &E, &A)
	fp.Sub(&E, &E, &B)

	// F = Z1-C, G = Z1+C, H = B-a*A
	fp.Sub(&F, &p.Z, &C)
	fp.Add(&G, &p.Z, &C)
	fp.Mul(&t, &A, &c.A)
	fp.Sub(&H, &B, &t)

	// X3 = E*F, Y3 = G*H, T3 = E*H, Z3 = F*G
	fp.Mul(&p.X, &E, &F)
	fp.Mul(&p.Y, &G, &H)
	fp.Mul(&p.T, &E, &H)
	fp.Mul(&p.Z, &F, &G)

	return p
}

// Sub sets p = p - a and returns p.
func (p *Extended) Sub(c *Curve, a *Extended) *Extended {
	var n Extended
	n.Neg(c, a)
	return p.Add(c, &n)
}

// Double doubles p in place.
// https://hyperelliptic.org/EFD/g1p/auto-twisted-extended.html#doubling-dbl-2008-hwcd
func (p *Extended) Double(c *Curve) *Extended {
	fp := c.Fp
	var A, B, C, D, E, F, G, H field.Element

	// A = X1^2
	fp.Square(&A, &p.X)

	// B = Y1^2
	fp.Square(&B, &p.Y)

	// C = 2*Z1^2
	fp.Square(&C, &p.Z)
	fp.Double(&C, &C)

	// D = a*A
	fp.Mul(&D, &A, &c.A)

	// E = (X1+Y1)^2-A-B
	fp.Add(&E, &p.X, &p.Y)
	fp.Square(&E, &E)
	fp.Sub(&E, &E, &A)
	fp.Sub(&E, &E, &B)

	// G = D+B, F = G-C, H = D-B
	fp.Add(&G, &D, &B)
	fp.Sub(&F, &G, &C)
	fp.Sub(&H, &D, &B)

	// X3 = E*F, Y3 = G*H, T3 = E*H, Z3 = F*G
	fp.Mul(&p.X, &E, &F)
	fp.Mul(&p.Y, &G, &H)
	fp.Mul(&p.T, &E, &H)
	fp.Mul(&p.Z, &F, &G)

	return p
}

// ScalarMul sets p = scalar·a by double-and-add over the big-endian bits
// of scalar with leading zeros skipped, and returns p.
func (p *Extended) ScalarMul(c *Curve, a *Extended, scalar arith.Uint) *Extended {
	res := c.Identity()
	base := *a
	for bit := range scalar.BitsBETrimmed() {
		res.Double(c)
		if bit {
			res.Add(c, &base)
		}
	}
	return p.Set(&res)
}

// ScalarMulMixed sets p = scalar·a for an affine base.
func (p *Extended) ScalarMulMixed(c *Curve, a *Affine, scalar arith.Uint) *Extended {
	res := c.Identity()
	base := *a
	for bit := range scalar.BitsBETrimmed() {
		res.Double(c)
		if bit {
			res.AddMixed(c, &base)
		}
	}
	return p.Set(&res)
}

// ClearCofactor multiplies p by the curve cofactor.
func (p *Extended) ClearCofactor(c *Curve, a *Extended) *Extended {
	return p.ScalarMul(c, a, c.Cofactor)
}

// IsOnCurve reports whether a satisfies a·x² + y² = 1 + d·x²·y².
func (c *Curve) IsOnCurve(a *Affine) bool {
	fp := c.Fp
	var x2, y2, lhs, rhs field.Element
	fp.Square(&x2, &a.X)
	fp.Square(&y2, &a.Y)
	fp.Mul(&lhs, &x2, &c.A)
	fp.Add(&lhs, &lhs, &y2)
	fp.Mul(&rhs, &x2, &y2)
	fp.Mul(&rhs, &rhs, &c.D)
	one := fp.One()
	fp.Add(&rhs, &rhs, &one)
	return lhs.Equal(&rhs)
}

// IsInSubGroup reports whether p lies in the prime-order subgroup.
func (c *Curve) IsInSubGroup(p *Extended) bool {
	var t Extended
	t.ScalarMul(c, p, c.Fr.Modulus)
	return t.IsIdentity(c)
}

// NewAffine builds an affine point from coordinates, panicking if the
// point is off-curve or outside the prime-order subgroup.
func (c *Curve) NewAffine(x, y field.Element) Affine {
	a := Affine{X: x, Y: y}
	if !c.IsOnCurve(&a) {
		panic(fmt.Sprintf("twistededwards: point not on curve %s", c.Name))
	}
	var e Extended
	e.FromAffine(c, &a)
	if !c.IsInSubGroup(&e) {
		panic(fmt.Sprintf("twistededwards: point not in prime-order subgroup of %s", c.Name))
	}
	return a
}

// NewAffineUnchecked builds an affine point without any validation.
func (c *Curve) NewAffineUnchecked(x, y field.Element) Affine {
	return Affine{X: x, Y: y}
}

// Equal reports whether two affine points are equal.
func (a *Affine) Equal(b *Affine) bool {
	return a.X.Equal(&b.X) && a.Y.Equal(&b.Y)
}
