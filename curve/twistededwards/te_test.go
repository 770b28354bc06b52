package twistededwards

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/field"
)

// Test cases from EIP-2494.
// https://eips.ethereum.org/EIPS/eip-2494

func TestBabyJubjubAddition(t *testing.T) {
	c := BabyJubjub()
	fp := c.Fp

	p1 := c.NewAffineUnchecked(
		fp.MustFromDecimal("17777552123799933955779906779655732241715742912184938656739573121738514868268"),
		fp.MustFromDecimal("2626589144620713026669568689430873010625803728049924121243784502389097019475"))
	p2 := c.NewAffineUnchecked(
		fp.MustFromDecimal("16540640123574156134436876038791482806971768689494387082833631921987005038935"),
		fp.MustFromDecimal("20819045374670962167435360035096875258406992893633759881276124905556507972311"))
	want := c.NewAffineUnchecked(
		fp.MustFromDecimal("7916061937171219682591368294088513039687205273691143098332585753343424131937"),
		fp.MustFromDecimal("14035240266687799601661095864649209771790948434046947201833777492504781204499"))
	require.True(t, c.IsOnCurve(&p1))
	require.True(t, c.IsOnCurve(&p2))

	var e1, e2 Extended
	e1.FromAffine(c, &p1)
	e2.FromAffine(c, &p2)
	e1.Add(c, &e2)

	var got Affine
	got.FromExtended(c, &e1)
	require.True(t, got.Equal(&want))

	// mixed addition agrees
	e1.FromAffine(c, &p1)
	e1.AddMixed(c, &p2)
	got.FromExtended(c, &e1)
	require.True(t, got.Equal(&want))
}

func TestBabyJubjubDoubling(t *testing.T) {
	c := BabyJubjub()
	fp := c.Fp

	p1 := c.NewAffineUnchecked(
		fp.MustFromDecimal("17777552123799933955779906779655732241715742912184938656739573121738514868268"),
		fp.MustFromDecimal("2626589144620713026669568689430873010625803728049924121243784502389097019475"))
	want := c.NewAffineUnchecked(
		fp.MustFromDecimal("6890855772600357754907169075114257697580319025794532037257385534741338397365"),
		fp.MustFromDecimal("4338620300185947561074059802482547481416142213883829469920100239455078257889"))

	// the unified formula handles p + p
	var e, e2 Extended
	e.FromAffine(c, &p1)
	e2.FromAffine(c, &p1)
	e.Add(c, &e2)

	var got Affine
	got.FromExtended(c, &e)
	require.True(t, got.Equal(&want))

	e.FromAffine(c, &p1)
	e.Double(c)
	got.FromExtended(c, &e)
	require.True(t, got.Equal(&want))
}

func TestBabyJubjubIdentity(t *testing.T) {
	c := BabyJubjub()

	id := c.Identity()
	require.True(t, id.IsIdentity(c))

	dbl := id
	dbl.Double(c)
	require.True(t, dbl.IsIdentity(c))

	var aff Affine
	aff.FromExtended(c, &dbl)
	idAff := c.IdentityAffine()
	require.True(t, aff.Equal(&idAff))
}

func TestBabyJubjubMembership(t *testing.T) {
	c := BabyJubjub()
	fp := c.Fp

	onCurve := Affine{Y: fp.One()} // (0, 1)
	require.True(t, c.IsOnCurve(&onCurve))

	offCurve := Affine{X: fp.One()} // (1, 0)
	require.False(t, c.IsOnCurve(&offCurve))
}

func TestBabyJubjubBasePoint(t *testing.T) {
	c := BabyJubjub()
	fp := c.Fp

	b := c.NewAffine(
		fp.MustFromDecimal("5299619240641551281634865583518297030282874472190772894086521144482721001553"),
		fp.MustFromDecimal("16950150798460657717958625567821834550301663161624707787222815936182638968203"))

	// B = 8·G, the cofactor-cleared full-group generator
	g := c.Generator()
	var cleared Extended
	cleared.ClearCofactor(c, &g)

	var got Affine
	got.FromExtended(c, &cleared)
	require.True(t, got.Equal(&b))

	// l·B is the identity
	var e, r Extended
	e.FromAffine(c, &b)
	r.ScalarMul(c, &e, c.Fr.Modulus)
	require.True(t, r.IsIdentity(c))
	require.True(t, c.IsInSubGroup(&e))
}

func TestGeneratorOrder(t *testing.T) {
	for _, c := range []*Curve{Curve25519(), Jubjub(), Bandersnatch()} {
		t.Run(c.Name, func(t *testing.T) {
			require.True(t, c.IsOnCurve(&c.Gen))

			g := c.Generator()
			require.True(t, c.IsInSubGroup(&g))

			var r Extended
			r.ScalarMul(c, &g, c.Fr.Modulus)
			require.True(t, r.IsIdentity(c))
		})
	}
}

func TestCofactorInverse(t *testing.T) {
	for _, c := range []*Curve{Curve25519(), Jubjub(), BabyJubjub(), Bandersnatch()} {
		t.Run(c.Name, func(t *testing.T) {
			var cof field.Element
			c.Fr.FromUint64(&cof, c.Cofactor[0])
			var r field.Element
			c.Fr.Mul(&r, &cof, &c.CofactorInv)
			one := c.Fr.One()
			require.True(t, r.Equal(&one))
		})
	}
}

func TestGroupLaws(t *testing.T) {
	for _, c := range []*Curve{Curve25519(), Jubjub(), BabyJubjub(), Bandersnatch()} {
		t.Run(c.Name, func(t *testing.T) {
			parameters := gopter.DefaultTestParameters()
			parameters.MinSuccessfulTests = 10

			properties := gopter.NewProperties(parameters)

			properties.Property("(a+b)G == aG + bG", prop.ForAll(
				func(a, b uint64) bool {
					ka, kb := arith.FromUint64(a), arith.FromUint64(b)
					sum, carry := arith.AddCarry(&ka, &kb)
					if carry != 0 {
						return true
					}
					var l, ra, rb Extended
					l.ScalarMulMixed(c, &c.Gen, sum)
					ra.ScalarMulMixed(c, &c.Gen, ka)
					rb.ScalarMulMixed(c, &c.Gen, kb)
					ra.Add(c, &rb)
					return l.Equal(c, &ra)
				},
				gen.UInt64(), gen.UInt64(),
			))

			properties.Property("P - P == identity", prop.ForAll(
				func(k uint64) bool {
					var p Extended
					p.ScalarMulMixed(c, &c.Gen, arith.FromUint64(k))
					var r Extended
					r.Set(&p)
					r.Sub(c, &p)
					return r.IsIdentity(c)
				},
				gen.UInt64(),
			))

			properties.TestingRun(t, gopter.ConsoleReporter(false))
		})
	}
}

func TestNewAffineValidates(t *testing.T) {
	c := BabyJubjub()
	fp := c.Fp

	require.Panics(t, func() { c.NewAffine(fp.One(), fp.Zero()) })

	// the full-group generator is on curve but outside the prime-order
	// subgroup
	require.Panics(t, func() { c.NewAffine(c.Gen.X, c.Gen.Y) })
}
