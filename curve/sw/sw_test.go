package sw

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/hashbeam/crypto/arith"
)

// k·G for k = 1..24, x then y.
// https://crypto.stackexchange.com/questions/784
var secp256k1MulVectors = [][2]string{
	{"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"},
	{"C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5", "1AE168FEA63DC339A3C58419466CEAEEF7F632653266D0E1236431A950CFE52A"},
	{"F9308A019258C31049344F85F89D5229B531C845836F99B08601F113BCE036F9", "388F7B0F632DE8140FE337E62A37F3566500A99934C2231B6CB9FD7584B8E672"},
	{"E493DBF1C10D80F3581E4904930B1404CC6C13900EE0758474FA94ABE8C4CD13", "51ED993EA0D455B75642E2098EA51448D967AE33BFBDFE40CFE97BDC47739922"},
	{"2F8BDE4D1A07209355B4A7250A5C5128E88B84BDDC619AB7CBA8D569B240EFE4", "D8AC222636E5E3D6D4DBA9DDA6C9C426F788271BAB0D6840DCA87D3AA6AC62D6"},
	{"FFF97BD5755EEEA420453A14355235D382F6472F8568A18B2F057A1460297556", "AE12777AACFBB620F3BE96017F45C560DE80F0F6518FE4A03C870C36B075F297"},
	{"5CBDF0646E5DB4EAA398F365F2EA7A0E3D419B7E0330E39CE92BDDEDCAC4F9BC", "6AEBCA40BA255960A3178D6D861A54DBA813D0B813FDE7B5A5082628087264DA"},
	{"2F01E5E15CCA351DAFF3843FB70F3C2F0A1BDD05E5AF888A67784EF3E10A2A01", "5C4DA8A741539949293D082A132D13B4C2E213D6BA5B7617B5DA2CB76CBDE904"},
	{"ACD484E2F0C7F65309AD178A9F559ABDE09796974C57E714C35F110DFC27CCBE", "CC338921B0A7D9FD64380971763B61E9ADD888A4375F8E0F05CC262AC64F9C37"},
	{"A0434D9E47F3C86235477C7B1AE6AE5D3442D49B1943C2B752A68E2A47E247C7", "893ABA425419BC27A3B6C7E693A24C696F794C2ED877A1593CBEE53B037368D7"},
	{"774AE7F858A9411E5EF4246B70C65AAC5649980BE5C17891BBEC17895DA008CB", "D984A032EB6B5E190243DD56D7B7B365372DB1E2DFF9D6A8301D74C9C953C61B"},
	{"D01115D548E7561B15C38F004D734633687CF4419620095BC5B0F47070AFE85A", "A9F34FFDC815E0D7A8B64537E17BD81579238C5DD9A86D526B051B13F4062327"},
	{"F28773C2D975288BC7D1D205C3748651B075FBC6610E58CDDEEDDF8F19405AA8", "0AB0902E8D880A89758212EB65CDAF473A1A06DA521FA91F29B5CB52DB03ED81"},
	{"499FDF9E895E719CFD64E67F07D38E3226AA7B63678949E6E49B241A60E823E4", "CAC2F6C4B54E855190F044E4A7B3D464464279C27A3F95BCC65F40D403A13F5B"},
	{"D7924D4F7D43EA965A465AE3095FF41131E5946F3C85F79E44ADBCF8E27E080E", "581E2872A86C72A683842EC228CC6DEFEA40AF2BD896D3A5C504DC9FF6A26B58"},
	{"E60FCE93B59E9EC53011AABC21C23E97B2A31369B87A5AE9C44EE89E2A6DEC0A", "F7E3507399E595929DB99F34F57937101296891E44D23F0BE1F32CCE69616821"},
	{"DEFDEA4CDB677750A420FEE807EACF21EB9898AE79B9768766E4FAA04A2D4A34", "4211AB0694635168E997B0EAD2A93DAECED1F4A04A95C0F6CFB199F69E56EB77"},
	{"5601570CB47F238D2B0286DB4A990FA0F3BA28D1A319F5E7CF55C2A2444DA7CC", "C136C1DC0CBEB930E9E298043589351D81D8E0BC736AE2A1F5192E5E8B061D58"},
	{"2B4EA0A797A443D293EF5CFF444F4979F06ACFEBD7E86D277475656138385B6C", "85E89BC037945D93B343083B5A1C86131A01F60C50269763B570C854E5C09B7A"},
	{"4CE119C96E2FA357200B559B2F7DD5A5F02D5290AFF74B03F3E471B273211C97", "12BA26DCB10EC1625DA61FA10A844C676162948271D96967450288EE9233DC3A"},
	{"352BBF4A4CDD12564F93FA332CE333301D9AD40271F8107181340AEF25BE59D5", "321EB4075348F534D59C18259DDA3E1F4A1B3B2E71B1039C67BD3D8BCF81998C"},
	{"421F5FC9A21065445C96FDB91C0C1E2F2431741C72713B4B99DDCB316F31E9FC", "2B90F16D11DABDB616F6DB7E225D1E14743034B37B223115DB20717AD1CD6781"},
	{"2FA2104D6B38D11B0230010559879124E42AB8DFEFF5FF29DC9CDADD4ECACC3F", "02DE1068295DD865B64569335BD5DD80181D70ECFC882648423BA76B532B7D67"},
	{"FE72C435413D33D48AC09C9161BA8B09683215439D62B7940502BDA8B202E6CE", "6851DE067FF24A68D3AB47E09D72998101DC88E36B4A9D22978ED2FBCF58C5BF"},
}

func TestSecp256k1ScalarMulVectors(t *testing.T) {
	c := Secp256k1()

	var zero Jac
	zero.ScalarMulMixed(c, &c.Gen, arith.Uint{})
	require.True(t, zero.IsIdentity())

	for i, v := range secp256k1MulVectors {
		k := arith.FromUint64(uint64(i + 1))
		var p Jac
		p.ScalarMulMixed(c, &c.Gen, k)

		var got Affine
		got.FromJacobian(c, &p)
		require.True(t, c.IsOnCurve(&got), "k=%d", i+1)

		want := c.NewAffineUnchecked(c.Fp.MustFromHex(v[0]), c.Fp.MustFromHex(v[1]))
		require.True(t, got.Equal(&want), "k=%d", i+1)
	}
}

func TestPointAdd(t *testing.T) {
	c := Secp256k1()
	g := c.Generator()

	want2G := c.NewAffineUnchecked(
		c.Fp.MustFromHex(secp256k1MulVectors[1][0]),
		c.Fp.MustFromHex(secp256k1MulVectors[1][1]))
	var want2GJac Jac
	want2GJac.FromAffine(c, &want2G)

	// G + G falls through to doubling
	sum := g
	sum.Add(c, &g)
	require.True(t, sum.Equal(c, &want2GJac))

	dbl := g
	dbl.Double(c)
	require.True(t, dbl.Equal(c, &want2GJac))

	mixed := g
	mixed.AddMixed(c, &c.Gen)
	require.True(t, mixed.Equal(c, &want2GJac))

	// G + (-G) = 0
	var neg Jac
	neg.Neg(c, &g)
	sum = g
	sum.Add(c, &neg)
	require.True(t, sum.IsIdentity())

	sum = g
	sum.Sub(c, &g)
	require.True(t, sum.IsIdentity())

	// identity handling on both sides
	id := c.Identity()
	sum = id
	sum.Add(c, &g)
	require.True(t, sum.Equal(c, &g))

	sum = g
	sum.Add(c, &id)
	require.True(t, sum.Equal(c, &g))

	negAff := c.Gen.Neg(c)
	sum = g
	sum.AddMixed(c, &negAff)
	require.True(t, sum.IsIdentity())
}

func TestScalarMulProperties(t *testing.T) {
	for _, c := range []*Curve{Secp256k1(), Starknet()} {
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
					var l, ra, rb Jac
					l.ScalarMulMixed(c, &c.Gen, sum)
					ra.ScalarMulMixed(c, &c.Gen, ka)
					rb.ScalarMulMixed(c, &c.Gen, kb)
					ra.Add(c, &rb)
					return l.Equal(c, &ra)
				},
				gen.UInt64(), gen.UInt64(),
			))

			properties.TestingRun(t, gopter.ConsoleReporter(false))
		})
	}
}

func TestStarknetCurve(t *testing.T) {
	c := Starknet()

	require.True(t, c.IsOnCurve(&c.Gen))
	g := c.Generator()
	require.True(t, c.IsInSubGroup(&g))
	require.True(t, c.CofactorIsOne())

	// |G| = r, so r·G = 0
	var p Jac
	p.ScalarMul(c, &g, c.Fr.Modulus)
	require.True(t, p.IsIdentity())

	// the a = 1 term is exercised by doubling
	dbl := g
	dbl.Double(c)
	require.True(t, c.IsInSubGroup(&dbl))
	var aff Affine
	aff.FromJacobian(c, &dbl)
	require.True(t, c.IsOnCurve(&aff))

	// cofactor 1: clearing is the identity map
	var cleared Jac
	cleared.ClearCofactor(c, &g)
	require.True(t, cleared.Equal(c, &g))
}

// Both secp256k1 moduli are exactly 256 bits wide; constructing the curve
// must derive full-width field parameters without complaint.
func TestSecp256k1Curve(t *testing.T) {
	var c *Curve
	require.NotPanics(t, func() { c = Secp256k1() })

	require.Equal(t, 256, c.Fp.BitLen())
	require.Equal(t, 256, c.Fr.BitLen())

	require.True(t, c.IsOnCurve(&c.Gen))
	g := c.Generator()
	require.True(t, c.IsInSubGroup(&g))
	require.True(t, c.CofactorIsOne())

	// |G| = r, so r·G = 0
	var p Jac
	p.ScalarMul(c, &g, c.Fr.Modulus)
	require.True(t, p.IsIdentity())
}

func TestAffineConversions(t *testing.T) {
	c := Secp256k1()

	// a point with Z != 1 converts back to the expected affine form
	g := c.Generator()
	g.Double(c)
	g.AddMixed(c, &c.Gen)

	var aff Affine
	aff.FromJacobian(c, &g)
	want := c.NewAffine(
		c.Fp.MustFromHex(secp256k1MulVectors[2][0]),
		c.Fp.MustFromHex(secp256k1MulVectors[2][1]))
	require.True(t, aff.Equal(&want))

	// the identity round-trips through the infinity flag
	id := c.Identity()
	aff.FromJacobian(c, &id)
	require.True(t, aff.Infinity)
	var back Jac
	back.FromAffine(c, &aff)
	require.True(t, back.IsIdentity())
}

func TestNewAffineValidates(t *testing.T) {
	c := Secp256k1()

	require.NotPanics(t, func() { c.NewAffine(c.Gen.X, c.Gen.Y) })
	require.Panics(t, func() { c.NewAffine(c.Gen.X, c.Gen.X) })

	bad := c.NewAffineUnchecked(c.Gen.X, c.Gen.X)
	require.False(t, c.IsOnCurve(&bad))
}
