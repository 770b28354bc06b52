package twistededwards

import (
	"sync"

	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/field"
)

var (
	curve25519Once sync.Once
	curve25519     *Curve

	jubjubOnce sync.Once
	jubjub     *Curve

	babyJubjubOnce sync.Once
	babyJubjub     *Curve

	bandersnatchOnce sync.Once
	bandersnatch     *Curve
)

// negOne returns -1 in the given field.
func negOne(fp *field.Params) field.Element {
	var z field.Element
	one := fp.One()
	fp.Neg(&z, &one)
	return z
}

// Curve25519 returns curve25519 in its Twisted-Edwards form (edwards25519,
// a = -1).
//
// https://www.rfc-editor.org/rfc/rfc7748
func Curve25519() *Curve {
	curve25519Once.Do(func() {
		fp := field.NewParams("curve25519-base",
			"57896044618658097711785492504343953926634992332820282019728792003956564819949", "2")
		fr := field.NewParams("curve25519-scalar",
			"7237005577332262213973186563042994240857116359379907606001950938285454250989", "2")
		c := &Curve{
			Name: "curve25519",
			Fp:   fp,
			Fr:   fr,
			A:    negOne(fp),
			D: fp.MustFromDecimal(
				"37095705934669439343138083508754565189542113879843219016388785533085940283555"),
			Cofactor: arith.FromUint64(8),
			CofactorInv: fr.MustFromDecimal(
				"2713877091499598330239944961141122840321418634767465352250731601857045344121"),
		}
		c.Gen = c.NewAffineUnchecked(
			fp.MustFromDecimal("15112221349535400772501151409588531511454012693041857206046113283949847762202"),
			fp.MustFromDecimal("46316835694926478169428394003475163141307993866256225615783033603165251855960"),
		)
		curve25519 = c
	})
	return curve25519
}

// Jubjub returns the Jubjub curve over the BLS12-381 scalar field.
//
// https://zips.z.cash/protocol/protocol.pdf
func Jubjub() *Curve {
	jubjubOnce.Do(func() {
		fp := field.NewParams("jubjub-base",
			"52435875175126190479447740508185965837690552500527637822603658699938581184513", "5")
		fr := field.NewParams("jubjub-scalar",
			"6554484396890773809930967563523245729705921265872317281365359162392183254199", "5")
		c := &Curve{
			Name: "jubjub",
			Fp:   fp,
			Fr:   fr,
			A:    negOne(fp),
			D: fp.MustFromDecimal(
				"19257038036680949359750312669786877991949435402254120286184196891950884077233"),
			Cofactor: arith.FromUint64(8),
			CofactorInv: fr.MustFromDecimal(
				"819310549611346726241370945440405716213240158234039660170669895299022906775"),
		}
		c.Gen = c.NewAffineUnchecked(
			fp.MustFromDecimal("8076246640662884909881801758704306714034609987455869804520522091855516602923"),
			fp.MustFromDecimal("13262374693698910701929044844600465831413122818447359594527400194675274060458"),
		)
		jubjub = c
	})
	return jubjub
}

// BabyJubjub returns the Baby Jubjub curve over the BN254 scalar field.
// The stored generator is the full-group generator G of EIP-2494; the
// prime-order base point is 8·G.
//
// https://eips.ethereum.org/EIPS/eip-2494
func BabyJubjub() *Curve {
	babyJubjubOnce.Do(func() {
		fp := field.NewParams("babyjubjub-base",
			"21888242871839275222246405745257275088548364400416034343698204186575808495617", "2")
		fr := field.NewParams("babyjubjub-scalar",
			"2736030358979909402780800718157159386076813972158567259200215660948447373041", "2")
		c := &Curve{
			Name:     "babyjubjub",
			Fp:       fp,
			Fr:       fr,
			A:        fp.MustFromDecimal("168700"),
			D:        fp.MustFromDecimal("168696"),
			Cofactor: arith.FromUint64(8),
			CofactorInv: fr.MustFromDecimal(
				"2394026564107420727433200628387514462817212225638746351800188703329891451411"),
		}
		c.Gen = c.NewAffineUnchecked(
			fp.MustFromDecimal("995203441582195749578291179787384436505546430278305826713579947235728471134"),
			fp.MustFromDecimal("5472060717959818805561601436314318772137091100104008585924551046643952123905"),
		)
		babyJubjub = c
	})
	return babyJubjub
}

// Bandersnatch returns the Bandersnatch curve over the BLS12-381 scalar
// field, a = -5.
//
// https://eprint.iacr.org/2021/1152
func Bandersnatch() *Curve {
	bandersnatchOnce.Do(func() {
		fp := field.NewParams("bandersnatch-base",
			"52435875175126190479447740508185965837690552500527637822603658699938581184513", "5")
		fr := field.NewParams("bandersnatch-scalar",
			"13108968793781547619861935127046491459309155893440570251786403306729687672801", "5")
		five := fp.MustFromDecimal("5")
		var a field.Element
		fp.Neg(&a, &five)
		c := &Curve{
			Name: "bandersnatch",
			Fp:   fp,
			Fr:   fr,
			A:    a,
			D: fp.MustFromDecimal(
				"45022363124591815672509500913686876175488063829319466900776701791074614335719"),
			Cofactor: arith.FromUint64(4),
			CofactorInv: fr.MustFromDecimal(
				"9831726595336160714896451345284868594481866920080427688839802480047265754601"),
		}
		c.Gen = c.NewAffineUnchecked(
			fp.MustFromHex("0x29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18"),
			fp.MustFromHex("0x2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166"),
		)
		bandersnatch = c
	})
	return bandersnatch
}
