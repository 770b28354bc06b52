package sw

import (
	"sync"

	"github.com/hashbeam/crypto/arith"
	"github.com/hashbeam/crypto/field"
)

var (
	starknetOnce sync.Once
	starknet     *Curve

	secp256k1Once sync.Once
	secp256k1     *Curve
)

// Starknet returns the Stark curve y² = x³ + x + b over the Starknet base
// field.
//
// https://docs.starkware.co/starkex/crypto/stark-curve.html
func Starknet() *Curve {
	starknetOnce.Do(func() {
		fp := field.NewParams("starknet-base",
			"3618502788666131213697322783095070105623107215331596699973092056135872020481", "3")
		fr := field.NewParams("starknet-scalar",
			"3618502788666131213697322783095070105526743751716087489154079457884512865583", "5")
		c := &Curve{
			Name: "starknet",
			Fp:   fp,
			Fr:   fr,
			A:    fp.One(),
			B: fp.MustFromDecimal(
				"3141592653589793238462643383279502884197169399375105820974944592307816406665"),
			Cofactor:    arith.FromUint64(1),
			CofactorInv: fr.One(),
		}
		c.Gen = c.NewAffineUnchecked(
			fp.MustFromDecimal("874739451078007766457464989774322083649278607533249481151382481072868806602"),
			fp.MustFromDecimal("152666792071518830868575557812948353041420400780739481342941381225525861407"),
		)
		starknet = c
	})
	return starknet
}

// Secp256k1 returns the secp256k1 curve y² = x³ + 7.
//
// https://www.secg.org/sec2-v2.pdf
func Secp256k1() *Curve {
	secp256k1Once.Do(func() {
		fp := field.NewParams("secp256k1-base",
			"115792089237316195423570985008687907853269984665640564039457584007908834671663", "3")
		fr := field.NewParams("secp256k1-scalar",
			"115792089237316195423570985008687907852837564279074904382605163141518161494337", "7")
		c := &Curve{
			Name:        "secp256k1",
			Fp:          fp,
			Fr:          fr,
			A:           field.Element{},
			B:           fp.MustFromDecimal("7"),
			aIsZero:     true,
			Cofactor:    arith.FromUint64(1),
			CofactorInv: fr.One(),
		}
		c.Gen = c.NewAffineUnchecked(
			fp.MustFromDecimal("55066263022277343669578718895168534326250603453777594175500187360389116729240"),
			fp.MustFromDecimal("32670510020758816978083085130507043184471273380659243275938904335757337482424"),
		)
		secp256k1 = c
	})
	return secp256k1
}
