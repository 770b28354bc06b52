package field

import "sync"

// Shared named fields. Fields tied to a specific curve live next to that
// curve's configuration.

var (
	bn254ScalarOnce sync.Once
	bn254Scalar     *Params

	vestaOnce sync.Once
	vesta     *Params

	pallasOnce sync.Once
	pallas     *Params

	bls12381ScalarOnce sync.Once
	bls12381Scalar     *Params

	goldilocksOnce sync.Once
	goldilocks     *Params

	babyBearOnce sync.Once
	babyBear     *Params
)

// BN254Scalar returns the scalar field of BN254, the field Baby Jubjub is
// defined over.
func BN254Scalar() *Params {
	bn254ScalarOnce.Do(func() {
		bn254Scalar = NewParams("bn254-scalar",
			"21888242871839275222246405745257275088548364400416034343698204186575808495617", "7")
	})
	return bn254Scalar
}

// Vesta returns the Vesta base field.
func Vesta() *Params {
	vestaOnce.Do(func() {
		vesta = NewParams("vesta",
			"28948022309329048855892746252171976963363056481941647379679742748393362948097", "5")
	})
	return vesta
}

// Pallas returns the Pallas base field.
func Pallas() *Params {
	pallasOnce.Do(func() {
		pallas = NewParams("pallas",
			"28948022309329048855892746252171976963363056481941560715954676764349967630337", "5")
	})
	return pallas
}

// BLS12381Scalar returns the scalar field of BLS12-381.
func BLS12381Scalar() *Params {
	bls12381ScalarOnce.Do(func() {
		bls12381Scalar = NewParams("bls12381-scalar",
			"52435875175126190479447740508185965837690552500527637822603658699938581184513", "7")
	})
	return bls12381Scalar
}

// Goldilocks returns the 64-bit Goldilocks field 2^64 - 2^32 + 1.
func Goldilocks() *Params {
	goldilocksOnce.Do(func() {
		goldilocks = NewParams("goldilocks", "18446744069414584321", "7")
	})
	return goldilocks
}

// BabyBear returns the 31-bit BabyBear field 15·2^27 + 1.
func BabyBear() *Params {
	babyBearOnce.Do(func() {
		babyBear = NewParams("babybear", "2013265921", "31")
	})
	return babyBear
}
