package arith

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func wide(hi, lo uint64) *big.Int {
	z := new(big.Int).SetUint64(hi)
	z.Lsh(z, 64)
	return z.Add(z, new(big.Int).SetUint64(lo))
}

func TestMacMatchesBigInt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("Mac(a, b, c) == a + b*c", prop.ForAll(
		func(a, b, c uint64) bool {
			lo, carry := Mac(a, b, c)
			want := new(big.Int).SetUint64(a)
			want.Add(want, new(big.Int).Mul(new(big.Int).SetUint64(b), new(big.Int).SetUint64(c)))
			return wide(carry, lo).Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("CarryingMac(a, b, c, d) == a + b*c + d", prop.ForAll(
		func(a, b, c, d uint64) bool {
			lo, carry := CarryingMac(a, b, c, d)
			want := new(big.Int).SetUint64(a)
			want.Add(want, new(big.Int).Mul(new(big.Int).SetUint64(b), new(big.Int).SetUint64(c)))
			want.Add(want, new(big.Int).SetUint64(d))
			return wide(carry, lo).Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("MacDiscard keeps only the carry of Mac", prop.ForAll(
		func(a, b, c uint64) bool {
			_, carry := Mac(a, b, c)
			return MacDiscard(a, b, c) == carry
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMulWideGenericMatchesMulWide(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("generic 32-bit path is bit-identical", prop.ForAll(
		func(a, b uint64) bool {
			hi, lo := MulWide(a, b)
			ghi, glo := mulWideGeneric(a, b)
			return hi == ghi && lo == glo
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAdcSbb(t *testing.T) {
	sum, c := Adc(^uint64(0), 1, 0)
	require.Equal(t, uint64(0), sum)
	require.Equal(t, uint64(1), c)

	sum, c = Adc(^uint64(0), ^uint64(0), 1)
	require.Equal(t, ^uint64(0), sum)
	require.Equal(t, uint64(1), c)

	diff, b := Sbb(0, 1, 0)
	require.Equal(t, ^uint64(0), diff)
	require.Equal(t, uint64(1), b)

	diff, b = Sbb(5, 3, 1)
	require.Equal(t, uint64(1), diff)
	require.Equal(t, uint64(0), b)
}
