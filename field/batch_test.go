package field

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestBatchInvert(t *testing.T) {
	p := BN254Scalar()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("matches element-wise inversion, zeros untouched", prop.ForAll(
		func(vs []Element) bool {
			// sprinkle zeros
			if len(vs) > 2 {
				vs[0] = Element{}
				vs[len(vs)/2] = Element{}
			}
			want := make([]Element, len(vs))
			for i := range vs {
				if vs[i].IsZero() {
					continue
				}
				p.Inverse(&want[i], &vs[i])
			}
			got := make([]Element, len(vs))
			copy(got, vs)
			p.BatchInvert(got)
			for i := range got {
				if !got[i].Equal(&want[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genElement(p)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBatchInvertEdgeCases(t *testing.T) {
	p := Vesta()

	// empty and all-zero slices are no-ops
	p.BatchInvert(nil)

	zeros := make([]Element, 3)
	p.BatchInvert(zeros)
	for i := range zeros {
		require.True(t, zeros[i].IsZero())
	}

	// single element
	v := []Element{p.MustFromDecimal("2")}
	p.BatchInvert(v)
	var two, r Element
	two = p.MustFromDecimal("2")
	p.Mul(&r, &v[0], &two)
	one := p.One()
	require.Equal(t, one, r)
}
