package hash

import (
	"encoding/hex"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestKeccak256KnownAnswers(t *testing.T) {
	b := Keccak256{}

	empty := One(b, nil)
	require.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(empty[:]))

	hello := One(b, []byte("hello"))
	require.Equal(t,
		"1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8",
		hex.EncodeToString(hello[:]))
}

func TestKeccak256IncrementalUpdates(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("split updates match one full update", prop.ForAll(
		func(data []byte, split uint) bool {
			b := Keccak256{}
			at := 0
			if len(data) > 0 {
				at = int(split % uint(len(data)))
			}

			h := b.New()
			h.Update(data[:at])
			h.Update(data[at:])

			return h.Finalize() == One(b, data)
		},
		gen.SliceOf(gen.UInt8()), gen.UInt(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPairHelpers(t *testing.T) {
	b := Keccak256{}

	var x, y [32]byte
	x[0] = 1
	y[0] = 2

	// Pair is the hash of the concatenation
	concat := append(append([]byte{}, x[:]...), y[:]...)
	require.Equal(t, One(b, concat), Pair(b, x, y))
	require.NotEqual(t, Pair(b, x, y), Pair(b, y, x))

	// CommutativePair sorts first
	require.Equal(t, CommutativePair(b, x, y), CommutativePair(b, y, x))
	require.Equal(t, Pair(b, x, y), CommutativePair(b, y, x))

	// equal inputs hash as (x, x)
	require.Equal(t, Pair(b, x, x), CommutativePair(b, x, x))
}
