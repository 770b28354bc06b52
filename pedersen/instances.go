package pedersen

import (
	"sync"

	"github.com/hashbeam/crypto/curve/sw"
)

var (
	starknetOnce sync.Once
	starknet     *Params
)

// Starknet returns the Starknet Pedersen parameter set.
//
// https://docs.starkware.co/starkex/crypto/pedersen-hash-function.html
func Starknet() *Params {
	starknetOnce.Do(func() {
		c := sw.Starknet()
		fp := c.Fp
		starknet = NewParams(c,
			c.NewAffineUnchecked(
				fp.MustFromDecimal("2089986280348253421170679821480865132823066470938446095505822317253594081284"),
				fp.MustFromDecimal("1713931329540660377023406109199410414810705867260802078187082345529207694986")),
			c.NewAffineUnchecked(
				fp.MustFromDecimal("996781205833008774514500082376783249102396023663454813447423147977397232763"),
				fp.MustFromDecimal("1668503676786377725805489344771023921079126552019160156920634619255970485781")),
			c.NewAffineUnchecked(
				fp.MustFromDecimal("2251563274489750535117886426533222435294046428347329203627021249169616184184"),
				fp.MustFromDecimal("1798716007562728905295480679789526322175868328062420237419143593021674992973")),
			c.NewAffineUnchecked(
				fp.MustFromDecimal("2138414695194151160943305727036575959195309218611738193261179310511854807447"),
				fp.MustFromDecimal("113410276730064486255102093846540133784865286929052426931474106396135072156")),
			c.NewAffineUnchecked(
				fp.MustFromDecimal("2379962749567351885752724891227938183011949129833673362440656643086021394946"),
				fp.MustFromDecimal("776496453633298175483985398648758586525933812536653089401905292063708816422")),
			248, 252,
		)
	})
	return starknet
}
