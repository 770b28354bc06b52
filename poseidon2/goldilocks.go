package poseidon2

import (
	"sync"

	"github.com/hashbeam/crypto/field"
)

var (
	goldilocks12Once   sync.Once
	goldilocks12Params *Params
)

// Goldilocks12 returns the published width-12 Poseidon2 parameter set
// over the Goldilocks field: degree-7 S-box, 8 external and 22 internal
// rounds. The capacity is four 64-bit lanes.
func Goldilocks12() *Params {
	goldilocks12Once.Do(func() {
		f := field.Goldilocks()
		diag := []field.Element{
			f.MustFromHex("c3b6c08e23ba9300"),
			f.MustFromHex("d84b5de94a324fb6"),
			f.MustFromHex("0d0c371c5b35b84f"),
			f.MustFromHex("7964f570e7188037"),
			f.MustFromHex("5daf18bbd996604b"),
			f.MustFromHex("6743bc47b9595257"),
			f.MustFromHex("5528b9362c59bb70"),
			f.MustFromHex("ac45e25b7127b68b"),
			f.MustFromHex("a2077d7dfbb606b5"),
			f.MustFromHex("f3faac6faee378ae"),
			f.MustFromHex("0c6388b51545e883"),
			f.MustFromHex("d27dbb6944917b60"),
		}
		rc := [][]field.Element{
			{
				f.MustFromHex("13dcf33aba214f46"),
				f.MustFromHex("30b3b654a1da6d83"),
				f.MustFromHex("1fc634ada6159b56"),
				f.MustFromHex("937459964dc03466"),
				f.MustFromHex("edd2ef2ca7949924"),
				f.MustFromHex("ede9affde0e22f68"),
				f.MustFromHex("8515b9d6bac9282d"),
				f.MustFromHex("6b5c07b4e9e900d8"),
				f.MustFromHex("1ec66368838c8a08"),
				f.MustFromHex("9042367d80d1fbab"),
				f.MustFromHex("400283564a3c3799"),
				f.MustFromHex("4a00be0466bca75e"),
			},
			{
				f.MustFromHex("7913beee58e3817f"),
				f.MustFromHex("f545e88532237d90"),
				f.MustFromHex("22f8cb8736042005"),
				f.MustFromHex("6f04990e247a2623"),
				f.MustFromHex("fe22e87ba37c38cd"),
				f.MustFromHex("d20e32c85ffe2815"),
				f.MustFromHex("117227674048fe73"),
				f.MustFromHex("4e9fb7ea98a6b145"),
				f.MustFromHex("e0866c232b8af08b"),
				f.MustFromHex("00bbc77916884964"),
				f.MustFromHex("7031c0fb990d7116"),
				f.MustFromHex("240a9e87cf35108f"),
			},
			{
				f.MustFromHex("2e6363a5a12244b3"),
				f.MustFromHex("5e1c3787d1b5011c"),
				f.MustFromHex("4132660e2a196e8b"),
				f.MustFromHex("3a013b648d3d4327"),
				f.MustFromHex("f79839f49888ea43"),
				f.MustFromHex("fe85658ebafe1439"),
				f.MustFromHex("b6889825a14240bd"),
				f.MustFromHex("578453605541382b"),
				f.MustFromHex("4508cda8f6b63ce9"),
				f.MustFromHex("9c3ef35848684c91"),
				f.MustFromHex("0812bde23c87178c"),
				f.MustFromHex("fe49638f7f722c14"),
			},
			{
				f.MustFromHex("8e3f688ce885cbf5"),
				f.MustFromHex("b8e110acf746a87d"),
				f.MustFromHex("b4b2e8973a6dabef"),
				f.MustFromHex("9e714c5da3d462ec"),
				f.MustFromHex("6438f9033d3d0c15"),
				f.MustFromHex("24312f7cf1a27199"),
				f.MustFromHex("23f843bb47acbf71"),
				f.MustFromHex("9183f11a34be9f01"),
				f.MustFromHex("839062fbb9d45dbf"),
				f.MustFromHex("24b56e7e6c2e43fa"),
				f.MustFromHex("e1683da61c962a72"),
				f.MustFromHex("a95c63971a19bfa7"),
			},
			{
				f.MustFromHex("4adf842aa75d4316"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("f8fbb871aa4ab4eb"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("68e85b6eb2dd6aeb"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("07a0b06b2d270380"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("d94e0228bd282de4"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("8bdd91d3250c5278"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("209c68b88bba778f"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("b5e18cdab77f3877"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("b296a3e808da93fa"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("8370ecbda11a327e"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("3f9075283775dad8"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("b78095bb23c6aa84"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("3f36b9fe72ad4e5f"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("69bc96780b10b553"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("3f1d341f2eb7b881"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("4e939e9815838818"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("da366b3ae2a31604"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("bc89db1e7287d509"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("6102f411f9ef5659"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("58725c5e7ac1f0ab"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("0df5856c798883e7"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("f7bb62a8da4c961b"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
				f.MustFromHex("0000000000000000"),
			},
			{
				f.MustFromHex("c68be7c94882a24d"),
				f.MustFromHex("af996d5d5cdaedd9"),
				f.MustFromHex("9717f025e7daf6a5"),
				f.MustFromHex("6436679e6e7216f4"),
				f.MustFromHex("8a223d99047af267"),
				f.MustFromHex("bb512e35a133ba9a"),
				f.MustFromHex("fbbf44097671aa03"),
				f.MustFromHex("f04058ebf6811e61"),
				f.MustFromHex("5cca84703fac7ffb"),
				f.MustFromHex("9b55c7945de6469f"),
				f.MustFromHex("8e05bf09808e934f"),
				f.MustFromHex("2ea900de876307d7"),
			},
			{
				f.MustFromHex("7748fff2b38dfb89"),
				f.MustFromHex("6b99a676dd3b5d81"),
				f.MustFromHex("ac4bb7c627cf7c13"),
				f.MustFromHex("adb6ebe5e9e2f5ba"),
				f.MustFromHex("2d33378cafa24ae3"),
				f.MustFromHex("1e5b73807543f8c2"),
				f.MustFromHex("09208814bfebb10f"),
				f.MustFromHex("782e64b6bb5b93dd"),
				f.MustFromHex("add5a48eac90b50f"),
				f.MustFromHex("add4c54c736ea4b1"),
				f.MustFromHex("d58dbb86ed817fd8"),
				f.MustFromHex("6d5ed1a533f34ddd"),
			},
			{
				f.MustFromHex("28686aa3e36b7cb9"),
				f.MustFromHex("591abd3476689f36"),
				f.MustFromHex("047d766678f13875"),
				f.MustFromHex("a2a11112625f5b49"),
				f.MustFromHex("21fd10a3f8304958"),
				f.MustFromHex("f9b40711443b0280"),
				f.MustFromHex("d2697eb8b2bde88e"),
				f.MustFromHex("3493790b51731b3f"),
				f.MustFromHex("11caf9dd73764023"),
				f.MustFromHex("7acfb8f72878164e"),
				f.MustFromHex("744ec4db23cefc26"),
				f.MustFromHex("1e00e58f422c6340"),
			},
			{
				f.MustFromHex("21dd28d906a62dda"),
				f.MustFromHex("f32a46ab5f465b5f"),
				f.MustFromHex("bfce13201f3f7e6b"),
				f.MustFromHex("f30d2e7adb5304e2"),
				f.MustFromHex("ecdf4ee4abad48e9"),
				f.MustFromHex("f94e82182d395019"),
				f.MustFromHex("4ee52e3744d887c5"),
				f.MustFromHex("a1341c7cac0083b2"),
				f.MustFromHex("2302fb26c30c834a"),
				f.MustFromHex("aea3c587273bf7d3"),
				f.MustFromHex("f798e24961823ec7"),
				f.MustFromHex("962deba3e9a2cd94"),
			},
		}
		goldilocks12Params = NewParams(f, 12, 7, 8, 22, 4, diag, rc)
	})
	return goldilocks12Params
}
