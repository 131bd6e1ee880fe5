package rijndael

import (
	"git.gammaspectra.live/P2Pool/square/gf"
	"git.gammaspectra.live/P2Pool/square/types"
)

const (
	BlockSize = types.BlockSize
	KeySize   = types.BlockSize

	DefaultRounds = 10
)

// MixMatrix FIPS-197 section 5.1.3, applied to each state column
var MixMatrix = gf.NewMatrix([][]gf.Element{
	{2, 3, 1, 1},
	{1, 2, 3, 1},
	{1, 1, 2, 3},
	{3, 1, 1, 2},
})

// InvMixMatrix FIPS-197 section 5.3.3
var InvMixMatrix = gf.NewMatrix([][]gf.Element{
	{14, 11, 13, 9},
	{9, 14, 11, 13},
	{13, 9, 14, 11},
	{11, 13, 9, 14},
})

// Rcon round constant word for round i: x^(i-1) in the first byte.
// Powers are taken in the field, so Rcon(0) is x⁻¹ = 0x8d and the sequence repeats every 51 rounds.
func Rcon(i int) Word {
	return Word{byte(gf.X.Pow(i - 1)), 0, 0, 0}
}
