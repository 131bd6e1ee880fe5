package square

import (
	"git.gammaspectra.live/P2Pool/square/gf"
	"git.gammaspectra.live/P2Pool/square/sbox"
	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
)

// ReverseKeyExpansion recovers the master key from the round key of round rounds by running
// the key schedule recurrence backwards.
func ReverseKeyExpansion(roundKey types.Block, rounds int) types.Block {
	if rounds < 0 {
		utils.Panicf("square: invalid round count %d", rounds)
	}

	key := roundKey
	for r := rounds; r > 0; r-- {
		var prev types.Block

		// column i of the next key is column i-1 of it xor column i of the previous key
		for i := 3; i > 0; i-- {
			a, b := key.Column(i-1), key.Column(i)
			prev.SetColumn(i, [4]byte{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]})
		}

		// column 0 went through the rotated, substituted last column and the round constant
		last := prev.Column(3)
		first := key.Column(0)
		rcon := byte(gf.X.Pow(r - 1))
		prev.SetColumn(0, [4]byte{
			first[0] ^ sbox.Forward[last[1]] ^ rcon,
			first[1] ^ sbox.Forward[last[2]],
			first[2] ^ sbox.Forward[last[3]],
			first[3] ^ sbox.Forward[last[0]],
		})

		key = prev
	}
	return key
}
