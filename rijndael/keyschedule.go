package rijndael

import (
	"git.gammaspectra.live/P2Pool/square/sbox"
	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
)

// Word one state column or key schedule word
type Word [4]byte

func (w Word) Xor(other Word) Word {
	return Word{w[0] ^ other[0], w[1] ^ other[1], w[2] ^ other[2], w[3] ^ other[3]}
}

// RotWord rotates left by one byte
func RotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

// InvRotWord rotates right by one byte
func InvRotWord(w Word) Word {
	return Word{w[3], w[0], w[1], w[2]}
}

// SubWord applies the S-box to each byte in w
func SubWord(w Word) Word {
	return Word{sbox.Forward[w[0]], sbox.Forward[w[1]], sbox.Forward[w[2]], sbox.Forward[w[3]]}
}

func InvSubWord(w Word) Word {
	return Word{sbox.Inverse[w[0]], sbox.Inverse[w[1]], sbox.Inverse[w[2]], sbox.Inverse[w[3]]}
}

// ExpandKey returns rounds + 1 round keys, the first one being key itself
func ExpandKey(key types.Block, rounds int) []types.Block {
	if rounds < 0 {
		utils.Panicf("rijndael: invalid round count %d", rounds)
	}
	roundKeys := make([]types.Block, 1, rounds+1)
	roundKeys[0] = key

	for r := 1; r <= rounds; r++ {
		prev := &roundKeys[r-1]

		var next types.Block
		w := SubWord(RotWord(prev.Column(3))).Xor(Rcon(r)).Xor(prev.Column(0))
		next.SetColumn(0, w)
		for i := 1; i < 4; i++ {
			w = w.Xor(prev.Column(i))
			next.SetColumn(i, w)
		}
		roundKeys = append(roundKeys, next)
	}
	return roundKeys
}
