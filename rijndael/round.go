package rijndael

import (
	"git.gammaspectra.live/P2Pool/square/gf"
	"git.gammaspectra.live/P2Pool/square/sbox"
	"git.gammaspectra.live/P2Pool/square/types"
)

func SubBytes(state *types.Block) {
	for i, b := range state {
		state[i] = sbox.Forward[b]
	}
}

func InvSubBytes(state *types.Block) {
	for i, b := range state {
		state[i] = sbox.Inverse[b]
	}
}

// ShiftRows rotates row r left by r positions. Row r holds bytes r, r+4, r+8, r+12.
func ShiftRows(state *types.Block) {
	s := *state
	for r := 1; r < 4; r++ {
		for c := range 4 {
			state[r+4*c] = s[r+4*((c+r)%4)]
		}
	}
}

// InvShiftRows rotates row r right by r positions
func InvShiftRows(state *types.Block) {
	s := *state
	for r := 1; r < 4; r++ {
		for c := range 4 {
			state[r+4*((c+r)%4)] = s[r+4*c]
		}
	}
}

func mixColumns(state *types.Block, m gf.Matrix) {
	for c := range 4 {
		col := state.Column(c)
		res := m.Mul(gf.Vector(gf.Element(col[0]), gf.Element(col[1]), gf.Element(col[2]), gf.Element(col[3])))
		for r := range 4 {
			state[4*c+r] = byte(res.At(r, 0))
		}
	}
}

func MixColumns(state *types.Block) {
	mixColumns(state, MixMatrix)
}

func InvMixColumns(state *types.Block) {
	mixColumns(state, InvMixMatrix)
}

// AddRoundKey xor with roundKey, its own inverse
func AddRoundKey(state *types.Block, roundKey *types.Block) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}
