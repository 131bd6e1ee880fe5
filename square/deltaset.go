package square

import (
	"io"

	"git.gammaspectra.live/P2Pool/square/sbox"
	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
	"lukechampine.com/uint128"
)

const DeltaSetSize = 256

// DeltaSet 256 plaintexts equal everywhere except at Position, which takes every byte value once.
// The xor of all of them is zero at every position.
type DeltaSet struct {
	Position   int
	Plaintexts [DeltaSetSize]types.Block
}

func checkPosition(position int) {
	if position < 0 || position >= types.BlockSize {
		utils.Panicf("square: invalid position %d", position)
	}
}

// NewDeltaSet reads the 16 filler bytes from rand
func NewDeltaSet(rand io.Reader, position int) (*DeltaSet, error) {
	checkPosition(position)

	var filler types.Block
	if _, err := io.ReadFull(rand, filler[:]); err != nil {
		return nil, err
	}

	d := &DeltaSet{
		Position: position,
	}
	for i := range d.Plaintexts {
		d.Plaintexts[i] = filler
		d.Plaintexts[i][position] = byte(i)
	}
	return d, nil
}

// Encrypt queries o for every plaintext in the set
func (d *DeltaSet) Encrypt(o Oracle) (ciphertexts [DeltaSetSize]types.Block) {
	for i := range d.Plaintexts {
		ciphertexts[i] = o.Encrypt(d.Plaintexts[i])
	}
	return ciphertexts
}

// Balance xor of all blocks. A delta set is balanced at every position where the result is zero.
func Balance(blocks []types.Block) (result types.Block) {
	var sum uint128.Uint128
	for i := range blocks {
		sum = sum.Xor(uint128.FromBytes(blocks[i][:]))
	}
	sum.PutBytes(result[:])
	return result
}

// ReverseState undoes the last round at position for every ciphertext, assuming guess is the
// byte of the last round key at that position. ShiftRows only moves bytes around so it is skipped.
func ReverseState(ciphertexts *[DeltaSetSize]types.Block, position int, guess byte) (out [DeltaSetSize]byte) {
	checkPosition(position)
	for i := range ciphertexts {
		out[i] = sbox.Inverse[ciphertexts[i][position]^guess]
	}
	return out
}

// IsBalanced reports whether the xor of all values is zero
func IsBalanced(values *[DeltaSetSize]byte) bool {
	var sum byte
	for _, v := range values {
		sum ^= v
	}
	return sum == 0
}
