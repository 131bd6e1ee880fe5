// Package rijndael implements AES-128 from the field arithmetic up, with a configurable
// number of rounds. It is meant for cryptanalysis experiments on reduced-round variants,
// not as a production cipher: there is no side-channel hardening.
package rijndael

import (
	"crypto/cipher"
	"errors"
	"strconv"

	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

var ErrInvalidRounds = errors.New("rijndael: round count must be at least 1")

// EncryptBlock encrypts plaintext with rounds rounds. The final round skips MixColumns.
func EncryptBlock(plaintext, key types.Block, rounds int) types.Block {
	checkRounds(rounds)
	roundKeys := ExpandKey(key, rounds)

	state := plaintext
	AddRoundKey(&state, &roundKeys[0])
	for r := 1; r < rounds; r++ {
		SubBytes(&state)
		ShiftRows(&state)
		MixColumns(&state)
		AddRoundKey(&state, &roundKeys[r])
	}
	SubBytes(&state)
	ShiftRows(&state)
	AddRoundKey(&state, &roundKeys[rounds])
	return state
}

// DecryptBlock inverse of EncryptBlock with the same key and rounds
func DecryptBlock(ciphertext, key types.Block, rounds int) types.Block {
	checkRounds(rounds)
	roundKeys := ExpandKey(key, rounds)

	state := ciphertext
	AddRoundKey(&state, &roundKeys[rounds])
	InvShiftRows(&state)
	InvSubBytes(&state)
	for r := rounds - 1; r > 0; r-- {
		AddRoundKey(&state, &roundKeys[r])
		InvMixColumns(&state)
		InvShiftRows(&state)
		InvSubBytes(&state)
	}
	AddRoundKey(&state, &roundKeys[0])
	return state
}

// Cipher AES-128 bound to a key, with a default round count.
// The key schedule is expanded again on every call.
type Cipher struct {
	key    types.Block
	rounds int
}

type Option func(c *Cipher)

// WithRounds overrides DefaultRounds
func WithRounds(rounds int) Option {
	return func(c *Cipher) {
		c.rounds = rounds
	}
}

func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	k, err := types.BlockFromBytes(key)
	if err != nil {
		return nil, KeySizeError(len(key))
	}
	c := &Cipher{
		key:    k,
		rounds: DefaultRounds,
	}
	for _, o := range opts {
		o(c)
	}
	if c.rounds < 1 {
		return nil, ErrInvalidRounds
	}
	return c, nil
}

var _ cipher.Block = (*Cipher)(nil)

func (c *Cipher) BlockSize() int {
	return BlockSize
}

func (c *Cipher) Rounds() int {
	return c.rounds
}

func checkBuffers(dst, src []byte) {
	if len(src) < BlockSize {
		utils.Panicf("rijndael: input not full block, %d bytes", len(src))
	}
	if len(dst) < BlockSize {
		utils.Panicf("rijndael: output not full block, %d bytes", len(dst))
	}
}

func checkRounds(rounds int) {
	if rounds < 1 {
		utils.Panicf("rijndael: invalid round count %d", rounds)
	}
}

// Encrypt encrypts the first block of src into dst with the configured rounds
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBuffers(dst, src)
	out := c.EncryptRounds(types.Block(src[:BlockSize]), c.rounds)
	copy(dst, out[:])
}

// Decrypt decrypts the first block of src into dst with the configured rounds
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBuffers(dst, src)
	out := c.DecryptRounds(types.Block(src[:BlockSize]), c.rounds)
	copy(dst, out[:])
}

func (c *Cipher) EncryptRounds(plaintext types.Block, rounds int) types.Block {
	return EncryptBlock(plaintext, c.key, rounds)
}

func (c *Cipher) DecryptRounds(ciphertext types.Block, rounds int) types.Block {
	return DecryptBlock(ciphertext, c.key, rounds)
}
