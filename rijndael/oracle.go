package rijndael

import (
	"git.gammaspectra.live/P2Pool/square/types"
)

// Oracle encryption-only access to a Cipher with a fixed round count.
// Neither the key nor decryption is reachable through it.
type Oracle struct {
	c *Cipher
}

func NewOracle(key types.Block, rounds int) (*Oracle, error) {
	c, err := NewCipher(key[:], WithRounds(rounds))
	if err != nil {
		return nil, err
	}
	return &Oracle{c: c}, nil
}

func (o *Oracle) Rounds() int {
	return o.c.rounds
}

func (o *Oracle) Encrypt(plaintext types.Block) types.Block {
	return o.c.EncryptRounds(plaintext, o.c.rounds)
}
