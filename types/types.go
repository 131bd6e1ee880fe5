package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const BlockSize = 16

var ErrWrongSize = errors.New("wrong size")

// Block 16 bytes as a column-major 4x4 state: byte i is in column i/4, row i%4.
// Used for plaintexts, ciphertexts, keys and round keys.
//
//nolint:recvcheck
type Block [BlockSize]byte

var ZeroBlock Block

func (b Block) MarshalJSON() ([]byte, error) {
	var buf [BlockSize*2 + 2]byte
	buf[0] = '"'
	buf[BlockSize*2+1] = '"'
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func (b *Block) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || len(buf) == 2 {
		return nil
	}

	if len(buf) != BlockSize*2+2 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("wrong block size")
	}

	if _, err := fasthex.Decode(b[:], buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}

func MustBlockFromString(s string) Block {
	if b, err := BlockFromString(s); err != nil {
		panic(err)
	} else {
		return b
	}
}

func BlockFromString(s string) (Block, error) {
	var b Block
	if buf, err := fasthex.DecodeString(s); err != nil {
		return b, err
	} else {
		if len(buf) != BlockSize {
			return b, ErrWrongSize
		}
		copy(b[:], buf)
		return b, nil
	}
}

// BlockFromBytes copies buf into a Block. The length must be exactly BlockSize.
func BlockFromBytes(buf []byte) (b Block, err error) {
	if len(buf) != BlockSize {
		return b, ErrWrongSize
	}
	copy(b[:], buf)
	return b, nil
}

func (b Block) String() string {
	return fasthex.EncodeToString(b[:])
}

func (b Block) Xor(other Block) (out Block) {
	for i := range out {
		out[i] = b[i] ^ other[i]
	}
	return out
}

// Column returns the i-th 4-byte column
func (b Block) Column(i int) (w [4]byte) {
	copy(w[:], b[i*4:i*4+4])
	return w
}

func (b *Block) SetColumn(i int, w [4]byte) {
	copy(b[i*4:i*4+4], w[:])
}
