package rijndael

import (
	"crypto/aes"
	"crypto/rand"
	"fmt"
	"testing"

	"git.gammaspectra.live/P2Pool/square/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = types.MustBlockFromString("2b7e151628aed2a6abf7158809cf4f3c")

var testPlaintext = types.Block([]byte("theblockbreakers"))

func TestRotWord(t *testing.T) {
	assert.Equal(t, Word{1, 2, 3, 0}, RotWord(Word{0, 1, 2, 3}))
	assert.Equal(t, Word{0, 1, 2, 3}, InvRotWord(Word{1, 2, 3, 0}))
}

func TestSubWord(t *testing.T) {
	w := Word{0x01, 0xc2, 0x9e, 0xff}
	assert.Equal(t, Word{0x7c, 0x25, 0x0b, 0x16}, SubWord(w))
	assert.Equal(t, w, InvSubWord(SubWord(w)))
}

func TestRcon(t *testing.T) {
	// x^(i-1) for i in 0..50, the sequence has period 51
	rcon := []byte{
		0x8d, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d, 0x9a,
		0x2f, 0x5e, 0xbc, 0x63, 0xc6, 0x97, 0x35, 0x6a, 0xd4, 0xb3, 0x7d, 0xfa, 0xef, 0xc5, 0x91, 0x39,
		0x72, 0xe4, 0xd3, 0xbd, 0x61, 0xc2, 0x9f, 0x25, 0x4a, 0x94, 0x33, 0x66, 0xcc, 0x83, 0x1d, 0x3a,
		0x74, 0xe8, 0xcb,
	}
	for i := range 256 {
		assert.Equal(t, Word{rcon[i%len(rcon)], 0, 0, 0}, Rcon(i), "Rcon(%d)", i)
	}
}

func TestExpandKey(t *testing.T) {
	expected := []string{
		"2b7e151628aed2a6abf7158809cf4f3c",
		"a0fafe1788542cb123a339392a6c7605",
		"f2c295f27a96b9435935807a7359f67f",
		"3d80477d4716fe3e1e237e446d7a883b",
		"ef44a541a8525b7fb671253bdb0bad00",
		"d4d1c6f87c839d87caf2b8bc11f915bc",
		"6d88a37a110b3efddbf98641ca0093fd",
		"4e54f70e5f5fc9f384a64fb24ea6dc4f",
		"ead27321b58dbad2312bf5607f8d292f",
		"ac7766f319fadc2128d12941575c006e",
		"d014f9a8c9ee2589e13f0cc8b6630ca6",
	}

	roundKeys := ExpandKey(testKey, DefaultRounds)
	require.Len(t, roundKeys, DefaultRounds+1)
	for i, s := range expected {
		assert.Equal(t, s, roundKeys[i].String(), "round key %d", i)
	}

	// shorter schedules are prefixes of the full one
	for rounds := 0; rounds <= DefaultRounds; rounds++ {
		assert.Equal(t, roundKeys[:rounds+1], ExpandKey(testKey, rounds))
	}
}

func TestTransforms(t *testing.T) {
	type vector struct {
		name     string
		f        func(state *types.Block)
		inverse  func(state *types.Block)
		input    string
		expected string
	}

	roundKey := types.MustBlockFromString("d6aa74fdd2af72fadaa678f1d6ab76fe")
	addRoundKey := func(state *types.Block) {
		AddRoundKey(state, &roundKey)
	}

	vectors := []vector{
		{"SubBytes", SubBytes, InvSubBytes, "000102030405060708090a0b0c0d0e0f", "637c777bf26b6fc53001672bfed7ab76"},
		{"ShiftRows", ShiftRows, InvShiftRows, "637c777bf26b6fc53001672bfed7ab76", "636b6776f201ab7b30d777c5fe7c6f2b"},
		{"MixColumns", MixColumns, InvMixColumns, "636b6776f201ab7b30d777c5fe7c6f2b", "6a6a5c452c6d3351b0d95d61279c215c"},
		{"AddRoundKey", addRoundKey, addRoundKey, "6a6a5c452c6d3351b0d95d61279c215c", "bcc028b8fec241ab6a7f2590f13757a2"},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			state := types.MustBlockFromString(v.input)
			v.f(&state)
			assert.Equal(t, v.expected, state.String())

			v.inverse(&state)
			assert.Equal(t, v.input, state.String())
		})
	}
}

func TestFullRound(t *testing.T) {
	state := types.MustBlockFromString("000102030405060708090a0b0c0d0e0f")
	roundKey := types.MustBlockFromString("d6aa74fdd2af72fadaa678f1d6ab76fe")

	SubBytes(&state)
	ShiftRows(&state)
	MixColumns(&state)
	AddRoundKey(&state, &roundKey)

	assert.Equal(t, "bcc028b8fec241ab6a7f2590f13757a2", state.String())
}

func TestEncryptBlock(t *testing.T) {
	ciphertext := EncryptBlock(testPlaintext, testKey, DefaultRounds)
	assert.Equal(t, "c69f25d0025a9ef32393f63e2f05b747", ciphertext.String())
	assert.Equal(t, testPlaintext, DecryptBlock(ciphertext, testKey, DefaultRounds))

	// FIPS-197 appendix B
	ciphertext = EncryptBlock(types.MustBlockFromString("3243f6a8885a308d313198a2e0370734"), testKey, DefaultRounds)
	assert.Equal(t, "3925841d02dc09fbdc118597196a0b32", ciphertext.String())
}

func TestRoundTrip(t *testing.T) {
	for rounds := 1; rounds <= DefaultRounds; rounds++ {
		t.Run(fmt.Sprintf("Rounds%d", rounds), func(t *testing.T) {
			for range 32 {
				var key, plaintext types.Block
				_, _ = rand.Read(key[:])
				_, _ = rand.Read(plaintext[:])

				ciphertext := EncryptBlock(plaintext, key, rounds)
				require.Equal(t, plaintext, DecryptBlock(ciphertext, key, rounds), "key %s plaintext %s", key, plaintext)
			}
		})
	}
}

func TestCipher_StandardLibrary(t *testing.T) {
	var key [KeySize]byte
	_, _ = rand.Read(key[:])

	c, err := NewCipher(key[:])
	require.NoError(t, err)
	assert.Equal(t, DefaultRounds, c.Rounds())

	reference, err := aes.NewCipher(key[:])
	require.NoError(t, err)

	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)
	expected := make([]byte, BlockSize)
	for range 64 {
		_, _ = rand.Read(src)
		c.Encrypt(dst, src)
		reference.Encrypt(expected, src)
		require.Equal(t, expected, dst)

		c.Decrypt(dst, expected)
		require.Equal(t, src, dst)
	}
}

func TestNewCipher(t *testing.T) {
	_, err := NewCipher(make([]byte, 24))
	assert.Equal(t, KeySizeError(24), err)

	_, err = NewCipher(testKey[:], WithRounds(0))
	assert.ErrorIs(t, err, ErrInvalidRounds)

	c, err := NewCipher(testKey[:], WithRounds(3))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rounds())

	ciphertext := c.EncryptRounds(testPlaintext, 3)
	assert.Equal(t, testPlaintext, c.DecryptRounds(ciphertext, 3))

	var dst [BlockSize]byte
	c.Encrypt(dst[:], testPlaintext[:])
	assert.Equal(t, ciphertext, types.Block(dst))

	assert.Panics(t, func() {
		c.Encrypt(dst[:], dst[:8])
	})
	assert.Panics(t, func() {
		c.Decrypt(dst[:4], dst[:])
	})
	assert.Panics(t, func() {
		c.EncryptRounds(testPlaintext, 0)
	})
}

func TestBlockInvalidRounds(t *testing.T) {
	for _, rounds := range []int{0, -1} {
		assert.Panics(t, func() {
			EncryptBlock(testPlaintext, testKey, rounds)
		}, "encrypt rounds %d", rounds)
		assert.Panics(t, func() {
			DecryptBlock(testPlaintext, testKey, rounds)
		}, "decrypt rounds %d", rounds)
	}
}

func TestOracle(t *testing.T) {
	o, err := NewOracle(testKey, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, o.Rounds())
	assert.Equal(t, EncryptBlock(testPlaintext, testKey, 4), o.Encrypt(testPlaintext))

	_, err = NewOracle(testKey, -1)
	assert.ErrorIs(t, err, ErrInvalidRounds)
}
