// Package sbox derives the Rijndael substitution table from field inverses and the
// affine transform, FIPS-197 section 5.1.1.
package sbox

import (
	"git.gammaspectra.live/P2Pool/square/gf"
)

// affineMatrix bit i of the output is row i applied to the input bits (bit 0 first)
var affineMatrix = gf.NewMatrix([][]gf.Element{
	{1, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 0, 0, 0, 1, 1, 1},
	{1, 1, 1, 0, 0, 0, 1, 1},
	{1, 1, 1, 1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 1, 1, 1, 1, 1},
})

// Constant added after the affine matrix
const Constant = 0x63

var affineConstant = toBits(Constant)

func toBits(b gf.Element) gf.Matrix {
	var bits [8]gf.Element
	for i := range bits {
		bits[i] = b.Bit(i)
	}
	return gf.Vector(bits[:]...)
}

func fromBits(v gf.Matrix) (b gf.Element) {
	for i := range 8 {
		b |= v.At(i, 0) << i
	}
	return b
}

// Affine applies the affine transform to b. It does not invert b first.
func Affine(b byte) byte {
	return byte(fromBits(affineMatrix.Mul(toBits(gf.Element(b))).Add(affineConstant)))
}

// Forward the S-box. Inverse[Forward[b]] == b
var Forward, Inverse = func() (forward, inverse [256]byte) {
	for i := range 256 {
		forward[i] = Affine(byte(gf.Inverse(gf.Element(i))))
	}
	for i, v := range forward {
		inverse[v] = byte(i)
	}
	return forward, inverse
}()

func Sub(b byte) byte {
	return Forward[b]
}

func InvSub(b byte) byte {
	return Inverse[b]
}
