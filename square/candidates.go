package square

import (
	"github.com/bits-and-blooms/bitset"

	"git.gammaspectra.live/P2Pool/square/sbox"
	"git.gammaspectra.live/P2Pool/square/types"
)

// Candidates set of key byte guesses that kept a delta set balanced
type Candidates struct {
	set *bitset.BitSet
}

func NewCandidates() Candidates {
	return Candidates{set: bitset.New(256)}
}

// AllCandidates every byte value, the starting point before any delta set is seen
func AllCandidates() Candidates {
	c := NewCandidates()
	c.set.FlipRange(0, 256)
	return c
}

func (c Candidates) Add(guess byte) {
	c.set.Set(uint(guess))
}

func (c Candidates) Has(guess byte) bool {
	return c.set.Test(uint(guess))
}

func (c Candidates) Len() int {
	return int(c.set.Count())
}

// Single returns the only candidate, if there is exactly one
func (c Candidates) Single() (byte, bool) {
	if c.Len() != 1 {
		return 0, false
	}
	i, _ := c.set.NextSet(0)
	return byte(i), true
}

// Intersect keeps only the guesses present in both sets, in place
func (c Candidates) Intersect(other Candidates) {
	c.set.InPlaceIntersection(other.set)
}

func (c Candidates) Values() (values []byte) {
	for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
		values = append(values, byte(i))
	}
	return values
}

// FilterCandidates every guess for the last round key byte at position whose partial
// decryption leaves the delta set balanced. The correct guess is always included.
// Guesses are checked BlockSize at a time, one per byte lane of a block.
func FilterCandidates(ciphertexts *[DeltaSetSize]types.Block, position int) Candidates {
	checkPosition(position)

	c := NewCandidates()
	var lanes [DeltaSetSize]types.Block
	for base := 0; base < 256; base += types.BlockSize {
		for i := range ciphertexts {
			b := ciphertexts[i][position]
			for lane := range types.BlockSize {
				lanes[i][lane] = sbox.Inverse[b^byte(base+lane)]
			}
		}
		for lane, v := range Balance(lanes[:]) {
			if v == 0 {
				c.Add(byte(base + lane))
			}
		}
	}
	return c
}
