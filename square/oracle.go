package square

import (
	"sync/atomic"

	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
)

// Oracle encrypts chosen plaintexts under a key and round count the attacker does not know.
// Implementations must be safe for concurrent use when the attack runs with several workers.
type Oracle interface {
	Encrypt(plaintext types.Block) types.Block
}

type OracleFunc func(plaintext types.Block) types.Block

func (f OracleFunc) Encrypt(plaintext types.Block) types.Block {
	return f(plaintext)
}

// CountingOracle counts queries made to the wrapped Oracle
type CountingOracle struct {
	oracle  Oracle
	queries atomic.Uint64
}

func NewCountingOracle(o Oracle) *CountingOracle {
	return &CountingOracle{oracle: o}
}

func (o *CountingOracle) Encrypt(plaintext types.Block) types.Block {
	o.queries.Add(1)
	return o.oracle.Encrypt(plaintext)
}

func (o *CountingOracle) Queries() uint64 {
	return o.queries.Load()
}

// CachedOracle answers repeated plaintexts from cache without querying the wrapped Oracle
type CachedOracle struct {
	oracle Oracle
	cache  utils.Cache[types.Block, types.Block]
	hits   atomic.Uint64
}

// NewCachedOracle wraps o. A nil cache keeps the 64 Ki most recently used answers.
func NewCachedOracle(o Oracle, cache utils.Cache[types.Block, types.Block]) *CachedOracle {
	if cache == nil {
		cache = utils.NewLRUCache[types.Block, types.Block](1 << 16)
	}
	return &CachedOracle{
		oracle: o,
		cache:  cache,
	}
}

func (o *CachedOracle) Encrypt(plaintext types.Block) types.Block {
	if ciphertext, ok := o.cache.Get(plaintext); ok {
		o.hits.Add(1)
		return ciphertext
	}
	ciphertext := o.oracle.Encrypt(plaintext)
	o.cache.Set(plaintext, ciphertext)
	return ciphertext
}

func (o *CachedOracle) Hits() uint64 {
	return o.hits.Load()
}
