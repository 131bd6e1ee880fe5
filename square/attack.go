// Package square implements the Square (integral) chosen-plaintext attack against AES
// reduced to 4 rounds.
//
// A delta set is 256 plaintexts differing in a single byte that takes all values. After
// three rounds the xor of the corresponding states is zero at every position. Undoing the
// last round one byte at a time with a guessed round key byte keeps that balance for the
// correct guess, and only by chance for a wrong one, so each last round key byte is found
// independently and the master key follows from the inverted key schedule.
//
// The balance holds at every position whichever byte is active, so by default all positions
// share one sequence of delta sets active at byte 0. The first position to use a delta set
// queries the oracle and the others are answered from a CachedOracle.
//
// With 3 rounds every ciphertext byte already takes all 256 values over a delta set, so every
// guess balances and nothing can be told apart. With 5 or more the balance is lost.
package square

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"sync"
	"time"

	"git.gammaspectra.live/P2Pool/square/types"
	"git.gammaspectra.live/P2Pool/square/utils"
)

const DefaultMaxSamples = 64

const logPrefix = "Square"

// SharedPosition active byte of the delta sets shared across positions
const SharedPosition = 0

// AttackRounds the only round count the attack applies to
const AttackRounds = 4

var ErrUnsupportedRounds = errors.New("square: attack only supports 4 rounds")

var ErrNoConvergence = errors.New("square: key byte did not converge")

type Options struct {
	// Rounds of the cipher behind the oracle, must be AttackRounds
	Rounds int

	// MaxSamples delta sets drawn per position before giving up. Defaults to DefaultMaxSamples.
	MaxSamples int

	// Workers positions recovered in parallel. 0 or 1 runs sequentially.
	Workers int

	// Rand source of delta set filler bytes. Defaults to crypto/rand.Reader.
	Rand io.Reader

	// Intersect keeps candidate sets across the samples of one position instead of starting over.
	Intersect bool

	// Independent draws fresh delta sets for every position, active at that position, instead of
	// sharing them. Nothing is cached in this mode.
	Independent bool

	// Cache holds oracle answers for shared delta sets. Defaults to the CachedOracle LRU.
	Cache utils.Cache[types.Block, types.Block]
}

type Attack struct {
	counter *CountingOracle
	cached  *CachedOracle
	oracle  Oracle
	options Options
	rand    io.Reader

	sharedLock sync.Mutex
	shared     []*DeltaSet
}

type lockedReader struct {
	lock   sync.Mutex
	reader io.Reader
}

func (r *lockedReader) Read(buf []byte) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.reader.Read(buf)
}

func NewAttack(o Oracle, options Options) (*Attack, error) {
	if options.Rounds != AttackRounds {
		return nil, ErrUnsupportedRounds
	}
	if options.MaxSamples <= 0 {
		options.MaxSamples = DefaultMaxSamples
	}

	a := &Attack{
		counter: NewCountingOracle(o),
		options: options,
		rand:    options.Rand,
	}
	a.oracle = a.counter
	if !options.Independent {
		a.cached = NewCachedOracle(a.counter, options.Cache)
		a.oracle = a.cached
	}
	if a.rand == nil {
		a.rand = rand.Reader
	} else if options.Workers > 1 && options.Independent {
		a.rand = &lockedReader{reader: a.rand}
	}
	return a, nil
}

// Queries made to the oracle so far
func (a *Attack) Queries() uint64 {
	return a.counter.Queries()
}

// CacheHits plaintexts of shared delta sets answered without querying the oracle
func (a *Attack) CacheHits() uint64 {
	if a.cached == nil {
		return 0
	}
	return a.cached.Hits()
}

// deltaSet returns the delta set for the given 1-based sample of position
func (a *Attack) deltaSet(position, sample int) (*DeltaSet, error) {
	if a.options.Independent {
		return NewDeltaSet(a.rand, position)
	}

	a.sharedLock.Lock()
	defer a.sharedLock.Unlock()
	for len(a.shared) < sample {
		d, err := NewDeltaSet(a.rand, SharedPosition)
		if err != nil {
			return nil, err
		}
		a.shared = append(a.shared, d)
	}
	return a.shared[sample-1], nil
}

// RecoverPosition finds the last round key byte at position, trying delta sets until a single
// guess survives. It returns the byte and the number of delta sets used.
func (a *Attack) RecoverPosition(ctx context.Context, position int) (byte, int, error) {
	checkPosition(position)

	var kept Candidates
	if a.options.Intersect {
		kept = AllCandidates()
	}

	for sample := 1; sample <= a.options.MaxSamples; sample++ {
		if err := ctx.Err(); err != nil {
			return 0, sample - 1, err
		}

		d, err := a.deltaSet(position, sample)
		if err != nil {
			return 0, sample - 1, err
		}
		ciphertexts := d.Encrypt(a.oracle)

		candidates := FilterCandidates(&ciphertexts, position)
		if a.options.Intersect {
			kept.Intersect(candidates)
			candidates = kept
		}

		if guess, ok := candidates.Single(); ok {
			if sample > 1 {
				utils.Noticef(logPrefix, "position %d: recovered %#02x after %d samples", position, guess, sample)
			} else {
				utils.Debugf(logPrefix, "position %d: recovered %#02x", position, guess)
			}
			return guess, sample, nil
		}
		utils.Debugf(logPrefix, "position %d: sample %d left %d candidates, resampling", position, sample, candidates.Len())
	}

	utils.Errorf(logPrefix, "position %d: no single candidate after %d samples", position, a.options.MaxSamples)
	return 0, a.options.MaxSamples, utils.ErrorfNoEscape("position %d after %d samples: %w", position, a.options.MaxSamples, ErrNoConvergence)
}

// RecoverRoundKey recovers the last round key, one byte position at a time
func (a *Attack) RecoverRoundKey(ctx context.Context) (types.Block, *Report, error) {
	report := &Report{
		Rounds: a.options.Rounds,
	}
	start := time.Now()
	queries, hits := a.Queries(), a.CacheHits()

	recoverPosition := func(ctx context.Context, position int) error {
		value, samples, err := a.RecoverPosition(ctx, position)
		report.Positions[position] = PositionReport{
			Position: position,
			Samples:  samples,
			Value:    value,
		}
		if err != nil {
			return err
		}
		report.RoundKey[position] = value
		return nil
	}

	var err error
	if a.options.Workers > 1 {
		err = utils.SplitWork(ctx, a.options.Workers, types.BlockSize, func(ctx context.Context, workIndex uint64, _ int) error {
			return recoverPosition(ctx, int(workIndex))
		}, nil)
	} else {
		for position := range types.BlockSize {
			if err = recoverPosition(ctx, position); err != nil {
				break
			}
		}
	}

	report.Queries = a.Queries() - queries
	report.CacheHits = a.CacheHits() - hits
	report.Duration = time.Since(start)
	if err != nil {
		return types.ZeroBlock, report, err
	}

	utils.Logf(logPrefix, "recovered round key %d = %s with %d queries (%d cached) in %s", a.options.Rounds, report.RoundKey, report.Queries, report.CacheHits, report.Duration)
	return report.RoundKey, report, nil
}

// RecoverKey recovers the last round key and inverts the key schedule to obtain the master key
func (a *Attack) RecoverKey(ctx context.Context) (types.Block, *Report, error) {
	roundKey, report, err := a.RecoverRoundKey(ctx)
	if err != nil {
		return types.ZeroBlock, report, err
	}
	report.Key = ReverseKeyExpansion(roundKey, a.options.Rounds)
	utils.Logf(logPrefix, "recovered key = %s", report.Key)
	return report.Key, report, nil
}
