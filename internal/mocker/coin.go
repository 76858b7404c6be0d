// ABOUTME: Random boolean sources for the probability strategy
// ABOUTME: Process-wide generator by default; seeded, mutex-guarded generator for reproducible runs

package mocker

import (
	"math/rand/v2"
	"sync"
)

// Coin returns true with probability p.
//
// A Transformer shared between goroutines calls Flip concurrently, so such a
// Coin must be safe for concurrent use. MockLines only draws from GlobalCoin
// in parallel; any other coin is called from one goroutine at a time, in line
// order.
type Coin interface {
	Flip(p float64) bool
}

// CoinFunc adapts a function to Coin.
type CoinFunc func(p float64) bool

// Flip calls f(p).
func (f CoinFunc) Flip(p float64) bool { return f(p) }

type globalCoin struct{}

// GlobalCoin draws from the math/rand/v2 top-level source, which is safe for
// concurrent use.
var GlobalCoin Coin = globalCoin{}

func (globalCoin) Flip(p float64) bool {
	return flip(rand.Float64, p)
}

// SeededCoin is a deterministic Coin. Safe for concurrent use, but the
// sequence of results depends on call order.
type SeededCoin struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededCoin returns a Coin whose sequence is fully determined by seed.
func NewSeededCoin(seed uint64) *SeededCoin {
	return &SeededCoin{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Flip returns true with probability p.
func (c *SeededCoin) Flip(p float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return flip(c.rng.Float64, p)
}

// flip short-circuits the bounds so p == 0 never and p == 1 always succeed
// without consuming entropy.
func flip(next func() float64, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return next() < p
	}
}
