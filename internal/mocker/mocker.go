// ABOUTME: Transformer applies a Strategy and a Blacklist across a whole string
// ABOUTME: Lower-cases first, then upper-cases selected runes using full Unicode case mapping

package mocker

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Blacklist holds runes that are never upper-cased. Membership is checked
// against the lower-cased rune.
type Blacklist map[rune]struct{}

// NewBlacklist builds a Blacklist from runes, lower-casing each.
func NewBlacklist(runes ...rune) Blacklist {
	b := make(Blacklist, len(runes))
	lower := cases.Lower(language.Und)
	for _, r := range runes {
		for _, lr := range lower.String(string(r)) {
			b[lr] = struct{}{}
		}
	}
	return b
}

// Contains reports whether r is blacklisted.
func (b Blacklist) Contains(r rune) bool {
	_, ok := b[r]
	return ok
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithCoin sets the random source used by the probability strategy.
func WithCoin(c Coin) Option {
	return func(t *Transformer) {
		if c != nil {
			t.coin = c
		}
	}
}

// WithNormalization applies the given Unicode normalization form to input
// before mocking.
func WithNormalization(f norm.Form) Option {
	return func(t *Transformer) {
		t.form = &f
	}
}

// Transformer mocks text. It is immutable after New and safe for concurrent use.
type Transformer struct {
	strategy  Strategy
	blacklist Blacklist
	coin      Coin
	form      *norm.Form
}

// New builds a Transformer. The blacklist is copied.
func New(strategy Strategy, blacklist Blacklist, opts ...Option) (*Transformer, error) {
	if err := strategy.validate(); err != nil {
		return nil, err
	}
	owned := make(Blacklist, len(blacklist))
	for r := range blacklist {
		owned[r] = struct{}{}
	}
	t := &Transformer{
		strategy:  strategy,
		blacklist: owned,
		coin:      GlobalCoin,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Strategy returns the configured strategy.
func (t *Transformer) Strategy() Strategy { return t.strategy }

// Mock returns input in sarcastic case.
func (t *Transformer) Mock(input string) string {
	if input == "" {
		return ""
	}
	if t.form != nil {
		input = t.form.String(input)
	}

	// Casers carry state between calls, so each Mock gets its own pair.
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	lowered := lower.String(input)

	var sb strings.Builder
	sb.Grow(len(lowered))
	index := 0
	for _, r := range lowered {
		if t.strategy.ShouldMock(t.coin, index, r) && !t.blacklist.Contains(r) {
			sb.WriteString(upper.String(string(r)))
		} else {
			sb.WriteRune(r)
		}
		index++
	}
	return sb.String()
}

// MockLines mocks each line independently. Output order matches input order.
// The only error is ctx's.
func (t *Transformer) MockLines(ctx context.Context, lines []string) ([]string, error) {
	out := make([]string, len(lines))

	limit := runtime.GOMAXPROCS(0)
	if _, global := t.coin.(globalCoin); t.strategy.Kind() == KindProbability && !global {
		// Injected coins may be stateful; draw from them in line order.
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = t.Mock(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
