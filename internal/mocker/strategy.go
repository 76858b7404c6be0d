// ABOUTME: Mocking strategies deciding whether a character gets upper-cased
// ABOUTME: Step(n) selects every nth rune; Probability(p) flips a weighted coin per rune

package mocker

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies a strategy variant.
type Kind int

const (
	KindStep Kind = iota + 1
	KindProbability
)

// Defaults applied when configuration omits or rejects a value.
const (
	DefaultStep        = 2
	DefaultProbability = 0.5
)

func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindProbability:
		return "probability"
	default:
		return "unknown"
	}
}

// kindNames maps accepted strategy names to their kind. The nth_char and
// random spellings come from older releases of the CLI.
var kindNames = map[string]Kind{
	"step":        KindStep,
	"nth":         KindStep,
	"nth_char":    KindStep,
	"probability": KindProbability,
	"prob":        KindProbability,
	"random":      KindProbability,
}

// KindNames returns every accepted strategy name, sorted.
func KindNames() []string {
	return []string{"nth", "nth_char", "prob", "probability", "random", "step"}
}

// ParseKind resolves a strategy name (case-insensitive).
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Strategy decides, per rune position, whether the rune is upper-cased.
// The zero value is invalid; use NewStep, NewProbability or Default.
type Strategy struct {
	kind Kind
	step int
	prob float64
}

// Default returns Step(2).
func Default() Strategy {
	return Strategy{kind: KindStep, step: DefaultStep}
}

// NewStep returns a strategy selecting every rune whose index is a multiple of n.
func NewStep(n int) (Strategy, error) {
	if n < 1 {
		return Strategy{}, &ConfigurationError{
			Param:  "nth",
			Value:  fmt.Sprint(n),
			Reason: "step must be a positive integer",
		}
	}
	return Strategy{kind: KindStep, step: n}, nil
}

// NewProbability returns a strategy selecting each rune with probability p.
// Values outside [0, 1] (and NaN) fall back to DefaultProbability.
func NewProbability(p float64) Strategy {
	if !ValidProbability(p) {
		p = DefaultProbability
	}
	return Strategy{kind: KindProbability, prob: p}
}

// ValidProbability reports whether p lies in [0, 1].
func ValidProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// Kind returns the strategy variant.
func (s Strategy) Kind() Kind { return s.kind }

// Step returns n for a step strategy, 0 otherwise.
func (s Strategy) Step() int { return s.step }

// Probability returns p for a probability strategy, 0 otherwise.
func (s Strategy) Probability() float64 { return s.prob }

// ShouldMock reports whether the rune at index should be upper-cased.
// coin is only consulted by the probability variant.
func (s Strategy) ShouldMock(coin Coin, index int, _ rune) bool {
	switch s.kind {
	case KindStep:
		return index%s.step == 0
	case KindProbability:
		return coin.Flip(s.prob)
	default:
		return false
	}
}

func (s Strategy) validate() error {
	switch s.kind {
	case KindStep:
		if s.step < 1 {
			return &ConfigurationError{Param: "nth", Value: fmt.Sprint(s.step), Reason: "step must be a positive integer"}
		}
	case KindProbability:
		if !ValidProbability(s.prob) {
			return &ConfigurationError{Param: "probability", Value: fmt.Sprint(s.prob), Reason: "must be within [0, 1]"}
		}
	default:
		return &ConfigurationError{Param: "strategy", Reason: "no strategy selected"}
	}
	return nil
}

func (s Strategy) String() string {
	switch s.kind {
	case KindStep:
		return fmt.Sprintf("step(%d)", s.step)
	case KindProbability:
		return fmt.Sprintf("probability(%g)", s.prob)
	default:
		return "invalid"
	}
}
