// ABOUTME: Turns merged Settings into a validated strategy, blacklist and transformer
// ABOUTME: Unknown strategy names fall back to the default with a fuzzy "did you mean" hint

package config

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"

	pilog "github.com/mauromedda/mockcase/internal/log"
	"github.com/mauromedda/mockcase/internal/mocker"
)

// Resolved is the validated form of Settings.
type Resolved struct {
	Strategy  mocker.Strategy
	Blacklist mocker.Blacklist
	Seed      *uint64
	Normalize bool
}

// Resolve validates s. A non-positive nth is a *mocker.ConfigurationError;
// an out-of-range probability is replaced by mocker.DefaultProbability.
func Resolve(s *Settings) (Resolved, error) {
	if s == nil {
		s = &Settings{}
	}

	strategy, err := resolveStrategy(s)
	if err != nil {
		return Resolved{}, err
	}

	r := Resolved{
		Strategy:  strategy,
		Blacklist: mocker.NewBlacklist(s.Blacklist.Runes()...),
		Seed:      s.Seed,
	}
	if s.Normalize != nil {
		r.Normalize = *s.Normalize
	}
	return r, nil
}

func resolveStrategy(s *Settings) (mocker.Strategy, error) {
	kind := mocker.KindStep
	if s.Strategy != "" {
		k, ok := mocker.ParseKind(s.Strategy)
		if !ok {
			if hint := Suggest(s.Strategy); hint != "" {
				pilog.Warn("unknown strategy %q (did you mean %q?); using %s", s.Strategy, hint, mocker.Default())
			} else {
				pilog.Warn("unknown strategy %q; using %s", s.Strategy, mocker.Default())
			}
			return mocker.Default(), nil
		}
		kind = k
	}

	switch kind {
	case mocker.KindProbability:
		p := mocker.DefaultProbability
		if s.Probability != nil {
			p = *s.Probability
		}
		if !mocker.ValidProbability(p) {
			pilog.Warn("probability %v outside [0, 1]; using %v", p, mocker.DefaultProbability)
		}
		return mocker.NewProbability(p), nil
	default:
		n := mocker.DefaultStep
		if s.Nth != nil {
			n = *s.Nth
		}
		return mocker.NewStep(n)
	}
}

// Suggest returns the known strategy name closest to name, or "".
func Suggest(name string) string {
	matches := fuzzy.Find(name, mocker.KindNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Transformer builds a mocker.Transformer from r.
func (r Resolved) Transformer() (*mocker.Transformer, error) {
	var opts []mocker.Option
	if r.Seed != nil {
		opts = append(opts, mocker.WithCoin(mocker.NewSeededCoin(*r.Seed)))
	}
	if r.Normalize {
		opts = append(opts, mocker.WithNormalization(norm.NFC))
	}
	t, err := mocker.New(r.Strategy, r.Blacklist, opts...)
	if err != nil {
		return nil, fmt.Errorf("building transformer: %w", err)
	}
	return t, nil
}
