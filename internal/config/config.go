// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Pointer fields distinguish "unset" from zero so later layers only override what they set

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration. Nil fields are unset.
type Settings struct {
	Strategy    string    `yaml:"strategy,omitempty"`
	Nth         *int      `yaml:"nth,omitempty"`
	Probability *float64  `yaml:"probability,omitempty"`
	Blacklist   Blacklist `yaml:"blacklist,omitempty"`
	Seed        *uint64   `yaml:"seed,omitempty"`
	Normalize   *bool     `yaml:"normalize,omitempty"`
}

// Blacklist is a list of characters. In YAML it may be a sequence of strings
// or a single string; every rune of every entry is blacklisted.
type Blacklist []string

// UnmarshalYAML accepts both `blacklist: aeiou` and `blacklist: [a, e]`.
func (b *Blacklist) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*b = Blacklist{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*b = items
		return nil
	default:
		return fmt.Errorf("line %d: blacklist must be a string or a list of strings", node.Line)
	}
}

// Runes flattens every entry into its runes.
func (b Blacklist) Runes() []rune {
	var out []rune
	for _, entry := range b {
		out = append(out, []rune(entry)...)
	}
	return out
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return Merge(global, project), nil
}

// LoadFile reads a single settings file. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.Strategy = expandEnv(strings.TrimSpace(s.Strategy))
	return &s, nil
}

// Merge overlays layers left to right; set fields in later layers win.
func Merge(layers ...*Settings) *Settings {
	result := &Settings{}
	for _, l := range layers {
		result = merge(result, l)
	}
	return result
}

func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.Strategy != "" {
		result.Strategy = over.Strategy
	}
	if over.Nth != nil {
		result.Nth = over.Nth
	}
	if over.Probability != nil {
		result.Probability = over.Probability
	}
	if over.Blacklist != nil {
		result.Blacklist = append(Blacklist{}, over.Blacklist...)
	}
	if over.Seed != nil {
		result.Seed = over.Seed
	}
	if over.Normalize != nil {
		result.Normalize = over.Normalize
	}

	return &result
}
