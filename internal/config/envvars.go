// ABOUTME: Environment layer: MOCKCASE_* overrides and ${VAR} expansion in config strings
// ABOUTME: Unset variables leave fields untouched; malformed numbers are configuration errors

package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mauromedda/mockcase/internal/mocker"
)

// Environment variable names read by FromEnv.
const (
	EnvStrategy    = "MOCKCASE_STRATEGY"
	EnvNth         = "MOCKCASE_NTH"
	EnvProbability = "MOCKCASE_PROBABILITY"
	EnvBlacklist   = "MOCKCASE_BLACKLIST"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// FromEnv builds a Settings layer from MOCKCASE_* variables.
func FromEnv() (*Settings, error) {
	s := &Settings{}

	if v, ok := lookup(EnvStrategy); ok {
		s.Strategy = v
	}
	if v, ok := lookup(EnvNth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &mocker.ConfigurationError{Param: EnvNth, Value: v, Reason: "not an integer"}
		}
		s.Nth = &n
	}
	if v, ok := lookup(EnvProbability); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &mocker.ConfigurationError{Param: EnvProbability, Value: v, Reason: "not a number"}
		}
		s.Probability = &p
	}
	if v, ok := lookup(EnvBlacklist); ok {
		s.Blacklist = Blacklist{v}
	}

	return s, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
