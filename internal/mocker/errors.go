// ABOUTME: ConfigurationError reports an invalid strategy parameter
// ABOUTME: Raised at construction time, never from Mock

package mocker

import "fmt"

// ConfigurationError names the offending parameter and why it was rejected.
type ConfigurationError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}
