package catalog

import (
	"errors"
	"fmt"
)

// ConfigError marks a body configuration a rig cannot be built from.
// It is fatal for that body only; the lifecycle manager decides per
// its policy whether to skip the body or abort the rebuild.
type ConfigError struct {
	Body  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("body %q: invalid %s: %v", e.Body, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AsConfigError unwraps err to a *ConfigError if one is in its chain.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	ok := errors.As(err, &ce)
	return ce, ok
}
