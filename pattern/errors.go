package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern indicates pattern parsing or compilation failures.
var ErrInvalidPattern = errors.New("invalid pattern")

func patternError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPattern, fmt.Sprintf(format, args...))
}
