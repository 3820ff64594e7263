package models

import (
	"errors"
	"fmt"
)

// ErrEmptyMatch is returned when pattern-based filtering or removal
// matched nothing. It aborts the whole operation.
var ErrEmptyMatch = errors.New("no staged entries matched the given patterns")

// PatternError reports a filter pattern that failed to compile. It is
// fatal and must abort the operation before any item is touched.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
