package blocks

import (
	"errors"
	"fmt"
)

// ErrNotFound means the referenced block no longer exists (possibly deleted
// by another actor). Callers should refetch, not retry.
var ErrNotFound = errors.New("block not found")

// ValidationError marks malformed input: unknown block type, missing
// required content field, or a reorder id set that does not match the page.
// Always recoverable by the caller correcting its input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
