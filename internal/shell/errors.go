package shell

import "errors"

// The texts of these errors are shown to the user as-is.
var (
	ErrNotLoaded       = errors.New("File is not loaded. Load a file using the 'load' command")
	ErrInvalidCommand  = errors.New("Invalid command")
	ErrInvalidDuration = errors.New("invalid duration")
)

// inputError carries a user-facing message and a sentinel for errors.Is.
type inputError struct {
	msg  string
	kind error
}

func (e *inputError) Error() string { return e.msg }
func (e *inputError) Unwrap() error { return e.kind }
