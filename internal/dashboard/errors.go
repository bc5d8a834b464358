package dashboard

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the trimmed input has no characters.
	ErrEmptyInput = errors.New("input is empty")
	// ErrTooLong is returned when a task exceeds MaxTaskLength characters.
	ErrTooLong = fmt.Errorf("task is longer than %d characters", MaxTaskLength)
	// ErrDuplicateTask is returned when a task with the same lower-cased text exists.
	ErrDuplicateTask = errors.New("task already exists")
	// ErrIndexOutOfRange indicates the caller referenced a position outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownFilter   = errors.New("unknown filter")

	ErrUnknownTheme  = errors.New("unknown theme")
	ErrInvalidPreset = errors.New("preset must be a positive number of minutes")

	ErrNotesEmpty           = errors.New("notes are already empty")
	ErrNotConfirmed         = errors.New("not confirmed")
	ErrNothingToCopy        = errors.New("nothing to copy")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrClipboardDenied      = errors.New("clipboard write denied")

	ErrUnknownAction = errors.New("unknown action")
)

// ValidationError carries rejected input back to the caller so it can be
// shown again for correction.
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(input string, err error) error {
	return &ValidationError{Input: input, Err: err}
}
