package models

import "fmt"

// ValidationError reports user input that cannot become a valid record.
// Callers keep the originating dialog open and leave state untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CorruptDataError reports a persisted data file that exists but cannot be
// decoded. The file is never overwritten after this error; startup fails
// with a message so the user can recover the file by hand.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data file %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}
