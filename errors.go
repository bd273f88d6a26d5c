package inventory

import "fmt"

// ValidationError reports a rejected entry: a required field is missing or
// malformed. It is always raised before any persistence call, so the stored
// snapshot is left untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError reports a serialization or write failure while persisting the
// snapshot. The previous snapshot on disk is preserved; the user must resubmit.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not persist snapshot to %q: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
