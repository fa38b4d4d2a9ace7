// ABOUTME: Error taxonomy for the storage layer.
// ABOUTME: ValidationError, NotFoundError, InvariantViolation, StorageError.
package storage

import "fmt"

// ValidationError reports bad caller input, like a blank exercise name or an
// empty profile update.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation that targeted a nonexistent row.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: not found", e.Entity, e.ID)
}

// InvariantViolation reports an operation the data model forbids, such as
// deleting a premade routine or creating a second user profile.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string { return e.Msg }

// StorageError wraps an underlying driver or I/O failure with the operation
// that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErrorf(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
