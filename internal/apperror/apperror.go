package apperror

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced id does not resolve at the
// expected scope. Callers treat it as stale UI state, not a crash.
type NotFoundError struct {
	Kind string
	Id   string
}

func NewNotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, Id: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Id)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// CorruptDataError reports that the on-disk document exists but does not
// match the expected schema. Recovery policy belongs to the caller.
type CorruptDataError struct {
	Path  string
	Cause error
}

func NewCorruptData(path string, cause error) *CorruptDataError {
	return &CorruptDataError{Path: path, Cause: cause}
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data file %s: %v", e.Path, e.Cause)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Cause
}

func IsCorruptData(err error) bool {
	var cd *CorruptDataError
	return errors.As(err, &cd)
}
