package service

import (
	"errors"
	"fmt"
)

// ErrNotFound and ErrConflict classify service failures so handlers can
// pick the HTTP status without matching on message text.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type statusError struct {
	kind error
	msg  string
}

func (e statusError) Error() string { return e.msg }

func (e statusError) Is(target error) bool { return target == e.kind }

func notFoundf(format string, args ...any) error {
	return statusError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return statusError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}
