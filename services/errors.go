package services

import "errors"

// ErrorKind classifies command failures so the HTTP layer can translate them
// without inspecting messages.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindForbidden
	KindInvalidState
	KindConflict
	KindInvalidArgument
)

type ServiceError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ServiceError) Error() string {
	return e.Msg
}

func NotFound(msg string) error {
	return &ServiceError{Kind: KindNotFound, Msg: msg}
}

func Forbidden(msg string) error {
	return &ServiceError{Kind: KindForbidden, Msg: msg}
}

func InvalidState(msg string) error {
	return &ServiceError{Kind: KindInvalidState, Msg: msg}
}

func Conflict(msg string) error {
	return &ServiceError{Kind: KindConflict, Msg: msg}
}

func InvalidArgument(msg string) error {
	return &ServiceError{Kind: KindInvalidArgument, Msg: msg}
}

// KindOf returns the classification of err, KindInternal for anything that is
// not a ServiceError.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}
