package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable part of a DomainError
type ErrorKind string

const (
	KindDuplicateGroup  ErrorKind = "DUPLICATE_GROUP"
	KindDuplicatePlayer ErrorKind = "DUPLICATE_PLAYER"
	KindGroupNotFound   ErrorKind = "GROUP_NOT_FOUND"
	KindPlayerNotFound  ErrorKind = "PLAYER_NOT_FOUND"
	KindInvalidName     ErrorKind = "INVALID_NAME"
	KindInvalidTeam     ErrorKind = "INVALID_TEAM"
)

// DomainError is an expected, user-facing failure. Operations that return
// one have not changed anything in storage.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches on Kind so a detailed error still satisfies errors.Is against
// the sentinel of the same kind.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons
var (
	ErrDuplicateGroup  = &DomainError{Kind: KindDuplicateGroup, Message: "group already exists"}
	ErrDuplicatePlayer = &DomainError{Kind: KindDuplicatePlayer, Message: "player already exists in this group"}
	ErrGroupNotFound   = &DomainError{Kind: KindGroupNotFound, Message: "group not found"}
	ErrPlayerNotFound  = &DomainError{Kind: KindPlayerNotFound, Message: "player not found in this group"}
	ErrInvalidName     = &DomainError{Kind: KindInvalidName, Message: "invalid name"}
	ErrInvalidTeam     = &DomainError{Kind: KindInvalidTeam, Message: "invalid team"}
)

// NewDomainError builds a DomainError with a formatted message
func NewDomainError(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsDomainError attempts to unwrap an error into a DomainError.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// IsDomainError reports whether err is an expected domain failure rather
// than an unexpected (storage) one.
func IsDomainError(err error) bool {
	_, ok := AsDomainError(err)
	return ok
}
