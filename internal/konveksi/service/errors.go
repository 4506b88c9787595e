package service

import (
	"errors"
	"fmt"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// ErrorKind closed set of domain failure kinds. Every mutating operation
// either commits fully or returns exactly one of these with no partial
// side effects.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindInvalidState      ErrorKind = "invalid_state"
	KindInsufficientStock ErrorKind = "insufficient_stock"
	KindInsufficientRolls ErrorKind = "insufficient_rolls"
	KindQCImbalance       ErrorKind = "qc_imbalance"
	KindDuplicateKey      ErrorKind = "duplicate_key"
	KindNotFound          ErrorKind = "not_found"
)

type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func domainErrf(kind ErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...interface{}) *DomainError {
	return domainErrf(KindValidation, format, args...)
}

func invalidStatef(format string, args ...interface{}) *DomainError {
	return domainErrf(KindInvalidState, format, args...)
}

func notFoundf(format string, args ...interface{}) *DomainError {
	return domainErrf(KindNotFound, format, args...)
}

func duplicatef(format string, args ...interface{}) *DomainError {
	return domainErrf(KindDuplicateKey, format, args...)
}

// KindOf extracts the domain kind from an error chain; repository
// not-found sentinels count as KindNotFound. Returns "" for plain errors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	if errors.Is(err, repository.ErrNotFound) {
		return KindNotFound
	}
	return ""
}

// asNotFound maps a repository lookup failure to a typed NotFound error,
// keeping other database errors untouched.
func asNotFound(err error, what, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundf("%s %s tidak ditemukan", what, id)
	}
	return err
}
