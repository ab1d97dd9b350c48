package domain

import (
	"errors"
	"fmt"
)

// Pricing and order sentinels. Handlers match them with errors.Is.
var (
	// ErrNoServiceConfigured means there is not a single active service to quote against.
	ErrNoServiceConfigured = errors.New("no active service configured")
	// ErrNoCapacityConfigured means the resolved service has no price tiers at all.
	ErrNoCapacityConfigured = errors.New("no capacity configured for service")
	// ErrAmbiguousTimeFormat never leaves the pricing package.
	ErrAmbiguousTimeFormat = errors.New("ambiguous time format")
	// ErrInvalidPaymentAmount rejects zero or negative payments before the order is touched.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil && e.Field != "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError is a storage or infrastructure failure. Msg names the
// failed operation; the cause stays reachable through Unwrap.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	default:
		return "internal error"
	}
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// IsConfiguration reports whether err means the catalog cannot produce any quote.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrNoServiceConfigured) || errors.Is(err, ErrNoCapacityConfigured)
}
