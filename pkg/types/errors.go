package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into one of the closed set of categories the
// caller layer switches on. Exactly one kind is set per Error.
type Kind int

const (
	// KindValidation: a required field is missing or malformed, or a
	// numeric field is out of range. Raised before any store mutation.
	KindValidation Kind = iota + 1

	// KindNotFound: a referenced identity does not exist where existence
	// is required.
	KindNotFound

	// KindBusinessRule: a cross-entity invariant would be broken.
	KindBusinessRule

	// KindPersistence: the backing store is unreadable or unwritable.
	KindPersistence
)

// Sentinel matchers, one per kind. errors.Is(err, ErrNotFound) matches any
// *Error carrying KindNotFound, and so on for the other kinds.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violated")
	ErrPersistence  = errors.New("persistence failed")

	// ErrInvalidListingType is returned when parsing an unknown listing
	// type name.
	ErrInvalidListingType = errors.New("invalid listing type")
)

// Error is the tagged failure value produced by stores and services.
type Error struct {
	Kind   Kind
	Entity string // Entity family involved ("client", "listing", "offer"), may be empty.
	ID     int    // Identity involved, zero when not applicable.
	Msg    string
	Err    error // Underlying cause, set for KindPersistence.
}

// Error renders the failure for display.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindNotFound && e.Entity != "":
		return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Msg
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Err }

// Is maps the error's kind onto the package sentinel matchers.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrBusinessRule:
		return e.Kind == KindBusinessRule
	case ErrPersistence:
		return e.Kind == KindPersistence
	}
	return false
}

// NewValidation returns a KindValidation error with the given message.
func NewValidation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NewNotFound returns a KindNotFound error for the given entity identity.
func NewNotFound(entity string, id int) error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// NewBusinessRule returns a KindBusinessRule error with the given message.
func NewBusinessRule(msg string) error {
	return &Error{Kind: KindBusinessRule, Msg: msg}
}

// NewPersistence wraps an I/O or decode failure as a KindPersistence error.
// The op string names the failed operation, e.g. "load clients".
func NewPersistence(op string, err error) error {
	return &Error{Kind: KindPersistence, Msg: op, Err: err}
}
