/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrRegistrationMissing is returned when a field descriptor is used
	// without ever having been registered for its class. This is a programmer
	// error, not a malformed-input error, and is never suppressed.
	ErrRegistrationMissing = errors.New("field registration missing")

	// ErrPropertyMissing is returned when a document lacks the key for a
	// field being read
	ErrPropertyMissing = errors.New("property missing")

	// ErrTypeMismatch is returned when a document value cannot be coerced to
	// the field's declared type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrAlternativeMismatch is returned when a tagged-union field does not
	// currently hold the requested alternative
	ErrAlternativeMismatch = errors.New("union alternative mismatch")

	// ErrIndirectionEmpty is returned when an indirection field's reference
	// is empty
	ErrIndirectionEmpty = errors.New("indirection empty")

	// ErrNoKeyMap is returned when no key map is found for a type
	ErrNoKeyMap = errors.New("no key map found for type")
)

// RegistrationMissingError reports a field used without a prior registration
// for its class.
type RegistrationMissingError struct {
	Class string
	Field string
}

func (e *RegistrationMissingError) Error() string {
	return fmt.Sprintf("no registration for field %q of class %s", e.Field, e.Class)
}

func (e *RegistrationMissingError) Is(target error) bool {
	return target == ErrRegistrationMissing
}

// PropertyMissingError reports a document key absent during a field read.
type PropertyMissingError struct {
	Property string
}

func (e *PropertyMissingError) Error() string {
	return fmt.Sprintf("property %q not present in document", e.Property)
}

func (e *PropertyMissingError) Is(target error) bool {
	return target == ErrPropertyMissing
}

// TypeMismatchError reports a document value that cannot be coerced into the
// field's declared type.
type TypeMismatchError struct {
	Property string
	Want     string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("property %q holds %s, want %s", e.Property, e.Got, e.Want)
	}
	return fmt.Sprintf("value holds %s, want %s", e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// AlternativeMismatchError reports a tagged-union access against an
// alternative the union does not currently hold.
type AlternativeMismatchError struct {
	Property string
	Want     string
	Held     string
}

func (e *AlternativeMismatchError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("union field %q holds alternative %s, want %s", e.Property, e.Held, e.Want)
	}
	return fmt.Sprintf("union holds alternative %s, want %s", e.Held, e.Want)
}

func (e *AlternativeMismatchError) Is(target error) bool {
	return target == ErrAlternativeMismatch
}

// IndirectionEmptyError reports an indirection field whose reference was
// never allocated.
type IndirectionEmptyError struct {
	Property string
}

func (e *IndirectionEmptyError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("indirection field %q is empty", e.Property)
	}
	return "indirection field is empty"
}

func (e *IndirectionEmptyError) Is(target error) bool {
	return target == ErrIndirectionEmpty
}

// Helper functions for creating errors

// NewRegistrationMissingError creates a new RegistrationMissingError
func NewRegistrationMissingError(class, field string) error {
	return &RegistrationMissingError{Class: class, Field: field}
}

// NewPropertyMissingError creates a new PropertyMissingError
func NewPropertyMissingError(property string) error {
	return &PropertyMissingError{Property: property}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(property, want, got string) error {
	return &TypeMismatchError{Property: property, Want: want, Got: got}
}

// NewAlternativeMismatchError creates a new AlternativeMismatchError
func NewAlternativeMismatchError(property, want, held string) error {
	return &AlternativeMismatchError{Property: property, Want: want, Held: held}
}

// NewIndirectionEmptyError creates a new IndirectionEmptyError
func NewIndirectionEmptyError(property string) error {
	return &IndirectionEmptyError{Property: property}
}

// IsRegistrationMissing checks if an error is a registration missing error
func IsRegistrationMissing(err error) bool {
	return errors.Is(err, ErrRegistrationMissing)
}

// IsPropertyMissing checks if an error is a property missing error
func IsPropertyMissing(err error) bool {
	return errors.Is(err, ErrPropertyMissing)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsAlternativeMismatch checks if an error is an alternative mismatch error
func IsAlternativeMismatch(err error) bool {
	return errors.Is(err, ErrAlternativeMismatch)
}

// IsIndirectionEmpty checks if an error is an indirection empty error
func IsIndirectionEmpty(err error) bool {
	return errors.Is(err, ErrIndirectionEmpty)
}

// Suppressible reports whether a field-level error falls under the lenient
// per-field policy. Registration errors are excluded: masking one would hide
// a missing field permanently.
func Suppressible(err error) bool {
	switch {
	case errors.Is(err, ErrPropertyMissing),
		errors.Is(err, ErrTypeMismatch),
		errors.Is(err, ErrAlternativeMismatch),
		errors.Is(err, ErrIndirectionEmpty):
		return true
	default:
		return false
	}
}
