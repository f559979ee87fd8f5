/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"testing"
)

func TestRegistrationMissingError(t *testing.T) {
	err := NewRegistrationMissingError("Point", "X")

	// Test error message
	expected := `no registration for field "X" of class Point`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrRegistrationMissing) {
		t.Error("RegistrationMissingError should match ErrRegistrationMissing")
	}

	// Test helper function
	if !IsRegistrationMissing(err) {
		t.Error("IsRegistrationMissing should return true for RegistrationMissingError")
	}

	// Registration errors are never suppressible
	if Suppressible(err) {
		t.Error("RegistrationMissingError must not be suppressible")
	}
}

func TestPropertyMissingError(t *testing.T) {
	err := NewPropertyMissingError("createdAt")

	expected := `property "createdAt" not present in document`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrPropertyMissing) {
		t.Error("PropertyMissingError should match ErrPropertyMissing")
	}

	if !IsPropertyMissing(err) {
		t.Error("IsPropertyMissing should return true for PropertyMissingError")
	}
}

func TestTypeMismatchError(t *testing.T) {
	tests := []struct {
		name     string
		property string
		want     string
		got      string
		expected string
	}{
		{
			name:     "with property",
			property: "age",
			want:     "int64",
			got:      "string",
			expected: `property "age" holds string, want int64`,
		},
		{
			name:     "without property",
			property: "",
			want:     "bool",
			got:      "float64",
			expected: "value holds float64, want bool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTypeMismatchError(tt.property, tt.want, tt.got)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsTypeMismatch(err) {
				t.Error("IsTypeMismatch should return true for TypeMismatchError")
			}
		})
	}
}

func TestAlternativeMismatchError(t *testing.T) {
	err := NewAlternativeMismatchError("rating", "int64", "string")

	expected := `union field "rating" holds alternative string, want int64`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlternativeMismatch) {
		t.Error("AlternativeMismatchError should match ErrAlternativeMismatch")
	}

	if !IsAlternativeMismatch(err) {
		t.Error("IsAlternativeMismatch should return true for AlternativeMismatchError")
	}
}

func TestIndirectionEmptyError(t *testing.T) {
	err := NewIndirectionEmptyError("profile")

	expected := `indirection field "profile" is empty`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrIndirectionEmpty) {
		t.Error("IndirectionEmptyError should match ErrIndirectionEmpty")
	}

	if !IsIndirectionEmpty(err) {
		t.Error("IsIndirectionEmpty should return true for IndirectionEmptyError")
	}
}

func TestSuppressible(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"property missing", NewPropertyMissingError("x"), true},
		{"type mismatch", NewTypeMismatchError("x", "int64", "string"), true},
		{"alternative mismatch", NewAlternativeMismatchError("x", "a", "b"), true},
		{"indirection empty", NewIndirectionEmptyError("x"), true},
		{"registration missing", NewRegistrationMissingError("C", "x"), false},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suppressible(tt.err); got != tt.want {
				t.Errorf("Suppressible(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
