/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fieldstore

import (
	"github.com/suparena/fieldstore/errors"
)

// Indirect is a shared, non-owning reference to a value living elsewhere.
// Serialization targets the referenced value; an empty reference is a
// field-level failure, never an allocation. Copies of an Indirect share the
// same referent.
type Indirect[T any] struct {
	p *T
}

// NewIndirect returns a reference to a freshly allocated zero T. Indirection
// fields should be pre-allocated like this at construction so reads have a
// destination.
func NewIndirect[T any]() Indirect[T] {
	return Indirect[T]{p: new(T)}
}

// IndirectTo wraps an existing pointer, sharing its referent.
func IndirectTo[T any](p *T) Indirect[T] {
	return Indirect[T]{p: p}
}

// Ref returns the referent, or an IndirectionEmptyError when the reference
// was never allocated.
func (i Indirect[T]) Ref() (*T, error) {
	if i.p == nil {
		return nil, &errors.IndirectionEmptyError{}
	}
	return i.p, nil
}

// Empty reports whether the reference is unallocated.
func (i Indirect[T]) Empty() bool { return i.p == nil }

func (i Indirect[T]) ref() (any, error) {
	if i.p == nil {
		return nil, &errors.IndirectionEmptyError{}
	}
	return i.p, nil
}
