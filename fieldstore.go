/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fieldstore

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/suparena/fieldstore/document"
	"github.com/suparena/fieldstore/errors"
	"github.com/suparena/fieldstore/registry"
)

// Serializable is implemented by entity types that map their fields to a
// document. Implementations call the Serializer helpers once per declared
// field, in any order.
type Serializable interface {
	WriteSelf(doc *document.Document)
	ReadSelf(doc *document.Document)
}

// Policy selects how field-level failures are handled.
type Policy int

const (
	// Lenient suppresses field-level failures: a malformed or absent field
	// is skipped (optionally logged at debug level) and the remaining fields
	// proceed. This is the default.
	Lenient Policy = iota
	// Strict records every field-level failure for inspection via Skipped.
	// Fields still proceed independently; strictness is about visibility,
	// not aborting.
	Strict
)

var debugLogger = slog.Default()

// SetDebugLogger replaces the logger used for suppressed field failures.
func SetDebugLogger(l *slog.Logger) {
	if l != nil {
		debugLogger = l
	}
}

// fieldRef is implemented by field shapes (unions, indirections) that
// resolve to an underlying mutable location.
type fieldRef interface {
	ref() (any, error)
}

// Serializer provides the field-level read/write helpers that Serializable
// implementations build WriteSelf/ReadSelf from. Embed it in the entity:
//
//	type Player struct {
//	    fieldstore.Serializer `json:"-"`
//	    ID   string
//	    Name string
//	}
//
// The zero value is ready to use with the Lenient policy.
type Serializer struct {
	policy  Policy
	skipped []error
}

// UsePolicy switches the failure-handling policy.
func (s *Serializer) UsePolicy(p Policy) { s.policy = p }

// Skipped returns the field failures recorded under the Strict policy, in
// occurrence order.
func (s *Serializer) Skipped() []error { return s.skipped }

// ResetSkipped clears recorded field failures.
func (s *Serializer) ResetSkipped() { s.skipped = nil }

// WriteField writes one field's current value into the document under the
// field's registered name. src is the field value itself, a pointer to it,
// a *Union2 (the active alternative is written), or an Indirect (the
// referent is written). Field-level failures follow the policy; using an
// unregistered descriptor panics.
func (s *Serializer) WriteField(doc *document.Document, desc registry.FieldDescriptor, src any) {
	name, err := registry.FieldName(desc)
	if err != nil {
		panic(err)
	}

	value, err := resolveValue(src)
	if err != nil {
		s.handleFieldError(withProperty(err, name))
		return
	}
	doc.Set(name, value)
}

// ReadField reads the document value under the field's registered name into
// dst. dst is a non-nil pointer to the field, a *Union2 (the value is read
// into the alternative currently held), or an Indirect (read into the
// referent). No shape allocates or switches alternatives; the destination's
// current state must already match. Field-level failures follow the policy;
// using an unregistered descriptor panics.
func (s *Serializer) ReadField(doc *document.Document, desc registry.FieldDescriptor, dst any) {
	name, err := registry.FieldName(desc)
	if err != nil {
		panic(err)
	}

	target, err := resolveTarget(dst)
	if err != nil {
		s.handleFieldError(withProperty(err, name))
		return
	}
	if err := doc.GetInto(name, target); err != nil {
		s.handleFieldError(err)
	}
}

// AddNestedDocument inserts sub under the field's registered name. Used when
// a field's value is itself serialized recursively by the caller.
func (s *Serializer) AddNestedDocument(doc *document.Document, desc registry.FieldDescriptor, sub *document.Document) {
	name, err := registry.FieldName(desc)
	if err != nil {
		panic(err)
	}
	doc.SetNested(name, sub)
}

// ExtractNestedDocument returns the sub-document stored under the field's
// registered name. The error follows the policy as well as being returned,
// so callers may ignore it and check for nil.
func (s *Serializer) ExtractNestedDocument(doc *document.Document, desc registry.FieldDescriptor) (*document.Document, error) {
	name, err := registry.FieldName(desc)
	if err != nil {
		panic(err)
	}
	sub, err := doc.Nested(name)
	if err != nil {
		s.handleFieldError(err)
		return nil, err
	}
	return sub, nil
}

func (s *Serializer) handleFieldError(err error) {
	if !errors.Suppressible(err) {
		panic(err)
	}
	if s.policy == Strict {
		s.skipped = append(s.skipped, err)
		return
	}
	debugLogger.Debug("fieldstore: field skipped", "error", err)
}

// resolveValue resolves src to the value that should land in the document.
func resolveValue(src any) (any, error) {
	switch tv := src.(type) {
	case fieldRef:
		p, err := tv.ref()
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(p).Elem().Interface(), nil
	case *document.Document:
		return tv, nil
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, &errors.IndirectionEmptyError{}
		}
		return rv.Elem().Interface(), nil
	}
	return src, nil
}

// resolveTarget resolves dst to the pointer the document value is read into.
func resolveTarget(dst any) (any, error) {
	if fr, ok := dst.(fieldRef); ok {
		return fr.ref()
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("fieldstore: read destination must be a pointer, got %T", dst))
	}
	if rv.IsNil() {
		return nil, &errors.IndirectionEmptyError{}
	}
	return dst, nil
}

func withProperty(err error, name string) error {
	switch e := err.(type) {
	case *errors.AlternativeMismatchError:
		e.Property = name
	case *errors.IndirectionEmptyError:
		e.Property = name
	case *errors.TypeMismatchError:
		e.Property = name
	}
	return err
}

// Marshal serializes s into a fresh document.
func Marshal(s Serializable) *document.Document {
	doc := document.New()
	s.WriteSelf(doc)
	return doc
}

// Unmarshal deserializes doc into s. Fields absent from doc keep their
// current values; strictness is governed by the entity's policy.
func Unmarshal(doc *document.Document, s Serializable) {
	s.ReadSelf(doc)
}
