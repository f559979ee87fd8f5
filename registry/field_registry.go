/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"hash/fnv"
	"reflect"
	"sync"

	"github.com/suparena/fieldstore/errors"
)

// ClassKey identifies the class (Go type) that owns a field. The hash is a
// fast routing value and may collide across types; rtype is the identity that
// equality checks confirm against.
type ClassKey struct {
	rtype reflect.Type
	hash  uint64
}

// ClassKeyOf returns the ClassKey for type T.
func ClassKeyOf[T any]() ClassKey {
	return classKeyFor(reflect.TypeOf((*T)(nil)).Elem())
}

func classKeyFor(t reflect.Type) ClassKey {
	h := fnv.New64a()
	h.Write([]byte(t.String()))
	return ClassKey{rtype: t, hash: h.Sum64()}
}

// Name returns the class's type name, used in diagnostics.
func (k ClassKey) Name() string {
	if k.rtype == nil {
		return "<nil>"
	}
	return k.rtype.String()
}

// FieldDescriptor identifies one field of one class. Two descriptors are
// equal iff their class identities match and their field accessors are equal.
type FieldDescriptor struct {
	class ClassKey
	field string
}

// FieldOf builds the descriptor for the named field of class T. Descriptors
// are plain values; build each one once per class and reuse it for every
// registration and lookup.
func FieldOf[T any](field string) FieldDescriptor {
	return FieldDescriptor{class: ClassKeyOf[T](), field: field}
}

// Class returns the descriptor's owning class key.
func (d FieldDescriptor) Class() ClassKey { return d.class }

// Field returns the descriptor's accessor id.
func (d FieldDescriptor) Field() string { return d.field }

func (d FieldDescriptor) equal(o FieldDescriptor) bool {
	return d.class.rtype == o.class.rtype && d.field == o.field
}

type entry[V any] struct {
	desc  FieldDescriptor
	value V
}

// Store associates field descriptors with values of type V. Descriptors of
// every class share one hash space; lookups narrow by class hash and then
// confirm the exact descriptor, so a hash collision across unrelated classes
// never produces a false-positive match.
//
// Entries live for the life of the Store and are never removed. After a
// class's registration routine has run its entries are only read, so the
// RWMutex is uncontended on the hot path.
type Store[V any] struct {
	mu      sync.RWMutex
	buckets map[uint64][]entry[V]
}

// NewStore creates an empty Store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{buckets: make(map[uint64][]entry[V])}
}

// Register inserts or overwrites the value for desc. It always succeeds and
// is idempotent under repeated identical calls.
func (s *Store[V]) Register(desc FieldDescriptor, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[desc.class.hash]
	for i := range bucket {
		if bucket[i].desc.equal(desc) {
			bucket[i].value = value
			return true
		}
	}
	s.buckets[desc.class.hash] = append(bucket, entry[V]{desc: desc, value: value})
	return true
}

// Lookup returns the value registered for desc, or a RegistrationMissingError
// when the exact descriptor was never registered.
func (s *Store[V]) Lookup(desc FieldDescriptor) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.buckets[desc.class.hash] {
		if e.desc.equal(desc) {
			return e.value, nil
		}
	}
	var zero V
	return zero, errors.NewRegistrationMissingError(desc.class.Name(), desc.field)
}

// Len returns the number of registered entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

// fieldNames is the process-wide (class, external name) store consumed by the
// serializer.
var fieldNames = NewStore[string]()

// RegisterField associates a field descriptor with its external name.
// Typically called from a class's registration routine under
// EnsureClassInitialized.
func RegisterField(desc FieldDescriptor, name string) bool {
	return fieldNames.Register(desc, name)
}

// FieldName returns the external name registered for desc.
func FieldName(desc FieldDescriptor) (string, error) {
	return fieldNames.Lookup(desc)
}

// gates holds one gate per class. The map lock covers only gate creation;
// init routines run outside it, so different classes initialize without
// blocking each other.
var gates = struct {
	mu sync.Mutex
	m  map[reflect.Type]*sync.Once
}{m: make(map[reflect.Type]*sync.Once)}

// EnsureClassInitialized runs init exactly once per class across the process.
// Concurrent first callers for the same class block until init completes;
// every later call is a non-blocking no-op.
func EnsureClassInitialized(class ClassKey, init func()) {
	gates.mu.Lock()
	once, ok := gates.m[class.rtype]
	if !ok {
		once = new(sync.Once)
		gates.m[class.rtype] = once
	}
	gates.mu.Unlock()

	once.Do(init)
}

// InitClass is a convenience wrapper over EnsureClassInitialized for type T.
// Call it from every constructor of T; only the first call runs init.
func InitClass[T any](init func()) {
	EnsureClassInitialized(ClassKeyOf[T](), init)
}
