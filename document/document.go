/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/fieldstore/errors"
)

// Document is a string-keyed object node of a generic structured tree.
// Values are scalars (string, bool, numbers, strfmt.DateTime), arrays
// ([]any), or nested *Document nodes. Key order carries no meaning.
type Document struct {
	values map[string]any
}

// New creates an empty Document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// FromMap builds a Document from a raw map, wrapping nested maps as
// sub-documents.
func FromMap(m map[string]any) *Document {
	d := New()
	for k, v := range m {
		d.values[k] = wrapValue(v)
	}
	return d
}

func wrapValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return FromMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = wrapValue(e)
		}
		return out
	default:
		return v
	}
}

// Set assigns a value at key, replacing any previous value.
func (d *Document) Set(key string, v any) {
	d.values[key] = wrapValue(v)
}

// SetNested inserts a sub-document at key.
func (d *Document) SetNested(key string, sub *Document) {
	d.values[key] = sub
}

// Get retrieves the raw value at key. The error distinguishes an absent key
// from nothing else; use GetInto or the typed Get for coercion.
func (d *Document) Get(key string) (any, error) {
	v, ok := d.values[key]
	if !ok {
		return nil, errors.NewPropertyMissingError(key)
	}
	return v, nil
}

// GetInto retrieves the value at key and coerces it into the pointer dst.
// An absent key yields a PropertyMissingError; a value of the wrong shape
// yields a TypeMismatchError. The two never overlap.
func (d *Document) GetInto(key string, dst any) error {
	v, ok := d.values[key]
	if !ok {
		return errors.NewPropertyMissingError(key)
	}
	return coerce(key, v, dst)
}

// Nested returns the sub-document at key.
func (d *Document) Nested(key string) (*Document, error) {
	v, ok := d.values[key]
	if !ok {
		return nil, errors.NewPropertyMissingError(key)
	}
	sub, ok := v.(*Document)
	if !ok {
		return nil, errors.NewTypeMismatchError(key, "object", typeName(v))
	}
	return sub, nil
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.values)
}

// Keys returns the document's keys in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns the document as a plain nested map, suitable for any encoder.
func (d *Document) Map() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = unwrapValue(v)
	}
	return out
}

func unwrapValue(v any) any {
	switch tv := v.(type) {
	case *Document:
		return tv.Map()
	case strfmt.DateTime:
		// Normalize timestamps to RFC3339 text so every codec agrees on the
		// wire shape; coercion parses them back on read.
		return tv.String()
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = unwrapValue(e)
		}
		return out
	default:
		return v
	}
}

// Get retrieves the value at key coerced to T.
func Get[T any](d *Document, key string) (T, error) {
	var out T
	err := d.GetInto(key, &out)
	return out, err
}

// Equal reports whether two documents hold the same keys and values.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a.Map(), b.Map())
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := v.(*Document); ok {
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// coerce writes v into the pointer dst, converting between the scalar
// encodings the codecs produce (JSON numbers arrive as float64, DynamoDB
// numbers as float64 or int64, timestamps as RFC3339 strings).
func coerce(property string, v, dst any) error {
	switch p := dst.(type) {
	case *any:
		*p = v
		return nil
	case *string:
		s, ok := v.(string)
		if !ok {
			return errors.NewTypeMismatchError(property, "string", typeName(v))
		}
		*p = s
		return nil
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return errors.NewTypeMismatchError(property, "bool", typeName(v))
		}
		*p = b
		return nil
	case *strfmt.DateTime:
		switch tv := v.(type) {
		case strfmt.DateTime:
			*p = tv
			return nil
		case string:
			dt, err := strfmt.ParseDateTime(tv)
			if err != nil {
				return errors.NewTypeMismatchError(property, "date-time", typeName(v))
			}
			*p = dt
			return nil
		default:
			return errors.NewTypeMismatchError(property, "date-time", typeName(v))
		}
	case **Document:
		sub, ok := v.(*Document)
		if !ok {
			return errors.NewTypeMismatchError(property, "object", typeName(v))
		}
		*p = sub
		return nil
	case *[]any:
		arr, ok := v.([]any)
		if !ok {
			return errors.NewTypeMismatchError(property, "array", typeName(v))
		}
		*p = arr
		return nil
	case *[]string:
		arr, ok := v.([]any)
		if !ok {
			if direct, sok := v.([]string); sok {
				*p = direct
				return nil
			}
			return errors.NewTypeMismatchError(property, "array of string", typeName(v))
		}
		out := make([]string, len(arr))
		for i, e := range arr {
			s, sok := e.(string)
			if !sok {
				return errors.NewTypeMismatchError(property, "array of string", typeName(e))
			}
			out[i] = s
		}
		*p = out
		return nil
	}
	return coerceReflect(property, v, dst)
}

// coerceReflect handles the numeric kinds and any remaining assignable
// shapes. Float-to-integer conversion is accepted only for integral values,
// so a JSON-decoded 3.0 reads into an int field but 3.5 does not.
func coerceReflect(property string, v, dst any) error {
	pv := reflect.ValueOf(dst)
	if pv.Kind() != reflect.Ptr || pv.IsNil() {
		return errors.NewTypeMismatchError(property, "pointer destination", typeName(dst))
	}
	elem := pv.Elem()
	if v == nil {
		return errors.NewTypeMismatchError(property, elem.Type().String(), "null")
	}
	sv := reflect.ValueOf(v)

	if sv.Type().AssignableTo(elem.Type()) {
		elem.Set(sv)
		return nil
	}

	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch sv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			elem.SetInt(sv.Int())
			return nil
		case reflect.Float32, reflect.Float64:
			f := sv.Float()
			if f == float64(int64(f)) {
				elem.SetInt(int64(f))
				return nil
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch sv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if sv.Int() >= 0 {
				elem.SetUint(uint64(sv.Int()))
				return nil
			}
		case reflect.Float32, reflect.Float64:
			f := sv.Float()
			if f >= 0 && f == float64(uint64(f)) {
				elem.SetUint(uint64(f))
				return nil
			}
		}
	case reflect.Float32, reflect.Float64:
		switch sv.Kind() {
		case reflect.Float32, reflect.Float64:
			elem.SetFloat(sv.Float())
			return nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			elem.SetFloat(float64(sv.Int()))
			return nil
		}
	case reflect.String:
		if sv.Kind() == reflect.String {
			elem.SetString(sv.String())
			return nil
		}
	}

	if sv.Type().ConvertibleTo(elem.Type()) && sv.Kind() == elem.Kind() {
		elem.Set(sv.Convert(elem.Type()))
		return nil
	}

	return errors.NewTypeMismatchError(property, elem.Type().String(), typeName(v))
}
