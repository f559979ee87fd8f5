/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/fieldstore/errors"
)

func TestSetAndGet(t *testing.T) {
	d := New()
	d.Set("name", "alice")
	d.Set("age", 34)
	d.Set("active", true)

	name, err := Get[string](d, "name")
	if err != nil {
		t.Fatalf("Get name failed: %v", err)
	}
	if name != "alice" {
		t.Errorf("Expected %q, got %q", "alice", name)
	}

	age, err := Get[int](d, "age")
	if err != nil {
		t.Fatalf("Get age failed: %v", err)
	}
	if age != 34 {
		t.Errorf("Expected 34, got %d", age)
	}

	active, err := Get[bool](d, "active")
	if err != nil || !active {
		t.Errorf("Expected active=true, got %v, err %v", active, err)
	}
}

func TestMissingVsMismatch(t *testing.T) {
	d := New()
	d.Set("count", 3)

	// Absent key
	_, err := Get[int](d, "total")
	if !errors.IsPropertyMissing(err) {
		t.Errorf("Expected PropertyMissing for absent key, got %v", err)
	}

	// Wrong shape
	_, err = Get[bool](d, "count")
	if !errors.IsTypeMismatch(err) {
		t.Errorf("Expected TypeMismatch for wrong shape, got %v", err)
	}

	// The two must stay distinct
	if errors.IsTypeMismatch(errors.NewPropertyMissingError("x")) {
		t.Error("PropertyMissing must not match TypeMismatch")
	}
}

func TestNumericCoercion(t *testing.T) {
	d := New()
	d.Set("whole", 3.0)    // JSON-decoded integer
	d.Set("fraction", 3.5) // genuinely fractional
	d.Set("int", int64(42))

	if v, err := Get[int](d, "whole"); err != nil || v != 3 {
		t.Errorf("Integral float should coerce to int: v=%d err=%v", v, err)
	}

	if _, err := Get[int](d, "fraction"); !errors.IsTypeMismatch(err) {
		t.Errorf("Fractional float into int should mismatch, got %v", err)
	}

	if v, err := Get[float64](d, "int"); err != nil || v != 42 {
		t.Errorf("Int should widen to float64: v=%v err=%v", v, err)
	}
}

func TestDateTimeCoercion(t *testing.T) {
	now := strfmt.DateTime(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	d := New()
	d.Set("createdAt", now)
	d.Set("note", "not a time")

	// Direct read
	got, err := Get[strfmt.DateTime](d, "createdAt")
	if err != nil {
		t.Fatalf("Get DateTime failed: %v", err)
	}
	if time.Time(got) != time.Time(now) {
		t.Errorf("Expected %v, got %v", now, got)
	}

	// After a text round trip the value is a string; coercion re-parses it
	data, err := EncodeJSON(d)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	got, err = Get[strfmt.DateTime](decoded, "createdAt")
	if err != nil {
		t.Fatalf("Get DateTime after round trip failed: %v", err)
	}
	if !time.Time(got).Equal(time.Time(now)) {
		t.Errorf("Expected %v after round trip, got %v", now, got)
	}

	if _, err := Get[strfmt.DateTime](d, "note"); !errors.IsTypeMismatch(err) {
		t.Errorf("Non-time string should mismatch date-time, got %v", err)
	}
}

func TestNestedDocuments(t *testing.T) {
	inner := New()
	inner.Set("city", "Toronto")

	d := New()
	d.SetNested("address", inner)
	d.Set("name", "bob")

	sub, err := d.Nested("address")
	if err != nil {
		t.Fatalf("Nested failed: %v", err)
	}
	city, err := Get[string](sub, "city")
	if err != nil || city != "Toronto" {
		t.Errorf("Expected Toronto, got %q, err %v", city, err)
	}

	if _, err := d.Nested("name"); !errors.IsTypeMismatch(err) {
		t.Errorf("Scalar under Nested should mismatch, got %v", err)
	}
	if _, err := d.Nested("missing"); !errors.IsPropertyMissing(err) {
		t.Errorf("Absent key under Nested should be PropertyMissing, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New()
	d.Set("name", "carol")
	d.Set("score", 99)
	inner := New()
	inner.Set("lang", "en")
	d.SetNested("prefs", inner)

	data, err := EncodeJSON(d)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	back, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if name, _ := Get[string](back, "name"); name != "carol" {
		t.Errorf("Expected carol, got %q", name)
	}
	if score, err := Get[int](back, "score"); err != nil || score != 99 {
		t.Errorf("Expected 99, got %d, err %v", score, err)
	}
	sub, err := back.Nested("prefs")
	if err != nil {
		t.Fatalf("Nested after round trip failed: %v", err)
	}
	if lang, _ := Get[string](sub, "lang"); lang != "en" {
		t.Errorf("Expected en, got %q", lang)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	d := New()
	d.Set("id", "r-1")
	d.Set("limit", 10)

	data, err := EncodeYAML(d)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	back, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}
	if id, _ := Get[string](back, "id"); id != "r-1" {
		t.Errorf("Expected r-1, got %q", id)
	}
	if limit, err := Get[int](back, "limit"); err != nil || limit != 10 {
		t.Errorf("Expected 10, got %d, err %v", limit, err)
	}
}

func TestAttributeValueRoundTrip(t *testing.T) {
	d := New()
	d.Set("name", "dave")
	d.Set("rank", 12)
	inner := New()
	inner.Set("club", "north")
	d.SetNested("meta", inner)

	av, err := ToAttributeValues(d)
	if err != nil {
		t.Fatalf("ToAttributeValues failed: %v", err)
	}

	back, err := FromAttributeValues(av)
	if err != nil {
		t.Fatalf("FromAttributeValues failed: %v", err)
	}

	if name, _ := Get[string](back, "name"); name != "dave" {
		t.Errorf("Expected dave, got %q", name)
	}
	if rank, err := Get[int](back, "rank"); err != nil || rank != 12 {
		t.Errorf("Expected 12, got %d, err %v", rank, err)
	}
	sub, err := back.Nested("meta")
	if err != nil {
		t.Fatalf("Nested after attribute round trip failed: %v", err)
	}
	if club, _ := Get[string](sub, "club"); club != "north" {
		t.Errorf("Expected north, got %q", club)
	}
}

func TestEqualAndKeys(t *testing.T) {
	a := New()
	a.Set("x", 1)
	a.Set("y", 2)

	b := New()
	b.Set("y", 2)
	b.Set("x", 1)

	if !Equal(a, b) {
		t.Error("Documents with same content should be equal regardless of insertion order")
	}

	keys := a.Keys()
	if len(keys) != 2 || keys[0] != "x" || keys[1] != "y" {
		t.Errorf("Expected sorted keys [x y], got %v", keys)
	}
}
