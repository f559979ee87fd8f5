/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fieldstore

import (
	"fmt"

	"github.com/suparena/fieldstore/errors"
)

// Alt tags the alternative a Union2 currently holds.
type Alt uint8

const (
	AltNone Alt = iota
	AltA
	AltB
)

func (a Alt) String() string {
	switch a {
	case AltA:
		return "A"
	case AltB:
		return "B"
	default:
		return "none"
	}
}

// Union2 is a closed two-alternative sum. At most one alternative is active
// at a time; serialization always targets the active alternative and never
// switches it. The zero value holds no alternative.
type Union2[A, B any] struct {
	tag Alt
	a   A
	b   B
}

// UnionOfA creates a union holding alternative A.
func UnionOfA[A, B any](v A) Union2[A, B] {
	return Union2[A, B]{tag: AltA, a: v}
}

// UnionOfB creates a union holding alternative B.
func UnionOfB[A, B any](v B) Union2[A, B] {
	return Union2[A, B]{tag: AltB, b: v}
}

// Active returns the tag of the currently held alternative.
func (u *Union2[A, B]) Active() Alt { return u.tag }

// SetA activates alternative A with the given value.
func (u *Union2[A, B]) SetA(v A) {
	var zeroB B
	u.tag, u.a, u.b = AltA, v, zeroB
}

// SetB activates alternative B with the given value.
func (u *Union2[A, B]) SetB(v B) {
	var zeroA A
	u.tag, u.a, u.b = AltB, zeroA, v
}

// A returns a mutable reference to alternative A. It fails with an
// AlternativeMismatchError when the union does not currently hold A; it
// never switches the active alternative.
func (u *Union2[A, B]) A() (*A, error) {
	if u.tag != AltA {
		return nil, &errors.AlternativeMismatchError{Want: u.altName(AltA), Held: u.altName(u.tag)}
	}
	return &u.a, nil
}

// B returns a mutable reference to alternative B, failing when B is not the
// active alternative.
func (u *Union2[A, B]) B() (*B, error) {
	if u.tag != AltB {
		return nil, &errors.AlternativeMismatchError{Want: u.altName(AltB), Held: u.altName(u.tag)}
	}
	return &u.b, nil
}

func (u *Union2[A, B]) altName(tag Alt) string {
	switch tag {
	case AltA:
		return fmt.Sprintf("%T", u.a)
	case AltB:
		return fmt.Sprintf("%T", u.b)
	default:
		return "none"
	}
}

// ref resolves to the active alternative for the serializer's shape handling.
func (u *Union2[A, B]) ref() (any, error) {
	switch u.tag {
	case AltA:
		return &u.a, nil
	case AltB:
		return &u.b, nil
	default:
		return nil, &errors.AlternativeMismatchError{Want: "any alternative", Held: "none"}
	}
}
