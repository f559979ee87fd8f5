/*
Package errors provides semantic error types for FieldStore.

The package follows the sentinel + typed-error pattern: each failure category
has a sentinel (for errors.Is checks), a concrete struct carrying context, a
constructor, and an IsXxx helper:

	err := errors.NewPropertyMissingError("createdAt")
	if errors.IsPropertyMissing(err) {
	    // field absent from the document
	}

Two categories matter to callers:

  - Field-level input errors (ErrPropertyMissing, ErrTypeMismatch,
    ErrAlternativeMismatch, ErrIndirectionEmpty) are suppressible: the
    serializer handles them per field and, under the lenient policy, never
    propagates them out of WriteSelf/ReadSelf.

  - ErrRegistrationMissing signals a field used without a declaration. It is
    a programming error and is deliberately excluded from suppression.

Suppressible reports which category an error belongs to.
*/
package errors
