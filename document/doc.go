/*
Package document provides the generic structured value that FieldStore
serializes into and out of: an object node with string keys holding scalars,
arrays, and nested documents.

The core contract is deliberately narrow:

  - Set assigns a value at a key.
  - GetInto / Get retrieve a value with typed coercion, failing with
    PropertyMissingError when the key is absent and TypeMismatchError when
    the value has the wrong shape. The two failures never overlap.
  - SetNested / Nested nest one document inside another.

Everything else — JSON and YAML text, DynamoDB attribute maps — is a codec
at the boundary (codec.go, ddb.go). The mapping core never depends on a
particular encoding; numeric widening on decode (JSON numbers arrive as
float64) is absorbed by coercion, which narrows integral floats back into
integer fields.
*/
package document
