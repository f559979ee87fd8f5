/*
Package fieldstore provides registry-driven, per-field mapping between Go
entities and generic structured documents, without per-field boilerplate at
the call sites that persist them.

A class declares, once per process, which of its fields are persisted and
under which external names. Declarations run the first time an instance is
constructed, through a per-class one-time gate that is safe under concurrent
first construction. Thereafter WriteSelf/ReadSelf route every field through
the registry:

	type Point struct {
	    fieldstore.Serializer
	    X, Y int
	}

	var pointFields = struct{ X, Y registry.FieldDescriptor }{
	    X: registry.FieldOf[Point]("X"),
	    Y: registry.FieldOf[Point]("Y"),
	}

	func NewPoint() *Point {
	    registry.InitClass[Point](func() {
	        registry.RegisterField(pointFields.X, "x")
	        registry.RegisterField(pointFields.Y, "y")
	    })
	    return &Point{}
	}

	func (p *Point) WriteSelf(doc *document.Document) {
	    p.WriteField(doc, pointFields.X, p.X)
	    p.WriteField(doc, pointFields.Y, p.Y)
	}

	func (p *Point) ReadSelf(doc *document.Document) {
	    p.ReadField(doc, pointFields.X, &p.X)
	    p.ReadField(doc, pointFields.Y, &p.Y)
	}

Three field shapes are supported: plain values, tagged unions (Union2, only
the active alternative is serialized), and indirections (Indirect or plain
pointers, the referent is serialized and must already exist).

Deserialization is best-effort by default: an absent or malformed field is
skipped and the rest of the entity proceeds, so callers needing strictness
opt in with UsePolicy(Strict) and inspect Skipped. Using a field that was
never declared is the one hard failure and panics.

Documents travel further through the datastore layer: the ddb datastore
persists any Serializable entity to DynamoDB via its document form.
*/
package fieldstore
