/*
Package processor generates field registration code from a YAML manifest.

A manifest enumerates each class's persisted fields and their external
names, plus optional datastore key templates:

	package: models
	classes:
	  - name: Player
	    keyMap:
	      PK: "PLAYER#{id}"
	      SK: "PLAYER#{id}"
	    fields:
	      - name: ID
	        property: id
	      - name: Name
	        property: name

Generated code:
The processor emits a descriptor set and a one-time registration routine per
class:

	var PlayerFields = struct {
	    ID   registry.FieldDescriptor
	    Name registry.FieldDescriptor
	}{ ... }

	func RegisterPlayerFields() {
	    registry.InitClass[Player](func() {
	        registry.RegisterField(PlayerFields.ID, "id")
	        registry.RegisterField(PlayerFields.Name, "name")
	        registry.RegisterKeyMap[Player](map[string]string{ ... })
	    })
	}

Constructors call RegisterPlayerFields; the one-time gate makes repeated and
concurrent calls safe. This automation keeps the field list and the external
names in one place and out of hand-written boilerplate.
*/
package processor
