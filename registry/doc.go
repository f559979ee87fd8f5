/*
Package registry holds the process-wide field and key registrations that
drive FieldStore serialization.

Field registry:
Each class declares, once, a mapping from field descriptors to external
names. Declarations run through a per-class one-time gate, so the routine
executes exactly once no matter how many instances are constructed or from
how many goroutines:

	var playerFields = struct {
	    ID, Name registry.FieldDescriptor
	}{
	    ID:   registry.FieldOf[Player]("ID"),
	    Name: registry.FieldOf[Player]("Name"),
	}

	func NewPlayer() *Player {
	    registry.InitClass[Player](func() {
	        registry.RegisterField(playerFields.ID, "id")
	        registry.RegisterField(playerFields.Name, "name")
	    })
	    return &Player{}
	}

Lookups for a descriptor that was never registered return a
RegistrationMissingError; this is a programming error, not bad input.

Key map registry:
Associates Go types with datastore key templates (PK/SK macros), consumed by
the ddb datastore:

	registry.RegisterKeyMap[Player](map[string]string{
	    "PK": "PLAYER#{id}",
	    "SK": "PLAYER#{id}",
	})

Both registries are thread-safe and should be populated during
initialization, typically from constructors or generated code.
*/
package registry
