/*
Package datastore defines the persistence interface for FieldStore entities.

The main interface is DataStore[T], which provides generic CRUD operations
for any entity type T whose fields are registered with the field registry:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    UpdateWithCondition(ctx context.Context, keyInput any, updates map[string]interface{}, condition string) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]*T, error)
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation; entities implementing
    fieldstore.Serializable travel as documents converted to attribute maps
  - mock: In-memory implementation for testing

The package uses Go generics to ensure type safety at compile time while
keeping storage backends interchangeable.
*/
package datastore
