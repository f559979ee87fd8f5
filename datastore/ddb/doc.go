/*
Package ddb implements datastore.DataStore[T] on AWS DynamoDB.

Entities reach DynamoDB through their field mappings: Put serializes the
entity via WriteSelf into a document, converts it to an attribute map, and
expands the type's registered key templates (PK, SK, GSI keys) from the
document's external names:

	registry.RegisterKeyMap[Player](map[string]string{
	    "PK": "PLAYER#{id}",
	    "SK": "PLAYER#{id}",
	})

	store, _ := ddb.NewDynamodbDataStore[Player](accessKey, secretKey, region, table, NewPlayer)
	err := store.Put(ctx, *player)

GetOne and Query reverse the path: attribute maps become documents, and a
freshly constructed entity reads itself out of the document. The constructor
passed to NewDynamodbDataStore guarantees field registrations have run
before the first read.
*/
package ddb
