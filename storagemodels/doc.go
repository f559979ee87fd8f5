/*
Package storagemodels defines the shared data structures of the FieldStore
persistence layer.

QueryParams carries the parameters for querying a datastore:

	params := &storagemodels.QueryParams{
	    TableName:              "my-table",
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "PLAYER#123"},
	    },
	    FilterExpression: aws.String("Rank > :minRank"),
	    Limit:            aws.Int32(100),
	}

These types provide a consistent interface across storage implementations.
*/
package storagemodels
