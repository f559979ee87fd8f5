/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/fieldstore/storagemodels"
)

// Query runs a DynamoDB query and deserializes every returned item through
// the entity's field mappings.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]*T, error) {
	if params == nil || params.KeyConditionExpression == "" {
		return nil, errors.New("query requires a key condition expression")
	}

	tableName := params.TableName
	if tableName == "" {
		tableName = d.tableName
	}

	input := &sdk.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}

	out, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	results := make([]*T, 0, len(out.Items))
	for _, item := range out.Items {
		entity, err := d.itemToEntity(item)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}
