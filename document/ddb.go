/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ToAttributeValues converts the document into a DynamoDB item map.
func ToAttributeValues(d *Document) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(d.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return av, nil
}

// FromAttributeValues converts a DynamoDB item map into a document.
// DynamoDB numbers surface as float64; field coercion narrows them back to
// the declared integer types where they are integral.
func FromAttributeValues(item map[string]types.AttributeValue) (*Document, error) {
	var m map[string]any
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return FromMap(m), nil
}
