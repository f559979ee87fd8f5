/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/fieldstore"
	"github.com/suparena/fieldstore/document"
	"github.com/suparena/fieldstore/registry"
)

// DynamodbDataStore implements datastore.DataStore[T] on AWS DynamoDB.
// Entities are serialized through their WriteSelf/ReadSelf field mappings
// into documents, which convert to DynamoDB attribute maps at the boundary.
type DynamodbDataStore[T any] struct {
	client    *sdk.Client
	tableName string
	newEntity func() *T
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills key templates like "PLAYER#{id}" from the entity's
// serialized document. Macro names refer to the fields' external names.
func expandMacros(keyMap map[string]string, doc *document.Document) map[string]string {
	res := make(map[string]string, len(keyMap))
	for fieldName, template := range keyMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")
			v, err := doc.Get(key)
			if err != nil {
				return ""
			}
			switch tv := v.(type) {
			case string:
				return tv
			case bool, int, int32, int64, float32, float64:
				return fmt.Sprintf("%v", tv)
			default:
				// objects, arrays and binaries have no key representation
				return ""
			}
		})
		res[fieldName] = expanded
	}
	return res
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
// newEntity must be the entity's constructor so that field registrations
// have run before the first ReadSelf.
func NewDynamodbDataStore[T any](awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName string, newEntity func() *T) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: awsDDBTableName,
		newEntity: newEntity,
	}, nil
}

func asSerializable(v any) (fieldstore.Serializable, error) {
	s, ok := v.(fieldstore.Serializable)
	if !ok {
		return nil, fmt.Errorf("entity type %T does not implement fieldstore.Serializable", v)
	}
	return s, nil
}

// GetOne retrieves a single item from DynamoDB using a string key.
// It returns a pointer to the item of type T, or nil if no item is found.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return nil, errors.New("no key map found for entity type")
	}

	expanded := expandStringKey(keyMap, key)
	itemKey, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       itemKey,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		// Not found: return nil, nil
		return nil, nil
	}

	return d.itemToEntity(out.Item)
}

func (d *DynamodbDataStore[T]) itemToEntity(item map[string]types.AttributeValue) (*T, error) {
	doc, err := document.FromAttributeValues(item)
	if err != nil {
		return nil, err
	}

	entity := d.newEntity()
	s, err := asSerializable(entity)
	if err != nil {
		return nil, err
	}
	fieldstore.Unmarshal(doc, s)
	return entity, nil
}

// Put stores the given entity, expanding the macros of its registered key
// map into partition/sort keys (and possibly GSI keys).
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return errors.New("no key map found for entity type")
	}

	s, err := asSerializable(&entity)
	if err != nil {
		return err
	}
	doc := fieldstore.Marshal(s)

	av, err := document.ToAttributeValues(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal entity document: %w", err)
	}

	// Insert the expanded key fields as PK, SK, etc.
	for k, v := range expandMacros(keyMap, doc) {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item from DynamoDB using a string key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return errors.New("no key map found for entity type")
	}

	expanded := expandStringKey(keyMap, key)
	itemKey, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       itemKey,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// buildUpdateExpression transforms a map of field->value into:
//   - an "update expression" (e.g., "SET #f1 = :v1, #f2 = :v2")
//   - a corresponding map of expression attribute names
//   - a corresponding map of expression attribute values
func buildUpdateExpression(updates map[string]interface{}) (string,
	map[string]string,
	map[string]types.AttributeValue,
	error) {

	if len(updates) == 0 {
		return "", nil, nil, errors.New("no updates provided")
	}

	setClauses := make([]string, 0, len(updates))
	exprAttrNames := make(map[string]string)
	exprAttrValues := make(map[string]types.AttributeValue)

	i := 0
	for field, val := range updates {
		placeholderName := fmt.Sprintf("#f%d", i)
		placeholderValue := fmt.Sprintf(":v%d", i)

		setClauses = append(setClauses, fmt.Sprintf("%s = %s", placeholderName, placeholderValue))
		exprAttrNames[placeholderName] = field

		switch typedVal := val.(type) {
		case string:
			exprAttrValues[placeholderValue] = &types.AttributeValueMemberS{Value: typedVal}
		case bool:
			exprAttrValues[placeholderValue] = &types.AttributeValueMemberBOOL{Value: typedVal}
		case int, int32, int64, float32, float64:
			exprAttrValues[placeholderValue] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%v", typedVal)}
		default:
			return "", nil, nil, fmt.Errorf("unhandled update value type for field '%s'", field)
		}

		i++
	}

	updateExpr := "SET " + strings.Join(setClauses, ", ")
	return updateExpr, exprAttrNames, exprAttrValues, nil
}

// UpdateWithCondition applies a partial update guarded by a condition
// expression. keyInput is a Serializable entity carrying enough fields to
// expand the key macros.
func (d *DynamodbDataStore[T]) UpdateWithCondition(ctx context.Context, keyInput any, updates map[string]interface{}, condition string) error {
	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return errors.New("no key map found for entity type")
	}

	key, err := d.getKey(keyInput, keyMap)
	if err != nil {
		return fmt.Errorf("failed to build key: %w", err)
	}

	updateExpr, exprAttrNames, exprAttrValues, err := buildUpdateExpression(updates)
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &sdk.UpdateItemInput{
		TableName:                 &d.tableName,
		Key:                       key,
		UpdateExpression:          &updateExpr,
		ExpressionAttributeNames:  exprAttrNames,
		ExpressionAttributeValues: exprAttrValues,
		ConditionExpression:       &condition,
		ReturnValues:              types.ReturnValueAllNew,
	}

	_, err = d.client.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("condition failed: %w", err)
		}
		return fmt.Errorf("UpdateWithCondition failed: %w", err)
	}

	return nil
}

func (d *DynamodbDataStore[T]) getKey(keyInput any, keyMap map[string]string) (map[string]types.AttributeValue, error) {
	s, err := asSerializable(keyInput)
	if err != nil {
		return nil, err
	}
	expanded := expandMacros(keyMap, fieldstore.Marshal(s))
	return buildKeyFromExpanded(expanded)
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded key map.
// It assumes that the expanded map has valid non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded key map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// expandStringKey replaces every macro occurrence in the key map values with
// the provided key.
func expandStringKey(keyMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(keyMap))
	for field, template := range keyMap {
		expanded[field] = macroPattern.ReplaceAllString(template, key)
	}
	return expanded
}
