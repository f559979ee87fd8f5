/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/fieldstore"
	"github.com/suparena/fieldstore/datastore/testmodels"
	"github.com/suparena/fieldstore/document"
)

func playerDoc(id, name string) *document.Document {
	p := testmodels.NewPlayer()
	p.ID = id
	p.Name = name
	return fieldstore.Marshal(p)
}

func TestExpandMacros(t *testing.T) {
	keyMap := map[string]string{
		"PK":     "PLAYER#{id}",
		"SK":     "PLAYER#{id}",
		"GSI1PK": "NAME#{name}",
		"GSI1SK": "PLAYER",
	}

	expanded := expandMacros(keyMap, playerDoc("123", "alice"))

	if expanded["PK"] != "PLAYER#123" {
		t.Errorf("Expected PLAYER#123, got %q", expanded["PK"])
	}
	if expanded["GSI1PK"] != "NAME#alice" {
		t.Errorf("Expected NAME#alice, got %q", expanded["GSI1PK"])
	}
	if expanded["GSI1SK"] != "PLAYER" {
		t.Errorf("Macro-free template should pass through, got %q", expanded["GSI1SK"])
	}
}

func TestExpandMacrosMissingField(t *testing.T) {
	keyMap := map[string]string{"PK": "PLAYER#{unknown}"}

	expanded := expandMacros(keyMap, playerDoc("123", "alice"))
	if expanded["PK"] != "PLAYER#" {
		t.Errorf("Unknown macro should expand empty, got %q", expanded["PK"])
	}
}

func TestExpandStringKey(t *testing.T) {
	keyMap := map[string]string{
		"PK": "PLAYER#{id}",
		"SK": "PROFILE#{id}",
	}

	expanded := expandStringKey(keyMap, "42")
	if expanded["PK"] != "PLAYER#42" || expanded["SK"] != "PROFILE#42" {
		t.Errorf("Unexpected expansion %v", expanded)
	}
}

func TestBuildKeyFromExpanded(t *testing.T) {
	key, err := buildKeyFromExpanded(map[string]string{
		"PK": "PLAYER#1",
		"SK": "PLAYER#1",
	})
	if err != nil {
		t.Fatalf("buildKeyFromExpanded failed: %v", err)
	}

	pk, ok := key["PK"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "PLAYER#1" {
		t.Errorf("Unexpected PK %v", key["PK"])
	}

	if _, err := buildKeyFromExpanded(map[string]string{"PK": "PLAYER#1"}); err == nil {
		t.Error("Expected error for missing SK")
	}
}

func TestBuildUpdateExpression(t *testing.T) {
	expr, names, values, err := buildUpdateExpression(map[string]interface{}{
		"rank": 5,
	})
	if err != nil {
		t.Fatalf("buildUpdateExpression failed: %v", err)
	}
	if expr != "SET #f0 = :v0" {
		t.Errorf("Unexpected expression %q", expr)
	}
	if names["#f0"] != "rank" {
		t.Errorf("Unexpected names %v", names)
	}
	n, ok := values[":v0"].(*types.AttributeValueMemberN)
	if !ok || n.Value != "5" {
		t.Errorf("Unexpected values %v", values)
	}

	if _, _, _, err := buildUpdateExpression(nil); err == nil {
		t.Error("Expected error for empty updates")
	}
	if _, _, _, err := buildUpdateExpression(map[string]interface{}{"bad": struct{}{}}); err == nil {
		t.Error("Expected error for unhandled value type")
	}
}

func TestEntityDocumentAttributeRoundTrip(t *testing.T) {
	p := testmodels.NewPlayer()
	p.ID = "p-9"
	p.Name = "carol"
	p.Rank = 7
	p.Rating.SetA(1850)
	if m, err := p.Motto.Ref(); err == nil {
		*m = "win calmly"
	}
	p.Profile.Bio = "left-handed"
	p.Profile.Country = "CA"

	av, err := document.ToAttributeValues(fieldstore.Marshal(p))
	if err != nil {
		t.Fatalf("ToAttributeValues failed: %v", err)
	}

	doc, err := document.FromAttributeValues(av)
	if err != nil {
		t.Fatalf("FromAttributeValues failed: %v", err)
	}

	fresh := testmodels.NewPlayer()
	fresh.Rating.SetA(0)
	fieldstore.Unmarshal(doc, fresh)

	if fresh.ID != "p-9" || fresh.Name != "carol" || fresh.Rank != 7 {
		t.Errorf("Unexpected entity %+v", fresh)
	}
	if r, err := fresh.Rating.A(); err != nil || *r != 1850 {
		t.Errorf("Expected rating 1850, got %v, err %v", r, err)
	}
	if m, err := fresh.Motto.Ref(); err != nil || *m != "win calmly" {
		t.Errorf("Expected motto, got %v, err %v", m, err)
	}
	if fresh.Profile.Bio != "left-handed" || fresh.Profile.Country != "CA" {
		t.Errorf("Unexpected profile %+v", fresh.Profile)
	}
}
