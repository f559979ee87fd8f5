/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec boundary: producing and consuming document text (or attribute maps,
// see ddb.go) lives here, outside the field-mapping core.

// MarshalJSON encodes the document as a JSON object.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// UnmarshalJSON decodes a JSON object into the document, replacing its
// contents.
func (d *Document) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	d.values = FromMap(m).values
	return nil
}

// EncodeJSON renders the document as JSON text.
func EncodeJSON(d *Document) ([]byte, error) {
	return json.Marshal(d)
}

// DecodeJSON parses JSON text into a fresh document.
func DecodeJSON(data []byte) (*Document, error) {
	d := New()
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return d, nil
}

// EncodeYAML renders the document as YAML text.
func EncodeYAML(d *Document) ([]byte, error) {
	return yaml.Marshal(d.Map())
}

// DecodeYAML parses YAML text into a fresh document.
func DecodeYAML(data []byte) (*Document, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return FromMap(m), nil
}
