/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Manifest describes the classes whose field registrations are generated.
type Manifest struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`
	// Classes lists the entity types and their field name mappings.
	Classes []Class `yaml:"classes"`
}

// Class declares one entity type's persisted fields and, optionally, its
// datastore key templates.
type Class struct {
	Name   string            `yaml:"name"`
	Fields []Field           `yaml:"fields"`
	KeyMap map[string]string `yaml:"keyMap,omitempty"`
}

// Field maps a Go field to its external property name.
type Field struct {
	Name     string `yaml:"name"`
	Property string `yaml:"property"`
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses and validates YAML manifest text.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for the mistakes generation cannot absorb.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("manifest missing package name")
	}
	if len(m.Classes) == 0 {
		return fmt.Errorf("manifest declares no classes")
	}
	for _, c := range m.Classes {
		if c.Name == "" {
			return fmt.Errorf("class missing name")
		}
		if len(c.Fields) == 0 {
			return fmt.Errorf("class %s declares no fields", c.Name)
		}
		seen := make(map[string]bool, len(c.Fields))
		for _, f := range c.Fields {
			if f.Name == "" || f.Property == "" {
				return fmt.Errorf("class %s has a field missing name or property", c.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("class %s declares field %s twice", c.Name, f.Name)
			}
			seen[f.Name] = true
		}
	}
	return nil
}

var fileTemplate = template.Must(template.New("registrations").Parse(`// Code generated by fieldgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/suparena/fieldstore/registry"
)
{{range .Classes}}{{$c := .}}
// {{.Name}}Fields holds the field descriptors of {{.Name}}.
var {{.Name}}Fields = struct {
	{{range .Fields}}{{.Name}} registry.FieldDescriptor
	{{end}}}{
	{{range .Fields}}{{.Name}}: registry.FieldOf[{{$c.Name}}]("{{.Name}}"),
	{{end}}}

// Register{{.Name}}Fields runs the one-time field registration for {{.Name}}.
// Call it from every constructor of {{.Name}}.
func Register{{.Name}}Fields() {
	registry.InitClass[{{.Name}}](func() {
		{{range .Fields}}registry.RegisterField({{$c.Name}}Fields.{{.Name}}, "{{.Property}}")
		{{end}}{{if .KeyMap}}registry.RegisterKeyMap[{{.Name}}](map[string]string{
			{{range $k, $v := .KeyMap}}"{{$k}}": "{{$v}}",
			{{end}}})
		{{end}}})
}
{{end}}`))

// Generate renders the registration source for a manifest, gofmt'ed.
func Generate(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("failed to render registrations: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return src, nil
}

// Run loads a manifest and writes the generated registration file.
func Run(manifestPath, outPath string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	src, err := Generate(m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
