// Package schemadoc derives schema entries from declarative YAML or JSON
// field-definition documents. The format is intentionally small:
//
//	fields:
//	  - name: title
//	    type: text
//	    required: true
//	    min_length: 1
//	    max_length: 200
//	  - name: rating
//	    type: integer
//	    ge: 0
//	    le: 10
//	  - name: status
//	    type: choice
//	    choices: [draft, published]
//	  - name: note
//	    type: text
//	    optional: true
//	    default: ""
//
// Unknown type names map to the zero declared type and therefore reach
// the translator's text fallback instead of failing the load.
package schemadoc

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelform/pkg/schema"
)

type document struct {
	Fields []docField `yaml:"fields"`
}

type docField struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Required    bool     `yaml:"required"`
	Optional    bool     `yaml:"optional"`
	Default     any      `yaml:"default"`
	Description string   `yaml:"description"`
	Choices     []string `yaml:"choices"`
	Ge          *float64 `yaml:"ge"`
	Gt          *float64 `yaml:"gt"`
	Le          *float64 `yaml:"le"`
	Lt          *float64 `yaml:"lt"`
	MinLength   *int     `yaml:"min_length"`
	MaxLength   *int     `yaml:"max_length"`
}

// Load reads the document behind src and parses it into schema entries.
func Load(ctx context.Context, loader *Loader, src Source) ([]schema.Entry, error) {
	if loader == nil {
		loader = NewLoader(nil)
	}
	raw, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse converts raw YAML or JSON document bytes into schema entries in
// document order.
func Parse(raw []byte) ([]schema.Entry, error) {
	if len(raw) == 0 {
		return nil, errors.New("schemadoc: document is empty")
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schemadoc: parse document: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, errors.New("schemadoc: document declares no fields")
	}

	entries := make([]schema.Entry, 0, len(doc.Fields))
	for i, field := range doc.Fields {
		if field.Name == "" {
			return nil, fmt.Errorf("schemadoc: field %d has no name", i)
		}
		entries = append(entries, entryFromField(field))
	}
	return entries, nil
}

func entryFromField(field docField) schema.Entry {
	entry := schema.Entry{
		Name:        field.Name,
		Required:    field.Required && !field.Optional,
		Default:     field.Default,
		Description: field.Description,
		Constraints: constraintsFromField(field),
	}

	typ := typeFromName(field)
	if field.Optional && !typ.IsZero() {
		typ = schema.Optional(typ)
	}
	entry.Type = typ
	return entry
}

func typeFromName(field docField) schema.Type {
	switch field.Type {
	case "text", "string":
		return schema.Text()
	case "integer", "int":
		return schema.Integer()
	case "number", "float":
		return schema.Number()
	case "boolean", "bool":
		return schema.Boolean()
	case "date":
		return schema.Date()
	case "datetime":
		return schema.DateTime()
	case "choice":
		return schema.Choice(field.Choices...)
	default:
		return schema.Type{}
	}
}

func constraintsFromField(field docField) []schema.Constraint {
	var constraints []schema.Constraint
	if field.Ge != nil {
		constraints = append(constraints, schema.Ge(*field.Ge))
	}
	if field.Gt != nil {
		constraints = append(constraints, schema.Gt(*field.Gt))
	}
	if field.Le != nil {
		constraints = append(constraints, schema.Le(*field.Le))
	}
	if field.Lt != nil {
		constraints = append(constraints, schema.Lt(*field.Lt))
	}
	if field.MinLength != nil {
		constraints = append(constraints, schema.MinLen(*field.MinLength))
	}
	if field.MaxLength != nil {
		constraints = append(constraints, schema.MaxLen(*field.MaxLength))
	}
	return constraints
}
