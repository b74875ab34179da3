// Package openapi derives schema entries from a named component schema
// inside an OpenAPI 3 document, so forms can be generated for API
// payloads without hand-written field declarations.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-modelform/pkg/schema"
)

// Entries loads the document and converts the named component schema's
// properties into schema entries. Properties are emitted in name-sorted
// order; OpenAPI objects carry no declaration order.
func Entries(ctx context.Context, raw []byte, component string) ([]schema.Entry, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi provider: document payload is empty")
	}
	if component == "" {
		return nil, errors.New("openapi provider: component name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi provider: load document: %w", err)
	}

	if doc.Components == nil {
		return nil, errors.New("openapi provider: document has no components")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi provider: component schema %q not found", component)
	}

	return entriesFromObject(ref.Value)
}

func entriesFromObject(src *openapi3.Schema) ([]schema.Entry, error) {
	if !hasType(src, "object") && len(src.Properties) == 0 {
		return nil, errors.New("openapi provider: component schema is not an object")
	}

	requiredSet := make(map[string]struct{}, len(src.Required))
	for _, name := range src.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]schema.Entry, 0, len(names))
	for _, name := range names {
		prop := src.Properties[name]
		if prop == nil || prop.Value == nil {
			// Unresolved reference: keep the field, let translation
			// degrade it to text.
			entries = append(entries, schema.Entry{Name: name})
			continue
		}
		_, required := requiredSet[name]
		entries = append(entries, entryFromProperty(name, prop.Value, required))
	}
	return entries, nil
}

func entryFromProperty(name string, src *openapi3.Schema, required bool) schema.Entry {
	entry := schema.Entry{
		Name:        name,
		Required:    required,
		Default:     src.Default,
		Description: src.Description,
		Constraints: constraintsFromSchema(src),
	}

	typ := typeFromSchema(src)
	if src.Nullable && !typ.IsZero() {
		typ = schema.Optional(typ)
		entry.Required = false
	}
	entry.Type = typ
	return entry
}

// typeFromSchema maps an OpenAPI schema node onto the declared-type
// variant. Enumerations win over the base type; anyOf/oneOf become
// unions of their member types.
func typeFromSchema(src *openapi3.Schema) schema.Type {
	if len(src.Enum) > 0 {
		values := make([]string, 0, len(src.Enum))
		for _, v := range src.Enum {
			values = append(values, fmt.Sprintf("%v", v))
		}
		return schema.Choice(values...)
	}

	if members := unionMembers(src.AnyOf); len(members) > 0 {
		return schema.Union(members...)
	}
	if members := unionMembers(src.OneOf); len(members) > 0 {
		return schema.Union(members...)
	}

	switch {
	case hasType(src, "string"):
		switch src.Format {
		case "date":
			return schema.Date()
		case "date-time":
			return schema.DateTime()
		default:
			return schema.Text()
		}
	case hasType(src, "integer"):
		return schema.Integer()
	case hasType(src, "number"):
		return schema.Number()
	case hasType(src, "boolean"):
		return schema.Boolean()
	}

	// Arrays, objects, and untyped nodes have no input-field mapping;
	// the zero type routes them through the text fallback.
	return schema.Type{}
}

func unionMembers(refs openapi3.SchemaRefs) []schema.Type {
	var members []schema.Type
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		member := typeFromSchema(ref.Value)
		if ref.Value.Nullable && !member.IsZero() {
			member = schema.Optional(member)
		}
		members = append(members, member)
	}
	return members
}

func constraintsFromSchema(src *openapi3.Schema) []schema.Constraint {
	var constraints []schema.Constraint
	if src.Min != nil {
		if src.ExclusiveMin {
			constraints = append(constraints, schema.Gt(*src.Min))
		} else {
			constraints = append(constraints, schema.Ge(*src.Min))
		}
	}
	if src.Max != nil {
		if src.ExclusiveMax {
			constraints = append(constraints, schema.Lt(*src.Max))
		} else {
			constraints = append(constraints, schema.Le(*src.Max))
		}
	}
	if src.MinLength != 0 {
		constraints = append(constraints, schema.MinLen(int(src.MinLength)))
	}
	if src.MaxLength != nil {
		constraints = append(constraints, schema.MaxLen(int(*src.MaxLength)))
	}
	return constraints
}

func hasType(src *openapi3.Schema, name string) bool {
	if src.Type == nil {
		return false
	}
	for _, t := range src.Type.Slice() {
		if t == name {
			return true
		}
	}
	return false
}
