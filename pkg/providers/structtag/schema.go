package structtag

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-modelform/pkg/schema"
)

// entryFromStructField maps one struct field onto a schema entry. The
// returned kind is the primitive used for binding; pointer fields become
// Optional and report the inner kind.
func entryFromStructField(name string, field reflect.StructField) (schema.Entry, schema.TypeKind, bool) {
	fieldType := field.Type
	isPtr := fieldType.Kind() == reflect.Pointer
	if isPtr {
		fieldType = fieldType.Elem()
	}

	rules := parseValidateTag(field.Tag.Get("validate"))

	typ := declaredType(fieldType, rules)
	kind := typ.Kind
	if isPtr {
		typ = schema.Optional(typ)
	}

	entry := schema.Entry{
		Name:        name,
		Type:        typ,
		Required:    !isPtr && rules.required,
		Description: field.Tag.Get("help"),
		Constraints: rules.constraints(kind),
	}
	if def := field.Tag.Get("default"); def != "" && !entry.Required {
		entry.Default = def
	}
	return entry, kind, isPtr
}

func declaredType(fieldType reflect.Type, rules tagRules) schema.Type {
	if fieldType == timeType {
		return schema.DateTime()
	}

	switch fieldType.Kind() {
	case reflect.String:
		if len(rules.oneOf) > 0 {
			return schema.Choice(rules.oneOf...)
		}
		return schema.Text()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return schema.Integer()
	case reflect.Float32, reflect.Float64:
		return schema.Number()
	case reflect.Bool:
		return schema.Boolean()
	}
	// Slices, maps, and nested structs have no input-field mapping; the
	// translator degrades the zero type to text.
	return schema.Type{}
}

// tagRules is the subset of validator tag vocabulary that maps onto
// schema constraints.
type tagRules struct {
	required bool
	oneOf    []string
	gte      *float64
	gt       *float64
	lte      *float64
	lt       *float64
	min      *float64
	max      *float64
}

func parseValidateTag(tag string) tagRules {
	var rules tagRules
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "required":
			rules.required = true
		case "oneof":
			rules.oneOf = strings.Fields(value)
		case "gte":
			rules.gte = parseBound(value)
		case "gt":
			rules.gt = parseBound(value)
		case "lte":
			rules.lte = parseBound(value)
		case "lt":
			rules.lt = parseBound(value)
		case "min":
			rules.min = parseBound(value)
		case "max":
			rules.max = parseBound(value)
		}
	}
	return rules
}

func parseBound(value string) *float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// constraints converts the parsed rules into schema constraints. The
// validator's min/max tags are length bounds on strings and value bounds
// on numbers, so the mapping depends on the field kind.
func (r tagRules) constraints(kind schema.TypeKind) []schema.Constraint {
	var out []schema.Constraint

	numeric := kind == schema.KindInteger || kind == schema.KindNumber
	if r.gte != nil {
		out = append(out, schema.Ge(*r.gte))
	}
	if r.gt != nil {
		out = append(out, schema.Gt(*r.gt))
	}
	if r.lte != nil {
		out = append(out, schema.Le(*r.lte))
	}
	if r.lt != nil {
		out = append(out, schema.Lt(*r.lt))
	}
	if r.min != nil {
		if numeric {
			out = append(out, schema.Ge(*r.min))
		} else {
			out = append(out, schema.MinLen(int(*r.min)))
		}
	}
	if r.max != nil {
		if numeric {
			out = append(out, schema.Le(*r.max))
		} else {
			out = append(out, schema.MaxLen(int(*r.max)))
		}
	}
	return out
}
