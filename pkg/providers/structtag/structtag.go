// Package structtag builds a complete schema.Model from a Go struct
// prototype. Field schemas come from reflection over the struct's types
// and `validate` tags; validation delegates to go-playground/validator,
// with its field errors translated into structured issues keyed by the
// json tag name.
package structtag

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-modelform/pkg/schema"
)

// Option customises the model.
type Option func(*Model)

// WithValidator injects a pre-configured validator instance, preserving
// any custom tag registrations the caller made.
func WithValidator(v *validator.Validate) Option {
	return func(m *Model) {
		m.validate = v
	}
}

// Model derives a field schema from a struct prototype and validates
// submitted bundles against it.
type Model struct {
	typ      reflect.Type
	entries  []schema.Entry
	bindings []binding
	validate *validator.Validate
}

// Ensure the implementation satisfies the model contract.
var _ schema.Model = (*Model)(nil)

type binding struct {
	entry schema.Entry
	index int
	kind  schema.TypeKind
	ptr   bool
}

var timeType = reflect.TypeOf(time.Time{})

// New constructs a Model from the prototype, which must be a struct or a
// pointer to one. The prototype itself is never mutated.
func New(prototype any, opts ...Option) (*Model, error) {
	if prototype == nil {
		return nil, errors.New("structtag: prototype is required")
	}
	typ := reflect.TypeOf(prototype)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("structtag: prototype must be a struct, got %s", typ.Kind())
	}

	m := &Model{typ: typ}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.validate == nil {
		m.validate = validator.New()
	}
	m.validate.RegisterTagNameFunc(jsonTagName)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonTagName(field)
		if name == "" {
			continue
		}
		entry, kind, isPtr := entryFromStructField(name, field)
		m.entries = append(m.entries, entry)
		m.bindings = append(m.bindings, binding{entry: entry, index: i, kind: kind, ptr: isPtr})
	}
	if len(m.entries) == 0 {
		return nil, fmt.Errorf("structtag: struct %s declares no usable fields", typ.Name())
	}
	return m, nil
}

// Fields implements schema.Provider.
func (m *Model) Fields() []schema.Entry {
	return m.entries
}

// Validate binds the submitted bundle into a fresh struct value and runs
// the validator over it. Bind failures (unparseable values) short-circuit
// before the validator runs. On success the validated instance is a
// pointer to the populated struct.
func (m *Model) Validate(values map[string]any) schema.Result {
	inst := reflect.New(m.typ)
	elem := inst.Elem()

	var issues []schema.Issue
	for _, b := range m.bindings {
		if msg := m.bind(elem.Field(b.index), b, values); msg != "" {
			issues = append(issues, schema.Issue{Path: []string{b.entry.Name}, Message: msg})
		}
	}
	if len(issues) > 0 {
		return schema.Invalid(issues...)
	}

	if err := m.validate.Struct(inst.Interface()); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			// InvalidValidationError and friends are configuration
			// problems; report them as a non-field issue rather than
			// letting them escape.
			return schema.Invalid(schema.Issue{Message: err.Error()})
		}
		for _, fieldErr := range fieldErrs {
			issues = append(issues, schema.Issue{
				Path:    []string{fieldErr.Field()},
				Message: messageForError(fieldErr),
			})
		}
		return schema.Invalid(issues...)
	}

	return schema.Valid(inst.Interface())
}

func (m *Model) bind(target reflect.Value, b binding, values map[string]any) string {
	raw, present := values[b.entry.Name]
	if raw == nil {
		present = false
	}

	// Fields without an input mapping (slices, nested structs) are left
	// at their zero value; the validator still sees them.
	if b.kind == schema.KindInvalid {
		return ""
	}

	if b.ptr {
		if !present {
			return ""
		}
		inner := reflect.New(target.Type().Elem())
		msg := setScalar(inner.Elem(), b.kind, raw, present)
		if msg != "" {
			return msg
		}
		target.Set(inner)
		return ""
	}

	if !present && b.kind != schema.KindBoolean {
		// Leave the zero value; `required` tags report the absence.
		return ""
	}
	return setScalar(target, b.kind, raw, present)
}

func setScalar(target reflect.Value, kind schema.TypeKind, raw any, present bool) string {
	switch kind {
	case schema.KindBoolean:
		// Presence-driven: any submitted value checks the box.
		if !present {
			target.SetBool(false)
			return ""
		}
		if b, ok := raw.(bool); ok {
			target.SetBool(b)
		} else {
			target.SetBool(true)
		}
		return ""

	case schema.KindInteger:
		switch v := raw.(type) {
		case int:
			target.SetInt(int64(v))
			return ""
		case int64:
			target.SetInt(v)
			return ""
		case float64:
			if v == float64(int64(v)) {
				target.SetInt(int64(v))
				return ""
			}
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				target.SetInt(n)
				return ""
			}
		}
		return "Input should be a valid integer"

	case schema.KindNumber:
		switch v := raw.(type) {
		case float64:
			target.SetFloat(v)
			return ""
		case int:
			target.SetFloat(float64(v))
			return ""
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				target.SetFloat(f)
				return ""
			}
		}
		return "Input should be a valid number"

	case schema.KindDateTime:
		switch v := raw.(type) {
		case time.Time:
			target.Set(reflect.ValueOf(v))
			return ""
		case string:
			trimmed := strings.TrimSpace(v)
			for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
				if ts, err := time.Parse(layout, trimmed); err == nil {
					target.Set(reflect.ValueOf(ts))
					return ""
				}
			}
		}
		return "Input should be a valid datetime"

	default:
		// Text and choice fields bind as strings.
		if s, ok := raw.(string); ok {
			target.SetString(s)
			return ""
		}
		return "Input should be a valid string"
	}
}

func jsonTagName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
