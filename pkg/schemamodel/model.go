// Package schemamodel provides a schema.Model implementation that
// validates submitted values directly against the entry list. It stands
// in for an external validation model when the schema is all there is:
// document- and OpenAPI-derived schemas have no code-level validator of
// their own, so this one supplies coercion and constraint checking with
// the upstream validator's message catalogue.
package schemamodel

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-modelform/pkg/schema"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Model validates value bundles against a static schema.
type Model struct {
	entries []schema.Entry
}

// Ensure the implementation satisfies the model contract.
var _ schema.Model = (*Model)(nil)

// New constructs a Model over the given entries.
func New(entries ...schema.Entry) *Model {
	return &Model{entries: append([]schema.Entry(nil), entries...)}
}

// Fields implements schema.Provider.
func (m *Model) Fields() []schema.Entry {
	return m.entries
}

// Validate checks the submitted bundle as a whole. On success the
// validated instance is the map of coerced values keyed by entry name.
// Unknown submitted keys are ignored. Failures are reported as issues in
// entry declaration order; Validate never panics.
func (m *Model) Validate(values map[string]any) schema.Result {
	var issues []schema.Issue
	out := make(map[string]any, len(m.entries))

	for _, entry := range m.entries {
		value, coerced, entryIssues := m.checkEntry(entry, values)
		if len(entryIssues) > 0 {
			issues = append(issues, entryIssues...)
			continue
		}
		if coerced {
			out[entry.Name] = value
		}
	}

	if len(issues) > 0 {
		return schema.Invalid(issues...)
	}
	return schema.Valid(out)
}

func (m *Model) checkEntry(entry schema.Entry, values map[string]any) (any, bool, []schema.Issue) {
	typ, constraints, required := effectiveType(entry)

	raw, present := values[entry.Name]
	if raw == nil {
		present = false
	}

	// Booleans are presence-driven: a submitted value of any shape means
	// true, absence means false. They never fail validation.
	if typ.Kind == schema.KindBoolean {
		return coerceBoolean(raw, present), true, nil
	}

	if !present {
		if required {
			return nil, false, []schema.Issue{{Path: []string{entry.Name}, Message: msgFieldRequired}}
		}
		return absentValue(typ, entry.Default), true, nil
	}

	value, msg := coerceValue(typ, raw)
	if msg != "" {
		return nil, false, []schema.Issue{{Path: []string{entry.Name}, Message: msg}}
	}

	if issues := checkConstraints(entry.Name, typ, constraints, value, raw); len(issues) > 0 {
		return nil, false, issues
	}
	return value, true, nil
}

// effectiveType resolves the declared type the same way the translator
// does: optional unwrap, annotated unwrap with constraint merging, union
// priority resolution. Unresolvable types degrade to text.
func effectiveType(entry schema.Entry) (schema.Type, []schema.Constraint, bool) {
	typ := entry.Type
	required := entry.Required
	constraints := append([]schema.Constraint(nil), entry.Constraints...)

	if typ.Kind == schema.KindOptional && typ.Elem != nil {
		typ = *typ.Elem
		required = false
	}
	if typ.Kind == schema.KindAnnotated && typ.Elem != nil {
		constraints = append(constraints, typ.Constraints...)
		typ = *typ.Elem
	}
	if typ.Kind == schema.KindUnion {
		typ = resolveUnion(typ)
	}
	if typ.IsZero() {
		typ = schema.Text()
	}
	return typ, constraints, required
}

func resolveUnion(typ schema.Type) schema.Type {
	priority := []schema.TypeKind{
		schema.KindText,
		schema.KindNumber,
		schema.KindInteger,
		schema.KindDate,
		schema.KindDateTime,
	}
	present := make(map[schema.TypeKind]struct{}, len(typ.Members))
	for _, member := range typ.Members {
		if member.Kind == schema.KindOptional && member.Elem != nil {
			member = *member.Elem
		}
		present[member.Kind] = struct{}{}
	}
	for _, kind := range priority {
		if _, ok := present[kind]; ok {
			return schema.Type{Kind: kind}
		}
	}
	return schema.Type{}
}

// absentValue fills a non-required entry that was not submitted. Text
// fields settle on the empty string so downstream consumers always see a
// string value.
func absentValue(typ schema.Type, fallback any) any {
	if fallback != nil {
		return fallback
	}
	if typ.Kind == schema.KindText || typ.Kind == schema.KindChoice {
		return ""
	}
	return nil
}

func coerceBoolean(raw any, present bool) bool {
	if !present {
		return false
	}
	if b, ok := raw.(bool); ok {
		return b
	}
	return true
}

// coerceValue converts the raw submitted value into the resolved type's
// canonical representation, returning a message when the shape does not
// fit.
func coerceValue(typ schema.Type, raw any) (any, string) {
	switch typ.Kind {
	case schema.KindText:
		if s, ok := raw.(string); ok {
			return s, ""
		}
		return nil, msgInvalidText

	case schema.KindChoice:
		if s, ok := raw.(string); ok {
			return s, ""
		}
		return nil, msgNotAChoice(raw)

	case schema.KindInteger:
		switch v := raw.(type) {
		case int:
			return v, ""
		case int32:
			return int(v), ""
		case int64:
			return int(v), ""
		case float64:
			if v == float64(int(v)) {
				return int(v), ""
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, ""
			}
		}
		return nil, msgInvalidInteger

	case schema.KindNumber:
		switch v := raw.(type) {
		case float64:
			return v, ""
		case float32:
			return float64(v), ""
		case int:
			return float64(v), ""
		case int64:
			return float64(v), ""
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f, ""
			}
		}
		return nil, msgInvalidNumber

	case schema.KindDate:
		switch v := raw.(type) {
		case time.Time:
			return v, ""
		case string:
			if ts, err := time.Parse(dateLayout, strings.TrimSpace(v)); err == nil {
				return ts, ""
			}
		}
		return nil, msgInvalidDate

	case schema.KindDateTime:
		switch v := raw.(type) {
		case time.Time:
			return v, ""
		case string:
			trimmed := strings.TrimSpace(v)
			if ts, err := time.Parse(time.RFC3339, trimmed); err == nil {
				return ts, ""
			}
			if ts, err := time.Parse(dateTimeLayout, trimmed); err == nil {
				return ts, ""
			}
		}
		return nil, msgInvalidDateTime
	}

	// Unknown kinds were already degraded to text; anything left passes
	// through untouched.
	return raw, ""
}

func checkConstraints(name string, typ schema.Type, constraints []schema.Constraint, value, raw any) []schema.Issue {
	var issues []schema.Issue
	fail := func(message string) {
		issues = append(issues, schema.Issue{Path: []string{name}, Message: message})
	}

	switch typ.Kind {
	case schema.KindChoice:
		if !containsLiteral(typ.Literals, value.(string)) {
			fail(msgNotAChoice(raw))
		}

	case schema.KindInteger, schema.KindNumber:
		numeric := toFloat(value)
		for _, c := range constraints {
			switch c.Op {
			case schema.OpGe:
				if numeric < c.Value {
					fail(msgGreaterEqual(c.Value))
				}
			case schema.OpGt:
				if numeric <= c.Value {
					fail(msgGreater(c.Value))
				}
			case schema.OpLe:
				if numeric > c.Value {
					fail(msgLessEqual(c.Value))
				}
			case schema.OpLt:
				if numeric >= c.Value {
					fail(msgLess(c.Value))
				}
			}
		}

	case schema.KindText:
		text := value.(string)
		for _, c := range constraints {
			switch c.Op {
			case schema.OpMinLen:
				if len(text) < int(c.Value) {
					fail(msgMinLength(int(c.Value)))
				}
			case schema.OpMaxLen:
				if len(text) > int(c.Value) {
					fail(msgMaxLength(int(c.Value)))
				}
			}
		}
	}

	return issues
}

func containsLiteral(literals []string, value string) bool {
	for _, literal := range literals {
		if literal == value {
			return true
		}
	}
	return false
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
