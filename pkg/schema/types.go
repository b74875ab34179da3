package schema

// TypeKind enumerates the closed set of declared-type variants a schema
// entry can carry. The zero value marks an absent or unresolvable type;
// consumers must degrade gracefully rather than reject it.
type TypeKind string

const (
	KindInvalid   TypeKind = ""
	KindText      TypeKind = "text"
	KindInteger   TypeKind = "integer"
	KindNumber    TypeKind = "number"
	KindBoolean   TypeKind = "boolean"
	KindDate      TypeKind = "date"
	KindDateTime  TypeKind = "datetime"
	KindChoice    TypeKind = "choice"
	KindOptional  TypeKind = "optional"
	KindUnion     TypeKind = "union"
	KindAnnotated TypeKind = "annotated"
)

// Type is the tagged-variant representation of a declared field type.
// Exactly one payload is meaningful per kind: Elem for Optional and
// Annotated, Members for Union, Literals for Choice, Constraints for
// Annotated. Primitive kinds carry no payload.
type Type struct {
	Kind        TypeKind
	Elem        *Type
	Members     []Type
	Literals    []string
	Constraints []Constraint
}

// Text returns the text primitive type.
func Text() Type { return Type{Kind: KindText} }

// Integer returns the integer primitive type.
func Integer() Type { return Type{Kind: KindInteger} }

// Number returns the floating-point primitive type.
func Number() Type { return Type{Kind: KindNumber} }

// Boolean returns the boolean primitive type.
func Boolean() Type { return Type{Kind: KindBoolean} }

// Date returns the calendar-date primitive type.
func Date() Type { return Type{Kind: KindDate} }

// DateTime returns the timestamp primitive type.
func DateTime() Type { return Type{Kind: KindDateTime} }

// Choice returns a literal-enumeration type whose values double as labels.
func Choice(values ...string) Type {
	return Type{Kind: KindChoice, Literals: append([]string(nil), values...)}
}

// Optional wraps inner as a union with the absence type. Translators must
// force required=false on entries declared with it.
func Optional(inner Type) Type {
	elem := inner
	return Type{Kind: KindOptional, Elem: &elem}
}

// Union returns a multi-member type. Members should not include the
// absence type; use Optional for that.
func Union(members ...Type) Type {
	return Type{Kind: KindUnion, Members: append([]Type(nil), members...)}
}

// Annotated attaches constraint metadata to inner, which may itself be a
// union.
func Annotated(inner Type, constraints ...Constraint) Type {
	elem := inner
	return Type{
		Kind:        KindAnnotated,
		Elem:        &elem,
		Constraints: append([]Constraint(nil), constraints...),
	}
}

// IsZero reports whether the type is the absent/unresolvable sentinel.
func (t Type) IsZero() bool {
	return t.Kind == KindInvalid
}
