// Package fields defines the input-field descriptors produced by the
// translator and the insertion-ordered collection a form owns. Descriptors
// are plain values; once placed in a Set they are treated as immutable.
package fields

// Kind enumerates the input-field kinds a descriptor can take.
type Kind string

const (
	KindText     Kind = "text"
	KindChoice   Kind = "choice"
	KindInteger  Kind = "integer"
	KindNumber   Kind = "number"
	KindBoolean  Kind = "boolean"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
)

// Option is a single selectable choice. Translated literal values use the
// value as the label; caller-declared descriptors may differ.
type Option struct {
	Value string
	Label string
}

// Descriptor models one input field. Kind-specific attributes are only
// meaningful for the matching kind: MinLength/MaxLength for Text, Min/Max
// for Integer and Number, Options for Choice. Initial is nil for required
// fields.
type Descriptor struct {
	Name      string
	Kind      Kind
	Required  bool
	Initial   any
	Label     string
	HelpText  string
	MinLength int
	MaxLength int
	Min       *float64
	Max       *float64
	Options   []Option
}
