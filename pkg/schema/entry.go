package schema

// Entry describes one declared attribute of a validation model. Default is
// only meaningful when Required is false. Constraints carries entry-level
// metadata; constraints attached via an Annotated type are merged in by
// consumers.
type Entry struct {
	Name        string
	Type        Type
	Required    bool
	Default     any
	Description string
	Constraints []Constraint
}

// Provider supplies the ordered field schema of a validation model.
// Implementations are read-only from the consumer's perspective.
type Provider interface {
	Fields() []Entry
}

// Model couples a field schema with the model's own validation routine.
// Validate receives the submitted values as a single bundle and must
// report failures as data; it never panics past its boundary.
type Model interface {
	Provider
	Validate(values map[string]any) Result
}

// Entries is a Provider over a static entry slice.
type Entries []Entry

// Fields implements Provider.
func (e Entries) Fields() []Entry {
	return e
}
