// Package modelform derives web-form input-field descriptors from a
// validation model's schema and maps validation failures back onto the
// individual fields. The root package re-exports the pieces most callers
// need; the full API lives under pkg/.
package modelform

import (
	"github.com/goliatone/go-modelform/pkg/fields"
	"github.com/goliatone/go-modelform/pkg/form"
	"github.com/goliatone/go-modelform/pkg/schema"
)

// Form binds a validation model to its translated field descriptors.
type Form = form.Form

// Descriptor models a single input field.
type Descriptor = fields.Descriptor

// Entry describes one declared attribute of a validation model.
type Entry = schema.Entry

// Model couples a field schema with the model's own validation routine.
type Model = schema.Model

// Option customises form construction.
type Option = form.Option

// New constructs a Form for the given model, translating its schema into
// input-field descriptors.
func New(model schema.Model, opts ...Option) (*Form, error) {
	return form.New(model, opts...)
}
