// Package form owns the per-request form instance: it translates a
// validation model's schema into input-field descriptors at construction
// time and bridges the model's own validation back onto those fields.
//
// A Form serves exactly one logical request. Construction populates the
// descriptor set, Validate runs at most once, and the instance is not
// safe for concurrent mutation.
package form

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-modelform/pkg/fields"
	"github.com/goliatone/go-modelform/pkg/schema"
	"github.com/goliatone/go-modelform/pkg/translate"
)

// PathSeparator joins multi-component issue paths into flat field names.
const PathSeparator = "."

var (
	// ErrNilModel is returned when no validation model is supplied.
	ErrNilModel = errors.New("form: model is required")
	// ErrValidated is returned when Validate is called on a form that
	// already ran; a fresh validation requires a fresh Form.
	ErrValidated = errors.New("form: already validated")
)

// State tracks the validation lifecycle of a Form. The state machine is
// Unvalidated → Valid | Invalid and terminal once entered.
type State int

const (
	StateUnvalidated State = iota
	StateValid
	StateInvalid
)

// Option customises form construction.
type Option func(*config)

type config struct {
	overrides  []fields.Descriptor
	fieldNames []string
	translator translate.Translator
	logger     *zap.Logger
}

// WithOverrides declares caller-owned descriptors that take precedence
// over translation: a schema entry with a matching name is not
// translated.
func WithOverrides(descriptors ...fields.Descriptor) Option {
	return func(cfg *config) {
		cfg.overrides = append(cfg.overrides, descriptors...)
	}
}

// WithFields restricts the form to the named schema entries.
func WithFields(names ...string) Option {
	return func(cfg *config) {
		cfg.fieldNames = append(cfg.fieldNames, names...)
	}
}

// WithTranslator injects a custom translator. WithFields and WithLogger
// are ignored for translation purposes when this option is used.
func WithTranslator(t translate.Translator) Option {
	return func(cfg *config) {
		cfg.translator = t
	}
}

// WithLogger sets the logger forwarded to the translator for
// translation-anomaly warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Form binds a validation model to an ordered set of input-field
// descriptors and collects validation errors per field.
type Form struct {
	model          schema.Model
	fields         *fields.Set
	state          State
	instance       any
	fieldErrors    map[string][]string
	nonFieldErrors []string
}

// New constructs a Form for the given model. Configuration problems (nil
// model, unnamed or duplicate schema entries) fail here, never at
// validation time.
func New(model schema.Model, opts ...Option) (*Form, error) {
	if model == nil {
		return nil, ErrNilModel
	}

	cfg := config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	entries := model.Fields()
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	base := fields.NewSet()
	for _, desc := range cfg.overrides {
		base.Add(desc)
	}

	translator := cfg.translator
	if translator == nil {
		var topts []translate.Option
		if len(cfg.fieldNames) > 0 {
			topts = append(topts, translate.WithFields(cfg.fieldNames...))
		}
		if cfg.logger != nil {
			topts = append(topts, translate.WithLogger(cfg.logger))
		}
		translator = translate.New(topts...)
	}

	return &Form{
		model:       model,
		fields:      translator.Translate(entries, base),
		fieldErrors: make(map[string][]string),
	}, nil
}

func validateEntries(entries []schema.Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			return errors.New("form: schema entry without a name")
		}
		if _, dup := seen[entry.Name]; dup {
			return fmt.Errorf("form: duplicate schema entry %q", entry.Name)
		}
		seen[entry.Name] = struct{}{}
	}
	return nil
}

// Fields returns the ordered descriptor set.
func (f *Form) Fields() *fields.Set {
	return f.fields
}

// Field returns the descriptor registered under name.
func (f *Form) Field(name string) (fields.Descriptor, bool) {
	return f.fields.Get(name)
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	return f.state
}

// Validate runs the model's own validation against the submitted bundle
// and maps any issues back onto the fields. Validation failure is not an
// error: it moves the form to StateInvalid and fills the error lists. The
// only error return is calling Validate on an already-validated form.
func (f *Form) Validate(values map[string]any) error {
	if f.state != StateUnvalidated {
		return ErrValidated
	}

	result := f.model.Validate(values)
	if result.OK() {
		f.state = StateValid
		f.instance = result.Instance()
		return nil
	}

	f.state = StateInvalid
	for _, issue := range result.Issues() {
		name := issue.Field(PathSeparator)
		if name != "" && f.fields.Has(name) {
			f.fieldErrors[name] = append(f.fieldErrors[name], issue.Message)
			continue
		}
		f.nonFieldErrors = append(f.nonFieldErrors, issue.Message)
	}
	return nil
}

// IsValid reports whether validation ran and succeeded.
func (f *Form) IsValid() bool {
	return f.state == StateValid
}

// Instance returns the validated model instance, or nil before a
// successful Validate call.
func (f *Form) Instance() any {
	return f.instance
}

// Errors returns the error messages attached to the named field, in
// report order.
func (f *Form) Errors(name string) []string {
	return f.fieldErrors[name]
}

// FieldErrors returns all per-field error lists.
func (f *Form) FieldErrors() map[string][]string {
	return f.fieldErrors
}

// NonFieldErrors returns the messages that matched no known field.
func (f *Form) NonFieldErrors() []string {
	return f.nonFieldErrors
}
