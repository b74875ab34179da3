package translate

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-modelform/pkg/fields"
	"github.com/goliatone/go-modelform/pkg/schema"
)

// Options configures the behaviour of the Translator. Options are
// constructed by the public adapter in pkg/translate and passed into New.
type Options struct {
	Labeler func(string) string
	Logger  *zap.Logger
	Fields  []string
}

// Translator converts schema entries into input-field descriptors.
type Translator struct {
	opts    Options
	include map[string]struct{}
}

// New creates a Translator with the supplied options.
func New(options Options) *Translator {
	opts := options
	if opts.Labeler == nil {
		opts.Labeler = DefaultLabeler
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var include map[string]struct{}
	if len(opts.Fields) > 0 {
		include = make(map[string]struct{}, len(opts.Fields))
		for _, name := range opts.Fields {
			include[name] = struct{}{}
		}
	}

	return &Translator{opts: opts, include: include}
}

// Translate produces the merged descriptor set for the given entries.
// Base holds caller-declared descriptors which take precedence: a name
// already present suppresses translation for that entry. Entries outside
// the inclusion list, when one is configured, are skipped entirely.
// Translation never fails; unsupported shapes degrade to a text field.
func (t *Translator) Translate(entries []schema.Entry, base *fields.Set) *fields.Set {
	out := base.Clone()
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		if t.include != nil {
			if _, ok := t.include[entry.Name]; !ok {
				continue
			}
		}
		if out.Has(entry.Name) {
			continue
		}
		out.Add(t.descriptor(entry))
	}
	return out
}

// descriptor runs the per-entry decision table.
func (t *Translator) descriptor(entry schema.Entry) fields.Descriptor {
	typ := entry.Type
	required := entry.Required

	// Optional unwrap forces required=false regardless of the schema's
	// own default-presence rules.
	if typ.Kind == schema.KindOptional && typ.Elem != nil {
		typ = *typ.Elem
		required = false
	}

	if typ.Kind == schema.KindChoice {
		if desc, ok := t.choiceDescriptor(entry, typ, required); ok {
			return desc
		}
		t.opts.Logger.Warn("choice construction failed, treating as plain field",
			zap.String("field", entry.Name))
	}

	constraints := append([]schema.Constraint(nil), entry.Constraints...)
	if typ.Kind == schema.KindAnnotated && typ.Elem != nil {
		constraints = append(constraints, typ.Constraints...)
		typ = *typ.Elem
	}
	if typ.Kind == schema.KindUnion {
		typ = resolveUnion(typ)
	}

	desc := fields.Descriptor{
		Name:     entry.Name,
		Required: required,
		Label:    t.opts.Labeler(entry.Name),
		HelpText: sanitizeHelpText(entry.Description),
	}
	if !required {
		desc.Initial = entry.Default
	}

	switch typ.Kind {
	case schema.KindText:
		desc.Kind = fields.KindText
		desc.MinLength, desc.MaxLength = schema.LengthBounds(constraints)
	case schema.KindInteger:
		desc.Kind = fields.KindInteger
		desc.Min, desc.Max = schema.NumericBounds(constraints)
	case schema.KindNumber:
		desc.Kind = fields.KindNumber
		desc.Min, desc.Max = schema.NumericBounds(constraints)
	case schema.KindBoolean:
		desc.Kind = fields.KindBoolean
	case schema.KindDate:
		desc.Kind = fields.KindDate
	case schema.KindDateTime:
		desc.Kind = fields.KindDateTime
	default:
		t.opts.Logger.Warn("unsupported field type, falling back to text",
			zap.String("field", entry.Name),
			zap.String("kind", string(typ.Kind)))
		desc.Kind = fields.KindText
		desc.MinLength, desc.MaxLength = schema.LengthBounds(constraints)
	}

	return desc
}

func (t *Translator) choiceDescriptor(entry schema.Entry, typ schema.Type, required bool) (fields.Descriptor, bool) {
	if len(typ.Literals) == 0 {
		return fields.Descriptor{}, false
	}

	options := make([]fields.Option, 0, len(typ.Literals))
	for _, literal := range typ.Literals {
		options = append(options, fields.Option{Value: literal, Label: literal})
	}

	desc := fields.Descriptor{
		Name:     entry.Name,
		Kind:     fields.KindChoice,
		Required: required,
		Label:    t.opts.Labeler(entry.Name),
		HelpText: sanitizeHelpText(entry.Description),
		Options:  options,
	}
	if !required {
		desc.Initial = entry.Default
	}
	return desc, true
}

// unionPriority prefers the most input-permissive representation: text
// accepts the broadest range of user input literally, so a union that can
// accept text is always rendered as text even when other members are
// numeric or temporal.
var unionPriority = []schema.TypeKind{
	schema.KindText,
	schema.KindNumber,
	schema.KindInteger,
	schema.KindDate,
	schema.KindDateTime,
}

// resolveUnion picks the member to render. The absence member is dropped
// first; when no member matches the priority list the zero Type is
// returned and the dispatch default branch degrades to text.
func resolveUnion(typ schema.Type) schema.Type {
	present := make(map[schema.TypeKind]struct{}, len(typ.Members))
	for _, member := range typ.Members {
		if member.Kind == schema.KindOptional && member.Elem != nil {
			member = *member.Elem
		}
		present[member.Kind] = struct{}{}
	}
	for _, kind := range unionPriority {
		if _, ok := present[kind]; ok {
			return schema.Type{Kind: kind}
		}
	}
	return schema.Type{}
}
