// Package translate exposes the field translator: the mapping from a
// validation model's declared field types onto input-field descriptors.
// The implementation lives in internal/translate and is reached through
// the Translator interface so callers can substitute their own.
package translate

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-modelform/internal/translate"
	"github.com/goliatone/go-modelform/pkg/fields"
	"github.com/goliatone/go-modelform/pkg/schema"
)

// Translator converts schema entries into an ordered descriptor set,
// merging around the caller-declared base set with base taking priority.
type Translator interface {
	Translate(entries []schema.Entry, base *fields.Set) *fields.Set
}

// Option configures the translator behaviour.
type Option func(*options)

type options struct {
	labeler func(string) string
	logger  *zap.Logger
	fields  []string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) Option {
	return func(opts *options) {
		opts.labeler = labeler
	}
}

// WithLogger sets the logger used for translation-anomaly warnings. The
// default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithFields restricts translation to the named entries; all others are
// skipped.
func WithFields(names ...string) Option {
	return func(opts *options) {
		opts.fields = append(opts.fields, names...)
	}
}

// New returns a Translator backed by the internal implementation.
func New(opts ...Option) Translator {
	cfg := options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return translate.New(translate.Options{
		Labeler: cfg.labeler,
		Logger:  cfg.logger,
		Fields:  cfg.fields,
	})
}

// DefaultLabeler re-exports the name-to-label function used when no
// custom labeler is supplied.
var DefaultLabeler = translate.DefaultLabeler
