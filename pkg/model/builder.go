package model

import (
	"github.com/goliatone/go-nodegen/internal/logger"
	"github.com/goliatone/go-nodegen/internal/model"
	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

// Logger is the structured logging surface converters report warnings to.
type Logger = logger.Logger

// Converter turns a parsed input schema into an ordered property table.
// Field-level problems are recovered and reported as warnings.
type Converter interface {
	Convert(schema inputschema.InputSchema) (Properties, []Warning)
}

// ConverterOption configures the converter behaviour.
type ConverterOption func(*converterOptions)

type converterOptions struct {
	labeler   func(string) string
	sanitizer func(string) string
	logger    Logger
}

// WithLabeler overrides how display names are derived for untitled fields.
func WithLabeler(labeler func(string) string) ConverterOption {
	return func(opts *converterOptions) {
		opts.labeler = labeler
	}
}

// WithHumanizedLabels derives display names for untitled fields with
// HumanizeLabel instead of echoing the key.
func WithHumanizedLabels() ConverterOption {
	return WithLabeler(model.HumanizeLabel)
}

// WithDescriptionSanitizer post-processes every field description.
func WithDescriptionSanitizer(fn func(string) string) ConverterOption {
	return func(opts *converterOptions) {
		opts.sanitizer = fn
	}
}

// WithStrippedHTML removes markup from descriptions.
func WithStrippedHTML() ConverterOption {
	return WithDescriptionSanitizer(model.StripHTML)
}

// WithLogger routes conversion warnings to l.
func WithLogger(l Logger) ConverterOption {
	return func(opts *converterOptions) {
		opts.logger = l
	}
}

// NewConverter returns a Converter backed by the internal implementation.
func NewConverter(options ...ConverterOption) Converter {
	cfg := converterOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return model.New(model.Options{
		Labeler:   cfg.labeler,
		Sanitizer: cfg.sanitizer,
		Logger:    cfg.logger,
	})
}
