package model

import "github.com/goliatone/go-nodegen/internal/logger"

// Options configures the behaviour of the Converter. Options are constructed
// by the public adapter in pkg/model and passed into New.
type Options struct {
	// Labeler derives a display name for fields without a title.
	Labeler func(string) string
	// Sanitizer post-processes field descriptions.
	Sanitizer func(string) string
	// Logger receives one warning per recovered field problem.
	Logger logger.Logger
}

func defaultOptions() Options {
	return Options{
		Labeler:   KeyLabeler,
		Sanitizer: func(s string) string { return s },
		Logger:    logger.Nop(),
	}
}
