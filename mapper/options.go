package mapper

import (
	"log/slog"

	"attribute-mapper/internal/config"
	"attribute-mapper/internal/logsink"
	"attribute-mapper/repository"
)

// Option configures a Mapper.
type Option func(*options)

type options struct {
	comparer repository.Comparer
	logger   *slog.Logger
	sequence *logsink.Sequence
	name     string
	err      error
}

// WithComparer sets how constructor and named parameter names are matched.
func WithComparer(c repository.Comparer) Option {
	return func(o *options) {
		o.comparer = c
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSequence sets the sequence recorder ids are drawn from. Sharing one
// sequence between mappers keeps ids unique across them.
func WithSequence(s *logsink.Sequence) Option {
	return func(o *options) {
		o.sequence = s
	}
}

// WithName sets the mapper name used in diagnostics. It defaults to the
// record type.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithConfig applies the name matching policy of a loaded configuration.
// A nil configuration leaves the defaults in place.
func WithConfig(c *config.Config) Option {
	return func(o *options) {
		if c == nil {
			return
		}

		comparer, err := c.Comparer()
		if err != nil {
			o.err = err
			return
		}

		o.comparer = comparer
	}
}

func collectOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.comparer == nil {
		o.comparer = repository.DefaultComparer()
	}

	if o.sequence == nil {
		o.sequence = logsink.NewSequence("rec")
	}

	return o
}
