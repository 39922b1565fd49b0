package builder

import (
	"errors"
	"fmt"
)

var (
	ErrIncomplete   = errors.New("record is incomplete")
	ErrAlreadyBuilt = errors.New("record has already been built")
)

// Interface is implemented by anything a recorder can retrieve a record from.
type Interface[R any] interface {
	Build() (R, error)
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	multipleBuilds bool
}

// WithMultipleBuilds allows Build to be called more than once.
func WithMultipleBuilds() Option {
	return func(o *options) {
		o.multipleBuilds = true
	}
}

// WithPolicy sets the build policy from a flag, e.g. a configuration value.
func WithPolicy(multipleBuilds bool) Option {
	return func(o *options) {
		o.multipleBuilds = multipleBuilds
	}
}

// Builder accumulates writes into a record under construction. It is meant
// to be embedded by record-specific builders that expose typed setters.
//
// The record is held by pointer, so every write lands in the value Build
// returns. A Builder is confined to a single parse and is not safe for
// concurrent use.
type Builder[R any] struct {
	record   *R
	complete func(*R) error
	opts     options
	built    bool
}

// New creates a builder around record. complete reports why the record is not
// yet complete, or nil once it is; a nil complete accepts every record.
func New[R any](record *R, complete func(*R) error, opts ...Option) *Builder[R] {
	if record == nil {
		panic("record cannot be nil")
	}

	b := &Builder[R]{
		record:   record,
		complete: complete,
	}

	for _, opt := range opts {
		opt(&b.opts)
	}

	return b
}

// HasBeenBuilt reports whether Build has succeeded at least once.
func (b *Builder[R]) HasBeenBuilt() bool {
	return b.built
}

// ThrowOnMultipleBuilds reports whether a second Build fails.
func (b *Builder[R]) ThrowOnMultipleBuilds() bool {
	return !b.opts.multipleBuilds
}

// CanModify reports whether the record may still be written.
func (b *Builder[R]) CanModify() error {
	if b.built && !b.opts.multipleBuilds {
		return ErrAlreadyBuilt
	}

	return nil
}

// Modify applies fn to the record under construction.
func (b *Builder[R]) Modify(fn func(*R)) error {
	if fn == nil {
		panic("modification cannot be nil")
	}

	if err := b.CanModify(); err != nil {
		return err
	}

	fn(b.record)

	return nil
}

// Set is Modify for setters that report a boolean outcome, the shape
// recorder write-backs use.
func (b *Builder[R]) Set(fn func(*R)) bool {
	return b.Modify(fn) == nil
}

// Build validates completeness and returns the record.
func (b *Builder[R]) Build() (*R, error) {
	if b.built && !b.opts.multipleBuilds {
		return nil, ErrAlreadyBuilt
	}

	if b.complete != nil {
		if err := b.complete(b.record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncomplete, err)
		}
	}

	b.built = true

	return b.record, nil
}
