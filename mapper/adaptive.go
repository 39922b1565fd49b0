package mapper

import (
	"go/types"

	"attribute-mapper/recorder"
)

// Adaptive is a pair of mappers over one record type: Combined for callers
// that have argument syntax, Semantic for callers that only have values.
type Adaptive[R any] struct {
	combined *Combined[R]
	semantic *Semantic[R]
}

// AdaptiveConfiguration registers each parameter once for both views.
type AdaptiveConfiguration[R any] struct {
	combined *CombinedConfiguration[R]
	semantic *SemanticConfiguration[R]
}

// TypeParameter maps the type parameter at ordinal in both views.
func (c *AdaptiveConfiguration[R]) TypeParameter(ordinal int, a recorder.Adaptive[R, recorder.TypeArgument, types.Type]) {
	c.combined.TypeParameter(ordinal, a.Combined)
	c.semantic.TypeParameter(ordinal, a.Semantic)
}

// ConstructorParameter maps the constructor parameter called name in both
// views.
func (c *AdaptiveConfiguration[R]) ConstructorParameter(name string, a recorder.Adaptive[R, recorder.ConstructorArgument, any]) {
	c.combined.ConstructorParameter(name, a.Combined)
	c.semantic.ConstructorParameter(name, a.Semantic)
}

// NamedParameter maps the named parameter called name in both views.
func (c *AdaptiveConfiguration[R]) NamedParameter(name string, a recorder.Adaptive[R, recorder.NamedArgument, any]) {
	c.combined.NamedParameter(name, a.Combined)
	c.semantic.NamedParameter(name, a.Semantic)
}

// NewAdaptive runs configure once and builds both views from the result.
// The views share the comparer, the logger and the id sequence.
func NewAdaptive[R any](configure func(*AdaptiveConfiguration[R]), opts ...Option) (*Adaptive[R], error) {
	if configure == nil {
		panic("mapper configuration cannot be nil")
	}

	o := collectOptions(opts)
	if o.err != nil {
		return nil, wrapConfiguration(o.err)
	}

	if o.name == "" {
		o.name = recordName[R]()
	}

	c := &AdaptiveConfiguration[R]{
		combined: newConfiguration[R, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument](o.comparer),
		semantic: newConfiguration[R, types.Type, any, any](o.comparer),
	}
	configure(c)

	combined, err := c.combined.build(o)
	if err != nil {
		return nil, err
	}

	semantic, err := c.semantic.build(o)
	if err != nil {
		return nil, err
	}

	return &Adaptive[R]{combined: combined, semantic: semantic}, nil
}

// Combined returns the view recording values together with their syntax.
func (a *Adaptive[R]) Combined() *Combined[R] {
	return a.combined
}

// Semantic returns the view recording values only.
func (a *Adaptive[R]) Semantic() *Semantic[R] {
	return a.semantic
}
