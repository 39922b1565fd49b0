package mapper

import (
	"go/ast"
	"go/types"

	"attribute-mapper/param"
	"attribute-mapper/recorder"
)

// Split is a semantic mapper over SR and a syntactic mapper over YR built
// from one registration set.
type Split[SR, YR any] struct {
	semantic  *Semantic[SR]
	syntactic *Syntactic[YR]
}

// SplitConfiguration registers each parameter once for both records.
type SplitConfiguration[SR, YR any] struct {
	semantic  *SemanticConfiguration[SR]
	syntactic *SyntacticConfiguration[YR]
}

// TypeParameter maps the type parameter at ordinal for both records.
func (c *SplitConfiguration[SR, YR]) TypeParameter(ordinal int, s recorder.Split[SR, YR, types.Type, ast.Expr]) {
	c.semantic.TypeParameter(ordinal, s.Semantic)
	c.syntactic.TypeParameter(ordinal, s.Syntactic)
}

// ConstructorParameter maps the constructor parameter called name for both
// records.
func (c *SplitConfiguration[SR, YR]) ConstructorParameter(name string, s recorder.Split[SR, YR, any, param.ArgumentSyntax]) {
	c.semantic.ConstructorParameter(name, s.Semantic)
	c.syntactic.ConstructorParameter(name, s.Syntactic)
}

// NamedParameter maps the named parameter called name for both records.
func (c *SplitConfiguration[SR, YR]) NamedParameter(name string, s recorder.Split[SR, YR, any, ast.Expr]) {
	c.semantic.NamedParameter(name, s.Semantic)
	c.syntactic.NamedParameter(name, s.Syntactic)
}

// NewSplit runs configure once and builds both mappers from the result.
// Unless WithName is given, each mapper is named after its own record type.
func NewSplit[SR, YR any](configure func(*SplitConfiguration[SR, YR]), opts ...Option) (*Split[SR, YR], error) {
	if configure == nil {
		panic("mapper configuration cannot be nil")
	}

	o := collectOptions(opts)
	if o.err != nil {
		return nil, wrapConfiguration(o.err)
	}

	c := &SplitConfiguration[SR, YR]{
		semantic:  newConfiguration[SR, types.Type, any, any](o.comparer),
		syntactic: newConfiguration[YR, ast.Expr, param.ArgumentSyntax, ast.Expr](o.comparer),
	}
	configure(c)

	semanticOptions, syntacticOptions := o, o
	if o.name == "" {
		semanticOptions.name = recordName[SR]()
		syntacticOptions.name = recordName[YR]()
	}

	semantic, err := c.semantic.build(semanticOptions)
	if err != nil {
		return nil, err
	}

	syntactic, err := c.syntactic.build(syntacticOptions)
	if err != nil {
		return nil, err
	}

	return &Split[SR, YR]{semantic: semantic, syntactic: syntactic}, nil
}

// Semantic returns the mapper over the semantic record.
func (s *Split[SR, YR]) Semantic() *Semantic[SR] {
	return s.semantic
}

// Syntactic returns the mapper over the syntactic record.
func (s *Split[SR, YR]) Syntactic() *Syntactic[YR] {
	return s.syntactic
}
