package mapper

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"attribute-mapper/param"
	"attribute-mapper/recorder"
	"attribute-mapper/repository"
)

// Configuration collects the recorders of a mapper during its configuration
// callback. Registration errors are gathered and returned by the constructor.
type Configuration[R, TP, CP, NP any] struct {
	types        *repository.Types[recorder.Detached[R, TP]]
	constructors *repository.Names[recorder.Detached[R, CP]]
	named        *repository.Names[recorder.Detached[R, NP]]
	errs         []error
}

type (
	SemanticConfiguration[R any]  = Configuration[R, types.Type, any, any]
	SyntacticConfiguration[R any] = Configuration[R, ast.Expr, param.ArgumentSyntax, ast.Expr]
	CombinedConfiguration[R any]  = Configuration[R, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument]
)

func newConfiguration[R, TP, CP, NP any](comparer repository.Comparer) *Configuration[R, TP, CP, NP] {
	return &Configuration[R, TP, CP, NP]{
		types:        repository.NewTypes[recorder.Detached[R, TP]](),
		constructors: repository.NewNames[recorder.Detached[R, CP]](comparer),
		named:        repository.NewNames[recorder.Detached[R, NP]](comparer),
	}
}

// TypeParameter maps the type parameter at ordinal.
func (c *Configuration[R, TP, CP, NP]) TypeParameter(ordinal int, d recorder.Detached[R, TP]) {
	if err := c.types.Add(ordinal, d); err != nil {
		c.errs = append(c.errs, err)
	}
}

// ConstructorParameter maps the constructor parameter called name.
func (c *Configuration[R, TP, CP, NP]) ConstructorParameter(name string, d recorder.Detached[R, CP]) {
	if err := c.constructors.Add(name, d); err != nil {
		c.errs = append(c.errs, fmt.Errorf("constructor parameter: %w", err))
	}
}

// NamedParameter maps the named parameter called name.
func (c *Configuration[R, TP, CP, NP]) NamedParameter(name string, d recorder.Detached[R, NP]) {
	if err := c.named.Add(name, d); err != nil {
		c.errs = append(c.errs, fmt.Errorf("named parameter: %w", err))
	}
}

// build freezes the collected repositories into a mapper.
func (c *Configuration[R, TP, CP, NP]) build(o options) (*Mapper[R, TP, CP, NP], error) {
	errs := c.errs

	typeRepo, err := c.types.Build()
	if err != nil {
		errs = append(errs, err)
	}

	ctorRepo, err := c.constructors.Build()
	if err != nil {
		errs = append(errs, fmt.Errorf("constructor parameter: %w", err))
	}

	namedRepo, err := c.named.Build()
	if err != nil {
		errs = append(errs, fmt.Errorf("named parameter: %w", err))
	}

	if len(errs) > 0 {
		return nil, wrapConfiguration(errors.Join(errs...))
	}

	return newMapper(o, typeRepo, ctorRepo, namedRepo), nil
}
