package recording

import (
	"go/ast"
	"go/types"

	"attribute-mapper/builder"
	"attribute-mapper/mapper"
	"attribute-mapper/param"
	"attribute-mapper/recorder"
)

// Combined records argument values together with their syntax into a T and
// returns an R.
type Combined[T, R any] struct {
	binding *binding[T, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument]
	result  result[T, R]
}

// NewCombined creates a recorder writing into record.
func NewCombined[T any](m *mapper.Combined[T], record T) *Combined[T, T] {
	return &Combined[T, T]{binding: bind(m, record), result: identity[T]}
}

// NewCombinedWithBuilder creates a recorder writing into b. GetRecord
// returns the result of b.Build.
func NewCombinedWithBuilder[R any, T builder.Interface[R]](m *mapper.Combined[T], b T) *Combined[T, R] {
	return &Combined[T, R]{binding: bind(m, b), result: build[T, R]}
}

// ID returns the identifier the recorder logs under.
func (c *Combined[T, R]) ID() string { return c.binding.id }

// TypeArgument returns the surface for type arguments.
func (c *Combined[T, R]) TypeArgument() CombinedTypeArgument[T] {
	return CombinedTypeArgument[T]{binding: c.binding}
}

// ConstructorArgument returns the surface for constructor arguments.
func (c *Combined[T, R]) ConstructorArgument() CombinedConstructorArgument[T] {
	return CombinedConstructorArgument[T]{binding: c.binding}
}

// NamedArgument returns the surface for named arguments.
func (c *Combined[T, R]) NamedArgument() CombinedNamedArgument[T] {
	return CombinedNamedArgument[T]{binding: c.binding}
}

// GetRecord returns the recorded record.
func (c *Combined[T, R]) GetRecord() (R, error) {
	return getRecord(c.binding, c.result)
}

type CombinedTypeArgument[T any] struct {
	binding *binding[T, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument]
}

// TryRecordArgument records the resolved type of p and its syntax.
func (a CombinedTypeArgument[T]) TryRecordArgument(p param.TypeParameter, argument types.Type, syntax ast.Expr) bool {
	mustType(argument)
	mustSyntax(syntax, "type argument")
	return a.binding.typeArgument(p, recorder.TypeArgument{Value: argument, Syntax: syntax})
}

type CombinedConstructorArgument[T any] struct {
	binding *binding[T, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument]
}

// TryRecordArgument records a normally bound argument.
func (a CombinedConstructorArgument[T]) TryRecordArgument(p param.ConstructorParameter, value any, syntax ast.Expr) bool {
	mustSyntax(syntax, "constructor argument")
	return a.binding.constructorArgument(p, recorder.ConstructorArgument{Value: value, Syntax: param.NormalSyntax(syntax)})
}

// TryRecordParamsArgument records the values collected into the params
// parameter p, together with the syntax of each element.
func (a CombinedConstructorArgument[T]) TryRecordParamsArgument(p param.ConstructorParameter, value any, elements []ast.Expr) bool {
	return a.binding.constructorArgument(p, recorder.ConstructorArgument{Value: value, Syntax: param.ParamsSyntax(elements)})
}

// TryRecordDefaultArgument records the declared default of the omitted
// optional parameter p.
func (a CombinedConstructorArgument[T]) TryRecordDefaultArgument(p param.ConstructorParameter, value any) bool {
	return a.binding.constructorArgument(p, recorder.ConstructorArgument{Value: value, Syntax: param.DefaultSyntax()})
}

type CombinedNamedArgument[T any] struct {
	binding *binding[T, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument]
}

// TryRecordArgument records the value of the named argument name and its
// syntax.
func (a CombinedNamedArgument[T]) TryRecordArgument(name string, value any, syntax ast.Expr) bool {
	mustSyntax(syntax, "named argument")
	return a.binding.namedArgument(name, recorder.NamedArgument{Value: value, Syntax: syntax})
}
