package recording

import (
	"go/ast"

	"attribute-mapper/builder"
	"attribute-mapper/mapper"
	"attribute-mapper/param"
)

// Syntactic records argument syntax into a T and returns an R.
type Syntactic[T, R any] struct {
	binding *binding[T, ast.Expr, param.ArgumentSyntax, ast.Expr]
	result  result[T, R]
}

// NewSyntactic creates a recorder writing into record.
func NewSyntactic[T any](m *mapper.Syntactic[T], record T) *Syntactic[T, T] {
	return &Syntactic[T, T]{binding: bind(m, record), result: identity[T]}
}

// NewSyntacticWithBuilder creates a recorder writing into b. GetRecord
// returns the result of b.Build.
func NewSyntacticWithBuilder[R any, T builder.Interface[R]](m *mapper.Syntactic[T], b T) *Syntactic[T, R] {
	return &Syntactic[T, R]{binding: bind(m, b), result: build[T, R]}
}

// ID returns the identifier the recorder logs under.
func (s *Syntactic[T, R]) ID() string { return s.binding.id }

// TypeArgument returns the surface for type arguments.
func (s *Syntactic[T, R]) TypeArgument() SyntacticTypeArgument[T] {
	return SyntacticTypeArgument[T]{binding: s.binding}
}

// ConstructorArgument returns the surface for constructor arguments.
func (s *Syntactic[T, R]) ConstructorArgument() SyntacticConstructorArgument[T] {
	return SyntacticConstructorArgument[T]{binding: s.binding}
}

// NamedArgument returns the surface for named arguments.
func (s *Syntactic[T, R]) NamedArgument() SyntacticNamedArgument[T] {
	return SyntacticNamedArgument[T]{binding: s.binding}
}

// GetRecord returns the recorded record.
func (s *Syntactic[T, R]) GetRecord() (R, error) {
	return getRecord(s.binding, s.result)
}

type SyntacticTypeArgument[T any] struct {
	binding *binding[T, ast.Expr, param.ArgumentSyntax, ast.Expr]
}

// TryRecordArgument records the syntax of the type argument of p.
func (a SyntacticTypeArgument[T]) TryRecordArgument(p param.TypeParameter, syntax ast.Expr) bool {
	mustSyntax(syntax, "type argument")
	return a.binding.typeArgument(p, syntax)
}

type SyntacticConstructorArgument[T any] struct {
	binding *binding[T, ast.Expr, param.ArgumentSyntax, ast.Expr]
}

// TryRecordArgument records the syntax of a normally bound argument.
func (a SyntacticConstructorArgument[T]) TryRecordArgument(p param.ConstructorParameter, syntax ast.Expr) bool {
	mustSyntax(syntax, "constructor argument")
	return a.binding.constructorArgument(p, param.NormalSyntax(syntax))
}

// TryRecordParamsArgument records the syntax of the values collected into
// the params parameter p. elements may be empty.
func (a SyntacticConstructorArgument[T]) TryRecordParamsArgument(p param.ConstructorParameter, elements []ast.Expr) bool {
	return a.binding.constructorArgument(p, param.ParamsSyntax(elements))
}

// TryRecordDefaultArgument records that the optional parameter p was
// omitted.
func (a SyntacticConstructorArgument[T]) TryRecordDefaultArgument(p param.ConstructorParameter) bool {
	return a.binding.constructorArgument(p, param.DefaultSyntax())
}

type SyntacticNamedArgument[T any] struct {
	binding *binding[T, ast.Expr, param.ArgumentSyntax, ast.Expr]
}

// TryRecordArgument records the syntax of the named argument name.
func (a SyntacticNamedArgument[T]) TryRecordArgument(name string, syntax ast.Expr) bool {
	mustSyntax(syntax, "named argument")
	return a.binding.namedArgument(name, syntax)
}
