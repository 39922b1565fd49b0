package recording

import (
	"go/types"

	"attribute-mapper/builder"
	"attribute-mapper/mapper"
	"attribute-mapper/param"
)

// Semantic records resolved argument values into a T and returns an R.
type Semantic[T, R any] struct {
	binding *binding[T, types.Type, any, any]
	result  result[T, R]
}

// NewSemantic creates a recorder writing into record.
func NewSemantic[T any](m *mapper.Semantic[T], record T) *Semantic[T, T] {
	return &Semantic[T, T]{binding: bind(m, record), result: identity[T]}
}

// NewSemanticWithBuilder creates a recorder writing into b. GetRecord
// returns the result of b.Build.
func NewSemanticWithBuilder[R any, T builder.Interface[R]](m *mapper.Semantic[T], b T) *Semantic[T, R] {
	return &Semantic[T, R]{binding: bind(m, b), result: build[T, R]}
}

// ID returns the identifier the recorder logs under.
func (s *Semantic[T, R]) ID() string { return s.binding.id }

// TypeArgument returns the surface for type arguments.
func (s *Semantic[T, R]) TypeArgument() SemanticTypeArgument[T] {
	return SemanticTypeArgument[T]{binding: s.binding}
}

// ConstructorArgument returns the surface for constructor arguments.
func (s *Semantic[T, R]) ConstructorArgument() SemanticConstructorArgument[T] {
	return SemanticConstructorArgument[T]{binding: s.binding}
}

// NamedArgument returns the surface for named arguments.
func (s *Semantic[T, R]) NamedArgument() SemanticNamedArgument[T] {
	return SemanticNamedArgument[T]{binding: s.binding}
}

// GetRecord returns the recorded record.
func (s *Semantic[T, R]) GetRecord() (R, error) {
	return getRecord(s.binding, s.result)
}

type SemanticTypeArgument[T any] struct {
	binding *binding[T, types.Type, any, any]
}

// TryRecordArgument records the resolved type of the type parameter p.
func (a SemanticTypeArgument[T]) TryRecordArgument(p param.TypeParameter, argument types.Type) bool {
	mustType(argument)
	return a.binding.typeArgument(p, argument)
}

type SemanticConstructorArgument[T any] struct {
	binding *binding[T, types.Type, any, any]
}

// TryRecordArgument records the value of the constructor parameter p. For
// a params parameter value is the collected slice; for an omitted optional
// parameter it is the declared default.
func (a SemanticConstructorArgument[T]) TryRecordArgument(p param.ConstructorParameter, value any) bool {
	return a.binding.constructorArgument(p, value)
}

type SemanticNamedArgument[T any] struct {
	binding *binding[T, types.Type, any, any]
}

// TryRecordArgument records the value of the named parameter name.
func (a SemanticNamedArgument[T]) TryRecordArgument(name string, value any) bool {
	return a.binding.namedArgument(name, value)
}
