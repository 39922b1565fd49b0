package recorder

import (
	"go/ast"
	"go/types"

	"attribute-mapper/param"
	"attribute-mapper/pattern"
)

// Adaptive holds a combined and a semantic recorder created from one
// registration. Both run the same pattern; they differ only in whether the
// syntax is threaded through to the write-back.
type Adaptive[R, CP, SP any] struct {
	Combined Detached[R, CP]
	Semantic Detached[R, SP]
}

// AdaptiveType pairs CombinedType and SemanticType.
func AdaptiveType[R any](
	combined func(record R, argument types.Type, syntax ast.Expr) bool,
	semantic func(record R, argument types.Type) bool,
) Adaptive[R, TypeArgument, types.Type] {
	return Adaptive[R, TypeArgument, types.Type]{
		Combined: CombinedType(combined),
		Semantic: SemanticType(semantic),
	}
}

// AdaptiveConstructor pairs CombinedConstructor and Semantic.
func AdaptiveConstructor[R, T any](
	p pattern.Pattern[T],
	combined func(record R, value T, syntax ast.Expr) bool,
	semantic func(record R, value T) bool,
) Adaptive[R, ConstructorArgument, any] {
	return Adaptive[R, ConstructorArgument, any]{
		Combined: CombinedConstructor(p, combined),
		Semantic: Semantic(p, semantic),
	}
}

// AdaptiveParamsConstructor pairs CombinedParamsConstructor and Semantic.
func AdaptiveParamsConstructor[R, T any](
	p pattern.Pattern[T],
	combined func(record R, value T, syntax param.ArgumentSyntax) bool,
	semantic func(record R, value T) bool,
) Adaptive[R, ConstructorArgument, any] {
	return Adaptive[R, ConstructorArgument, any]{
		Combined: CombinedParamsConstructor(p, combined),
		Semantic: Semantic(p, semantic),
	}
}

// AdaptiveOptionalConstructor pairs CombinedOptionalConstructor and Semantic.
func AdaptiveOptionalConstructor[R, T any](
	p pattern.Pattern[T],
	combined func(record R, value T, syntax ast.Expr) bool,
	semantic func(record R, value T) bool,
) Adaptive[R, ConstructorArgument, any] {
	return Adaptive[R, ConstructorArgument, any]{
		Combined: CombinedOptionalConstructor(p, combined),
		Semantic: Semantic(p, semantic),
	}
}

// AdaptiveNamed pairs CombinedNamed and Semantic.
func AdaptiveNamed[R, T any](
	p pattern.Pattern[T],
	combined func(record R, value T, syntax ast.Expr) bool,
	semantic func(record R, value T) bool,
) Adaptive[R, NamedArgument, any] {
	return Adaptive[R, NamedArgument, any]{
		Combined: CombinedNamed(p, combined),
		Semantic: Semantic(p, semantic),
	}
}
