package recorder

import (
	"go/ast"
	"go/types"

	"attribute-mapper/param"
	"attribute-mapper/pattern"
)

// Split holds a semantic and a syntactic recorder created from one
// registration, for callers that build one record per view. The recorders
// are attached independently, each to its own record type.
type Split[SR, YR, SP, YP any] struct {
	Semantic  Detached[SR, SP]
	Syntactic Detached[YR, YP]
}

// SplitType pairs SemanticType and Syntactic.
func SplitType[SR, YR any](
	semantic func(record SR, argument types.Type) bool,
	syntactic func(record YR, syntax ast.Expr) bool,
) Split[SR, YR, types.Type, ast.Expr] {
	return Split[SR, YR, types.Type, ast.Expr]{
		Semantic:  SemanticType(semantic),
		Syntactic: Syntactic(syntactic),
	}
}

// SplitConstructor pairs Semantic and SyntacticConstructor.
func SplitConstructor[SR, YR, T any](
	p pattern.Pattern[T],
	semantic func(record SR, value T) bool,
	syntactic func(record YR, syntax ast.Expr) bool,
) Split[SR, YR, any, param.ArgumentSyntax] {
	return Split[SR, YR, any, param.ArgumentSyntax]{
		Semantic:  Semantic(p, semantic),
		Syntactic: SyntacticConstructor(syntactic),
	}
}

// SplitParamsConstructor pairs Semantic and SyntacticParamsConstructor.
func SplitParamsConstructor[SR, YR, T any](
	p pattern.Pattern[T],
	semantic func(record SR, value T) bool,
	syntactic func(record YR, syntax param.ArgumentSyntax) bool,
) Split[SR, YR, any, param.ArgumentSyntax] {
	return Split[SR, YR, any, param.ArgumentSyntax]{
		Semantic:  Semantic(p, semantic),
		Syntactic: SyntacticParamsConstructor(syntactic),
	}
}

// SplitOptionalConstructor pairs Semantic and SyntacticOptionalConstructor.
func SplitOptionalConstructor[SR, YR, T any](
	p pattern.Pattern[T],
	semantic func(record SR, value T) bool,
	syntactic func(record YR, syntax ast.Expr) bool,
) Split[SR, YR, any, param.ArgumentSyntax] {
	return Split[SR, YR, any, param.ArgumentSyntax]{
		Semantic:  Semantic(p, semantic),
		Syntactic: SyntacticOptionalConstructor(syntactic),
	}
}

// SplitNamed pairs Semantic and Syntactic.
func SplitNamed[SR, YR, T any](
	p pattern.Pattern[T],
	semantic func(record SR, value T) bool,
	syntactic func(record YR, syntax ast.Expr) bool,
) Split[SR, YR, any, ast.Expr] {
	return Split[SR, YR, any, ast.Expr]{
		Semantic:  Semantic(p, semantic),
		Syntactic: Syntactic(syntactic),
	}
}
