package recorder

import (
	"go/ast"
	"go/types"

	"attribute-mapper/param"
	"attribute-mapper/pattern"
)

// CombinedType records a type argument together with its syntax.
func CombinedType[R any](fn func(record R, argument types.Type, syntax ast.Expr) bool) Detached[R, TypeArgument] {
	mustFunc(fn, "combined type")

	return Func[R, TypeArgument](func(record R, a TypeArgument) error {
		return writeBack(fn(record, a.Value, a.Syntax))
	})
}

// CombinedNamed records a named argument value narrowed by p, with its syntax.
func CombinedNamed[R, T any](p pattern.Pattern[T], fn func(record R, value T, syntax ast.Expr) bool) Detached[R, NamedArgument] {
	mustPattern(p)
	mustFunc(fn, "combined named")

	return Func[R, NamedArgument](func(record R, a NamedArgument) error {
		v, err := fit(p, a.Value)
		if err != nil {
			return err
		}

		return writeBack(fn(record, v, a.Syntax))
	})
}

// CombinedConstructor records a normally bound constructor argument.
func CombinedConstructor[R, T any](p pattern.Pattern[T], fn func(record R, value T, syntax ast.Expr) bool) Detached[R, ConstructorArgument] {
	mustPattern(p)
	mustFunc(fn, "combined constructor")

	return Func[R, ConstructorArgument](func(record R, a ConstructorArgument) error {
		expr, err := normalExpr(a.Syntax)
		if err != nil {
			return err
		}

		v, err := fit(p, a.Value)
		if err != nil {
			return err
		}

		return writeBack(fn(record, v, expr))
	})
}

// CombinedParamsConstructor records a constructor argument of a params
// parameter, bound either normally or through params collection.
func CombinedParamsConstructor[R, T any](p pattern.Pattern[T], fn func(record R, value T, syntax param.ArgumentSyntax) bool) Detached[R, ConstructorArgument] {
	mustPattern(p)
	mustFunc(fn, "combined params constructor")

	return Func[R, ConstructorArgument](func(record R, a ConstructorArgument) error {
		s, err := paramsSyntax(a.Syntax)
		if err != nil {
			return err
		}

		v, err := fit(p, a.Value)
		if err != nil {
			return err
		}

		return writeBack(fn(record, v, s))
	})
}

// CombinedOptionalConstructor records a constructor argument of an optional
// parameter. A defaulted argument carries its default value and a nil
// expression.
func CombinedOptionalConstructor[R, T any](p pattern.Pattern[T], fn func(record R, value T, syntax ast.Expr) bool) Detached[R, ConstructorArgument] {
	mustPattern(p)
	mustFunc(fn, "combined optional constructor")

	return Func[R, ConstructorArgument](func(record R, a ConstructorArgument) error {
		expr, err := optionalExpr(a.Syntax)
		if err != nil {
			return err
		}

		v, err := fit(p, a.Value)
		if err != nil {
			return err
		}

		return writeBack(fn(record, v, expr))
	})
}
