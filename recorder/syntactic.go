package recorder

import (
	"go/ast"

	"attribute-mapper/param"
)

// Syntactic records the syntax of a type or named argument.
func Syntactic[R any](fn func(record R, syntax ast.Expr) bool) Detached[R, ast.Expr] {
	mustFunc(fn, "syntactic")

	return Func[R, ast.Expr](func(record R, syntax ast.Expr) error {
		return writeBack(fn(record, syntax))
	})
}

// SyntacticConstructor records a normally bound constructor argument.
// Params-collected and defaulted arguments are not supported.
func SyntacticConstructor[R any](fn func(record R, syntax ast.Expr) bool) Detached[R, param.ArgumentSyntax] {
	mustFunc(fn, "syntactic constructor")

	return Func[R, param.ArgumentSyntax](func(record R, s param.ArgumentSyntax) error {
		expr, err := normalExpr(s)
		if err != nil {
			return err
		}

		return writeBack(fn(record, expr))
	})
}

// SyntacticParamsConstructor records a constructor argument of a params
// parameter, bound either normally or through params collection.
func SyntacticParamsConstructor[R any](fn func(record R, syntax param.ArgumentSyntax) bool) Detached[R, param.ArgumentSyntax] {
	mustFunc(fn, "syntactic params constructor")

	return Func[R, param.ArgumentSyntax](func(record R, s param.ArgumentSyntax) error {
		s, err := paramsSyntax(s)
		if err != nil {
			return err
		}

		return writeBack(fn(record, s))
	})
}

// SyntacticOptionalConstructor records a constructor argument of an optional
// parameter. A defaulted argument is handed over as a nil expression.
func SyntacticOptionalConstructor[R any](fn func(record R, syntax ast.Expr) bool) Detached[R, param.ArgumentSyntax] {
	mustFunc(fn, "syntactic optional constructor")

	return Func[R, param.ArgumentSyntax](func(record R, s param.ArgumentSyntax) error {
		expr, err := optionalExpr(s)
		if err != nil {
			return err
		}

		return writeBack(fn(record, expr))
	})
}
