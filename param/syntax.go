package param

import (
	"go/ast"
	"go/types"
	"log/slog"
	"reflect"
)

// Binding tells how a constructor argument was bound in source.
type Binding int

const (
	BindingUnknown Binding = iota // zero value, never produced by the constructors below
	BindingNormal                 // exactly one expression
	BindingParams                 // zero or more expressions collected into a params parameter
	BindingDefault                // omitted, the declared default applies
)

// String returns a human-readable binding name.
func (b Binding) String() string {
	switch b {
	case BindingNormal:
		return "normal"
	case BindingParams:
		return "params"
	case BindingDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ArgumentSyntax is the syntax of one constructor argument: one expression,
// a list of params-collected expressions, or nothing at all.
type ArgumentSyntax struct {
	binding  Binding
	expr     ast.Expr
	elements []ast.Expr
}

// NormalSyntax returns the syntax of a normally bound argument.
func NormalSyntax(expr ast.Expr) ArgumentSyntax {
	if isNilExpr(expr) {
		panic("argument syntax cannot be nil")
	}

	return ArgumentSyntax{binding: BindingNormal, expr: expr}
}

// ParamsSyntax returns the syntax of a params-collected argument.
// A nil or empty list means no trailing values were supplied.
func ParamsSyntax(elements []ast.Expr) ArgumentSyntax {
	for _, e := range elements {
		if isNilExpr(e) {
			panic("params element syntax cannot be nil")
		}
	}

	return ArgumentSyntax{binding: BindingParams, elements: elements}
}

// isNilExpr also catches typed nil nodes such as (*ast.Ident)(nil).
func isNilExpr(e ast.Expr) bool {
	if e == nil {
		return true
	}

	rv := reflect.ValueOf(e)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// DefaultSyntax returns the syntax of an omitted optional argument.
func DefaultSyntax() ArgumentSyntax {
	return ArgumentSyntax{binding: BindingDefault}
}

// Binding returns how the argument was bound.
func (s ArgumentSyntax) Binding() Binding {
	return s.binding
}

// Expr returns the expression of a normally bound argument.
func (s ArgumentSyntax) Expr() (ast.Expr, bool) {
	return s.expr, s.binding == BindingNormal
}

// Elements returns the expressions of a params-collected argument.
func (s ArgumentSyntax) Elements() ([]ast.Expr, bool) {
	return s.elements, s.binding == BindingParams
}

// Len returns the number of expressions carried by the syntax.
func (s ArgumentSyntax) Len() int {
	switch s.binding {
	case BindingNormal:
		return 1
	case BindingParams:
		return len(s.elements)
	default:
		return 0
	}
}

// LogValue renders the syntax for structured logs.
func (s ArgumentSyntax) LogValue() slog.Value {
	switch s.binding {
	case BindingNormal:
		return slog.GroupValue(
			slog.String("binding", s.binding.String()),
			slog.String("expr", types.ExprString(s.expr)),
		)
	case BindingParams:
		exprs := make([]string, 0, len(s.elements))
		for _, e := range s.elements {
			exprs = append(exprs, types.ExprString(e))
		}

		return slog.GroupValue(
			slog.String("binding", s.binding.String()),
			slog.Any("exprs", exprs),
		)
	default:
		return slog.GroupValue(slog.String("binding", s.binding.String()))
	}
}
