package recorder

import (
	"fmt"
	"go/ast"
	"reflect"

	"attribute-mapper/param"
	"attribute-mapper/pattern"
)

func isNilFunc(fn any) bool {
	if fn == nil {
		return true
	}

	rv := reflect.ValueOf(fn)

	return rv.Kind() == reflect.Func && rv.IsNil()
}

func mustPattern[T any](p pattern.Pattern[T]) {
	if p == nil {
		panic("recorder pattern cannot be nil")
	}
}

// fit runs p over value and converts a mismatch into ErrNoFit.
func fit[T any](p pattern.Pattern[T], value any) (T, error) {
	v, ok := p.TryFit(value)
	if !ok {
		var zero T
		return zero, ErrNoFit
	}

	return v, nil
}

func unsupported(s param.ArgumentSyntax) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedBinding, s.Binding())
}

// normalExpr accepts only a normally bound argument.
func normalExpr(s param.ArgumentSyntax) (ast.Expr, error) {
	expr, ok := s.Expr()
	if !ok {
		return nil, unsupported(s)
	}

	return expr, nil
}

// paramsSyntax accepts a normally bound or params-collected argument.
func paramsSyntax(s param.ArgumentSyntax) (param.ArgumentSyntax, error) {
	switch s.Binding() {
	case param.BindingNormal, param.BindingParams:
		return s, nil
	default:
		return param.ArgumentSyntax{}, unsupported(s)
	}
}

// optionalExpr accepts a normally bound argument or the default binding,
// the latter as a nil expression.
func optionalExpr(s param.ArgumentSyntax) (ast.Expr, error) {
	switch s.Binding() {
	case param.BindingNormal:
		expr, _ := s.Expr()
		return expr, nil
	case param.BindingDefault:
		return nil, nil
	default:
		return nil, unsupported(s)
	}
}
