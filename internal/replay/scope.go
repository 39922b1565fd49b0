package replay

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"

	"fortio.org/safecast"
	"golang.org/x/tools/go/packages"

	"attribute-mapper/internal/match"
)

var (
	ErrNotType        = errors.New("expression is not a type")
	ErrNotConstant    = errors.New("expression has no constant value")
	ErrUnsupported    = errors.New("unsupported value type")
	ErrLoadingPackage = errors.New("failed to load package")
)

// LoadMode is what the scope needs from the package it evaluates in.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Scope type-checks fixture expressions. Names resolve against the loaded
// package, or against the universe when no package was given.
type Scope struct {
	fset *token.FileSet
	pkg  *types.Package
}

// UniverseScope returns a scope that knows only predeclared identifiers.
func UniverseScope() *Scope {
	return &Scope{fset: token.NewFileSet()}
}

// LoadScope loads the package matched by pattern, resolved from dir.
func LoadScope(dir, pattern string) (*Scope, error) {
	if pattern == "" {
		return UniverseScope(), nil
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
		Fset: fset,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadingPackage, pattern, err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadingPackage, pattern, errors.Join(errs...))
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w %s: matched %d packages, expected one", ErrLoadingPackage, pattern, len(pkgs))
	}

	return &Scope{fset: fset, pkg: pkgs[0].Types}, nil
}

// Package returns the loaded package, or nil for the universe scope.
func (s *Scope) Package() *types.Package {
	return s.pkg
}

// Evaluated is a type-checked fixture expression.
type Evaluated struct {
	Value  any // Go value, types.Type for type expressions
	Syntax ast.Expr
	Type   types.Type // type of the expression, nil for untyped nil
}

func (s *Scope) check(src string) (ast.Expr, *types.Info, error) {
	expr, err := parser.ParseExprFrom(s.fset, "", src, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %q: %w", src, err)
	}

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	if err := types.CheckExpr(s.fset, s.pkg, token.NoPos, expr, info); err != nil {
		return nil, nil, fmt.Errorf("check %q: %w", src, err)
	}

	return expr, info, nil
}

// Type evaluates a type expression.
func (s *Scope) Type(src string) (Evaluated, error) {
	expr, info, err := s.check(src)
	if err != nil {
		return Evaluated{}, err
	}

	tv := info.Types[expr]
	if !tv.IsType() {
		return Evaluated{}, fmt.Errorf("%w: %s", ErrNotType, src)
	}

	return Evaluated{Value: tv.Type, Syntax: expr, Type: tv.Type}, nil
}

// Value evaluates a value expression. declared is the type of the
// parameter receiving the value; it decides the width of untyped
// constants and may be nil.
func (s *Scope) Value(src string, declared types.Type) (Evaluated, error) {
	expr, info, err := s.check(src)
	if err != nil {
		return Evaluated{}, err
	}

	v, err := convert(expr, info, declared)
	if err != nil {
		return Evaluated{}, fmt.Errorf("%s: %w", src, err)
	}

	return Evaluated{Value: v, Syntax: expr, Type: info.Types[expr].Type}, nil
}

func convert(expr ast.Expr, info *types.Info, declared types.Type) (any, error) {
	tv := info.Types[expr]

	switch {
	case tv.IsType():
		return tv.Type, nil
	case tv.IsNil():
		return nil, nil
	case tv.Value != nil:
		return constantValue(tv.Value, valueType(tv.Type, declared))
	}

	lit, ok := ast.Unparen(expr).(*ast.CompositeLit)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConstant, types.ExprString(expr))
	}

	elem := elementType(tv.Type)
	if elem == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, tv.Type)
	}

	out := make([]any, 0, len(lit.Elts))
	for _, e := range lit.Elts {
		if _, ok := e.(*ast.KeyValueExpr); ok {
			return nil, fmt.Errorf("%w: keyed element %s", ErrUnsupported, types.ExprString(e))
		}

		v, err := convert(e, info, elem)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// valueType picks the type a constant is materialized as: its own type when
// typed, else the declared type when that is basic, else its default type.
func valueType(actual, declared types.Type) types.Type {
	if b, ok := actual.(*types.Basic); !ok || b.Info()&types.IsUntyped == 0 {
		return actual
	}

	if declared != nil {
		if _, ok := declared.Underlying().(*types.Basic); ok {
			return declared
		}
	}

	return types.Default(actual)
}

func elementType(t types.Type) types.Type {
	if t == nil {
		return nil
	}

	return match.ElemType(t)
}

func constantValue(v constant.Value, t types.Type) (any, error) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}

	info := basic.Info()
	switch {
	case info&types.IsBoolean != 0:
		return constant.BoolVal(v), nil
	case info&types.IsString != 0:
		return constant.StringVal(v), nil
	case info&types.IsInteger != 0:
		return integerValue(constant.ToInt(v), basic.Kind())
	case info&types.IsFloat != 0:
		f, _ := constant.Float64Val(constant.ToFloat(v))
		if basic.Kind() == types.Float32 {
			return float32(f), nil
		}

		return f, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
}

// integerValue narrows an integer constant to the Go type of kind.
func integerValue(v constant.Value, kind types.BasicKind) (any, error) {
	if v.Kind() != constant.Int {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrUnsupported, v)
	}

	switch kind {
	case types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64:
		u, exact := constant.Uint64Val(v)
		if !exact {
			return nil, fmt.Errorf("%s overflows uint64", v)
		}

		return narrowUnsigned(u, kind)
	}

	i, exact := constant.Int64Val(v)
	if !exact {
		return nil, fmt.Errorf("%s overflows int64", v)
	}

	return narrowSigned(i, kind)
}

func narrowSigned(i int64, kind types.BasicKind) (any, error) {
	switch kind {
	case types.Int, types.UntypedInt:
		return safecast.Conv[int](i)
	case types.Int8:
		return safecast.Conv[int8](i)
	case types.Int16:
		return safecast.Conv[int16](i)
	case types.Int32, types.UntypedRune:
		return safecast.Conv[int32](i)
	case types.Int64:
		return i, nil
	default:
		return nil, fmt.Errorf("%w: integer kind %d", ErrUnsupported, kind)
	}
}

func narrowUnsigned(u uint64, kind types.BasicKind) (any, error) {
	switch kind {
	case types.Uint:
		return safecast.Conv[uint](u)
	case types.Uint8:
		return safecast.Conv[uint8](u)
	case types.Uint16:
		return safecast.Conv[uint16](u)
	case types.Uint32:
		return safecast.Conv[uint32](u)
	default:
		return u, nil
	}
}
