package recording

import (
	"go/ast"
	"go/types"
	"reflect"

	"attribute-mapper/builder"
	"attribute-mapper/internal/logsink"
	"attribute-mapper/mapper"
	"attribute-mapper/param"
)

// binding is a mapper scoped to one recorder, together with the record its
// attached recorders write into.
type binding[T, TP, CP, NP any] struct {
	mapper *mapper.Mapper[T, TP, CP, NP]
	target T
	id     string
}

func bind[T, TP, CP, NP any](m *mapper.Mapper[T, TP, CP, NP], target T) *binding[T, TP, CP, NP] {
	if m == nil {
		panic("mapper cannot be nil")
	}

	scoped, id := m.Scope()
	scoped.Log().Debug("recorder created")

	return &binding[T, TP, CP, NP]{mapper: scoped, target: target, id: id}
}

func (b *binding[T, TP, CP, NP]) log() *logsink.Sink {
	return b.mapper.Log()
}

func (b *binding[T, TP, CP, NP]) typeArgument(p param.TypeParameter, payload TP) bool {
	if p.Ordinal < 0 {
		panic("type parameter ordinal cannot be negative")
	}

	a, ok := b.mapper.TryMapTypeParameter(p, b.target)
	if !ok {
		return false
	}

	return a.TryRecord(payload)
}

func (b *binding[T, TP, CP, NP]) constructorArgument(p param.ConstructorParameter, payload CP) bool {
	if p.Name == "" {
		panic("constructor parameter name cannot be empty")
	}

	a, ok := b.mapper.TryMapConstructorParameter(p, b.target)
	if !ok {
		return false
	}

	return a.TryRecord(payload)
}

func (b *binding[T, TP, CP, NP]) namedArgument(name string, payload NP) bool {
	if name == "" {
		panic("named parameter name cannot be empty")
	}

	a, ok := b.mapper.TryMapNamedParameter(name, b.target)
	if !ok {
		return false
	}

	return a.TryRecord(payload)
}

// result produces the record GetRecord returns.
type result[T, R any] func(target T) (R, error)

func identity[T any](target T) (T, error) {
	return target, nil
}

func build[T builder.Interface[R], R any](target T) (R, error) {
	return target.Build()
}

// getRecord runs res and logs a failed build under the recorder id.
func getRecord[T, TP, CP, NP, R any](b *binding[T, TP, CP, NP], res result[T, R]) (R, error) {
	record, err := res(b.target)
	if err != nil {
		b.log().Warn("record not built", "error", err.Error())
		return record, err
	}

	return record, nil
}

func mustSyntax(syntax ast.Expr, what string) {
	if isNil(syntax) {
		panic(what + " syntax cannot be nil")
	}
}

func mustType(argument types.Type) {
	if isNil(argument) {
		panic("type argument cannot be nil")
	}
}

// isNil also catches typed nil pointers hidden in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
