package replay

import (
	"go/ast"
	"go/types"

	"attribute-mapper/param"
	"attribute-mapper/recording"
)

// feeder hides whether an application is replayed through the combined or
// the semantic recorder.
type feeder interface {
	id() string
	typeArgument(p param.TypeParameter, e Evaluated) bool
	normal(p param.ConstructorParameter, e Evaluated) bool
	params(p param.ConstructorParameter, values []any, elements []ast.Expr) bool
	defaulted(p param.ConstructorParameter, value any) bool
	named(name string, e Evaluated) bool
	record() (*Record, error)
}

type combinedFeeder struct {
	r *recording.Combined[*recordBuilder, *Record]
}

func (f combinedFeeder) id() string { return f.r.ID() }

func (f combinedFeeder) typeArgument(p param.TypeParameter, e Evaluated) bool {
	t, ok := e.Value.(types.Type)
	if !ok || t == nil {
		return false
	}

	return f.r.TypeArgument().TryRecordArgument(p, t, e.Syntax)
}

func (f combinedFeeder) normal(p param.ConstructorParameter, e Evaluated) bool {
	return f.r.ConstructorArgument().TryRecordArgument(p, e.Value, e.Syntax)
}

func (f combinedFeeder) params(p param.ConstructorParameter, values []any, elements []ast.Expr) bool {
	return f.r.ConstructorArgument().TryRecordParamsArgument(p, values, elements)
}

func (f combinedFeeder) defaulted(p param.ConstructorParameter, value any) bool {
	return f.r.ConstructorArgument().TryRecordDefaultArgument(p, value)
}

func (f combinedFeeder) named(name string, e Evaluated) bool {
	return f.r.NamedArgument().TryRecordArgument(name, e.Value, e.Syntax)
}

func (f combinedFeeder) record() (*Record, error) { return f.r.GetRecord() }

type semanticFeeder struct {
	r *recording.Semantic[*recordBuilder, *Record]
}

func (f semanticFeeder) id() string { return f.r.ID() }

func (f semanticFeeder) typeArgument(p param.TypeParameter, e Evaluated) bool {
	t, ok := e.Value.(types.Type)
	if !ok || t == nil {
		return false
	}

	return f.r.TypeArgument().TryRecordArgument(p, t)
}

func (f semanticFeeder) normal(p param.ConstructorParameter, e Evaluated) bool {
	return f.r.ConstructorArgument().TryRecordArgument(p, e.Value)
}

func (f semanticFeeder) params(p param.ConstructorParameter, values []any, _ []ast.Expr) bool {
	return f.r.ConstructorArgument().TryRecordArgument(p, values)
}

func (f semanticFeeder) defaulted(p param.ConstructorParameter, value any) bool {
	return f.r.ConstructorArgument().TryRecordArgument(p, value)
}

func (f semanticFeeder) named(name string, e Evaluated) bool {
	return f.r.NamedArgument().TryRecordArgument(name, e.Value)
}

func (f semanticFeeder) record() (*Record, error) { return f.r.GetRecord() }
