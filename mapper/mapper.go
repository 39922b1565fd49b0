package mapper

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"reflect"

	"attribute-mapper/internal/logsink"
	"attribute-mapper/param"
	"attribute-mapper/recorder"
	"attribute-mapper/repository"
)

var ErrConfiguration = errors.New("invalid mapper configuration")

// Mapper owns the frozen parameter mappings of record type R. TP, CP and NP
// are the payload shapes of type, constructor and named arguments.
type Mapper[R, TP, CP, NP any] struct {
	types        *repository.FrozenTypes[recorder.Detached[R, TP]]
	constructors *repository.FrozenNames[recorder.Detached[R, CP]]
	named        *repository.FrozenNames[recorder.Detached[R, NP]]
	name         string
	sequence     *logsink.Sequence
	log          *logsink.Sink
}

type (
	Semantic[R any]  = Mapper[R, types.Type, any, any]
	Syntactic[R any] = Mapper[R, ast.Expr, param.ArgumentSyntax, ast.Expr]
	Combined[R any]  = Mapper[R, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument]
)

// New runs configure once and freezes the registered mappings.
// Configuration errors, duplicate parameters included, fail construction.
func New[R, TP, CP, NP any](configure func(*Configuration[R, TP, CP, NP]), opts ...Option) (*Mapper[R, TP, CP, NP], error) {
	if configure == nil {
		panic("mapper configuration cannot be nil")
	}

	o := collectOptions(opts)
	if o.err != nil {
		return nil, wrapConfiguration(o.err)
	}

	if o.name == "" {
		o.name = recordName[R]()
	}

	c := newConfiguration[R, TP, CP, NP](o.comparer)
	configure(c)

	return c.build(o)
}

// NewSemantic creates a mapper recording resolved values.
func NewSemantic[R any](configure func(*SemanticConfiguration[R]), opts ...Option) (*Semantic[R], error) {
	return New[R, types.Type, any, any](configure, opts...)
}

// NewSyntactic creates a mapper recording argument syntax.
func NewSyntactic[R any](configure func(*SyntacticConfiguration[R]), opts ...Option) (*Syntactic[R], error) {
	return New[R, ast.Expr, param.ArgumentSyntax, ast.Expr](configure, opts...)
}

// NewCombined creates a mapper recording values together with their syntax.
func NewCombined[R any](configure func(*CombinedConfiguration[R]), opts ...Option) (*Combined[R], error) {
	return New[R, recorder.TypeArgument, recorder.ConstructorArgument, recorder.NamedArgument](configure, opts...)
}

func newMapper[R, TP, CP, NP any](
	o options,
	typeRepo *repository.FrozenTypes[recorder.Detached[R, TP]],
	ctorRepo *repository.FrozenNames[recorder.Detached[R, CP]],
	namedRepo *repository.FrozenNames[recorder.Detached[R, NP]],
) *Mapper[R, TP, CP, NP] {
	return &Mapper[R, TP, CP, NP]{
		types:        typeRepo,
		constructors: ctorRepo,
		named:        namedRepo,
		name:         o.name,
		sequence:     o.sequence,
		log:          logsink.New(o.logger).With("mapper", o.name),
	}
}

func wrapConfiguration(err error) error {
	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}

func recordName[R any]() string {
	return reflect.TypeFor[R]().String()
}

// Name returns the name the mapper logs under.
func (m *Mapper[R, TP, CP, NP]) Name() string {
	return m.name
}

// Comparer returns how constructor and named parameter names are matched.
func (m *Mapper[R, TP, CP, NP]) Comparer() repository.Comparer {
	return m.constructors.Comparer()
}

// TypeParameters returns the mapped type parameter ordinals.
func (m *Mapper[R, TP, CP, NP]) TypeParameters() []int {
	return m.types.Keys()
}

// ConstructorParameters returns the mapped constructor parameter names.
func (m *Mapper[R, TP, CP, NP]) ConstructorParameters() []string {
	return m.constructors.Keys()
}

// NamedParameters returns the mapped named parameter names.
func (m *Mapper[R, TP, CP, NP]) NamedParameters() []string {
	return m.named.Keys()
}

// Scope returns a view of the mapper whose diagnostics carry a fresh
// recorder id, along with that id. The view shares the frozen mappings.
func (m *Mapper[R, TP, CP, NP]) Scope() (*Mapper[R, TP, CP, NP], string) {
	id := m.sequence.Next()

	scoped := *m
	scoped.log = m.log.With("recorder", id)

	return &scoped, id
}

// Log returns the sink the mapper writes diagnostics to.
func (m *Mapper[R, TP, CP, NP]) Log() *logsink.Sink {
	return m.log
}

// TryMapTypeParameter resolves the recorder of a type parameter and binds it
// to record.
func (m *Mapper[R, TP, CP, NP]) TryMapTypeParameter(p param.TypeParameter, record R) (recorder.Attached[TP], bool) {
	d, ok := m.types.Lookup(p.Ordinal)
	if !ok {
		m.log.Debug("type parameter is not mapped", "parameter", p.String())
		return nil, false
	}

	return newAttached(d, record, m.log, "type parameter", p.String()), true
}

// TryMapConstructorParameter resolves the recorder of a constructor parameter
// and binds it to record.
func (m *Mapper[R, TP, CP, NP]) TryMapConstructorParameter(p param.ConstructorParameter, record R) (recorder.Attached[CP], bool) {
	d, ok := m.constructors.Lookup(p.Name)
	if !ok {
		m.log.Debug("constructor parameter is not mapped", "parameter", p.Name)
		return nil, false
	}

	return newAttached(d, record, m.log, "constructor parameter", p.Name), true
}

// TryMapNamedParameter resolves the recorder of a named parameter and binds
// it to record.
func (m *Mapper[R, TP, CP, NP]) TryMapNamedParameter(name string, record R) (recorder.Attached[NP], bool) {
	d, ok := m.named.Lookup(name)
	if !ok {
		m.log.Debug("named parameter is not mapped", "parameter", name)
		return nil, false
	}

	return newAttached(d, record, m.log, "named parameter", name), true
}
