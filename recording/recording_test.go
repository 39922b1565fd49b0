package recording

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"attribute-mapper/builder"
	"attribute-mapper/internal/logsink"
	"attribute-mapper/mapper"
	"attribute-mapper/param"
	"attribute-mapper/pattern"
	"attribute-mapper/recorder"
)

type shape struct {
	Element types.Type
	Size    int
	Fill    *string
	Tags    []string
	Base    types.Type
	sizeSet bool
}

type shapeBuilder struct {
	*builder.Builder[shape]
}

func newShapeBuilder(opts ...builder.Option) *shapeBuilder {
	return &shapeBuilder{Builder: builder.New(&shape{}, func(s *shape) error {
		if !s.sizeSet {
			return errors.New("size is required")
		}

		return nil
	}, opts...)}
}

var (
	elementParam = param.TypeParameter{Ordinal: 0, Name: "T"}
	sizeParam    = param.ConstructorParameter{Name: "size", Type: types.Typ[types.Int]}
	fillParam    = param.ConstructorParameter{Name: "fill", Type: types.Typ[types.String], Optional: true}
	tagsParam    = param.ConstructorParameter{Name: "tags", Type: types.NewSlice(types.Typ[types.String]), Params: true}
)

func newShapeMapper(t *testing.T, opts ...mapper.Option) *mapper.Combined[*shapeBuilder] {
	t.Helper()

	m, err := mapper.NewCombined(func(c *mapper.CombinedConfiguration[*shapeBuilder]) {
		c.TypeParameter(0, recorder.CombinedType(func(b *shapeBuilder, element types.Type, _ ast.Expr) bool {
			return b.Set(func(s *shape) { s.Element = element })
		}))
		c.ConstructorParameter("size", recorder.CombinedConstructor(pattern.Int(), func(b *shapeBuilder, size int, _ ast.Expr) bool {
			return b.Set(func(s *shape) { s.Size, s.sizeSet = size, true })
		}))
		c.ConstructorParameter("fill", recorder.CombinedOptionalConstructor(pattern.Nullable(pattern.String()), func(b *shapeBuilder, fill *string, _ ast.Expr) bool {
			return b.Set(func(s *shape) { s.Fill = fill })
		}))
		c.ConstructorParameter("tags", recorder.CombinedParamsConstructor(pattern.Array(pattern.String()), func(b *shapeBuilder, tags []string, _ param.ArgumentSyntax) bool {
			return b.Set(func(s *shape) { s.Tags = tags })
		}))
		c.NamedParameter("Base", recorder.CombinedNamed(pattern.NullableType(), func(b *shapeBuilder, base types.Type, _ ast.Expr) bool {
			return b.Set(func(s *shape) { s.Base = base })
		}))
	}, opts...)
	require.NoError(t, err)

	return m
}

func intLit(v int) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: fmt.Sprint(v)}
}

func stringLit(v string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: fmt.Sprintf("%q", v)}
}

func TestCombinedEndToEnd(t *testing.T) {
	r := NewCombinedWithBuilder[*shape](newShapeMapper(t), newShapeBuilder())

	assert.True(t, r.TypeArgument().TryRecordArgument(elementParam, types.Typ[types.Int], ast.NewIdent("int")))

	ctor := r.ConstructorArgument()
	assert.True(t, ctor.TryRecordArgument(sizeParam, 3, intLit(3)))
	assert.True(t, ctor.TryRecordDefaultArgument(fillParam, nil))
	assert.True(t, ctor.TryRecordParamsArgument(tagsParam, []any{"a", "b"}, []ast.Expr{stringLit("a"), stringLit("b")}))

	assert.True(t, r.NamedArgument().TryRecordArgument("Base", types.Typ[types.String], ast.NewIdent("string")))

	got, err := r.GetRecord()
	require.NoError(t, err)
	assert.Equal(t, &shape{
		Element: types.Typ[types.Int],
		Size:    3,
		Tags:    []string{"a", "b"},
		Base:    types.Typ[types.String],
		sizeSet: true,
	}, got)

	_, err = r.GetRecord()
	assert.ErrorIs(t, err, builder.ErrAlreadyBuilt)

	assert.False(t, ctor.TryRecordArgument(sizeParam, 4, intLit(4)), "builder is closed")
}

func TestCombinedMultipleBuilds(t *testing.T) {
	r := NewCombinedWithBuilder[*shape](newShapeMapper(t), newShapeBuilder(builder.WithMultipleBuilds()))
	require.True(t, r.ConstructorArgument().TryRecordArgument(sizeParam, 1, intLit(1)))

	first, err := r.GetRecord()
	require.NoError(t, err)

	require.True(t, r.ConstructorArgument().TryRecordArgument(sizeParam, 2, intLit(2)))

	second, err := r.GetRecord()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, second.Size)
}

func TestIncompleteRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewCombinedWithBuilder[*shape](newShapeMapper(t, mapper.WithLogger(logger)), newShapeBuilder())

	_, err := r.GetRecord()
	assert.ErrorIs(t, err, builder.ErrIncomplete)
	assert.ErrorContains(t, err, "size is required")
	assert.Contains(t, buf.String(), "record not built")
	assert.Contains(t, buf.String(), "recorder="+r.ID())
}

func TestCombinedBindingMismatch(t *testing.T) {
	r := NewCombinedWithBuilder[*shape](newShapeMapper(t), newShapeBuilder())
	ctor := r.ConstructorArgument()

	assert.False(t, ctor.TryRecordDefaultArgument(sizeParam, 0), "required parameter cannot default")
	assert.False(t, ctor.TryRecordParamsArgument(fillParam, []any{"red"}, []ast.Expr{stringLit("red")}))
	assert.True(t, ctor.TryRecordArgument(tagsParam, []any{"solo"}, stringLit("solo")), "params parameter bound normally")
	assert.False(t, ctor.TryRecordArgument(sizeParam, "three", stringLit("three")))
}

type counter struct {
	Value int
	calls int
}

func newCounterMapper(t *testing.T, opts ...mapper.Option) *mapper.Semantic[*counter] {
	t.Helper()

	m, err := mapper.NewSemantic(func(c *mapper.SemanticConfiguration[*counter]) {
		c.ConstructorParameter("value", recorder.Semantic(pattern.Int(), func(r *counter, v int) bool {
			r.calls++
			r.Value = v
			return true
		}))
	}, opts...)
	require.NoError(t, err)

	return m
}

func TestSemanticRecorder(t *testing.T) {
	record := &counter{}
	r := NewSemantic(newCounterMapper(t), record)

	assert.True(t, r.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "Value"}, 7))

	got, err := r.GetRecord()
	require.NoError(t, err)
	assert.Same(t, record, got)
	assert.Equal(t, 7, got.Value)
}

func TestNoPartialWrites(t *testing.T) {
	record := &counter{}
	r := NewSemantic(newCounterMapper(t), record)

	assert.False(t, r.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "value"}, int64(7)))
	assert.False(t, r.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "value"}, nil))
	assert.Zero(t, record.calls)
}

func TestMappingMiss(t *testing.T) {
	record := &counter{}
	r := NewSemantic(newCounterMapper(t), record)

	assert.False(t, r.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "other"}, 7))
	assert.False(t, r.TypeArgument().TryRecordArgument(param.TypeParameter{Ordinal: 0}, types.Typ[types.Int]))
	assert.False(t, r.NamedArgument().TryRecordArgument("value", 7), "named and constructor parameters are distinct")
	assert.Zero(t, record.calls)
}

type declaration struct {
	Kind    ast.Expr
	Aliases param.ArgumentSyntax
	Comment ast.Expr
	Tag     ast.Expr
}

func newDeclarationMapper(t *testing.T) *mapper.Syntactic[*declaration] {
	t.Helper()

	m, err := mapper.NewSyntactic(func(c *mapper.SyntacticConfiguration[*declaration]) {
		c.ConstructorParameter("kind", recorder.SyntacticConstructor(func(r *declaration, syntax ast.Expr) bool {
			r.Kind = syntax
			return true
		}))
		c.ConstructorParameter("aliases", recorder.SyntacticParamsConstructor(func(r *declaration, syntax param.ArgumentSyntax) bool {
			r.Aliases = syntax
			return true
		}))
		c.ConstructorParameter("comment", recorder.SyntacticOptionalConstructor(func(r *declaration, syntax ast.Expr) bool {
			r.Comment = syntax
			return true
		}))
		c.NamedParameter("Tag", recorder.Syntactic(func(r *declaration, syntax ast.Expr) bool {
			r.Tag = syntax
			return true
		}))
	})
	require.NoError(t, err)

	return m
}

func TestSyntacticRecorder(t *testing.T) {
	r := NewSyntactic(newDeclarationMapper(t), &declaration{})
	ctor := r.ConstructorArgument()

	kind := ast.NewIdent("KindStruct")
	assert.True(t, ctor.TryRecordArgument(param.ConstructorParameter{Name: "kind"}, kind))
	assert.False(t, ctor.TryRecordDefaultArgument(param.ConstructorParameter{Name: "kind"}))
	assert.True(t, ctor.TryRecordParamsArgument(param.ConstructorParameter{Name: "aliases", Params: true}, nil))
	assert.True(t, ctor.TryRecordDefaultArgument(param.ConstructorParameter{Name: "comment", Optional: true}))

	tag := stringLit("json")
	assert.True(t, r.NamedArgument().TryRecordArgument("Tag", tag))

	got, err := r.GetRecord()
	require.NoError(t, err)
	assert.Same(t, kind, got.Kind)
	assert.Equal(t, param.BindingParams, got.Aliases.Binding())
	assert.Equal(t, 0, got.Aliases.Len())
	assert.Nil(t, got.Comment)
	assert.Same(t, tag, got.Tag)
}

func TestContractViolations(t *testing.T) {
	syntactic := NewSyntactic(newDeclarationMapper(t), &declaration{})
	combined := NewCombinedWithBuilder[*shape](newShapeMapper(t), newShapeBuilder())
	semantic := NewSemantic(newCounterMapper(t), &counter{})

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil constructor syntax", func() {
			syntactic.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "kind"}, nil)
		}},
		{"nil params element", func() {
			syntactic.ConstructorArgument().TryRecordParamsArgument(param.ConstructorParameter{Name: "aliases"}, []ast.Expr{nil})
		}},
		{"nil named syntax", func() { syntactic.NamedArgument().TryRecordArgument("Tag", nil) }},
		{"nil type syntax", func() {
			combined.TypeArgument().TryRecordArgument(elementParam, types.Typ[types.Int], nil)
		}},
		{"typed nil constructor syntax", func() {
			syntactic.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "kind"}, (*ast.Ident)(nil))
		}},
		{"typed nil named syntax", func() {
			combined.NamedArgument().TryRecordArgument("Base", types.Typ[types.Int], (*ast.Ident)(nil))
		}},
		{"nil semantic type argument", func() {
			semantic.TypeArgument().TryRecordArgument(param.TypeParameter{Ordinal: 0}, nil)
		}},
		{"nil combined type argument", func() {
			combined.TypeArgument().TryRecordArgument(elementParam, nil, ast.NewIdent("int"))
		}},
		{"typed nil type argument", func() {
			combined.TypeArgument().TryRecordArgument(elementParam, (*types.Named)(nil), ast.NewIdent("T"))
		}},
		{"negative ordinal", func() {
			semantic.TypeArgument().TryRecordArgument(param.TypeParameter{Ordinal: -1}, types.Typ[types.Int])
		}},
		{"empty constructor name", func() {
			semantic.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{}, 1)
		}},
		{"empty named name", func() { semantic.NamedArgument().TryRecordArgument("", 1) }},
		{"nil mapper", func() { NewSemantic[*counter](nil, &counter{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestRecorderIDs(t *testing.T) {
	m := newCounterMapper(t, mapper.WithSequence(logsink.NewSequence("counter")))

	first := NewSemantic(m, &counter{})
	second := NewSemantic(m, &counter{})

	assert.Equal(t, "counter1", first.ID())
	assert.Equal(t, "counter2", second.ID())
}

func TestConcurrentRecorders(t *testing.T) {
	m := newCounterMapper(t)

	var (
		mu  sync.Mutex
		ids = make(map[string]struct{})
	)

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			r := NewSemantic(m, &counter{})
			if !r.ConstructorArgument().TryRecordArgument(param.ConstructorParameter{Name: "value"}, i) {
				return fmt.Errorf("argument %d not recorded", i)
			}

			got, err := r.GetRecord()
			if err != nil {
				return err
			}

			if got.Value != i {
				return fmt.Errorf("recorded %d, want %d", got.Value, i)
			}

			mu.Lock()
			ids[r.ID()] = struct{}{}
			mu.Unlock()

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Len(t, ids, 32)
}
