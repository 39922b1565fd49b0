package replay

import (
	"fmt"
	"go/ast"
	"go/types"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"attribute-mapper/builder"
	"attribute-mapper/internal/config"
	"attribute-mapper/internal/logsink"
	"attribute-mapper/mapper"
	"attribute-mapper/param"
	"attribute-mapper/recording"
)

// Argument categories reported in an Outcome.
const (
	CategoryType        = "type"
	CategoryConstructor = "constructor"
	CategoryNamed       = "named"
)

// Options configures a Replayer.
type Options struct {
	// Semantic replays through the semantic recorder, dropping syntax.
	Semantic bool
	Config   *config.Config
	Logger   *slog.Logger
	Sequence *logsink.Sequence
}

// Replayer replays the applications of one fixture.
type Replayer struct {
	fixture        *Fixture
	scope          *Scope
	ctors          []declaration
	named          []declaration
	required       []string
	mapper         *mapper.Adaptive[*recordBuilder]
	semantic       bool
	multipleBuilds bool
	log            *logsink.Sink
}

// Load resolves the fixture package and creates a Replayer for it.
func Load(f *Fixture, opts Options) (*Replayer, error) {
	scope, err := LoadScope(f.Dir, f.Package)
	if err != nil {
		return nil, err
	}

	return New(f, scope, opts)
}

// New creates a Replayer evaluating expressions in scope.
func New(f *Fixture, scope *Scope, opts Options) (*Replayer, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	ctors, err := resolve(scope, f.Constructor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	named, err := resolve(scope, f.Named)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	mapperOpts := []mapper.Option{mapper.WithConfig(cfg), mapper.WithLogger(opts.Logger)}
	if opts.Sequence != nil {
		mapperOpts = append(mapperOpts, mapper.WithSequence(opts.Sequence))
	}

	m, err := newMapper(f, ctors, named, mapperOpts...)
	if err != nil {
		return nil, err
	}

	var required []string
	for _, d := range ctors {
		if !d.Optional && !d.Params {
			required = append(required, d.Name)
		}
	}

	return &Replayer{
		fixture:        f,
		scope:          scope,
		ctors:          ctors,
		named:          named,
		required:       required,
		mapper:         m,
		semantic:       opts.Semantic,
		multipleBuilds: cfg.Build.MultipleBuilds,
		log:            logsink.New(opts.Logger).With("attribute", f.Attribute),
	}, nil
}

// Summary describes the parameters the replay mapper resolves.
type Summary struct {
	Attribute      string   `yaml:"attribute"`
	Comparer       string   `yaml:"name_matching"`
	TypeParameters []int    `yaml:"type_parameters,omitempty"`
	Constructor    []string `yaml:"constructor,omitempty"`
	Named          []string `yaml:"named,omitempty"`
	Applications   int      `yaml:"applications"`
}

// Summary returns what the mapper was configured with.
func (r *Replayer) Summary() Summary {
	m := r.mapper.Combined()

	return Summary{
		Attribute:      m.Name(),
		Comparer:       m.Comparer().Name(),
		TypeParameters: m.TypeParameters(),
		Constructor:    m.ConstructorParameters(),
		Named:          m.NamedParameters(),
		Applications:   len(r.fixture.Applications),
	}
}

// Run replays every application of the fixture in order.
func (r *Replayer) Run() []Result {
	results := make([]Result, 0, len(r.fixture.Applications))
	for _, app := range r.fixture.Applications {
		results = append(results, r.Replay(app))
	}

	return results
}

func (r *Replayer) newFeeder(b *recordBuilder) feeder {
	if r.semantic {
		return semanticFeeder{r: recording.NewSemanticWithBuilder[*Record](r.mapper.Semantic(), b)}
	}

	return combinedFeeder{r: recording.NewCombinedWithBuilder[*Record](r.mapper.Combined(), b)}
}

// Replay records one application. Evaluation failures are reported per
// argument; the record is built regardless.
func (r *Replayer) Replay(app Application) Result {
	b := newRecordBuilder(r.fixture.Attribute, r.required, builder.WithPolicy(r.multipleBuilds))
	fd := r.newFeeder(b)

	res := Result{Application: app.Name, Recorder: fd.id()}

	for i, src := range app.TypeArguments {
		res.Arguments = append(res.Arguments, r.typeArgument(fd, i, src))
	}

	res.Arguments = append(res.Arguments, r.constructorArguments(fd, app.Arguments)...)

	for _, name := range sortedKeys(app.Named) {
		res.Arguments = append(res.Arguments, r.namedArgument(fd, name, app.Named[name]))
	}

	record, err := fd.record()
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Record = record
	}

	r.log.Info("application replayed",
		"application", app.Name,
		"recorder", res.Recorder,
		"recorded", res.Recorded(),
		"arguments", len(res.Arguments),
		"built", res.Record != nil,
	)

	return res
}

func (r *Replayer) typeArgument(fd feeder, ordinal int, src string) Outcome {
	p := param.TypeParameter{Ordinal: ordinal}
	if ordinal < len(r.fixture.TypeParameters) {
		p.Name = r.fixture.TypeParameters[ordinal].Name
	}

	out := Outcome{Category: CategoryType, Parameter: p.String(), Syntax: src}

	e, err := r.scope.Type(src)
	if err != nil {
		return out.failed(err)
	}

	out.Recorded = fd.typeArgument(p, e)

	return out
}

func (r *Replayer) constructorArguments(fd feeder, args []string) []Outcome {
	var outs []Outcome

	for i, d := range r.ctors {
		switch {
		case d.Params:
			rest := args[min(i, len(args)):]
			args = args[:min(i, len(args))]
			outs = append(outs, r.paramsArgument(fd, d, rest))
		case i < len(args):
			outs = append(outs, r.normalArgument(fd, d, args[i]))
		case d.Optional:
			outs = append(outs, r.defaultArgument(fd, d))
		}
	}

	for i := len(r.ctors); i < len(args); i++ {
		outs = append(outs, Outcome{
			Category:  CategoryConstructor,
			Parameter: fmt.Sprintf("#%d", i),
			Syntax:    args[i],
			Error:     "too many arguments",
		})
	}

	return outs
}

func (r *Replayer) normalArgument(fd feeder, d declaration, src string) Outcome {
	out := Outcome{Category: CategoryConstructor, Parameter: d.Name, Binding: param.BindingNormal.String(), Syntax: src}

	e, err := r.scope.Value(src, d.declared)
	if err != nil {
		return out.failed(err)
	}

	out.Recorded = fd.normal(d.descriptor(), e)

	return out
}

// paramsArgument binds a single argument assignable to the params slice
// normally and collects anything else element-wise.
func (r *Replayer) paramsArgument(fd feeder, d declaration, srcs []string) Outcome {
	if len(srcs) == 1 && d.declared != nil {
		e, err := r.scope.Value(srcs[0], d.declared)
		if err == nil && e.Type != nil && elementType(e.Type) != nil && types.AssignableTo(e.Type, d.declared) {
			return r.normalArgument(fd, d, srcs[0])
		}
	}

	out := Outcome{
		Category:  CategoryConstructor,
		Parameter: d.Name,
		Binding:   param.BindingParams.String(),
		Syntax:    strings.Join(srcs, ", "),
	}

	elem := elementType(d.declared)
	values := make([]any, 0, len(srcs))
	elements := make([]ast.Expr, 0, len(srcs))
	for _, src := range srcs {
		e, err := r.scope.Value(src, elem)
		if err != nil {
			return out.failed(err)
		}

		values = append(values, e.Value)
		elements = append(elements, e.Syntax)
	}

	out.Recorded = fd.params(d.descriptor(), values, elements)

	return out
}

func (r *Replayer) defaultArgument(fd feeder, d declaration) Outcome {
	out := Outcome{Category: CategoryConstructor, Parameter: d.Name, Binding: param.BindingDefault.String()}

	var value any
	if d.Default != "" {
		e, err := r.scope.Value(d.Default, d.declared)
		if err != nil {
			return out.failed(err)
		}

		value = e.Value
	}

	out.Recorded = fd.defaulted(d.descriptor(), value)

	return out
}

func (r *Replayer) namedArgument(fd feeder, name, src string) Outcome {
	out := Outcome{Category: CategoryNamed, Parameter: name, Syntax: src}

	e, err := r.scope.Value(src, r.namedType(name))
	if err != nil {
		return out.failed(err)
	}

	out.Recorded = fd.named(name, e)

	return out
}

// namedType returns the declared type of the named parameter matching name
// under the mapper's comparer.
func (r *Replayer) namedType(name string) types.Type {
	comparer := r.mapper.Combined().Comparer()
	key := comparer.Key(name)

	for _, d := range r.named {
		if comparer.Key(d.Name) == key {
			return d.declared
		}
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
