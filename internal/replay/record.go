package replay

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"attribute-mapper/builder"
	"attribute-mapper/param"
)

var ErrMissingArgument = errors.New("required argument not recorded")

// Argument is one recorded argument.
type Argument struct {
	Value   any    `yaml:"value"`
	Syntax  string `yaml:"syntax,omitempty"`
	Binding string `yaml:"binding,omitempty"`
}

// Record is what one application of the attribute recorded.
type Record struct {
	Attribute     string              `yaml:"attribute"`
	TypeArguments map[string]Argument `yaml:"type_arguments,omitempty"`
	Arguments     map[string]Argument `yaml:"arguments,omitempty"`
	Named         map[string]Argument `yaml:"named,omitempty"`
}

// recordBuilder is the target the replay mapper writes into.
type recordBuilder struct {
	*builder.Builder[Record]
}

func newRecordBuilder(attribute string, required []string, opts ...builder.Option) *recordBuilder {
	r := &Record{
		Attribute:     attribute,
		TypeArguments: make(map[string]Argument),
		Arguments:     make(map[string]Argument),
		Named:         make(map[string]Argument),
	}

	complete := func(r *Record) error {
		var errs []error
		for _, name := range required {
			if _, ok := r.Arguments[name]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s", ErrMissingArgument, name))
			}
		}

		return errors.Join(errs...)
	}

	return &recordBuilder{Builder: builder.New(r, complete, opts...)}
}

func (b *recordBuilder) setType(name string, a Argument) bool {
	return b.Set(func(r *Record) { r.TypeArguments[name] = a })
}

func (b *recordBuilder) setArgument(name string, a Argument) bool {
	return b.Set(func(r *Record) { r.Arguments[name] = a })
}

func (b *recordBuilder) setNamed(name string, a Argument) bool {
	return b.Set(func(r *Record) { r.Named[name] = a })
}

// display converts a recorded value to something YAML renders legibly.
func display(v any) any {
	switch v := v.(type) {
	case types.Type:
		return v.String()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = display(e)
		}

		return out
	default:
		return v
	}
}

func exprText(expr ast.Expr) string {
	if expr == nil {
		return ""
	}

	return types.ExprString(expr)
}

func syntaxText(s param.ArgumentSyntax) string {
	switch s.Binding() {
	case param.BindingNormal:
		expr, _ := s.Expr()
		return exprText(expr)
	case param.BindingParams:
		elems, _ := s.Elements()
		texts := make([]string, len(elems))
		for i, e := range elems {
			texts[i] = exprText(e)
		}

		return strings.Join(texts, ", ")
	default:
		return ""
	}
}
