package replay

import (
	"fmt"
	"go/ast"
	"go/types"

	"attribute-mapper/mapper"
	"attribute-mapper/param"
	"attribute-mapper/pattern"
	"attribute-mapper/recorder"
)

// declaration is a fixture parameter resolved against a scope.
type declaration struct {
	Parameter
	declared types.Type
	pattern  pattern.Pattern[any]
}

func (d declaration) descriptor() param.ConstructorParameter {
	return param.ConstructorParameter{
		Name:     d.Name,
		Type:     d.declared,
		Optional: d.Optional,
		Params:   d.Params,
	}
}

func resolve(s *Scope, params []Parameter) ([]declaration, error) {
	out := make([]declaration, 0, len(params))
	for _, p := range params {
		d := declaration{Parameter: p}

		if p.Type != "" {
			t, err := s.Type(p.Type)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}

			d.declared = t.Type
		}

		pat, err := pattern.Parse(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}

		d.pattern = pat
		out = append(out, d)
	}

	return out, nil
}

func typeParameterKey(f *Fixture, ordinal int) string {
	p := param.TypeParameter{Ordinal: ordinal}
	if ordinal < len(f.TypeParameters) {
		p.Name = f.TypeParameters[ordinal].Name
	}

	return p.String()
}

// newMapper registers every fixture parameter with an adaptive mapper over
// the replay record.
func newMapper(f *Fixture, ctors, named []declaration, opts ...mapper.Option) (*mapper.Adaptive[*recordBuilder], error) {
	return mapper.NewAdaptive(func(c *mapper.AdaptiveConfiguration[*recordBuilder]) {
		for i := range f.TypeParameters {
			key := typeParameterKey(f, i)
			c.TypeParameter(i, recorder.AdaptiveType(
				func(b *recordBuilder, t types.Type, syntax ast.Expr) bool {
					return b.setType(key, Argument{Value: display(t), Syntax: exprText(syntax)})
				},
				func(b *recordBuilder, t types.Type) bool {
					return b.setType(key, Argument{Value: display(t)})
				},
			))
		}

		for _, d := range ctors {
			c.ConstructorParameter(d.Name, constructorRecorder(d))
		}

		for _, d := range named {
			name := d.Name
			c.NamedParameter(name, recorder.AdaptiveNamed(d.pattern,
				func(b *recordBuilder, v any, syntax ast.Expr) bool {
					return b.setNamed(name, Argument{Value: display(v), Syntax: exprText(syntax)})
				},
				func(b *recordBuilder, v any) bool {
					return b.setNamed(name, Argument{Value: display(v)})
				},
			))
		}
	}, append([]mapper.Option{mapper.WithName(f.Attribute)}, opts...)...)
}

func constructorRecorder(d declaration) recorder.Adaptive[*recordBuilder, recorder.ConstructorArgument, any] {
	name := d.Name
	semantic := func(b *recordBuilder, v any) bool {
		return b.setArgument(name, Argument{Value: display(v)})
	}

	switch {
	case d.Params:
		return recorder.AdaptiveParamsConstructor(d.pattern,
			func(b *recordBuilder, v any, syntax param.ArgumentSyntax) bool {
				return b.setArgument(name, Argument{Value: display(v), Syntax: syntaxText(syntax), Binding: syntax.Binding().String()})
			}, semantic)
	case d.Optional:
		return recorder.AdaptiveOptionalConstructor(d.pattern,
			func(b *recordBuilder, v any, syntax ast.Expr) bool {
				binding := param.BindingNormal
				if syntax == nil {
					binding = param.BindingDefault
				}

				return b.setArgument(name, Argument{Value: display(v), Syntax: exprText(syntax), Binding: binding.String()})
			}, semantic)
	default:
		return recorder.AdaptiveConstructor(d.pattern,
			func(b *recordBuilder, v any, syntax ast.Expr) bool {
				return b.setArgument(name, Argument{Value: display(v), Syntax: exprText(syntax), Binding: param.BindingNormal.String()})
			}, semantic)
	}
}
