package param

import (
	"go/ast"
	"go/types"
	"strconv"
)

// Syntax is the source-location token of a single argument.
type Syntax = ast.Expr

// TypeParameter identifies a type parameter of an attribute.
type TypeParameter struct {
	Ordinal int    // zero-based position in the type parameter list
	Name    string // declared name, e.g. "T"
}

// String returns a human-readable representation of the parameter.
func (p TypeParameter) String() string {
	if p.Name == "" {
		return "#" + strconv.Itoa(p.Ordinal)
	}

	return p.Name + "#" + strconv.Itoa(p.Ordinal)
}

// FromTypeParam builds a descriptor from a go/types type parameter.
func FromTypeParam(tp *types.TypeParam) TypeParameter {
	if tp == nil {
		panic("type parameter cannot be nil")
	}

	return TypeParameter{
		Ordinal: tp.Index(),
		Name:    tp.Obj().Name(),
	}
}

// FromTypeParams builds descriptors for every type parameter in the list.
func FromTypeParams(list *types.TypeParamList) []TypeParameter {
	if list == nil {
		return nil
	}

	out := make([]TypeParameter, 0, list.Len())
	for i := range list.Len() {
		out = append(out, FromTypeParam(list.At(i)))
	}

	return out
}

// ConstructorParameter identifies a positional parameter of an attribute constructor.
type ConstructorParameter struct {
	Name     string     // declared name
	Type     types.Type // declared type (may be nil when the front-end has none)
	Optional bool       // parameter has a default value
	Params   bool       // trailing variable-length parameter
}

// String returns a human-readable representation of the parameter.
func (p ConstructorParameter) String() string {
	s := p.Name
	if p.Params {
		s = "..." + s
	}

	if p.Type != nil {
		s += " " + p.Type.String()
	}

	if p.Optional {
		s += " = <default>"
	}

	return s
}

// FromSignature builds constructor parameter descriptors from a function signature.
// The last parameter of a variadic signature is marked as params.
// Go has no default values, so Optional is never set here.
func FromSignature(sig *types.Signature) []ConstructorParameter {
	if sig == nil {
		panic("signature cannot be nil")
	}

	params := sig.Params()
	out := make([]ConstructorParameter, 0, params.Len())
	for i := range params.Len() {
		v := params.At(i)
		out = append(out, ConstructorParameter{
			Name:   v.Name(),
			Type:   v.Type(),
			Params: sig.Variadic() && i == params.Len()-1,
		})
	}

	return out
}

// NamedParameter identifies a named (keyed) parameter of an attribute.
type NamedParameter struct {
	Name string
}

// String returns the parameter name.
func (p NamedParameter) String() string {
	return p.Name
}
