package pattern

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidExpression = errors.New("invalid pattern expression")

// aliases of the pattern language that map onto another kind
var kindAliases = map[string]Kind{
	"rune": KindInt32,
	"byte": KindUint8,
	"any":  KindObject,
}

// KindByName resolves a base shape name, aliases included.
func KindByName(name string) (Kind, bool) {
	if k, ok := kindAliases[name]; ok {
		return k, true
	}

	for k := Kind(1); int(k) < KindTotal; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}

	return 0, false
}

// Names lists the base shape names understood by Parse, aliases excluded.
func Names() []string {
	names := make([]string, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		names = append(names, kindNames[k])
	}

	return names
}

// Expression is the parsed form of a pattern expression.
type Expression struct {
	Nullable bool        // "?" prefix
	Elem     *Expression // element expression of an array, nil for scalars
	Kind     Kind        // base shape of a scalar
}

// String renders the expression back to its textual form.
func (e Expression) String() string {
	var b strings.Builder
	if e.Nullable {
		b.WriteByte('?')
	}

	if e.Elem != nil {
		b.WriteString("[]")
		b.WriteString(e.Elem.String())
	} else {
		b.WriteString(e.Kind.String())
	}

	return b.String()
}

// ParseExpression parses the textual pattern form:
//
//	expr := ["?"] ( "[]" expr | base )
//
// A "?" makes the level it prefixes nullable: "?int" is a nullable int,
// "[]?string" an array of nullable strings, "?[]string" a nullable array.
func ParseExpression(text string) (Expression, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Expression{}, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	e, err := parseExpression(s)
	if err != nil {
		return Expression{}, fmt.Errorf("%w %q: %w", ErrInvalidExpression, text, err)
	}

	return e, nil
}

func parseExpression(s string) (Expression, error) {
	var e Expression

	if rest, ok := strings.CutPrefix(s, "?"); ok {
		e.Nullable = true
		s = rest
	}

	if rest, ok := strings.CutPrefix(s, "[]"); ok {
		elem, err := parseExpression(rest)
		if err != nil {
			return Expression{}, err
		}

		e.Elem = &elem

		return e, nil
	}

	k, ok := KindByName(s)
	if !ok {
		return Expression{}, fmt.Errorf("unknown shape %q", s)
	}

	e.Kind = k

	return e, nil
}

// Parse parses a pattern expression and returns the matching pattern with its
// result type erased. Nullable scalars yield nil or the plain value rather than
// a pointer; arrays yield []any.
func Parse(text string) (Pattern[any], error) {
	e, err := ParseExpression(text)
	if err != nil {
		return nil, err
	}

	return e.Pattern(), nil
}

// MustParse is Parse for expressions known to be valid.
func MustParse(text string) Pattern[any] {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

// Pattern builds the pattern described by the expression.
func (e Expression) Pattern() Pattern[any] {
	if e.Elem != nil {
		p := Erase(Array(e.Elem.Pattern()))
		if e.Nullable {
			return orNil{inner: p}
		}

		return p
	}

	p := base(e.Kind)
	if e.Nullable {
		return orNil{inner: p}
	}

	return p
}

// Erase hides the result type of p behind any.
func Erase[T any](p Pattern[T]) Pattern[any] {
	return erased[T]{inner: p}
}

type erased[T any] struct {
	inner Pattern[T]
}

func (p erased[T]) TryFit(value any) (any, bool) {
	v, ok := p.inner.TryFit(value)
	if !ok {
		return nil, false
	}

	return v, true
}

// orNil lets nil through as nil, leaving other values to inner.
type orNil struct {
	inner Pattern[any]
}

func (p orNil) TryFit(value any) (any, bool) {
	if value == nil {
		return nil, true
	}

	return p.inner.TryFit(value)
}

func base(k Kind) Pattern[any] {
	switch k {
	case KindBool:
		return Erase(Bool())
	case KindInt:
		return Erase(Int())
	case KindInt8:
		return Erase(Int8())
	case KindInt16:
		return Erase(Int16())
	case KindInt32:
		return Erase(Int32())
	case KindInt64:
		return Erase(Int64())
	case KindUint:
		return Erase(Uint())
	case KindUint8:
		return Erase(Uint8())
	case KindUint16:
		return Erase(Uint16())
	case KindUint32:
		return Erase(Uint32())
	case KindUint64:
		return Erase(Uint64())
	case KindFloat32:
		return Erase(Float32())
	case KindFloat64:
		return Erase(Float64())
	case KindString:
		return Erase(String())
	case KindObject:
		return Object()
	case KindType:
		return typeAsAny{}
	default:
		panic("pattern for invalid kind requested: " + k.String())
	}
}

type typeAsAny struct{}

func (typeAsAny) TryFit(value any) (any, bool) {
	t, ok := Type().TryFit(value)
	if !ok {
		return nil, false
	}

	return t, true
}
