package match

import (
	"fmt"
	"go/types"

	"attribute-mapper/pattern"
)

// Verdict grades how a pattern relates to the declared type of its
// parameter.
type Verdict int

const (
	// Incompatible means no value of the declared type fits the pattern.
	Incompatible Verdict = iota
	// Dynamic means the declared type is an interface, so fitting depends
	// on each value.
	Dynamic
	// Compatible means every value of the declared type fits the pattern.
	Compatible
)

const (
	VerdictIncompatible = "incompatible"
	VerdictDynamic      = "dynamic"
	VerdictCompatible   = "compatible"
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Incompatible:
		return VerdictIncompatible
	case Dynamic:
		return VerdictDynamic
	case Compatible:
		return VerdictCompatible
	default:
		return "unknown"
	}
}

// Result explains a Check verdict.
type Result struct {
	Verdict  Verdict
	Reason   string
	Pattern  string
	Declared string
}

// Check grades pattern e against declared. A nil declared type is treated
// as an interface.
func Check(e pattern.Expression, declared types.Type) Result {
	res := Result{Pattern: e.String(), Declared: "any"}
	if declared != nil {
		res.Declared = declared.String()
	}

	res.Verdict, res.Reason = check(e, declared)

	return res
}

func check(e pattern.Expression, declared types.Type) (Verdict, string) {
	if declared == nil || types.IsInterface(declared) {
		if e.Elem == nil && e.Kind == pattern.KindObject {
			return Compatible, "object accepts every value"
		}

		return Dynamic, "declared type is an interface"
	}

	if e.Elem != nil {
		elem := ElemType(declared)
		if elem == nil {
			return Incompatible, fmt.Sprintf("%s is not a slice or array", declared)
		}

		v, reason := check(*e.Elem, elem)
		if v == Incompatible {
			return v, "element: " + reason
		}

		return v, reason
	}

	switch e.Kind {
	case pattern.KindObject:
		return Compatible, "object accepts every value"
	case pattern.KindType:
		return Incompatible, "type arguments are only produced for type expressions"
	}

	k, ok := KindOf(declared)
	if !ok {
		return Incompatible, fmt.Sprintf("%s has no pattern shape", declared)
	}

	if k != e.Kind {
		return Incompatible, fmt.Sprintf("%s values are materialized as %s", declared, k)
	}

	return Compatible, "shapes are identical"
}

// ElemType returns the element type of a slice or array type, or nil.
func ElemType(t types.Type) types.Type {
	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem()
	case *types.Array:
		return u.Elem()
	default:
		return nil
	}
}

var basicKinds = map[types.BasicKind]pattern.Kind{
	types.Bool:    pattern.KindBool,
	types.Int:     pattern.KindInt,
	types.Int8:    pattern.KindInt8,
	types.Int16:   pattern.KindInt16,
	types.Int32:   pattern.KindInt32,
	types.Int64:   pattern.KindInt64,
	types.Uint:    pattern.KindUint,
	types.Uint8:   pattern.KindUint8,
	types.Uint16:  pattern.KindUint16,
	types.Uint32:  pattern.KindUint32,
	types.Uint64:  pattern.KindUint64,
	types.Float32: pattern.KindFloat32,
	types.Float64: pattern.KindFloat64,
	types.String:  pattern.KindString,
}

// KindOf returns the pattern shape values of t are materialized as.
func KindOf(t types.Type) (pattern.Kind, bool) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}

	k, ok := basicKinds[basic.Kind()]

	return k, ok
}
