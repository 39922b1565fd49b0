package pattern

import (
	"go/types"
	"reflect"
)

// Pattern narrows a weakly-typed value to T.
type Pattern[T any] interface {
	TryFit(value any) (T, bool)
}

// Func adapts a plain function to a Pattern.
type Func[T any] func(value any) (T, bool)

// TryFit calls f.
func (f Func[T]) TryFit(value any) (T, bool) {
	return f(value)
}

// exact fits values whose dynamic type is exactly T.
type exact[T any] struct{}

func (exact[T]) TryFit(value any) (T, bool) {
	v, ok := value.(T)
	return v, ok
}

func Bool() Pattern[bool]       { return exact[bool]{} }
func Int() Pattern[int]         { return exact[int]{} }
func Int8() Pattern[int8]       { return exact[int8]{} }
func Int16() Pattern[int16]     { return exact[int16]{} }
func Int32() Pattern[int32]     { return exact[int32]{} }
func Int64() Pattern[int64]     { return exact[int64]{} }
func Uint() Pattern[uint]       { return exact[uint]{} }
func Uint8() Pattern[uint8]     { return exact[uint8]{} }
func Uint16() Pattern[uint16]   { return exact[uint16]{} }
func Uint32() Pattern[uint32]   { return exact[uint32]{} }
func Uint64() Pattern[uint64]   { return exact[uint64]{} }
func Float32() Pattern[float32] { return exact[float32]{} }
func Float64() Pattern[float64] { return exact[float64]{} }
func String() Pattern[string]   { return exact[string]{} }

// Rune fits a character value. Runes share their dynamic type with int32.
func Rune() Pattern[rune] { return exact[rune]{} }

// Byte fits a byte value. Bytes share their dynamic type with uint8.
func Byte() Pattern[byte] { return exact[byte]{} }

// Object fits any non-nil value.
func Object() Pattern[any] { return exact[any]{} }

// NullableObject fits any value, nil included.
func NullableObject() Pattern[any] { return nullableObject{} }

type nullableObject struct{}

func (nullableObject) TryFit(value any) (any, bool) {
	return value, true
}

// Nullable wraps inner so that nil also fits. A fitting non-nil value is
// returned boxed, nil is returned as a nil pointer.
func Nullable[T any](inner Pattern[T]) Pattern[*T] {
	if inner == nil {
		panic("nullable inner pattern cannot be nil")
	}

	return nullable[T]{inner: inner}
}

type nullable[T any] struct {
	inner Pattern[T]
}

func (p nullable[T]) TryFit(value any) (*T, bool) {
	if value == nil {
		return nil, true
	}

	v, ok := p.inner.TryFit(value)
	if !ok {
		return nil, false
	}

	return &v, true
}

// Type fits a non-nil type descriptor.
func Type() Pattern[types.Type] { return typeDescriptor{} }

// NullableType fits a type descriptor or nil.
func NullableType() Pattern[types.Type] { return typeDescriptor{nullable: true} }

type typeDescriptor struct {
	nullable bool
}

func (p typeDescriptor) TryFit(value any) (types.Type, bool) {
	if value == nil {
		return nil, p.nullable
	}

	t, ok := value.(types.Type)
	if !ok || isNilPointer(t) {
		return nil, false
	}

	return t, true
}

// isNilPointer reports whether v is a typed nil pointer hidden in an interface.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
