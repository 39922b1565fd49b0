package pattern

import "reflect"

// Array fits an ordered sequence when every element fits elem. An empty
// sequence always fits and yields an empty, non-nil slice; nil never fits.
//
// The sequence is normally a []any, but any slice or array value is accepted
// and walked element by element.
func Array[T any](elem Pattern[T]) Pattern[[]T] {
	if elem == nil {
		panic("array element pattern cannot be nil")
	}

	return array[T]{elem: elem}
}

// NullableArray is Array that also fits nil, returning a nil slice for it.
func NullableArray[T any](elem Pattern[T]) Pattern[[]T] {
	if elem == nil {
		panic("array element pattern cannot be nil")
	}

	return array[T]{elem: elem, nullable: true}
}

type array[T any] struct {
	elem     Pattern[T]
	nullable bool
}

func (p array[T]) TryFit(value any) ([]T, bool) {
	if value == nil {
		return nil, p.nullable
	}

	if items, ok := value.([]any); ok {
		out := make([]T, 0, len(items))
		for _, item := range items {
			v, ok := p.elem.TryFit(item)
			if !ok {
				return nil, false
			}

			out = append(out, v)
		}

		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]T, 0, rv.Len())
	for i := range rv.Len() {
		v, ok := p.elem.TryFit(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}

		out = append(out, v)
	}

	return out, true
}
