package pattern

import "reflect"

// Integer is the set of types an enum may be backed by.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

var basicIntegers = map[reflect.Kind]reflect.Type{
	reflect.Int:    reflect.TypeOf(int(0)),
	reflect.Int8:   reflect.TypeOf(int8(0)),
	reflect.Int16:  reflect.TypeOf(int16(0)),
	reflect.Int32:  reflect.TypeOf(int32(0)),
	reflect.Int64:  reflect.TypeOf(int64(0)),
	reflect.Uint:   reflect.TypeOf(uint(0)),
	reflect.Uint8:  reflect.TypeOf(uint8(0)),
	reflect.Uint16: reflect.TypeOf(uint16(0)),
	reflect.Uint32: reflect.TypeOf(uint32(0)),
	reflect.Uint64: reflect.TypeOf(uint64(0)),
}

// Enum fits values of the enum type E itself, and values whose dynamic type
// is exactly the basic integer type underlying E. Other integer widths never
// fit, whatever their magnitude.
func Enum[E Integer]() Pattern[E] {
	enumType := reflect.TypeOf(E(0))

	return enum[E]{
		enumType:   enumType,
		underlying: basicIntegers[enumType.Kind()],
	}
}

type enum[E Integer] struct {
	enumType   reflect.Type
	underlying reflect.Type
}

func (p enum[E]) TryFit(value any) (E, bool) {
	if v, ok := value.(E); ok {
		return v, true
	}

	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	if rv.Type() != p.underlying {
		return 0, false
	}

	return rv.Convert(p.enumType).Interface().(E), true
}
