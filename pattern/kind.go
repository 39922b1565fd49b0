package pattern

import (
	"go/types"
	"reflect"
)

// Kind names a base shape of the pattern language.
type Kind int

const (
	_ Kind = iota // zero value is the invalid kind

	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindObject
	KindType

	// KindTotal is the number of kinds defined, the invalid kind included
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindObject:  "object",
	KindType:    "type",
}

// String returns the name the kind has in the pattern language.
func (k Kind) String() string {
	if k <= 0 || int(k) >= KindTotal {
		return "invalid"
	}

	return kindNames[k]
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// KindOf returns the kind of a value's exact dynamic type, or the invalid
// kind when the value has no primitive shape. Named types never classify as
// their underlying primitive.
func KindOf(value any) Kind {
	switch value.(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	case types.Type:
		return KindType
	case nil:
		return 0
	default:
		return KindObject
	}
}

// KindFromReflectType returns the primitive kind of a reflect type, or the
// invalid kind. Only unnamed basic types classify.
func KindFromReflectType(rtype reflect.Type) Kind {
	if rtype == nil || rtype.PkgPath() != "" {
		return 0
	}

	switch rtype.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	default:
		return 0
	}
}
