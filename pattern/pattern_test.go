package pattern

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Int32Enum int32
type Int16Enum int16
type OtherInt32Enum int32

func TestPrimitive_ExactTypeOnly(t *testing.T) {
	values := []any{
		true, int(1), int8(1), int16(1), int32(1), int64(1),
		uint(1), uint8(1), uint16(1), uint32(1), uint64(1),
		float32(1), float64(1), "1", Int32Enum(1), nil,
	}

	tests := []struct {
		name    string
		pattern Pattern[any]
		accepts any
	}{
		{"bool", Erase(Bool()), true},
		{"int", Erase(Int()), int(1)},
		{"int8", Erase(Int8()), int8(1)},
		{"int16", Erase(Int16()), int16(1)},
		{"int32", Erase(Int32()), int32(1)},
		{"int64", Erase(Int64()), int64(1)},
		{"uint", Erase(Uint()), uint(1)},
		{"uint8", Erase(Uint8()), uint8(1)},
		{"uint16", Erase(Uint16()), uint16(1)},
		{"uint32", Erase(Uint32()), uint32(1)},
		{"uint64", Erase(Uint64()), uint64(1)},
		{"float32", Erase(Float32()), float32(1)},
		{"float64", Erase(Float64()), float64(1)},
		{"string", Erase(String()), "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range values {
				got, ok := tt.pattern.TryFit(v)
				if v == tt.accepts {
					assert.True(t, ok, "%T should fit", v)
					assert.Equal(t, v, got)
				} else {
					assert.False(t, ok, "%T should not fit", v)
				}
			}
		})
	}
}

func TestRuneAndByte(t *testing.T) {
	r, ok := Rune().TryFit('x')
	assert.True(t, ok)
	assert.Equal(t, 'x', r)

	_, ok = Rune().TryFit("x")
	assert.False(t, ok)

	b, ok := Byte().TryFit(byte(7))
	assert.True(t, ok)
	assert.Equal(t, byte(7), b)
}

func TestObject(t *testing.T) {
	v, ok := Object().TryFit(struct{}{})
	assert.True(t, ok)
	assert.Equal(t, struct{}{}, v)

	_, ok = Object().TryFit(nil)
	assert.False(t, ok)

	v, ok = NullableObject().TryFit(nil)
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestNullable(t *testing.T) {
	p := Nullable(Int32())

	got, ok := p.TryFit(nil)
	assert.True(t, ok)
	assert.Nil(t, got)

	got, ok = p.TryFit(int32(42))
	require.True(t, ok)
	require.NotNil(t, got)
	assert.Equal(t, int32(42), *got)

	_, ok = p.TryFit(int64(42))
	assert.False(t, ok)

	_, ok = Int32().TryFit(nil)
	assert.False(t, ok, "nil must only fit nullable variants")
}

func TestEnum(t *testing.T) {
	p := Enum[Int32Enum]()

	got, ok := p.TryFit(Int32Enum(3))
	assert.True(t, ok)
	assert.Equal(t, Int32Enum(3), got)

	got, ok = p.TryFit(int32(3))
	assert.True(t, ok, "underlying type fits")
	assert.Equal(t, Int32Enum(3), got)

	_, ok = p.TryFit(int16(3))
	assert.False(t, ok, "narrower width of the same magnitude must not fit")

	_, ok = p.TryFit(int64(3))
	assert.False(t, ok)

	_, ok = p.TryFit(OtherInt32Enum(3))
	assert.False(t, ok, "another enum with the same underlying type must not fit")

	_, ok = p.TryFit(nil)
	assert.False(t, ok)

	short, ok := Enum[Int16Enum]().TryFit(int16(-2))
	assert.True(t, ok)
	assert.Equal(t, Int16Enum(-2), short)

	_, ok = Enum[Int16Enum]().TryFit(int32(-2))
	assert.False(t, ok)
}

func TestType(t *testing.T) {
	intType := types.Typ[types.Int]

	got, ok := Type().TryFit(intType)
	assert.True(t, ok)
	assert.Same(t, intType, got)

	_, ok = Type().TryFit(nil)
	assert.False(t, ok)

	_, ok = Type().TryFit("int")
	assert.False(t, ok)

	_, ok = Type().TryFit((*types.Named)(nil))
	assert.False(t, ok)

	got, ok = NullableType().TryFit(nil)
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestArray(t *testing.T) {
	p := Array(Int())

	tests := []struct {
		name  string
		value any
		want  []int
		fits  bool
	}{
		{"all fit", []any{1, 2, 3}, []int{1, 2, 3}, true},
		{"empty", []any{}, []int{}, true},
		{"typed nil sequence is empty", []any(nil), []int{}, true},
		{"one element fails", []any{1, int64(2), 3}, nil, false},
		{"nil element fails", []any{1, nil}, nil, false},
		{"typed slice", []int{4, 5}, []int{4, 5}, true},
		{"not a sequence", 1, nil, false},
		{"nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.TryFit(tt.value)
			assert.Equal(t, tt.fits, ok)
			if tt.fits {
				assert.NotNil(t, got)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNullableArray(t *testing.T) {
	p := NullableArray(String())

	got, ok := p.TryFit(nil)
	assert.True(t, ok)
	assert.Nil(t, got)

	got, ok = p.TryFit([]any{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = p.TryFit([]any{"a", 1})
	assert.False(t, ok)
}

func TestArray_Composes(t *testing.T) {
	p := Array(Nullable(Enum[Int32Enum]()))

	got, ok := p.TryFit([]any{int32(1), nil, Int32Enum(2)})
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, Int32Enum(1), *got[0])
	assert.Nil(t, got[1])
	assert.Equal(t, Int32Enum(2), *got[2])

	nested := Array(Array(Bool()))
	rows, ok := nested.TryFit([]any{[]any{true}, []any{}})
	require.True(t, ok)
	assert.Equal(t, [][]bool{{true}, {}}, rows)
}

func TestFunc(t *testing.T) {
	positive := Func[int](func(value any) (int, bool) {
		v, ok := value.(int)
		return v, ok && v > 0
	})

	_, ok := positive.TryFit(-1)
	assert.False(t, ok)

	v, ok := Array(positive).TryFit([]any{1, 2})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)
}

func TestConstructors_NilPanics(t *testing.T) {
	assert.Panics(t, func() { Nullable[int](nil) })
	assert.Panics(t, func() { Array[int](nil) })
	assert.Panics(t, func() { NullableArray[int](nil) })
}
