package match

import (
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-mapper/pattern"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"weight", "weight", 0},
		{"weight", "wieght", 2},
		{"kitten", "sitting", 3},
		{"größe", "grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("size", "size"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("size", "sise"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Weight", "Height", "Base"}

	got := Suggest("wieght", candidates, strings.ToLower)
	assert.Equal(t, []string{"Weight", "Height"}, Names(got))

	assert.Empty(t, Suggest("WEIGHT", candidates, nil), "case counts without a key")
	assert.Equal(t, "Weight", Suggest("WEIGHT", candidates, strings.ToLower)[0].Name)

	assert.Empty(t, Suggest("colour", candidates, strings.ToLower))
}

func TestCheck(t *testing.T) {
	stringSlice := types.NewSlice(types.Typ[types.String])
	anyType := types.Universe.Lookup("any").Type()

	tests := []struct {
		name     string
		pattern  string
		declared types.Type
		want     Verdict
	}{
		{"identical", "int", types.Typ[types.Int], Compatible},
		{"nullable", "?string", types.Typ[types.String], Compatible},
		{"width", "int32", types.Typ[types.Int], Incompatible},
		{"kind", "string", types.Typ[types.Bool], Incompatible},
		{"array", "[]string", stringSlice, Compatible},
		{"array element", "[]int", stringSlice, Incompatible},
		{"not a slice", "[]int", types.Typ[types.Int], Incompatible},
		{"object", "object", types.Typ[types.Int], Compatible},
		{"undeclared", "int", nil, Dynamic},
		{"interface", "[]int", anyType, Dynamic},
		{"undeclared object", "?object", nil, Compatible},
		{"type pattern", "type", types.Typ[types.String], Incompatible},
		{"struct", "int", types.NewStruct(nil, nil), Incompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := pattern.ParseExpression(tt.pattern)
			require.NoError(t, err)

			got := Check(e, tt.declared)
			assert.Equal(t, tt.want, got.Verdict, got.Reason)
			assert.Equal(t, tt.pattern, got.Pattern)
		})
	}
}

func TestKindOf(t *testing.T) {
	named := types.NewNamed(types.NewTypeName(0, nil, "Duration", nil), types.Typ[types.Int64], nil)

	k, ok := KindOf(named)
	assert.True(t, ok)
	assert.Equal(t, pattern.KindInt64, k)

	_, ok = KindOf(types.Typ[types.Complex128])
	assert.False(t, ok)
}
