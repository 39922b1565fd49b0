package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes_BuildAndLookup(t *testing.T) {
	repo := NewTypes[string]()
	require.NoError(t, repo.Add(1, "second"))
	require.NoError(t, repo.Add(0, "first"))

	frozen, err := repo.Build()
	require.NoError(t, err)

	got, ok := frozen.Lookup(0)
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	got, ok = frozen.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	_, ok = frozen.Lookup(2)
	assert.False(t, ok)

	assert.Equal(t, 2, frozen.Len())
	assert.Equal(t, []int{1, 0}, frozen.Keys())
}

func TestTypes_DuplicateOrdinal(t *testing.T) {
	repo := NewTypes[string]()
	require.NoError(t, repo.Add(0, "a"))
	require.NoError(t, repo.Add(0, "b"))

	_, err := repo.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "#0")
}

func TestTypes_AddErrors(t *testing.T) {
	repo := NewTypes[*int]()

	assert.ErrorIs(t, repo.Add(-1, new(int)), ErrNegativeOrdinal)
	assert.ErrorIs(t, repo.Add(0, nil), ErrNilEntry)

	_, err := repo.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Add(1, new(int)), ErrBuilt)

	_, err = repo.Build()
	assert.ErrorIs(t, err, ErrBuilt)
}

func TestNames_DefaultComparerIgnoresCase(t *testing.T) {
	repo := NewNames[int](nil)
	assert.Equal(t, OrdinalIgnoreCaseName, repo.Comparer().Name())

	require.NoError(t, repo.Add("Value", 1))
	require.NoError(t, repo.Add("other", 2))

	frozen, err := repo.Build()
	require.NoError(t, err)

	got, ok := frozen.Lookup("VALUE")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = frozen.Lookup("Other")
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = frozen.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"Value", "other"}, frozen.Keys())
}

func TestNames_Collisions(t *testing.T) {
	tests := []struct {
		name     string
		comparer Comparer
		first    string
		second   string
		collides bool
	}{
		{"ordinal distinct case", Ordinal(), "value", "Value", false},
		{"ordinal same", Ordinal(), "value", "value", true},
		{"ignore case", OrdinalIgnoreCase(), "value", "VALUE", true},
		{"ignore case unicode", OrdinalIgnoreCase(), "ärger", "ÄRGER", true},
		{"ignore case separators matter", OrdinalIgnoreCase(), "max_length", "MaxLength", false},
		{"normalized separators", Normalized(), "max_length", "MaxLength", true},
		{"normalized dashes", Normalized(), "max-length", "maxLength", true},
		{"normalized distinct", Normalized(), "length", "maxLength", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewNames[int](tt.comparer)
			require.NoError(t, repo.Add(tt.first, 1))
			require.NoError(t, repo.Add(tt.second, 2))

			frozen, err := repo.Build()
			if tt.collides {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDuplicateKey)
				assert.Contains(t, err.Error(), tt.comparer.Name())
				return
			}

			require.NoError(t, err)

			first, ok := frozen.Lookup(tt.first)
			assert.True(t, ok)
			assert.Equal(t, 1, first)

			second, ok := frozen.Lookup(tt.second)
			assert.True(t, ok)
			assert.Equal(t, 2, second)
		})
	}
}

func TestNames_ReportsEveryCollision(t *testing.T) {
	repo := NewNames[int](Ordinal())
	for _, name := range []string{"a", "a", "b", "b"} {
		require.NoError(t, repo.Add(name, 1))
	}

	_, err := repo.Build()
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 2)
}

func TestNames_NilEntry(t *testing.T) {
	repo := NewNames[func()](nil)
	assert.ErrorIs(t, repo.Add("x", nil), ErrNilEntry)
}

func TestComparerByName(t *testing.T) {
	for _, name := range []string{OrdinalName, OrdinalIgnoreCaseName, NormalizedName} {
		c, err := ComparerByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	c, err := ComparerByName("")
	require.NoError(t, err)
	assert.Equal(t, OrdinalIgnoreCaseName, c.Name())

	_, err = ComparerByName("fuzzy")
	assert.Error(t, err)
}
