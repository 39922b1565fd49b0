package repository

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Comparer decides when two parameter names are equal. Equality is expressed
// through a canonical key so that lookups stay O(1): two names are equal iff
// their keys are.
type Comparer interface {
	// Key returns the canonical form of name.
	Key(name string) string
	// Name identifies the comparer in configuration and diagnostics.
	Name() string
}

const (
	OrdinalName           = "ordinal"
	OrdinalIgnoreCaseName = "ordinal-ignore-case"
	NormalizedName        = "normalized"
)

// Ordinal compares names byte by byte.
func Ordinal() Comparer { return ordinal{} }

// OrdinalIgnoreCase compares names after Unicode case folding.
func OrdinalIgnoreCase() Comparer { return ordinalIgnoreCase{} }

// Normalized compares identifiers ignoring case and the separators '_', '-'
// and ' ', so that "max_length", "MaxLength" and "max-length" are equal.
func Normalized() Comparer { return normalized{} }

// DefaultComparer is used when none is configured.
func DefaultComparer() Comparer { return OrdinalIgnoreCase() }

// ComparerByName resolves a comparer from its configuration name.
// An empty name resolves to the default comparer.
func ComparerByName(name string) (Comparer, error) {
	switch name {
	case "":
		return DefaultComparer(), nil
	case OrdinalName:
		return Ordinal(), nil
	case OrdinalIgnoreCaseName:
		return OrdinalIgnoreCase(), nil
	case NormalizedName:
		return Normalized(), nil
	default:
		return nil, fmt.Errorf("unknown name comparer %q (expected %s, %s or %s)",
			name, OrdinalName, OrdinalIgnoreCaseName, NormalizedName)
	}
}

type ordinal struct{}

func (ordinal) Key(name string) string { return name }
func (ordinal) Name() string           { return OrdinalName }

type ordinalIgnoreCase struct{}

func (ordinalIgnoreCase) Key(name string) string { return cases.Fold().String(name) }
func (ordinalIgnoreCase) Name() string           { return OrdinalIgnoreCaseName }

type normalized struct{}

func (normalized) Key(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if isSeparator(r) || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(r)
	}

	return cases.Fold().String(b.String())
}

func (normalized) Name() string { return NormalizedName }

// isSeparator returns true if the rune is a common identifier separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-'
}
