package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the similarity a declared name needs to be suggested.
const MinSimilarity = 0.5

// Suggestion is a declared name close to an unknown one.
type Suggestion struct {
	Name       string
	Similarity float64
}

// Suggest ranks the candidates resembling name, best first. key folds
// names before they are compared, the way the mapper compares them; nil
// compares names as written.
func Suggest(name string, candidates []string, key func(string) string) []Suggestion {
	if key == nil {
		key = func(s string) string { return s }
	}

	target := key(name)

	var out []Suggestion
	for _, c := range candidates {
		score := Similarity(target, key(c))
		if score >= MinSimilarity {
			out = append(out, Suggestion{Name: c, Similarity: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})

	return out
}

// Names returns the names of suggestions, in order.
func Names(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Name
	}

	return out
}
