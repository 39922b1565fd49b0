package repository

import (
	"errors"
	"fmt"
	"slices"
)

// Names collects constructor or named parameter mappings keyed by name.
type Names[E any] struct {
	comparer Comparer
	entries  []nameEntry[E]
	built    bool
}

type nameEntry[E any] struct {
	name  string
	entry E
}

// NewNames creates an open name-keyed repository. A nil comparer selects
// DefaultComparer.
func NewNames[E any](comparer Comparer) *Names[E] {
	if comparer == nil {
		comparer = DefaultComparer()
	}

	return &Names[E]{comparer: comparer}
}

// Comparer returns the comparer names are matched with.
func (r *Names[E]) Comparer() Comparer {
	return r.comparer
}

// Add registers entry under name. Collisions are reported by Build.
func (r *Names[E]) Add(name string, entry E) error {
	if r.built {
		return ErrBuilt
	}

	if isNil(entry) {
		return fmt.Errorf("%w: parameter %q", ErrNilEntry, name)
	}

	r.entries = append(r.entries, nameEntry[E]{name: name, entry: entry})

	return nil
}

// Build freezes the repository. Names colliding under the comparer fail the
// build with ErrDuplicateKey.
func (r *Names[E]) Build() (*FrozenNames[E], error) {
	if r.built {
		return nil, ErrBuilt
	}

	r.built = true

	frozen := &FrozenNames[E]{
		comparer: r.comparer,
		byKey:    make(map[string]E, len(r.entries)),
		names:    make([]string, 0, len(r.entries)),
	}

	firstByKey := make(map[string]string, len(r.entries))

	var errs []error
	for _, e := range r.entries {
		key := r.comparer.Key(e.name)
		if first, exists := firstByKey[key]; exists {
			errs = append(errs, fmt.Errorf("%w: %q collides with %q under %s comparison",
				ErrDuplicateKey, e.name, first, r.comparer.Name()))
			continue
		}

		firstByKey[key] = e.name
		frozen.byKey[key] = e.entry
		frozen.names = append(frozen.names, e.name)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return frozen, nil
}

// FrozenNames is a read-only name-keyed lookup.
type FrozenNames[E any] struct {
	comparer Comparer
	byKey    map[string]E
	names    []string
}

// Lookup returns the mapping registered under a name equal to name.
func (r *FrozenNames[E]) Lookup(name string) (E, bool) {
	e, ok := r.byKey[r.comparer.Key(name)]
	return e, ok
}

// Comparer returns the comparer names are matched with.
func (r *FrozenNames[E]) Comparer() Comparer {
	return r.comparer
}

// Len returns the number of mappings.
func (r *FrozenNames[E]) Len() int {
	return len(r.names)
}

// Keys returns the mapped names, as registered, in registration order.
func (r *FrozenNames[E]) Keys() []string {
	return slices.Clone(r.names)
}
