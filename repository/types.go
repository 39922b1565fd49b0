package repository

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Types collects type parameter mappings keyed by ordinal.
type Types[E any] struct {
	entries []typeEntry[E]
	built   bool
}

type typeEntry[E any] struct {
	ordinal int
	entry   E
}

// NewTypes creates an open type parameter repository.
func NewTypes[E any]() *Types[E] {
	return &Types[E]{}
}

// Add registers entry under ordinal. Collisions are reported by Build.
func (r *Types[E]) Add(ordinal int, entry E) error {
	if r.built {
		return ErrBuilt
	}

	if ordinal < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeOrdinal, ordinal)
	}

	if isNil(entry) {
		return fmt.Errorf("%w: type parameter #%d", ErrNilEntry, ordinal)
	}

	r.entries = append(r.entries, typeEntry[E]{ordinal: ordinal, entry: entry})

	return nil
}

// Build freezes the repository. The open repository accepts no further
// mappings afterwards, even when Build fails.
func (r *Types[E]) Build() (*FrozenTypes[E], error) {
	if r.built {
		return nil, ErrBuilt
	}

	r.built = true

	frozen := &FrozenTypes[E]{
		byOrdinal: make(map[int]E, len(r.entries)),
		ordinals:  make([]int, 0, len(r.entries)),
	}

	var errs []error
	for _, e := range r.entries {
		if _, exists := frozen.byOrdinal[e.ordinal]; exists {
			errs = append(errs, fmt.Errorf("%w: type parameter #%d", ErrDuplicateKey, e.ordinal))
			continue
		}

		frozen.byOrdinal[e.ordinal] = e.entry
		frozen.ordinals = append(frozen.ordinals, e.ordinal)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return frozen, nil
}

// FrozenTypes is a read-only type parameter lookup.
type FrozenTypes[E any] struct {
	byOrdinal map[int]E
	ordinals  []int
}

// Lookup returns the mapping registered for ordinal.
func (r *FrozenTypes[E]) Lookup(ordinal int) (E, bool) {
	e, ok := r.byOrdinal[ordinal]
	return e, ok
}

// Len returns the number of mappings.
func (r *FrozenTypes[E]) Len() int {
	return len(r.ordinals)
}

// Keys returns the mapped ordinals in registration order.
func (r *FrozenTypes[E]) Keys() []int {
	return slices.Clone(r.ordinals)
}

// isNil reports whether v is nil, including nil values of nilable kinds
// stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
