package recorder

import (
	"go/types"

	"attribute-mapper/pattern"
)

// SemanticType records a resolved type argument.
func SemanticType[R any](fn func(record R, argument types.Type) bool) Detached[R, types.Type] {
	mustFunc(fn, "semantic type")

	return Func[R, types.Type](func(record R, argument types.Type) error {
		return writeBack(fn(record, argument))
	})
}

// Semantic records a constructor or named argument value narrowed by p.
// Params-collected and defaulted constructor arguments arrive here as their
// collected []any or default value.
func Semantic[R, T any](p pattern.Pattern[T], fn func(record R, value T) bool) Detached[R, any] {
	mustPattern(p)
	mustFunc(fn, "semantic")

	return Func[R, any](func(record R, value any) error {
		v, err := fit(p, value)
		if err != nil {
			return err
		}

		return writeBack(fn(record, v))
	})
}
