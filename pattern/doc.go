// Package pattern validates and narrows weakly-typed argument values.
//
// A Pattern never fails loudly: TryFit either returns the value narrowed to
// the declared shape or reports that the value does not fit. Patterns hold
// no mutable state and may be shared freely between goroutines.
//
// Supported shapes:
//   - primitives (Bool, Int..Int64, Uint..Uint64, Float32, Float64, Rune,
//     Byte, String, Object), matched by exact dynamic type
//   - Nullable wrappers, where nil fits as a nil pointer
//   - Enum over integer-backed named types, accepting the exact underlying type
//   - Type and NullableType over go/types descriptors
//   - Array and NullableArray, composing an element pattern
//
// Parse reads the small textual form ("[]int32", "?string", "?type") used by
// fixtures and configuration.
package pattern
