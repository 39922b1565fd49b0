// Package diagnostic collects findings about a fixture before it is
// replayed: arguments that cannot be recorded, patterns that contradict
// declared types and names that resemble a declared parameter.
package diagnostic
