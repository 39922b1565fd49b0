// Package mapper resolves attribute parameters to the recorders registered
// for one record type.
//
// A Mapper is configured once, through a callback that registers a detached
// recorder per parameter, and is immutable afterwards. Lookups are cheap and
// safe from any number of goroutines, so a single Mapper typically serves
// every parse of its attribute.
//
// Three payload shapes are available as aliases of the generic Mapper:
// Semantic, Syntactic and Combined. Adaptive builds a Combined and a
// Semantic mapper from one registration set; Split builds a Semantic and a
// Syntactic mapper over two record types.
//
// A parameter without a mapping is not an error: most attributes map only
// the parameters their record cares about. The miss is logged at debug level
// and the argument is left unrecorded.
package mapper
