// Package param describes the parameters and argument syntax of an attribute
// application as they are handed over by the compiler front-end.
//
// Descriptors are plain values: the front-end builds them once per parse and
// nothing in this module mutates them.
//
// Key types:
//   - TypeParameter: ordinal + name of a type parameter
//   - ConstructorParameter: name, declared type, optional and params flags
//   - NamedParameter: name of a named (keyed) parameter
//   - ArgumentSyntax: how a constructor argument was bound in source
//     (a single expression, a params-collected list, or the default value)
package param
