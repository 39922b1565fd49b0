// Package recorder provides the detached recorders that write one attribute
// argument into a caller-defined record.
//
// A detached recorder is a stateless write-back operation: it carries a
// pattern and a caller-supplied function, but no record. The same detached
// recorder serves every record of its mapped parameter; Attach binds it to a
// single record for the duration of one parse.
//
// All recorders share one generic shape, Detached[R, P], where R is the
// record type and P the payload handed over for one argument:
//
//	shape      type argument      constructor argument       named argument
//	semantic   types.Type         any                         any
//	syntactic  ast.Expr           param.ArgumentSyntax        ast.Expr
//	combined   TypeArgument       ConstructorArgument         NamedArgument
//
// Two composite families build sibling recorders from a single registration:
//   - Adaptive: a combined and a semantic recorder sharing one pattern
//   - Split: a semantic and a syntactic recorder over two record types
//
// A pattern always runs before the write-back. When the value does not fit,
// the write-back is never called and ErrNoFit is returned; when the
// write-back itself reports failure, ErrRejected is returned.
package recorder
