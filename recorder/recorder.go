package recorder

import (
	"errors"
	"go/ast"
	"go/types"
	"log/slog"

	"attribute-mapper/internal/logsink"
	"attribute-mapper/param"
)

var (
	ErrNoFit              = errors.New("argument does not fit the declared pattern")
	ErrRejected           = errors.New("argument rejected by write-back")
	ErrUnsupportedBinding = errors.New("argument binding is not supported by the recorder")
)

// Detached records a payload of shape P into a record of type R.
// It keeps no state between calls.
type Detached[R, P any] interface {
	TryRecord(record R, payload P) error
}

// Func adapts a plain function to a Detached recorder.
type Func[R, P any] func(record R, payload P) error

// TryRecord calls f.
func (f Func[R, P]) TryRecord(record R, payload P) error {
	return f(record, payload)
}

// Combined pairs the semantic value of an argument with its syntax.
type Combined[V, S any] struct {
	Value  V
	Syntax S
}

// LogValue renders both halves for structured logs.
func (c Combined[V, S]) LogValue() slog.Value {
	return slog.GroupValue(
		logsink.Value("value", c.Value),
		logsink.Value("syntax", c.Syntax),
	)
}

// Payloads of the combined shape.
type (
	TypeArgument        = Combined[types.Type, ast.Expr]
	ConstructorArgument = Combined[any, param.ArgumentSyntax]
	NamedArgument       = Combined[any, ast.Expr]
)

// Attached is a detached recorder bound to one record.
type Attached[P any] interface {
	TryRecord(payload P) bool
}

// Attach binds d to record.
func Attach[R, P any](d Detached[R, P], record R) Attached[P] {
	if d == nil {
		panic("detached recorder cannot be nil")
	}

	return attached[R, P]{detached: d, record: record}
}

type attached[R, P any] struct {
	detached Detached[R, P]
	record   R
}

func (a attached[R, P]) TryRecord(payload P) bool {
	return a.detached.TryRecord(a.record, payload) == nil
}

// writeBack turns a write-back result into the recorder error contract.
func writeBack(ok bool) error {
	if !ok {
		return ErrRejected
	}

	return nil
}

func mustFunc(fn any, what string) {
	if isNilFunc(fn) {
		panic(what + " write-back cannot be nil")
	}
}
