package logsink

import (
	"context"
	"go/ast"
	"go/types"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// values are rendered on a single line without pointer addresses, so that log
// output stays stable between runs.
var valueConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                4,
}

// Sink writes framework diagnostics to a structured logger.
type Sink struct {
	logger *slog.Logger
}

// New wraps logger. A nil logger discards everything.
func New(logger *slog.Logger) *Sink {
	if logger == nil {
		logger = Discard()
	}

	return &Sink{logger: logger}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Logger returns the wrapped logger.
func (s *Sink) Logger() *slog.Logger {
	return s.logger
}

// With returns a sink whose records carry the given attributes.
func (s *Sink) With(args ...any) *Sink {
	return &Sink{logger: s.logger.With(args...)}
}

// Enabled reports whether debug records would be written. Callers use it to
// skip rendering values nobody will read.
func (s *Sink) Enabled() bool {
	return s.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (s *Sink) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

func (s *Sink) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *Sink) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Value renders an argument value, a type or a syntax node for a log attribute.
func Value(key string, v any) slog.Attr {
	switch v := v.(type) {
	case slog.LogValuer:
		return slog.Any(key, v)
	case ast.Expr:
		return slog.String(key, types.ExprString(v))
	case types.Type:
		return slog.String(key, v.String())
	default:
		return slog.String(key, FormatValue(v))
	}
}

// FormatValue renders v the way log lines show it.
func FormatValue(v any) string {
	return strings.TrimSpace(valueConfig.Sprintf("%#v", v))
}
