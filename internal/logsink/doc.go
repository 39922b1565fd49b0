// Package logsink is the logging boundary of the recorder framework.
//
// Mappers and recorders never log through a global logger: a Sink wraps the
// *slog.Logger handed in by the caller, and a Sequence owned by the caller
// numbers recorder scopes so that log lines of one parse can be correlated.
package logsink
