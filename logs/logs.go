// Package logs provides structured, context aware logging. Values
// that want to contribute fields to a log entry implement Loggable
package logs

import "context"

type contextKey string

// ContextKeyTraceID is the key under which the trace ID of a
// request is stored in its context
const ContextKeyTraceID contextKey = "trace_id"

// Fields collects the fields of a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by values that can describe
// themselves as fields of a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a set of fields that can be passed directly
// to a Logger
type MapFields map[string]interface{}

// Add is the implementation of Fields for MapFields
func (m MapFields) Add(key string, value interface{}) {
	m[key] = value
}

// Log is the implementation of Loggable for MapFields
func (m MapFields) Log(fields Fields) {
	for k, v := range m {
		fields.Add(k, v)
	}
}

// Logger writes leveled log entries. Every entry carries the trace
// ID found in the context, if any, and the fields contributed by
// the loggables
type Logger interface {
	Debug(ctx context.Context, msg string, loggables ...Loggable)
	Info(ctx context.Context, msg string, loggables ...Loggable)
	Warn(ctx context.Context, msg string, loggables ...Loggable)
	Error(ctx context.Context, msg string, loggables ...Loggable)

	// ForClass returns a logger that adds the package and
	// class to every entry
	ForClass(pkg, class string) Logger
}

// WithTraceID returns a context that carries the trace ID
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace ID stored in the context, or 0
// if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}
	return traceID
}
