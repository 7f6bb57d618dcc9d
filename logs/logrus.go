package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to create
// a Logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written. Defaults to os.Stderr
	Output io.Writer

	// JSON selects the JSON formatter instead of the text one
	JSON bool
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// LogrusLogger is the implementation of Logger on top of logrus
type LogrusLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// NewLogrus creates a new Logger backed by logrus
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &LogrusLogger{logger: logger, fields: logrus.Fields{}}
}

// ParseLevel converts a level name such as "debug" or "warn" into
// a logrus level
func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}

func (l *LogrusLogger) entry(ctx context.Context, loggables []Loggable) *logrus.Entry {
	fields := make(logrusFields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields[string(ContextKeyTraceID)] = traceID
	}

	for _, loggable := range loggables {
		if loggable != nil {
			loggable.Log(fields)
		}
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug is the implementation of Logger.Debug
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Debug(msg)
}

// Info is the implementation of Logger.Info
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Info(msg)
}

// Warn is the implementation of Logger.Warn
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Warn(msg)
}

// Error is the implementation of Logger.Error
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Error(msg)
}

// ForClass is the implementation of Logger.ForClass
func (l *LogrusLogger) ForClass(pkg, class string) Logger {
	fields := make(logrus.Fields, len(l.fields)+2)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields["package"] = pkg
	fields["class"] = class

	return &LogrusLogger{logger: l.logger, fields: fields}
}
