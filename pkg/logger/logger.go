// Package logger provides a zap-based application logger.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger writes.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn resolves the trace id carried by a context.
type TraceIDFn func(ctx context.Context) string

// Logger writes structured JSON lines tagged with the service name and the
// trace id of the calling context.
type Logger struct {
	log       *zap.SugaredLogger
	traceIDFn TraceIDFn
}

// New builds a Logger writing to w.
func New(w io.Writer, minLevel Level, serviceName string, traceIDFn TraceIDFn) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), minLevel)
	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(zap.String("service", serviceName))

	return &Logger{log: log.Sugar(), traceIDFn: traceIDFn}
}

// ParseLevel converts a level name such as "debug" into a Level.
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Debugw(msg, args...)
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Infow(msg, args...)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Warnw(msg, args...)
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Errorw(msg, args...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) with(ctx context.Context) *zap.SugaredLogger {
	if l.traceIDFn == nil {
		return l.log
	}
	return l.log.With("trace_id", l.traceIDFn(ctx))
}
