// Package log is the structured logger shared by every layer. It keeps a single
// process-wide zap logger and lets callers attach request-scoped fields to a
// context so that every line written for a request carries them.
package log

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

type ctxFieldsKey struct{}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

type options struct {
	level      zapcore.Level
	env        string
	output     string
	caller     bool
	callerSkip int
}

type Option func(*options)

func DebugLogLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

// WithLogToOption selects the sink: "stdout" (default) or "stderr".
func WithLogToOption(output string) Option {
	return func(o *options) { o.output = output }
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.caller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

// Init replaces the process logger. Local environments get a console encoder,
// everything else JSON.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, output: "stdout"}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if o.env == "local" || o.env == "" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	sink := zapcore.Lock(os.Stdout)
	if o.output == "stderr" {
		sink = zapcore.Lock(os.Stderr)
	}

	zapOpts := []zap.Option{zap.Fields(zap.String("app", appName))}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	logger.Store(zap.New(zapcore.NewCore(encoder, sink, o.level), zapOpts...))
}

// InitForTest installs a development logger that only prints warnings and above.
func InitForTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger exposes the underlying zap logger for integrations that need it.
func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() {
	_ = logger.Load().Sync()
}

// WithFields returns a context whose log lines carry the given fields.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	return fields
}

func write(ctx context.Context, level zapcore.Level, msg string, fields []Field) {
	l := logger.Load()
	if ce := l.Check(level, msg); ce != nil {
		ce.Write(append(fieldsFromContext(ctx), fields...)...)
	}
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	write(ctx, zapcore.DebugLevel, msg, fields)
}

func Debugf(ctx context.Context, format string, args ...any) {
	write(ctx, zapcore.DebugLevel, fmt.Sprintf(format, args...), nil)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	write(ctx, zapcore.InfoLevel, msg, fields)
}

func Infof(ctx context.Context, format string, args ...any) {
	write(ctx, zapcore.InfoLevel, fmt.Sprintf(format, args...), nil)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	write(ctx, zapcore.WarnLevel, msg, fields)
}

func Warnf(ctx context.Context, format string, args ...any) {
	write(ctx, zapcore.WarnLevel, fmt.Sprintf(format, args...), nil)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	write(ctx, zapcore.ErrorLevel, msg, fields)
}

func Errorf(ctx context.Context, format string, args ...any) {
	write(ctx, zapcore.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	write(ctx, zapcore.PanicLevel, msg, fields)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	write(ctx, zapcore.FatalLevel, fmt.Sprintf(format, args...), nil)
}

func String(key, val string) Field                 { return zap.String(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Int64(key string, val int64) Field            { return zap.Int64(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Any(key string, val any) Field                { return zap.Any(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Time(key string, val time.Time) Field         { return zap.Time(key, val) }
func Err(err error) Field                          { return zap.Error(err) }
