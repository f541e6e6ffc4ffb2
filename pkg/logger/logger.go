package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	base  *zap.Logger
	info  func(template string, args ...interface{})
	error func(template string, args ...interface{})
	warn  func(template string, args ...interface{})
	debug func(template string, args ...interface{})
}

// New builds a production zap logger. LOG_LEVEL=debug enables debug output.
func New() *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if os.Getenv("LOG_LEVEL") == "debug" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	base, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewExample()
	}
	return wrap(base)
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) *Logger {
	sugar := base.Sugar()
	return &Logger{
		base:  base,
		info:  sugar.Infof,
		error: sugar.Errorf,
		warn:  sugar.Warnf,
		debug: sugar.Debugf,
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn(format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.debug(format, v...)
}

// Named returns a child logger tagged with the given component name.
func (l *Logger) Named(name string) *Logger {
	return wrap(l.base.Named(name))
}

func (l *Logger) Sync() error {
	return l.base.Sync()
}
