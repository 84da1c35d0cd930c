// Package logger provides a named, leveled logger used across the
// issuer, holder, and verifier roles.
package logger

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log wraps logr.Logger so callers don't depend on the zap backend directly.
type Log struct {
	logr.Logger
}

// New creates a named logger. Production builds use JSON encoding with
// no caller/stacktrace noise; development builds colorize levels.
func New(name string, production bool) (*Log, error) {
	var zc zap.Config

	switch production {
	case true:
		zc = zap.NewProductionConfig()
	case false:
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zc.DisableCaller = true
	zc.DisableStacktrace = true

	z, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return &Log{Logger: zapr.NewLogger(z).WithName(name)}, nil
}

// NewSimple creates a logger from the global zap logger, for call sites
// that run before configuration has been parsed.
func NewSimple(name string) *Log {
	return &Log{Logger: zapr.NewLogger(zap.L()).WithName(name)}
}

// New returns a named child logger.
func (l *Log) New(name string) *Log {
	return &Log{Logger: l.WithName(name)}
}

// Info logs at the default level.
func (l *Log) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.V(0).WithValues(keysAndValues...).Info(msg)
}

// Debug logs at a verbose level.
func (l *Log) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.V(1).WithValues(keysAndValues...).Info(msg)
}

// Error logs an error with context.
func (l *Log) Error(err error, msg string, keysAndValues ...interface{}) {
	l.Logger.Error(err, msg, keysAndValues...)
}
