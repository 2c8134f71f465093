// Package ormzap adapts a zap logger to orm.Logger.
package ormzap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mickamy/ormmorph/orm"
)

// Logger writes every statement issued through an orm.DB as a structured
// zap entry.
type Logger struct {
	z     *zap.Logger
	level zapcore.Level
}

// New returns a Logger that logs statements at debug level.
func New(z *zap.Logger) *Logger {
	return &Logger{z: z, level: zapcore.DebugLevel}
}

// WithLevel returns a copy of l logging at level.
func (l *Logger) WithLevel(level zapcore.Level) *Logger {
	return &Logger{z: l.z, level: level}
}

func (l *Logger) Log(_ context.Context, query string, args ...any) {
	if ce := l.z.Check(l.level, "orm query"); ce != nil {
		ce.Write(zap.String("sql", query), zap.Any("args", args))
	}
}

var _ orm.Logger = (*Logger)(nil)
