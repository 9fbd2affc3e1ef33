package logging

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type databaseLogger struct {
	slowThreshold time.Duration
}

// NewDatabaseLogger returns a gorm logger.Interface that writes to the
// package logger. Queries slower than slowThreshold are logged at warn.
func NewDatabaseLogger(slowThreshold time.Duration) gormlogger.Interface {
	return databaseLogger{slowThreshold: slowThreshold}
}

func (l databaseLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l databaseLogger) Info(_ context.Context, msg string, args ...interface{}) {
	S.Infof(msg, args...)
}

func (l databaseLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	S.Warnf(msg, args...)
}

func (l databaseLogger) Error(_ context.Context, msg string, args ...interface{}) {
	S.Errorf(msg, args...)
}

func (l databaseLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		L.Error("database query failed",
			zap.Error(err), zap.String("sql", sql), zap.Int64("rows", rows))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		sql, rows := fc()
		L.Warn("slow database query",
			zap.Duration("elapsed", elapsed), zap.String("sql", sql), zap.Int64("rows", rows))
	case L.Core().Enabled(zapcore.DebugLevel):
		sql, rows := fc()
		L.Debug("database query",
			zap.Duration("elapsed", elapsed), zap.String("sql", sql), zap.Int64("rows", rows))
	}
}
