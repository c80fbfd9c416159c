package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Logger 把 gorm 的日誌轉成 slog
type Logger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
}

func NewLogger(logger *slog.Logger, level gormlogger.LogLevel) *Logger {
	return &Logger{logger: logger, level: level}
}

func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &Logger{logger: l.logger, level: level}
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace 找不到資料與 context 取消屬於正常流程，不以錯誤等級記錄
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{
		slog.Duration("duration", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case err != nil && l.level >= gormlogger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, context.Canceled):
		l.logger.ErrorContext(ctx, "gorm query error", append(attrs, slog.Any("error", err))...)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		l.logger.WarnContext(ctx, "gorm slow query", attrs...)
	case l.level >= gormlogger.Info:
		l.logger.DebugContext(ctx, "gorm query", attrs...)
	}
}
