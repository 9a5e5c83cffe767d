package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func traceQuery(l *GormLogger, began time.Time, err error) {
	l.Trace(context.Background(), began, func() (string, int64) {
		return `SELECT * FROM "landings" WHERE subdomain = $1`, 1
	}, err)
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("failed query logged at error", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Error)
		traceQuery(l, time.Now(), errors.New("connection reset"))

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "query failed", entries[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Contains(t, entries[0].ContextMap()["sql"], "landings")
	})

	t.Run("record not found suppressed by default", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Error)
		traceQuery(l, time.Now(), gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("record not found logged when configured", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Error, WithIgnoreRecordNotFoundError(false))
		traceQuery(l, time.Now(), gormlogger.ErrRecordNotFound)

		require.Len(t, recorded.All(), 1)
	})

	t.Run("slow query logged at warn", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Millisecond))
		traceQuery(l, time.Now().Add(-time.Second), nil)

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Contains(t, entries[0].Message, "slow query")
	})

	t.Run("normal query logged at debug", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Info)
		traceQuery(l, time.Now(), nil)

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	})

	t.Run("silent level logs nothing", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Silent)
		traceQuery(l, time.Now(), errors.New("ignored"))

		assert.Empty(t, recorded.All())
	})
}

func TestGormLogger_Trace_RequestID(t *testing.T) {
	l, recorded := newObservedGormLogger(gormlogger.Info)

	ctx := WithRequestID(context.Background(), "req-7")
	l.Trace(ctx, time.Now(), func() (string, int64) {
		return `SELECT 1`, 0
	}, nil)

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])
}

func TestGormLogger_LogMode(t *testing.T) {
	l, _ := newObservedGormLogger(gormlogger.Info)

	changed := l.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, l.level)
	assert.Equal(t, gormlogger.Warn, changed.(*GormLogger).level)
}

func TestMapGormLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent":  gormlogger.Silent,
		"error":   gormlogger.Error,
		"warn":    gormlogger.Warn,
		"info":    gormlogger.Info,
		"debug":   gormlogger.Info,
		"":        gormlogger.Warn,
		"unknown": gormlogger.Warn,
	}

	for level, expected := range cases {
		assert.Equal(t, expected, MapGormLogLevel(level), "level %q", level)
	}
}
