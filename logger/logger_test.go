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
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		level       string
		enabled     zapcore.Level
		disabled    zapcore.Level
		expectError bool
	}{
		{"development info", "development", "info", zapcore.InfoLevel, zapcore.DebugLevel, false},
		{"production warn", "production", "warn", zapcore.WarnLevel, zapcore.InfoLevel, false},
		{"test debug", "test", "debug", zapcore.DebugLevel, zapcore.InvalidLevel, false},
		{"invalid level", "development", "loud", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.env, tt.level)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled))
			if tt.disabled != zapcore.InvalidLevel {
				assert.False(t, log.Core().Enabled(tt.disabled))
			}
		})
	}
}

func newObservedGormLogger(level zapcore.Level) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewGormLogger(zap.New(core), 100*time.Millisecond), logs
}

func TestGormLoggerTraceError(t *testing.T) {
	l, logs := newObservedGormLogger(zapcore.DebugLevel)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO users", 0
	}, errors.New("constraint failed"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "query failed", entry.Message)
	assert.Equal(t, "INSERT INTO users", entry.ContextMap()["sql"])
}

func TestGormLoggerTraceIgnoresRecordNotFound(t *testing.T) {
	l, logs := newObservedGormLogger(zapcore.DebugLevel)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM users WHERE id = 42", 0
	}, gorm.ErrRecordNotFound)

	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestGormLoggerTraceSlowQuery(t *testing.T) {
	l, logs := newObservedGormLogger(zapcore.DebugLevel)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM products", 3
	}, nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "slow query", logs.All()[0].Message)
}

func TestGormLoggerSilent(t *testing.T) {
	l, logs := newObservedGormLogger(zapcore.DebugLevel)
	silent := l.LogMode(gormlogger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("boom"))
	silent.Error(context.Background(), "failed %s", "badly")

	assert.Equal(t, 0, logs.Len())
	assert.Equal(t, gormlogger.Warn, l.level, "LogMode must not mutate the receiver")
}

func TestGormLoggerInfoLevelLogsQueries(t *testing.T) {
	l, logs := newObservedGormLogger(zapcore.DebugLevel)
	verbose := l.LogMode(gormlogger.Info)

	verbose.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM orders", 2
	}, nil)
	verbose.Info(context.Background(), "migrated %d tables", 4)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "query", logs.All()[0].Message)
	assert.Equal(t, "migrated 4 tables", logs.All()[1].Message)
}
