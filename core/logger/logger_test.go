package logger_test

import (
	"testing"

	"inventory-tracker/core/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       logger.Config
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"Debug console", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"Info json", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Warn", logger.Config{Level: "warn", Format: "console"}, zapcore.WarnLevel, false},
		{"Empty level", logger.Config{}, zapcore.InfoLevel, false},
		{"Unknown level", logger.Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestWithSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	id := logger.NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.WithSession(base, id).Info("hello")
	logger.WithSession(base, "").Info("bare")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, id, entries[0].ContextMap()["session_id"])
	assert.NotContains(t, entries[1].ContextMap(), "session_id")
}
