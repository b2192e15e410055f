package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig("info", "json", "craftcost", "test", false)
	InitLoggerWithWriter(cfg, &buf)

	FromContext(context.Background()).Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "craftcost", entry["service"])
	assert.Equal(t, "value", entry["key"])
}

func TestFromContext_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("debug", "json", "craftcost", "test", false), &buf)

	id := GenerateRequestID()
	ctx := WithRequestID(context.Background(), id)
	FromContext(ctx).Info("traced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		cfg := Config{Level: tt.level}
		assert.Equal(t, tt.want, cfg.LogLevel().String(), tt.level)
	}
}
