package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anivanovic/timerbar/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "defaults", level: "", format: ""},
		{name: "debug text", level: "debug", format: "text"},
		{name: "warning alias", level: "warning", format: "color"},
		{name: "json", level: "ERROR", format: "json"},
		{name: "silent ignores format", level: "silent", format: "yaml"},
		{name: "bad level", level: "trace", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := logger.New(&bytes.Buffer{}, tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_JSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(&buf, "warn", "json")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_Silent(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(&buf, "silent", "")
	require.NoError(t, err)

	l.Error("nothing")
	assert.Empty(t, buf.String())
}
