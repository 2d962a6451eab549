package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"adreach/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelWarn, false)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("campaign_id", "c-1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "c-1", line["campaign_id"])
}

func TestNewRotator(t *testing.T) {
	assert.Nil(t, newRotator(config.LogFile{}))

	path := filepath.Join(t.TempDir(), "adreach.log")
	rotator := newRotator(config.LogFile{Path: path, MaxBackups: 2})
	require.NotNil(t, rotator)
	assert.Equal(t, path, rotator.Filename)
	assert.Equal(t, defaultMaxSizeMB, rotator.MaxSize)
	assert.Equal(t, 2, rotator.MaxBackups)
	assert.Equal(t, defaultMaxAgeDays, rotator.MaxAge)
}
