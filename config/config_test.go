package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestChannelID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"valid snowflake", "123456789012345678", "123456789012345678"},
		{"zero means unset", "0", ""},
		{"empty", "", ""},
		{"garbage", "not-a-channel", ""},
		{"negative", "-5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, channelID(tt.raw))
		})
	}
}

func TestSecondsEnv(t *testing.T) {
	logger := testLogger()

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset uses default", "", 60 * time.Second},
		{"valid override", "30", 30 * time.Second},
		{"minimum one second", "1", time.Second},
		{"zero falls back", "0", 60 * time.Second},
		{"negative falls back", "-10", 60 * time.Second},
		{"garbage falls back", "soon", 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("UPDATE_INTERVAL", tt.value)
			assert.Equal(t, tt.want, secondsEnv(logger, "UPDATE_INTERVAL", 60))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("MONITOR_CHANNEL_ID", "42")
	t.Setenv("UPDATE_INTERVAL", "")
	t.Setenv("EXEC_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "token-123", cfg.Token)
	assert.Equal(t, "42", cfg.ChannelID)
	assert.Equal(t, 60*time.Second, cfg.UpdateInterval)
	assert.Equal(t, 5*time.Second, cfg.ExecTimeout)
	assert.NotNil(t, cfg.Logger)
}
