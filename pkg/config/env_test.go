package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"briefing-proxy/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("BRIEF_TEST_STRING", "  value  ")
	assert.Equal(t, "value", config.GetEnvString("BRIEF_TEST_STRING", "default"))

	t.Setenv("BRIEF_TEST_STRING", "")
	assert.Equal(t, "default", config.GetEnvString("BRIEF_TEST_STRING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 3000},
		{"valid", "8080", 8080},
		{"negative", "-1", -1},
		{"non-numeric", "abc", 3000},
		{"trailing garbage", "80x", 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BRIEF_TEST_INT", tt.value)
			assert.Equal(t, tt.want, config.GetEnvInt("BRIEF_TEST_INT", 3000))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("BRIEF_TEST_FLOAT", "0.5")
	assert.Equal(t, 0.5, config.GetEnvFloat("BRIEF_TEST_FLOAT", 1))

	t.Setenv("BRIEF_TEST_FLOAT", "half")
	assert.Equal(t, 1.0, config.GetEnvFloat("BRIEF_TEST_FLOAT", 1))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"unset", "", true},
		{"true", "true", true},
		{"one", "1", true},
		{"false", "false", false},
		{"zero", "0", false},
		{"invalid", "yes please", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BRIEF_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, config.GetEnvBool("BRIEF_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", 4 * time.Hour},
		{"hours", "2h", 2 * time.Hour},
		{"mixed", "1h30m", 90 * time.Minute},
		{"bare number", "30", 4 * time.Hour},
		{"invalid", "soon", 4 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BRIEF_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, config.GetEnvDuration("BRIEF_TEST_DURATION", 4*time.Hour))
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	assert.NoError(t, config.ValidatePositiveDuration("CACHE_TTL", time.Hour))

	err := config.ValidatePositiveDuration("CACHE_TTL", 0)
	assert.EqualError(t, err, "CACHE_TTL must be positive, got 0s")

	err = config.ValidatePositiveDuration("NOTIFY_TIMEOUT", -time.Second)
	assert.ErrorContains(t, err, "NOTIFY_TIMEOUT")
}
