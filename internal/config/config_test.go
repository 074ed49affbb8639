package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "OPENAI_API_KEY", "ALLOWED_ORIGIN", "OPENAI_MODEL",
		"OPENAI_TTS_MODEL", "TTS_VOICE", "OPENAI_TIMEOUT_SECONDS",
		"VALIDATE_CEFR_LEVEL", "STYLE_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "tts-1", cfg.TTSModel)
	assert.Equal(t, "alloy", cfg.TTSVoice)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	assert.False(t, cfg.ValidateCEFRLevel)
	assert.Equal(t, "prompts/style.yaml", cfg.StyleFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "45")
	t.Setenv("VALIDATE_CEFR_LEVEL", "yes")
	t.Setenv("TTS_VOICE", "nova")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.ValidateCEFRLevel)
	assert.Equal(t, "nova", cfg.TTSVoice)
}

func TestGetEnvBoolDefault(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"on", false, true},
		{"false", true, false},
		{"off", true, false},
		{"garbage", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		assert.Equal(t, tt.want, getEnvBoolDefault("TEST_BOOL", tt.def), "value %q", tt.value)
	}
}
