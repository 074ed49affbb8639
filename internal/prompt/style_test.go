package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxTokensForRemaining(t *testing.T) {
	st := DefaultStyle()
	tests := []struct {
		name      string
		remaining int
		want      int
	}{
		{"exactly at ceiling", 300, 500},
		{"at lower clamp", 90, 150},
		{"clamped down from 1000", 600, 500},
		{"zero clamps up", 0, 150},
		{"negative treated as zero", -30, 150},
		{"mid-range floors", 250, 416},
		{"four minutes", 240, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, st.MaxTokensForRemaining(tt.remaining))
		})
	}
}

func TestLoadStyleMissingFile(t *testing.T) {
	st, err := LoadStyle(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), st)
}

func TestLoadStylePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_tokens: 400\ntemperature: 0.2\n"), 0o600))

	st, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, 400, st.MaxTokens)
	assert.InDelta(t, 0.2, st.Temperature, 0.0001)
	// Omitted fields keep their defaults.
	assert.Equal(t, 150, st.MinTokens)
	assert.Equal(t, 500, st.CasualMaxTokens)
	assert.Equal(t, 300, st.DefaultRemainingSeconds)
}

func TestLoadStyleBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_tokens: [oops"), 0o600))

	_, err := LoadStyle(path)
	assert.Error(t, err)
}
