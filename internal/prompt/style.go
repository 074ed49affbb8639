package prompt

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Style carries the generation knobs shared by both conversation modes:
// sampling temperature, the token-budget clamp bounds and the remaining-time
// fallback used when a lesson request has no timing information.
type Style struct {
	Temperature             float32 `yaml:"temperature"`
	MinTokens               int     `yaml:"min_tokens"`
	MaxTokens               int     `yaml:"max_tokens"`
	CasualMaxTokens         int     `yaml:"casual_max_tokens"`
	DefaultRemainingSeconds int     `yaml:"default_remaining_seconds"`
}

func DefaultStyle() Style {
	return Style{
		Temperature:             0.7,
		MinTokens:               150,
		MaxTokens:               500,
		CasualMaxTokens:         500,
		DefaultRemainingSeconds: 300,
	}
}

// LoadStyle reads a YAML style file, filling any omitted field from the
// defaults. A missing file is not an error; the defaults apply as-is.
func LoadStyle(path string) (Style, error) {
	st := DefaultStyle()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return st, err
	}
	var in Style
	if err := yaml.Unmarshal(b, &in); err != nil {
		return st, err
	}
	if in.Temperature > 0 {
		st.Temperature = in.Temperature
	}
	if in.MinTokens > 0 {
		st.MinTokens = in.MinTokens
	}
	if in.MaxTokens > 0 {
		st.MaxTokens = in.MaxTokens
	}
	if in.CasualMaxTokens > 0 {
		st.CasualMaxTokens = in.CasualMaxTokens
	}
	if in.DefaultRemainingSeconds > 0 {
		st.DefaultRemainingSeconds = in.DefaultRemainingSeconds
	}
	return st, nil
}

// MaxTokensForRemaining converts remaining lesson seconds into a response
// token ceiling: 100 tokens per remaining minute, clamped to
// [MinTokens, MaxTokens]. Integer division floors the raw value.
func (st Style) MaxTokensForRemaining(remainingSeconds int) int {
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	tokens := remainingSeconds * 100 / 60
	if tokens < st.MinTokens {
		return st.MinTokens
	}
	if tokens > st.MaxTokens {
		return st.MaxTokens
	}
	return tokens
}
