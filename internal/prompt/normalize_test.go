package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabstream-backend/internal/types"
)

func TestNormalizeDefaults(t *testing.T) {
	got, err := Normalize(types.ChatRequest{Message: "hello"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, ModeCasual, got.Mode)
	assert.Equal(t, "A1", got.Level)
	assert.Equal(t, []string{"General"}, got.Topics)
	assert.Equal(t, []string{"Reading", "Listening", "Writing", "Speaking"}, got.Skills)
	assert.Equal(t, "General", got.ComponentName)
	assert.Equal(t, 0, got.ComponentIndex)
}

func TestNormalizeEmptyTopicsGetDefault(t *testing.T) {
	got, err := Normalize(types.ChatRequest{Message: "hi", Topics: []string{"", "  "}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"General"}, got.Topics)
}

func TestNormalizeUnknownMode(t *testing.T) {
	for _, mode := range []string{"quiz", "LESSONS", "voice"} {
		_, err := Normalize(types.ChatRequest{Mode: mode, Message: "hi"}, Options{})
		var unknown *UnknownModeError
		require.ErrorAs(t, err, &unknown, "mode %q", mode)
		assert.Equal(t, mode, unknown.Mode)
	}
}

func TestNormalizeModeCaseInsensitive(t *testing.T) {
	got, err := Normalize(types.ChatRequest{Mode: " Lesson ", Message: "hi"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, ModeLesson, got.Mode)
}

func TestNormalizeLevelPassedThroughWhenPermissive(t *testing.T) {
	got, err := Normalize(types.ChatRequest{Message: "hi", Level: "Z9"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Z9", got.Level)
}

func TestNormalizeLevelValidation(t *testing.T) {
	opts := Options{ValidateLevel: true}

	got, err := Normalize(types.ChatRequest{Message: "hi", Level: "B2"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "B2", got.Level)

	_, err = Normalize(types.ChatRequest{Message: "hi", Level: "Z9"}, opts)
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "level", invalid.Field)
}

func TestNormalizeLessonFieldsPreserved(t *testing.T) {
	timing := []types.ComponentTiming{
		{Component: "Grammar", StartSeconds: 0, EndSeconds: 300, DurationSeconds: 300},
	}
	got, err := Normalize(types.ChatRequest{
		Mode:                  "lesson",
		Message:               "hi",
		Level:                 "B1",
		Topics:                []string{"Travel"},
		Tests:                 []string{"IELTS"},
		Skills:                []string{"Speaking"},
		CurrentComponentIndex: 2,
		CurrentComponentName:  "Grammar",
		ComponentTiming:       timing,
		VocabCategory:         "Food",
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, ModeLesson, got.Mode)
	assert.Equal(t, []string{"IELTS"}, got.Tests)
	assert.Equal(t, []string{"Speaking"}, got.Skills)
	assert.Equal(t, 2, got.ComponentIndex)
	assert.Equal(t, "Grammar", got.ComponentName)
	assert.Equal(t, timing, got.Timing)
	assert.Equal(t, "Food", got.VocabCategory)
}
