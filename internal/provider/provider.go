// Package provider defines the capability interfaces the handlers depend on
// and their OpenAI implementation. Handlers receive these as injected
// dependencies so tests can substitute fakes.
package provider

import (
	"context"
	"errors"
)

// ErrEmptyCompletion reports a completion response with no choices.
var ErrEmptyCompletion = errors.New("provider returned no completion choices")

// ErrEmptyAudio reports a speech response carrying no audio bytes.
var ErrEmptyAudio = errors.New("provider returned empty audio payload")

// TextGenerator produces a single completion for a system prompt and user
// message. Failures are opaque to callers; they reshape them, not retry.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float32) (string, error)
}

// SpeechSynthesizer renders text to encoded audio bytes (mp3).
type SpeechSynthesizer interface {
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
}
