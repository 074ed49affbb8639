package provider

import (
	"context"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI implements TextGenerator and SpeechSynthesizer over the OpenAI API.
type OpenAI struct {
	client   *openai.Client
	model    string
	ttsModel string
}

func NewOpenAI(apiKey, model, ttsModel string) *OpenAI {
	return &OpenAI{
		client:   openai.NewClient(apiKey),
		model:    model,
		ttsModel: ttsModel,
	}
}

func (o *OpenAI) GenerateText(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float32) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// SynthesizeSpeech renders text as mp3 bytes. The speech endpoint returns a
// single binary body; an empty body is treated as an extraction failure
// rather than probed for alternative shapes.
func (o *OpenAI) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.ttsModel),
		Input:          text,
		Voice:          openai.SpeechVoice(strings.ToLower(strings.TrimSpace(voice))),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer resp.Close()
	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	return audio, nil
}
