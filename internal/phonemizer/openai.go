package phonemizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/phonemize/internal/language"
	"codeberg.org/snonux/phonemize/internal/phoneme"
)

// OpenAIProvider implements Provider using a chat model to produce IPA
// transcriptions. It is meant as a network fallback when no local engine
// is available, so its calls run behind a circuit breaker: once the API
// fails repeatedly, further requests fail fast instead of hammering it.
type OpenAIProvider struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIProvider creates a new OpenAI-backed phonemizer provider
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIProvider{
		apiKey: config.OpenAIKey,
		model:  model,
		client: openai.NewClient(config.OpenAIKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "openai-phonemizer",
		}),
	}
}

// Phonemize requests an IPA transcription and normalizes it into the
// canonical phoneme alphabet.
func (p *OpenAIProvider) Phonemize(ctx context.Context, text string, lang language.Language) (string, error) {
	if lang == language.None {
		return "", language.ErrLanguageNotSet
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if p.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a phonetic transcription engine for speech synthesis. " +
					"Transcribe the given text into the International Phonetic Alphabet (IPA). " +
					"Respond with only the IPA transcription, no explanations, no brackets.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Transcribe the following %s text into IPA: %s", lang, text),
			},
		},
		Temperature: 0.0,
		MaxTokens:   500,
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, fmt.Errorf("no transcription returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", err
	}

	return phoneme.Normalize(result.(string), lang), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks that an API key is configured
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
