package phonemizer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/phonemize/internal/language"
)

// Provider defines the interface for text-to-phoneme providers
type Provider interface {
	// Phonemize converts text into a canonical phoneme string for the
	// given language
	Phonemize(ctx context.Context, text string, lang language.Language) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for phonemizer providers
type Config struct {
	Provider string // Provider name: "espeak" or "openai"
	DataPath string // espeak-ng data bundle directory ("" = installed default)

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // chat model used for IPA transcription

	// FallbackToOpenAI chains the OpenAI provider behind espeak-ng
	FallbackToOpenAI bool
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "espeak",
		OpenAIModel: openai.GPT4o,
	}
}

// NewProvider creates the appropriate phonemizer provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "espeak":
		primary, err := NewESpeakProvider(config.DataPath)
		if err != nil {
			return nil, err
		}
		if config.FallbackToOpenAI {
			if config.OpenAIKey == "" {
				return nil, fmt.Errorf("OpenAI API key is required for fallback")
			}
			return NewProviderWithFallback(primary, NewOpenAIProvider(config)), nil
		}
		return primary, nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config), nil

	default:
		return nil, fmt.Errorf("unknown phonemizer provider: %s", config.Provider)
	}
}

// PhonemizeVoice converts text using the language spoken by the given
// voice. Application voice types only need to implement language.Voice.
func PhonemizeVoice(ctx context.Context, p Provider, text string, v language.Voice) (string, error) {
	return p.Phonemize(ctx, text, v.Language())
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Phonemize tries the primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) Phonemize(ctx context.Context, text string, lang language.Language) (string, error) {
	result, err := p.primary.Phonemize(ctx, text, lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())

		return p.fallback.Phonemize(ctx, text, lang)
	}
	return result, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// Primary returns the wrapped primary provider
func (p *ProviderWithFallback) Primary() Provider {
	return p.primary
}

// Close releases whichever wrapped providers hold resources
func (p *ProviderWithFallback) Close() error {
	if c, ok := p.primary.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
