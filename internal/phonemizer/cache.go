package phonemizer

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/snonux/phonemize/internal/language"
)

// Cache stores phonemization results keyed by language code and input text.
type Cache interface {
	Get(langCode, text string) (string, bool, error)
	Put(langCode, text, phonemes string) error
}

// CachingProvider wraps a Provider with a result cache. Normalization is
// deterministic, so a hit is always valid. Cache failures degrade to direct
// phonemization; they never fail the request.
type CachingProvider struct {
	inner Provider
	cache Cache
}

// NewCachingProvider creates a caching wrapper around a provider
func NewCachingProvider(inner Provider, cache Cache) *CachingProvider {
	return &CachingProvider{inner: inner, cache: cache}
}

// Phonemize returns a cached result when available, otherwise delegates to
// the wrapped provider and stores the result.
func (p *CachingProvider) Phonemize(ctx context.Context, text string, lang language.Language) (string, error) {
	code := lang.Code()
	if code != "" && text != "" {
		cached, ok, err := p.cache.Get(code, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Phoneme cache read failed: %v\n", err)
		} else if ok {
			return cached, nil
		}
	}

	result, err := p.inner.Phonemize(ctx, text, lang)
	if err != nil {
		return "", err
	}

	if code != "" && text != "" {
		if err := p.cache.Put(code, text, result); err != nil {
			fmt.Fprintf(os.Stderr, "Phoneme cache write failed: %v\n", err)
		}
	}
	return result, nil
}

// Name returns the provider name
func (p *CachingProvider) Name() string {
	return fmt.Sprintf("%s (cached)", p.inner.Name())
}

// IsAvailable checks the wrapped provider
func (p *CachingProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}
