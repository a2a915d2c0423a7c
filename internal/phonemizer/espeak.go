package phonemizer

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/phonemize/internal/engine"
	"codeberg.org/snonux/phonemize/internal/language"
	"codeberg.org/snonux/phonemize/internal/phoneme"
)

// ESpeakProvider implements Provider on top of a local espeak-ng session.
// The voice registry is built and validated once at construction: every
// supported language must resolve to an engine voice or construction fails.
type ESpeakProvider struct {
	session  *engine.Session
	registry *language.Registry
}

// NewESpeakProvider initializes an engine session, builds the voice
// registry from the engine's catalog and validates it.
func NewESpeakProvider(dataPath string) (*ESpeakProvider, error) {
	session, err := engine.NewSession(dataPath)
	if err != nil {
		return nil, err
	}

	entries, err := session.Voices(context.Background())
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("building voice registry: %w", err)
	}

	registry, err := language.NewRegistry(entries)
	if err != nil {
		session.Close()
		return nil, err
	}

	return &ESpeakProvider{session: session, registry: registry}, nil
}

// Phonemize converts text to the canonical phoneme alphabet. Empty text
// short-circuits to "" without touching the engine.
func (p *ESpeakProvider) Phonemize(ctx context.Context, text string, lang language.Language) (string, error) {
	if lang == language.None {
		return "", language.ErrLanguageNotSet
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	voice, err := p.registry.VoiceName(lang)
	if err != nil {
		return "", err
	}
	if err := p.session.SetVoice(ctx, voice); err != nil {
		return "", fmt.Errorf("selecting voice %q: %w", voice, err)
	}

	raw, err := p.session.Phonemize(ctx, text)
	if err != nil {
		return "", err
	}

	return phoneme.Normalize(raw, lang), nil
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks that the engine session is usable
func (p *ESpeakProvider) IsAvailable() error {
	if p.session == nil {
		return engine.ErrCouldNotInitialize
	}
	return nil
}

// Registry exposes the validated voice registry, e.g. for listing.
func (p *ESpeakProvider) Registry() *language.Registry {
	return p.registry
}

// Close releases the engine session.
func (p *ESpeakProvider) Close() error {
	p.session.Close()
	return nil
}
