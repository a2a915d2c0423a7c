package language

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLanguageNotSet is returned when a lookup is attempted before a
	// language has been selected.
	ErrLanguageNotSet = errors.New("no language selected")

	// ErrLanguageNotFound is returned when a language has no voice in the
	// registry. After a successful NewRegistry this cannot happen, but
	// callers must still handle it.
	ErrLanguageNotFound = errors.New("language not found in voice registry")
)

// ValidationError reports a required language missing from the engine's
// voice catalog. It is fatal to registry construction: a registry is either
// complete or not built at all.
type ValidationError struct {
	Missing Language
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("voice catalog has no voice for %s (%s)", e.Missing, e.Missing.Code())
}

// VoiceEntry is one row of the engine's voice catalog. Both fields are raw
// engine strings and may contain embedded control markers.
type VoiceEntry struct {
	Languages  string // language code as reported by the engine
	Identifier string // engine voice name
}

// Registry maps every supported language to an engine voice name.
// Immutable once built; safe for concurrent reads.
type Registry struct {
	voices map[Language]string
}

// The engine packs priority bytes into its language and voice strings.
// They must never appear in keys or stored voice names.
const controlMarkers = "\x01\x02"

func stripControlMarkers(s string) string {
	if !strings.ContainsAny(s, controlMarkers) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == 0x01 || r == 0x02 {
			return -1
		}
		return r
	}, s)
}

// NewRegistry builds and validates the language-to-voice mapping from the
// engine's voice catalog. Duplicate language codes are resolved
// last-write-wins, since the engine does not guarantee uniqueness. If any
// supported language has no voice, NewRegistry fails with a
// *ValidationError and no registry is returned.
func NewRegistry(entries []VoiceEntry) (*Registry, error) {
	byCode := make(map[string]string, len(entries))
	for _, e := range entries {
		code := stripControlMarkers(e.Languages)
		name := stripControlMarkers(e.Identifier)
		byCode[code] = name
	}

	voices := make(map[Language]string, len(All()))
	for _, l := range All() {
		name, ok := byCode[l.Code()]
		if !ok {
			return nil, &ValidationError{Missing: l}
		}
		voices[l] = name
	}

	return &Registry{voices: voices}, nil
}

// VoiceName returns the engine voice name for l.
func (r *Registry) VoiceName(l Language) (string, error) {
	if l == None {
		return "", ErrLanguageNotSet
	}
	name, ok := r.voices[l]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotFound, l.Code())
	}
	return name, nil
}
