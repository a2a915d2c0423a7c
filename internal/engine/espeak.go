package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"codeberg.org/snonux/phonemize/internal/language"
)

var (
	// ErrDataBundleNotFound means the engine data directory does not exist.
	ErrDataBundleNotFound = errors.New("engine data bundle not found")

	// ErrCouldNotInitialize means the espeak-ng binary is missing or broken.
	ErrCouldNotInitialize = errors.New("could not initialize espeak-ng")

	// ErrCouldNotPhonemize means the engine produced no phoneme output.
	ErrCouldNotPhonemize = errors.New("engine produced no phonemes")

	// ErrVoiceNotFound means the engine does not advertise the given voice.
	ErrVoiceNotFound = errors.New("voice not found in engine catalog")

	// ErrNoVoiceSelected means Phonemize was called before SetVoice.
	ErrNoVoiceSelected = errors.New("no voice selected")

	// ErrSessionClosed means the session has already been released.
	ErrSessionClosed = errors.New("engine session is closed")
)

// Session is an owned espeak-ng engine handle. The engine is stateful and
// single-threaded per handle, so every call is serialized by the session's
// mutex. Create with NewSession, release with Close.
type Session struct {
	mu       sync.Mutex
	dataPath string
	voice    string
	closed   bool
}

// NewSession initializes an engine session. dataPath points at the engine's
// data bundle; empty means the engine's installed default.
func NewSession(dataPath string) (*Session, error) {
	if dataPath != "" {
		if _, err := os.Stat(dataPath); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDataBundleNotFound, dataPath)
		}
	}
	if err := exec.Command("espeak-ng", "--version").Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotInitialize, err)
	}
	return &Session{dataPath: dataPath}, nil
}

// args prepends the data-bundle path option when one was configured.
func (s *Session) args(rest ...string) []string {
	if s.dataPath == "" {
		return rest
	}
	return append([]string{"--path=" + s.dataPath}, rest...)
}

// Voices returns the engine's advertised voice catalog. The returned
// strings are raw engine output; callers strip control markers.
func (s *Session) Voices(ctx context.Context) ([]language.VoiceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.listVoices(ctx)
}

func (s *Session) listVoices(ctx context.Context) ([]language.VoiceEntry, error) {
	out, err := exec.CommandContext(ctx, "espeak-ng", s.args("--voices")...).Output()
	if err != nil {
		return nil, fmt.Errorf("listing voices: %w", err)
	}
	return parseVoices(string(out)), nil
}

// SetVoice selects the voice used by subsequent Phonemize calls. The name
// must appear in the engine's catalog.
func (s *Session) SetVoice(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrVoiceNotFound)
	}
	if s.voice == name {
		return nil
	}
	entries, err := s.listVoices(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Identifier == name {
			s.voice = name
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrVoiceNotFound, name)
}

// Phonemize converts text into the engine's raw phoneme notation using the
// selected voice. The engine emits one chunk per clause; chunks arrive
// newline-separated and are returned as-is.
func (s *Session) Phonemize(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSessionClosed
	}
	if s.voice == "" {
		return "", ErrNoVoiceSelected
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", s.args("-q", "--ipa", "-v", s.voice)...)
	cmd.Stdin = strings.NewReader(text)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("phonemization failed: %w", err)
	}
	if strings.TrimSpace(string(out)) == "" {
		return "", ErrCouldNotPhonemize
	}
	return string(out), nil
}

// Voice returns the currently selected voice name, or "" if none.
func (s *Session) Voice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voice
}

// Close releases the session. It is idempotent and best-effort; calls on a
// closed session fail with ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
