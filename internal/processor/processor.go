package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/phonemize/internal/batch"
	"codeberg.org/snonux/phonemize/internal/cache"
	"codeberg.org/snonux/phonemize/internal/cli"
	"codeberg.org/snonux/phonemize/internal/language"
	"codeberg.org/snonux/phonemize/internal/phonemizer"
)

// Processor handles the main phonemization logic
type Processor struct {
	flags    *cli.Flags
	provider phonemizer.Provider
	base     phonemizer.Provider // provider before cache wrapping; owns the engine
	store    *cache.Store
	out      io.Writer
}

// NewProcessor creates a new processor from parsed CLI flags
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		out:   os.Stdout,
	}
}

// setup builds the provider chain: configured provider, optionally wrapped
// with the sqlite cache. Registry validation happens inside the espeak
// provider constructor, so a broken engine install fails here, not later.
func (p *Processor) setup() error {
	config := &phonemizer.Config{
		Provider:         p.flags.Provider,
		DataPath:         p.flags.DataPath,
		OpenAIKey:        cli.GetOpenAIKey(),
		OpenAIModel:      p.flags.OpenAIModel,
		FallbackToOpenAI: p.flags.Fallback,
	}

	provider, err := phonemizer.NewProvider(config)
	if err != nil {
		return err
	}
	p.base = provider
	p.provider = provider

	if !p.flags.NoCache && p.flags.CacheFile != "" {
		store, err := cache.Open(p.flags.CacheFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: phoneme cache disabled: %v\n", err)
		} else {
			p.store = store
			p.provider = phonemizer.NewCachingProvider(provider, store)
		}
	}

	return nil
}

// close releases the provider chain and the cache store.
func (p *Processor) close() {
	if p.store != nil {
		p.store.Close()
	}
	if c, ok := p.base.(io.Closer); ok {
		c.Close()
	}
}

// Run executes the requested mode: list-languages, batch file, positional
// text, or stdin.
func (p *Processor) Run(args []string) error {
	if err := p.setup(); err != nil {
		return err
	}
	defer p.close()

	if p.flags.ListLanguages {
		return p.listLanguages()
	}

	lang, err := language.Parse(p.flags.Language)
	if err != nil {
		return err
	}

	inputs, err := p.gatherInputs(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, text := range inputs {
		result, err := p.provider.Phonemize(ctx, text, lang)
		if err != nil {
			return fmt.Errorf("phonemizing %q: %w", text, err)
		}
		fmt.Fprintln(p.out, result)
	}
	return nil
}

// gatherInputs resolves the input source: batch file, positional arguments
// joined into one text, or stdin lines.
func (p *Processor) gatherInputs(args []string) ([]string, error) {
	if p.flags.BatchFile != "" {
		return batch.ReadBatchFile(p.flags.BatchFile)
	}
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// listLanguages prints the supported language set. When the espeak provider
// is active, each language is shown with its validated engine voice.
func (p *Processor) listLanguages() error {
	fmt.Fprintln(p.out, "Supported languages:")

	var registry *language.Registry
	base := p.base
	if fb, ok := base.(*phonemizer.ProviderWithFallback); ok {
		base = fb.Primary()
	}
	if ep, ok := base.(*phonemizer.ESpeakProvider); ok {
		registry = ep.Registry()
	}

	for _, l := range language.All() {
		if registry != nil {
			voice, err := registry.VoiceName(l)
			if err != nil {
				voice = "(unavailable)"
			}
			fmt.Fprintf(p.out, "  %-7s %-22s voice: %s\n", l.Code(), l, voice)
		} else {
			fmt.Fprintf(p.out, "  %-7s %s\n", l.Code(), l)
		}
	}
	return nil
}
