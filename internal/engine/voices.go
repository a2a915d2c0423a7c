package engine

import (
	"strings"

	"codeberg.org/snonux/phonemize/internal/language"
)

// parseVoices parses the fixed-column table printed by `espeak-ng --voices`:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 2  en-us           --/M      English (America)  gmw/en-US            (en 10)
//
// Column boundaries are taken from the header line, since voice names
// contain spaces and cannot be split on whitespace.
func parseVoices(output string) []language.VoiceEntry {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return nil
	}

	header := lines[0]
	langIdx := strings.Index(header, "Language")
	ageIdx := strings.Index(header, "Age/Gender")
	nameIdx := strings.Index(header, "VoiceName")
	fileIdx := strings.Index(header, "File")
	if langIdx < 0 || ageIdx < 0 || nameIdx < 0 || fileIdx < 0 {
		return nil
	}

	var entries []language.VoiceEntry
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lang := strings.TrimSpace(column(line, langIdx, ageIdx))
		name := strings.TrimSpace(column(line, nameIdx, fileIdx))
		if lang == "" || name == "" {
			continue
		}
		entries = append(entries, language.VoiceEntry{
			Languages:  lang,
			Identifier: name,
		})
	}
	return entries
}

// column slices [from, to) out of line, clamped to the line's length.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}
