package engine

import (
	"fmt"
	"strings"
	"testing"
)

const voicesHeader = "Pty Language       Age/Gender VoiceName          File                 Other Languages"

// voiceLine formats one catalog row with the same column boundaries as the
// header above.
func voiceLine(lang, gender, name, file string) string {
	return fmt.Sprintf(" 5  %-15s%-11s%-19s%-21s", lang, gender, name, file)
}

func TestParseVoices(t *testing.T) {
	output := strings.Join([]string{
		voicesHeader,
		voiceLine("af", "--/M", "Afrikaans", "gmw/af"),
		voiceLine("en-us", "--/M", "English (America)", "gmw/en-US"),
		voiceLine("en-gb", "--/M", "English (GB)", "gmw/en"),
		"",
	}, "\n")

	entries := parseVoices(output)
	if len(entries) != 3 {
		t.Fatalf("parseVoices() returned %d entries, want 3", len(entries))
	}

	tests := []struct {
		lang string
		name string
	}{
		{"af", "Afrikaans"},
		{"en-us", "English (America)"},
		{"en-gb", "English (GB)"},
	}
	for i, tt := range tests {
		if entries[i].Languages != tt.lang {
			t.Errorf("entry %d language = %q, want %q", i, entries[i].Languages, tt.lang)
		}
		if entries[i].Identifier != tt.name {
			t.Errorf("entry %d identifier = %q, want %q", i, entries[i].Identifier, tt.name)
		}
	}
}

func TestParseVoicesEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   int
	}{
		{
			name:   "empty output",
			output: "",
			want:   0,
		},
		{
			name:   "header only",
			output: voicesHeader + "\n",
			want:   0,
		},
		{
			name:   "unexpected header",
			output: "nothing useful here\nstill nothing\n",
			want:   0,
		},
		{
			name:   "blank lines skipped",
			output: voicesHeader + "\n\n" + voiceLine("hi", "--/M", "Hindi", "inc/hi") + "\n\n",
			want:   1,
		},
		{
			name:   "short line skipped",
			output: voicesHeader + "\n 5  af\n",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := parseVoices(tt.output)
			if len(entries) != tt.want {
				t.Errorf("parseVoices() returned %d entries, want %d", len(entries), tt.want)
			}
		})
	}
}
