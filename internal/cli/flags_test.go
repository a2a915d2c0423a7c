package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Language", flags.Language, "en-us"},
		{"Provider", flags.Provider, "espeak"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o"},
		{"DataPath", flags.DataPath, ""},
		{"BatchFile", flags.BatchFile, ""},
		{"CacheFile", flags.CacheFile, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"ListLanguages", flags.ListLanguages},
		{"Fallback", flags.Fallback},
		{"NoCache", flags.NoCache},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = true, want false", tt.name)
			}
		})
	}
}
