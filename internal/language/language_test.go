package language

import "testing"

func TestCodeRoundTrip(t *testing.T) {
	for _, l := range All() {
		code := l.Code()
		if code == "" {
			t.Errorf("%v has empty code", l)
			continue
		}
		parsed, err := Parse(code)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", code, err)
			continue
		}
		if parsed != l {
			t.Errorf("Parse(%q) = %v, want %v", code, parsed, l)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    Language
		wantErr bool
	}{
		{
			name: "american english",
			code: "en-us",
			want: AmericanEnglish,
		},
		{
			name: "british english",
			code: "en-gb",
			want: BritishEnglish,
		},
		{
			name: "cantonese",
			code: "yue",
			want: Cantonese,
		},
		{
			name:    "empty code",
			code:    "",
			wantErr: true,
		},
		{
			name:    "unknown code",
			code:    "de",
			wantErr: true,
		},
		{
			name:    "case sensitive",
			code:    "EN-US",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestNoneIsNotListed(t *testing.T) {
	for _, l := range All() {
		if l == None {
			t.Error("All() must not contain the None sentinel")
		}
	}
	if None.Code() != "" {
		t.Errorf("None.Code() = %q, want \"\"", None.Code())
	}
}
