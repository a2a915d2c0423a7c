package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	Language      string
	DataPath      string
	BatchFile     string
	ListLanguages bool

	// Provider flags
	Provider string
	Fallback bool

	// Cache flags
	CacheFile string
	NoCache   bool

	// OpenAI flags
	OpenAIModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:    "en-us",
		Provider:    "espeak",
		OpenAIModel: "gpt-4o",
	}
}
