package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/phonemize/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonemize [text]",
		Short: "Text-to-phoneme converter for speech synthesis",
		Long: `phonemize converts text into the canonical phoneme alphabet consumed
by neural TTS models.

It drives a local espeak-ng engine, normalizes its raw phoneme output into
the model vocabulary, and can fall back to an OpenAI transcription when the
engine is unavailable.

Examples:
  phonemize "hello world"                   # American English phonemes
  phonemize -l en-gb "hello world"          # British English phonemes
  phonemize --batch lines.txt               # Process one line at a time
  echo "hello" | phonemize                  # Read text from stdin
  phonemize --list-languages                # Show supported languages`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Set default cache location under the user's state directory
	home, _ := os.UserHomeDir()
	defaultCacheFile := filepath.Join(home, ".local", "state", "phonemize", "cache.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phonemize.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Language code (en-us, en-gb, ja, yue, fr-fr, hi, it, es, pt-br)")
	cmd.Flags().StringVar(&flags.DataPath, "data-path", "", "espeak-ng data bundle directory (default: installed data)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process lines from file (one input per line)")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported languages and their engine voices")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Phonemizer provider (espeak or openai)")
	cmd.Flags().BoolVar(&flags.Fallback, "fallback", false, "Fall back to OpenAI when the espeak-ng engine fails")
	cmd.Flags().StringVar(&flags.CacheFile, "cache-file", defaultCacheFile, "Phoneme cache database")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the phoneme cache")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for IPA transcription")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("phonemizer.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("phonemizer.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("phonemizer.fallback", cmd.Flags().Lookup("fallback"))
	viper.BindPFlag("engine.data_path", cmd.Flags().Lookup("data-path"))
	viper.BindPFlag("cache.file", cmd.Flags().Lookup("cache-file"))
	viper.BindPFlag("cache.disabled", cmd.Flags().Lookup("no-cache"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".phonemize" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phonemize")
	}

	// Environment variables
	viper.SetEnvPrefix("PHONEMIZE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}
