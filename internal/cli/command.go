package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/scriptvocab/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scriptvocab [path]",
		Short: "Vocabulary list generator for subtitles and scripts",
		Long: `scriptvocab extracts the vocabulary of subtitle and script files into a
translated word frequency list, most frequent words first.

Point it at a single file or at a directory of subtitle files. Words are
counted across the cleaned text, filtered by length and frequency, and
translated in chunks through the configured engine. Words the engine
cannot translate keep their original form.

Examples:
  scriptvocab episode.srt              # Vocabulary of one file into output.txt
  scriptvocab -i srt -m 2 season1/     # All .srt files of a directory
  scriptvocab -s bg -t de episode.txt  # Bulgarian subtitles, German word list`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.scriptvocab.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.SubsLanguage, "subs_language", "s", flags.SubsLanguage, "Language of the input text ('auto' to detect)")
	cmd.Flags().StringVarP(&flags.TargetLanguage, "target_language", "t", flags.TargetLanguage, "Language to translate the vocabulary into")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output file name")
	cmd.Flags().StringVarP(&flags.InputExtension, "input_extension", "i", flags.InputExtension, "Extension of the input files when processing a directory")
	cmd.Flags().IntVarP(&flags.MinWordSize, "min_word_size", "w", flags.MinWordSize, "Minimum length of words in the list")
	cmd.Flags().IntVarP(&flags.MinAppearance, "min_appearance", "m", flags.MinAppearance, "Minimum number of appearances of a word")
	cmd.Flags().StringVarP(&flags.Encoding, "encoding", "e", flags.Encoding, "Text encoding of input and output files")

	// Translation flags
	cmd.Flags().StringVar(&flags.Engine, "engine", flags.Engine, "Translation engine: google, openai or gemini")
	cmd.Flags().IntVar(&flags.Jobs, "jobs", flags.Jobs, "Number of parallel translation requests")

	// Output and discovery flags
	cmd.Flags().BoolVar(&flags.JSONOutput, "json", false, "Write the vocabulary as JSON instead of plain text")
	cmd.Flags().BoolVar(&flags.ListEngines, "list-engines", false, "List translation engines and their availability")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.source", cmd.Flags().Lookup("subs_language"))
	viper.BindPFlag("translate.target", cmd.Flags().Lookup("target_language"))
	viper.BindPFlag("translate.engine", cmd.Flags().Lookup("engine"))
	viper.BindPFlag("translate.jobs", cmd.Flags().Lookup("jobs"))
	viper.BindPFlag("input.extension", cmd.Flags().Lookup("input_extension"))
	viper.BindPFlag("input.encoding", cmd.Flags().Lookup("encoding"))
	viper.BindPFlag("filter.min_word_size", cmd.Flags().Lookup("min_word_size"))
	viper.BindPFlag("filter.min_appearance", cmd.Flags().Lookup("min_appearance"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.json", cmd.Flags().Lookup("json"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// Load API keys from a .env file when present
	godotenv.Load()

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

		// Search config in home directory with name ".scriptvocab" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".scriptvocab")
	}

	// Environment variables
	viper.SetEnvPrefix("SCRIPTVOCAB")
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
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.gemini_key")
}
