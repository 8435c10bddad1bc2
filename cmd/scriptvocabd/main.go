// scriptvocabd serves the vocabulary extractor over HTTP.
//
// It exposes a single POST /translate endpoint that accepts subtitle or
// script text (as a form field or an uploaded file) and responds with the
// ranked, translated vocabulary as JSON. The same extraction pipeline that
// backs the scriptvocab command line tool runs behind the endpoint.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/scriptvocab/internal"
	"codeberg.org/snonux/scriptvocab/internal/server"
	"codeberg.org/snonux/scriptvocab/internal/translation"
)

var (
	cfgFile    string
	listenAddr string
	engineName string
	targetLang string
	jobs       int
)

var rootCmd = &cobra.Command{
	Use:   "scriptvocabd",
	Short: "HTTP server for subtitle vocabulary extraction",
	Long: `scriptvocabd runs an HTTP server that turns subtitle or script text
into a ranked vocabulary list with translations.

Clients POST form data to /translate with a "text" field or an uploaded
"file", plus optional subs_language, target_language, min_word_size and
min_appearance fields. The response is a JSON array ordered from the most
frequent word to the least frequent.

Examples:
  # Listen on the default address :8080
  scriptvocabd

  # Listen on port 9000 and translate with OpenAI
  scriptvocabd --listen :9000 --engine openai

  # Query the running server
  curl -X POST -F text="Здравей свят" -F target_language=en \
      http://localhost:8080/translate`,
	Args:    cobra.NoArgs,
	RunE:    runCommand,
	Version: internal.Version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scriptvocabd.yaml)")
	rootCmd.Flags().StringVarP(&listenAddr, "listen", "l", ":8080", "address to listen on")
	rootCmd.Flags().StringVar(&engineName, "engine", "google", "translation engine (google, openai, gemini)")
	rootCmd.Flags().StringVarP(&targetLang, "target_language", "t", "en", "target language when a request names none")
	rootCmd.Flags().IntVar(&jobs, "jobs", 1, "number of parallel translation requests per extraction")

	viper.BindPFlag("server.listen", rootCmd.Flags().Lookup("listen"))
	viper.BindPFlag("translate.engine", rootCmd.Flags().Lookup("engine"))
	viper.BindPFlag("translate.target", rootCmd.Flags().Lookup("target_language"))
	viper.BindPFlag("translate.jobs", rootCmd.Flags().Lookup("jobs"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".scriptvocabd")
	}

	viper.SetEnvPrefix("SCRIPTVOCABD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	// Use config file values when flags keep their defaults
	if listenAddr == ":8080" && viper.IsSet("server.listen") {
		listenAddr = viper.GetString("server.listen")
	}
	if engineName == "google" && viper.IsSet("translate.engine") {
		engineName = viper.GetString("translate.engine")
	}
	if targetLang == "en" && viper.IsSet("translate.target") {
		targetLang = viper.GetString("translate.target")
	}
	if jobs == 1 && viper.IsSet("translate.jobs") {
		jobs = viper.GetInt("translate.jobs")
	}

	engineConfig := translation.DefaultEngineConfig()
	engineConfig.Engine = engineName
	engineConfig.OpenAIKey = getOpenAIKey()
	engineConfig.GeminiKey = getGeminiKey()

	engine, err := translation.NewEngine(engineConfig)
	if err != nil {
		return err
	}
	if err := engine.IsAvailable(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: translation engine %s not available: %v\n", engine.Name(), err)
		fmt.Fprintf(os.Stderr, "Untranslated words will keep their original form.\n")
	}

	// Stop serving on SIGINT or SIGTERM so in-flight requests can finish
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(engine, jobs, targetLang)
	return srv.Run(ctx, listenAddr)
}

// getOpenAIKey retrieves the OpenAI API key from environment or config
func getOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.openai_key")
}

// getGeminiKey retrieves the Gemini API key from environment or config
func getGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.gemini_key")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
