package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/scriptvocab/internal/cli"
	"codeberg.org/snonux/scriptvocab/internal/frequency"
	"codeberg.org/snonux/scriptvocab/internal/output"
	"codeberg.org/snonux/scriptvocab/internal/subtitle"
	"codeberg.org/snonux/scriptvocab/internal/textenc"
	"codeberg.org/snonux/scriptvocab/internal/tokenizer"
	"codeberg.org/snonux/scriptvocab/internal/translation"
)

// Processor runs the vocabulary pipeline over input files
type Processor struct {
	flags   *cli.Flags
	adapter *translation.Adapter
}

// NewProcessor creates a processor with the engine selected by the flags
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	engine, err := translation.NewEngine(EngineConfigFromFlags(flags))
	if err != nil {
		return nil, err
	}

	if err := engine.IsAvailable(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: translation engine %s not available: %v\n", engine.Name(), err)
		fmt.Fprintf(os.Stderr, "Untranslated words will keep their original form.\n")
	}

	return NewProcessorWithEngine(flags, engine), nil
}

// NewProcessorWithEngine creates a processor around an existing engine
func NewProcessorWithEngine(flags *cli.Flags, engine translation.Engine) *Processor {
	adapter := translation.NewAdapter(engine, translation.Config{
		SourceLang: flags.SubsLanguage,
		TargetLang: flags.TargetLanguage,
		Attempts:   2,
		RetryWait:  2 * time.Second,
		ChunkDelay: 2 * time.Second,
		Jobs:       flags.Jobs,
	})

	return &Processor{
		flags:   flags,
		adapter: adapter,
	}
}

// EngineConfigFromFlags builds the engine configuration from the flags and
// the API keys found in the environment or config file.
func EngineConfigFromFlags(flags *cli.Flags) *translation.EngineConfig {
	cfg := translation.DefaultEngineConfig()
	cfg.Engine = flags.Engine
	cfg.OpenAIKey = cli.GetOpenAIKey()
	cfg.GeminiKey = cli.GetGeminiKey()
	return cfg
}

// Run processes path, which is either a single input file or a directory of
// input files.
func (p *Processor) Run(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access input path: %w", err)
	}

	if !info.IsDir() {
		fmt.Printf("Processing %s\n", filepath.Base(path))
		return p.processFile(ctx, path, p.flags.Output)
	}
	return p.processDirectory(ctx, path)
}

// processDirectory processes every matching file in dir independently. A
// file that fails does not stop the others.
func (p *Processor) processDirectory(ctx context.Context, dir string) error {
	files, err := p.findInputFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .%s files found in %s", strings.TrimPrefix(p.flags.InputExtension, "."), dir)
	}

	processedCount := 0
	errorCount := 0

	for i, file := range files {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(files), filepath.Base(file))

		if err := p.processFile(ctx, file, p.outputPathFor(file)); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", file, err)
			errorCount++
			// Continue with next file
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Vocabulary Summary ===\n")
	fmt.Printf("Input files: %d\n", len(files))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("==========================\n")

	if errorCount == len(files) {
		return fmt.Errorf("all %d input files failed", errorCount)
	}
	return nil
}

// processFile runs the pipeline for one input file: decode, clean, count,
// translate, write.
func (p *Processor) processFile(ctx context.Context, path, outPath string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text, err := textenc.Decode(raw, p.flags.Encoding)
	if err != nil {
		return err
	}

	table := frequency.Collect(tokenizer.Tokens(subtitle.Clean(text)))

	entries := table.Ranked(p.flags.MinWordSize, p.flags.MinAppearance)
	fmt.Printf("  Counted %d words (%d distinct), kept %d\n", table.Total(), table.Len(), len(entries))

	words := make([]string, len(entries))
	for i, entry := range entries {
		words[i] = entry.Word
	}

	if len(words) > 0 {
		fmt.Printf("  Translating %d words (%s to %s)...\n", len(words), p.flags.SubsLanguage, p.flags.TargetLanguage)
	}
	translations, err := p.adapter.TranslateWords(ctx, words)
	if err != nil {
		return err
	}

	outEntries := make([]output.Entry, len(entries))
	for i, entry := range entries {
		outEntries[i] = output.Entry{
			Word:        entry.Word,
			Translation: translations[entry.Word],
			Count:       entry.Count,
		}
	}

	if p.flags.JSONOutput {
		err = output.WriteJSONFile(outPath, outEntries)
	} else {
		err = output.WriteFile(outPath, outEntries, p.flags.Encoding)
	}
	if err != nil {
		return err
	}

	fmt.Printf("  Wrote %s\n", outPath)
	return nil
}

// findInputFiles lists the files in dir carrying the configured input
// extension. os.ReadDir returns them sorted by name.
func (p *Processor) findInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	ext := "." + strings.TrimPrefix(p.flags.InputExtension, ".")
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if filepath.Ext(entry.Name()) == ext {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// outputPathFor derives the per-file output path used in directory mode:
// season1/ep01.srt with -o vocab.txt becomes ep01_vocab.txt next to the
// configured output file.
func (p *Processor) outputPathFor(inputFile string) string {
	stem := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	base := filepath.Base(p.flags.Output)
	return filepath.Join(filepath.Dir(p.flags.Output), stem+"_"+base)
}
