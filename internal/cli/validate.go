package cli

import (
	"fmt"

	"golang.org/x/text/language"

	"codeberg.org/snonux/scriptvocab/internal/textenc"
	"codeberg.org/snonux/scriptvocab/internal/translation"
)

// Validate checks flag values beyond what flag parsing itself enforces.
func Validate(flags *Flags) error {
	if _, err := textenc.Lookup(flags.Encoding); err != nil {
		return err
	}

	if flags.SubsLanguage != "auto" {
		if _, err := language.Parse(flags.SubsLanguage); err != nil {
			return fmt.Errorf("invalid subtitle language %q: %w", flags.SubsLanguage, err)
		}
	}
	if _, err := language.Parse(flags.TargetLanguage); err != nil {
		return fmt.Errorf("invalid target language %q: %w", flags.TargetLanguage, err)
	}

	known := false
	for _, name := range translation.EngineNames() {
		if flags.Engine == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown translation engine: %s", flags.Engine)
	}

	if flags.MinWordSize < 1 {
		return fmt.Errorf("min_word_size must be at least 1, got %d", flags.MinWordSize)
	}
	if flags.MinAppearance < 1 {
		return fmt.Errorf("min_appearance must be at least 1, got %d", flags.MinAppearance)
	}
	if flags.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", flags.Jobs)
	}
	if flags.Output == "" {
		return fmt.Errorf("output file name must not be empty")
	}

	return nil
}
