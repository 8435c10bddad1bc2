// Package output writes vocabulary reports as plain text tables or JSON.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/scriptvocab/internal/textenc"
)

// Entry is one vocabulary line: a word, its translation, and how often the
// word appeared in the input.
type Entry struct {
	Word        string // the word in its source language, lowercased
	Translation string // translated word, or the word itself when untranslated
	Count       int    // number of appearances in the input
}

// Write writes entries as a plain text table. Nothing is written when there
// are no entries, so an empty vocabulary produces empty output rather than
// a lone header.
func Write(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "Count, Word, Translation"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(bw, "%d, %s, %s\n", entry.Count, entry.Word, entry.Translation); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile writes entries to path in the named text encoding. The file is
// created even when there are no entries.
func WriteFile(path string, entries []Entry, encodingName string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encWriter, err := textenc.NewWriter(file, encodingName)
	if err != nil {
		file.Close()
		return err
	}

	if err := Write(encWriter, entries); err != nil {
		encWriter.Close()
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Closing the encoder flushes any pending transformed bytes.
	if err := encWriter.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
