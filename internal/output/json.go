package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONEntry mirrors Entry in the wire format served by the HTTP API.
type JSONEntry struct {
	Occurrences    int    `json:"occurrences"`
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
}

// JSONEntries converts entries to their wire form. The result is never nil,
// so an empty vocabulary serializes as [] rather than null.
func JSONEntries(entries []Entry) []JSONEntry {
	out := make([]JSONEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, JSONEntry{
			Occurrences:    entry.Count,
			OriginalText:   entry.Word,
			TranslatedText: entry.Translation,
		})
	}
	return out
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	data, err := json.MarshalIndent(JSONEntries(entries), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// WriteJSONFile writes entries as JSON to path. JSON output is always
// UTF-8, whatever text encoding is configured for plain output.
func WriteJSONFile(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := WriteJSON(file, entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
