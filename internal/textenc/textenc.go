// Package textenc resolves user-supplied character encoding names and
// converts file content to and from them. Input decoding is strict so that
// a file that does not match the configured encoding is reported instead of
// silently mangled.
package textenc

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeError reports bytes that are not valid in the configured encoding.
type DecodeError struct {
	Encoding string
	Offset   int
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode as %s: %v", e.Encoding, e.Err)
	}
	return fmt.Sprintf("invalid %s byte sequence at offset %d", e.Encoding, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Lookup resolves an encoding name as users write it on the command line.
// Common spellings are matched directly, everything else goes through the
// IANA registry.
func Lookup(name string) (encoding.Encoding, error) {
	switch normalizeName(name) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "cp1252", "windows-1252", "windows1252":
		return charmap.Windows1252, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Decode converts raw file bytes into a string using the named encoding.
// Invalid input yields a *DecodeError.
func Decode(data []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return "", &DecodeError{Encoding: displayName(name), Offset: invalidOffset(data)}
		}
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Encoding: displayName(name), Err: err}
	}
	return string(decoded), nil
}

// NewWriter wraps w so that written text is encoded with the named encoding.
// Runes the target encoding cannot represent are substituted rather than
// failing the whole file. The caller must Close the writer to flush.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	if enc == unicode.UTF8 {
		return nopWriteCloser{w}, nil
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func displayName(name string) string {
	if normalizeName(name) == "" {
		return "utf-8"
	}
	return normalizeName(name)
}

// invalidOffset locates the first byte where UTF-8 decoding breaks down.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return 0
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
