// Package subtitle strips subtitle-file noise from raw text before
// tokenization: sequence counters, timestamp lines, markup tags, and hard
// line wraps that split sentences across lines.
package subtitle

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	timestampRe = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2},\d{3}`)
	tagRe       = regexp.MustCompile(`<.*?>`)
)

// HasNoText reports whether a line carries no spoken text: it is empty, all
// digits (a subtitle sequence counter), a timestamp line, or contains no
// letters at all.
func HasNoText(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || isNumeric(line) {
		return true
	}
	if timestampRe.MatchString(line) {
		return true
	}
	return !strings.ContainsFunc(line, unicode.IsLetter)
}

// Clean returns the spoken text of a subtitle or script document. Lines
// without text are dropped, markup tags are removed, and a line continuing
// the previous one (first rune a lowercase letter or a comma) is joined to
// it so wrapped sentences count as one line.
func Clean(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if HasNoText(line) {
			continue
		}
		line = strings.TrimRight(tagRe.ReplaceAllString(line, ""), " \t\r")
		if line == "" {
			continue
		}
		if len(kept) > 0 && continuesPrevious(line) {
			kept[len(kept)-1] += " " + line
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func continuesPrevious(line string) bool {
	r := []rune(line)[0]
	return unicode.IsLetter(r) && unicode.IsLower(r) || r == ','
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
