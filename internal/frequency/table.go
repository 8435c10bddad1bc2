// Package frequency builds word frequency tables and ranks their entries.
package frequency

import (
	"iter"
	"sort"
	"unicode/utf8"
)

// Table maps words to occurrence counts. It remembers the order in which
// words were first seen so that equal counts rank deterministically.
type Table struct {
	counts    map[string]int
	firstSeen map[string]int
	total     int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
}

// Collect consumes a token sequence into a fresh table.
func Collect(tokens iter.Seq[string]) *Table {
	t := NewTable()
	for word := range tokens {
		t.Add(word)
	}
	return t
}

// Add records one occurrence of word.
func (t *Table) Add(word string) {
	if _, seen := t.counts[word]; !seen {
		t.firstSeen[word] = len(t.firstSeen)
	}
	t.counts[word]++
	t.total++
}

// Count returns the occurrences recorded for word.
func (t *Table) Count(word string) int { return t.counts[word] }

// Total returns the number of tokens consumed, which always equals the sum
// of all entry counts.
func (t *Table) Total() int { return t.total }

// Len returns the number of unique words.
func (t *Table) Len() int { return len(t.counts) }

// Entry is a word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Ranked filters and orders the table: it keeps entries whose word is at
// least minWordSize runes long and whose count is at least minAppearance,
// sorted by count descending with ties broken by first appearance. An empty
// result is valid and means nothing survived the thresholds.
func (t *Table) Ranked(minWordSize, minAppearance int) []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for word, count := range t.counts {
		if utf8.RuneCountInString(word) < minWordSize || count < minAppearance {
			continue
		}
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return t.firstSeen[entries[i].Word] < t.firstSeen[entries[j].Word]
	})
	return entries
}
