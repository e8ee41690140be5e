package ngram

import (
	"sort"
	"strings"
)

// windowSize is the number of consecutive tokens forming one sequence
const windowSize = 3

// Entry is a single ranked sequence with its occurrence count
type Entry struct {
	Trigram string
	Count   int
}

// Count slides a three-token window over normalized text and returns the
// frequency table of every window. Windows overlap, advancing one token per
// step. Text with fewer than three tokens yields an empty table.
func Count(normalized string) map[string]int {
	counts := make(map[string]int)
	if normalized == "" {
		return counts
	}
	tokens := strings.Split(normalized, " ")
	for i := 0; i+windowSize <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+windowSize], " ")]++
	}
	return counts
}

// Rank converts a frequency table into a list ordered by count descending.
// Equal counts are ordered lexicographically by the trigram text, so repeated
// runs over the same table produce identical output.
func Rank(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for trigram, count := range counts {
		entries = append(entries, Entry{Trigram: trigram, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Trigram < entries[j].Trigram
	})
	return entries
}
