// Package ngram implements the text core: normalization of raw text into a
// canonical token stream, sliding-window trigram counting, and ranking of
// the resulting frequency table.
package ngram

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts raw text into a canonical space-joined token stream.
// The result is lowercase, NFC-composed, and contains only unicode letters,
// marks, apostrophes and hyphens separated by single spaces. Apostrophes and
// hyphens survive inside words ("isn't", "state-of-the-art"); tokens made of
// punctuation alone are dropped. Normalize is idempotent on its own output.
func Normalize(text string) string {
	text = strings.ToLower(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsMark(r) || r == '\'' || r == '-' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(' ') // newlines and all other punctuation become separators
	}

	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, tok := range tokens {
		if hasWordRune(tok) {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// hasWordRune reports whether the token contains at least one letter or mark,
// i.e. it is a word rather than a standalone apostrophe or hyphen run.
func hasWordRune(tok string) bool {
	return strings.IndexFunc(tok, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsMark(r)
	}) >= 0
}
