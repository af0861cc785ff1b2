// Package normalize produces canonical, comparison-ready forms of episode
// titles. The web scrape and the RSS feed disagree on which apostrophe and
// dash glyphs they emit, so all comparisons between the two sources must
// happen on normalized text, never on the raw titles.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctuation maps the glyph variants seen across both sources to a single
// representative each. NFKC already folds some of these (the ellipsis, for
// example) but not the typographic quotes or dashes.
var punctuation = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"–", "-", // en dash
	"—", "-", // em dash
	"‒", "-", // figure dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
	"…", "...", // horizontal ellipsis
)

// Title returns the canonical comparable form of an episode title: NFKC
// normalized, punctuation variants folded, lowercased, and trimmed. The
// function is pure and idempotent.
func Title(raw string) string {
	s := norm.NFKC.String(raw)
	s = punctuation.Replace(s)
	return strings.ToLower(strings.TrimSpace(s))
}

// Apostrophes rewrites ASCII apostrophes to the typographic form. Stored
// titles use the typographic glyph, so search input typed with a straight
// quote must be folded before substring matching.
func Apostrophes(s string) string {
	return strings.ReplaceAll(s, "'", "’")
}
