package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CJK ranges + CJK punctuation + fullwidth forms:
// U+3000-303F CJK Symbols and Punctuation
// U+3400-4DBF CJK Extension A
// U+4E00-9FFF CJK Unified Ideographs
// U+F900-FAFF CJK Compatibility Ideographs
// U+FF00-FFEF Halfwidth and Fullwidth Forms
var reCJK = regexp.MustCompile(`[\x{3000}-\x{303F}\x{3400}-\x{4DBF}\x{4E00}-\x{9FFF}\x{F900}-\x{FAFF}\x{FF00}-\x{FFEF}]`)

var reWhitespace = regexp.MustCompile(`\s+`)

var symbolReplacer = strings.NewReplacer(
	"×", "x", // multiplication sign
	"–", "-", // en dash
	"—", "-", // em dash
)

// StripCJK removes CJK characters and punctuation, folds the remainder to
// NFKC (fullwidth -> halfwidth), applies symbol substitutions, and collapses
// whitespace. Empty input is returned unchanged. Idempotent.
func StripCJK(s string) string {
	if s == "" {
		return s
	}
	s = reCJK.ReplaceAllString(s, "")
	s = norm.NFKC.String(s)
	s = symbolReplacer.Replace(s)
	return FoldWhitespace(s)
}

// FoldWhitespace folds to NFKC, applies symbol substitutions, and collapses
// whitespace runs (newlines, tabs, multiple spaces) to single spaces.
// CJK characters are preserved.
func FoldWhitespace(s string) string {
	s = norm.NFKC.String(s)
	s = symbolReplacer.Replace(s)
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
