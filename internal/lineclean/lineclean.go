// Package lineclean classifies raw OCR receipt lines, repairs in-line OCR
// noise, and joins wrapped continuation lines into one line per item.
package lineclean

import (
	"regexp"
	"strings"

	"github.com/kaiyo-foods/receiptlines/internal/rules"
)

var (
	// 32:15 -> 32.15; true colons never appear between digits in item-price context
	reColonDecimal = regexp.MustCompile(`(\d+):(\d{1,2})\b`)

	// short garbage tokens (PAS, cP, aE, pA, aS) wedged between a decimal
	// amount and the following quantity or unit marker
	reGarbageBeforeUnit = regexp.MustCompile(`(?i)(\d+[.,]\d{1,2})\s+(?:(?:PAS|cP|aE|pA|aS)\s+)+(\d+\s+[UC]|U|C)`)
	reGarbageBeforeQty  = regexp.MustCompile(`(?i)(\d+[.,]\d{1,2})\s+(?:(?:PAS|cP|aE|pA|aS)\s+)+(\d+)`)

	rePipeLeading  = regexp.MustCompile(`^\|\s*`)
	rePipeTrailing = regexp.MustCompile(`\s*\|\s*$`)
	rePipeInterior = regexp.MustCompile(`\s+\|\s+`)

	// trailing 1-3 letter junk after an amount (qT, T, q), unless protected
	reTrailingJunk = regexp.MustCompile(`(?i)(\d+[.,]\d{1,2})\s*([a-z]{1,3})\s*$`)
	// protected unit/tax markers: "U (T)" and "C (T)" in any spacing/paren form
	reProtectedMarker = regexp.MustCompile(`(?i)\d+[.,]\d{1,2}\s+[UC]\s*\(?T\)?\s*$`)

	reSpaces = regexp.MustCompile(`\s+`)
)

// RepairColonDecimals rewrites misread decimal points: "32:15" -> "32.15".
// A colon not sitting between digits is left untouched.
func RepairColonDecimals(line string) string {
	return reColonDecimal.ReplaceAllString(line, "$1.$2")
}

// DropGarbageTokens removes the closed set of short OCR garbage tokens that
// appear between a decimal amount and a following quantity/unit marker,
// e.g. "32.15 cP 1 U (T)" -> "32.15 1 U (T)".
func DropGarbageTokens(line string) string {
	line = reGarbageBeforeUnit.ReplaceAllString(line, "$1 $2")
	return reGarbageBeforeQty.ReplaceAllString(line, "$1 $2")
}

// StripPipes removes stray vertical bars at line start and end and collapses
// interior " | " runs to a single space.
func StripPipes(line string) string {
	line = rePipeLeading.ReplaceAllString(line, "")
	line = rePipeTrailing.ReplaceAllString(line, "")
	return rePipeInterior.ReplaceAllString(line, " ")
}

// TrimTrailingJunk strips a trailing 1-3 letter token after a decimal
// amount. The protected "U (T)" / "C (T)" markers are authoritative: when
// one matches, no trailing removal is attempted at all.
func TrimTrailingJunk(line string) string {
	if reProtectedMarker.MatchString(line) {
		return line
	}
	return reTrailingJunk.ReplaceAllString(line, "$1")
}

// CollapseWhitespace folds whitespace runs to single spaces and trims.
func CollapseWhitespace(line string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(line, " "))
}

// cleanSteps is the fixed repair order; each step is a total function.
var cleanSteps = []func(string) string{
	RepairColonDecimals,
	DropGarbageTokens,
	StripPipes,
	TrimTrailingJunk,
	CollapseWhitespace,
}

// Cleaner turns the raw OCR lines of one receipt into cleaned, joined item
// candidate lines for a given vendor rule set.
type Cleaner struct {
	rules *rules.RuleSet
}

func NewCleaner(rs *rules.RuleSet) *Cleaner {
	return &Cleaner{rules: rs}
}

// CleanLine applies the per-line repair steps in order.
func (c *Cleaner) CleanLine(line string) string {
	for _, step := range cleanSteps {
		line = step(line)
	}
	return line
}

// CleanLines filters non-item lines, repairs the survivors, and joins
// continuation fragments. A line cleaned down to nothing is treated as a
// discarded fragment, not an error. No output line is empty.
func (c *Cleaner) CleanLines(lines []string) []string {
	var j Joiner
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if c.rules.IsNonItem(line) {
			continue
		}
		cleaned := c.CleanLine(line)
		if cleaned == "" {
			continue
		}
		j.Feed(cleaned)
	}
	return j.Finish()
}
