// Package stitch reattaches stray tail fragments to their parent items
// after parsing. A price column in the scan can split a description like
// "Swiss Roll Cake" into one parsed item ("Swiss Roll") and one stray
// record ("Cake"); the stitcher merges the tail back and drops it.
package stitch

import (
	"regexp"
	"strings"

	"github.com/kaiyo-foods/receiptlines/constants"
	"github.com/kaiyo-foods/receiptlines/internal/entity"
	"github.com/kaiyo-foods/receiptlines/internal/normalize"
)

var (
	// stray tail tokens: "Cake" and its CJK equivalents (cake / mille crepe / swiss roll)
	reTailWord = regexp.MustCompile(`(?i)^(?:Cake|蛋糕|瑞士卷|千层|千層)\s*$`)

	rePriceToken   = regexp.MustCompile(`\$\s*\d`)
	reHeaderOrDate = regexp.MustCompile(`(?i)(?:Qty\s+Item|Invoice|Payment|^\d{2}\.\d{2}\.\d{4})`)
	reTrailingDash = regexp.MustCompile(`\s*[-–—]\s*$`)
)

// CleanDescription scrubs a parsed description: blanked when it carries a
// column-header or date marker, truncated at the first inline dollar
// amount, whitespace folded, trailing dashes trimmed.
func CleanDescription(desc string) string {
	if desc == "" {
		return ""
	}
	if reHeaderOrDate.MatchString(desc) {
		return ""
	}
	if rePriceToken.MatchString(desc) {
		desc, _, _ = strings.Cut(desc, "$")
	}
	desc = normalize.FoldWhitespace(desc)
	return reTrailingDash.ReplaceAllString(desc, "")
}

// Tails reports whether tail stitching applies to the vendor at all.
func Tails(vendor constants.Vendor) bool {
	return vendor.IsMousse()
}

// StitchTails merges stray tail records into the preceding kept record and
// returns the repaired sequence. Receipts outside the mousse vendor family
// are returned unchanged. A stray tail with no predecessor is kept as-is:
// there is nothing to attach it to.
func StitchTails(items []*entity.ItemRecord, vendor constants.Vendor) []*entity.ItemRecord {
	if !Tails(vendor) {
		return items
	}

	out := make([]*entity.ItemRecord, 0, len(items))
	for _, it := range items {
		desc := CleanDescription(bestDescription(it))
		if len(out) > 0 && isStrayTail(it) {
			mergeTail(out[len(out)-1], it)
			continue // drop the tail record
		}
		if desc != "" {
			it.DisplayName = desc
		}
		out = append(out, it)
	}
	return out
}

// isStrayTail checks the best-available name field against the tail tokens.
func isStrayTail(it *entity.ItemRecord) bool {
	name := strings.TrimSpace(it.BestName())
	if name == "" {
		return false
	}
	return reTailWord.MatchString(name)
}

func bestDescription(it *entity.ItemRecord) string {
	if it.Description != "" {
		return it.Description
	}
	if it.DisplayName != "" {
		return it.DisplayName
	}
	return it.ProductName
}

// mergeTail appends the tail's name fields onto prev, each independently,
// and newline-joins the raw source lines.
func mergeTail(prev, tail *entity.ItemRecord) {
	join := func(base, add string) string {
		if base == "" || add == "" {
			return base
		}
		return normalize.FoldWhitespace(base + " " + add)
	}
	addFor := func(field string) string {
		if field != "" {
			return field
		}
		return tail.ProductName
	}
	prev.DisplayName = join(prev.DisplayName, addFor(tail.DisplayName))
	prev.CanonicalName = join(prev.CanonicalName, addFor(tail.CanonicalName))
	prev.ProductName = join(prev.ProductName, tail.ProductName)

	if prev.RawLine != "" && tail.RawLine != "" {
		prev.RawLine = prev.RawLine + "\n" + tail.RawLine
	}
}
