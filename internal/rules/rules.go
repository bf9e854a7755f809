// Package rules holds the per-vendor non-item line rule sets that gate the
// line classifier. Rule sets are compiled at load time and read-only after.
package rules

import (
	"fmt"
	"regexp"

	"github.com/kaiyo-foods/receiptlines/constants"
)

// RuleSet is the ordered list of non-item patterns for one vendor family.
// Matching is first-match; the rules are near-exclusive by construction so
// order does not otherwise affect the outcome.
type RuleSet struct {
	Vendor  constants.Vendor
	nonItem []*regexp.Regexp
}

// IsNonItem reports whether the line is receipt metadata (totals, tax,
// payment, headers) that must be discarded before cleanup.
func (rs *RuleSet) IsNonItem(line string) bool {
	if rs == nil {
		return false
	}
	for _, re := range rs.nonItem {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// rdNonItemPatterns is the full rule list for RD-style OCR receipts.
var rdNonItemPatterns = []string{
	`^SUBTOTAL`,
	`^TOTAL\s+(?:PAID|ON\s+ACCOUNT|TAX)`,
	`^IL\s+(?:FOOD\s+)?TAX`,
	`^TRANSACTION\s+TOTAL`,
	`^FINAL\s+TOTAL`,
	`^MC\s*/\s*VISA`,
	`^VISA\s+\d+`,
	`^MC\s+\d+`,
	`^MASTERCARD\s+\d+`,
	`^AMEX\s+\d+`,
	`^APPROVAL\s*#`,
	`^REFERENCE\s+\d+`,
	`^Contactless`,
	`^Previous\s+Balance`,
	`^UPC\s+Item\s+Description`,          // column header row
	`^Item\s+Description\s+Unit\s+Price`, // column header variant
}

// baselineNonItemPatterns applies to vendors without a dedicated rule list.
var baselineNonItemPatterns = []string{
	`^SUBTOTAL`,
	`^TOTAL\b`,
	`^TAX\b`,
}

func compilePatterns(v constants.Vendor, patterns []string) (*RuleSet, error) {
	rs := &RuleSet{Vendor: v, nonItem: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("vendor %s: compile %q: %w", v, p, err)
		}
		rs.nonItem = append(rs.nonItem, re)
	}
	return rs, nil
}
