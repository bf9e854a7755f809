// Package alias rewrites known OCR misreadings and typos in product names
// to canonical tokens ("Potate" -> "Potato"). The table is an explicit,
// immutable object constructed once at startup and shared by reference.
package alias

import (
	"regexp"
	"sort"
)

type rule struct {
	match     string
	canonical string
	re        *regexp.Regexp
}

// Table is a read-only set of substitution rules, ordered longest match
// first so a multi-word misspelled phrase resolves before any of its
// substrings could fire.
type Table struct {
	rules []rule
}

// NewTable builds a Table from match -> canonical pairs. Every match string
// maps to exactly one canonical string.
func NewTable(pairs map[string]string) *Table {
	t := &Table{rules: make([]rule, 0, len(pairs))}
	for m, c := range pairs {
		if m == "" || c == "" {
			continue
		}
		t.rules = append(t.rules, rule{
			match:     m,
			canonical: c,
			re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(m) + `\b`),
		})
	}
	// longest match first; ties broken lexically for determinism
	sort.Slice(t.rules, func(i, j int) bool {
		if len(t.rules[i].match) != len(t.rules[j].match) {
			return len(t.rules[i].match) > len(t.rules[j].match)
		}
		return t.rules[i].match < t.rules[j].match
	})
	return t
}

// Len returns the number of loaded substitution rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Resolve replaces every whole-word, case-insensitive occurrence of a match
// string with its canonical form, applying rules sequentially over the
// evolving string. An empty table resolves to the input unchanged.
func (t *Table) Resolve(text string) string {
	if t == nil || text == "" {
		return text
	}
	for _, r := range t.rules {
		text = r.re.ReplaceAllLiteralString(text, r.canonical)
	}
	return text
}
