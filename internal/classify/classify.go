// Package classify assigns instrument categories to sample filenames
// and derives kit names from them.
package classify

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/llehouerou/kitforge/internal/mapping"
)

// Other is the sentinel category for files matching no synonym.
const Other = "other"

// UnknownKit is the placeholder kit name for files whose name is
// nothing but a category token and an index.
const UnknownKit = "UNKNOWN"

var reTrailingIndex = regexp.MustCompile(`\s(\d+)$`)

// Matcher classifies filenames against an ordered list of categories.
// The first declared category with a matching synonym wins; declaration
// order is the priority, not match length.
type Matcher struct {
	categories []categoryPatterns
}

type categoryPatterns struct {
	canonical string
	patterns  []*regexp.Regexp
}

// NewMatcher compiles whole-word patterns for every synonym in the
// table, preserving declaration order.
func NewMatcher(table *mapping.Table) *Matcher {
	m := &Matcher{}
	for _, entry := range table.Entries() {
		cp := categoryPatterns{canonical: entry.Canonical}
		for _, syn := range entry.Synonyms {
			pattern := `\b` + regexp.QuoteMeta(strings.ToLower(syn)) + `\b`
			cp.patterns = append(cp.patterns, regexp.MustCompile(pattern))
		}
		m.categories = append(m.categories, cp)
	}
	return m
}

// Categorize returns the canonical category for a filename, or Other
// when no synonym matches. Synonyms match as whole words,
// case-insensitively.
func (m *Matcher) Categorize(filename string) string {
	name := strings.ToLower(filename)
	for _, cat := range m.categories {
		for _, p := range cat.patterns {
			if p.MatchString(name) {
				return cat.canonical
			}
		}
	}
	return Other
}

// KitName derives the kit name from a filename and its detected
// category: base name without extension, minus a leading category
// token and a trailing index. "Kick 808 1.wav" with category "kick"
// becomes "808".
func KitName(filename, category string) string {
	stem := stemOf(filename)
	reCategory := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(category) + `\s*`)
	stem = reCategory.ReplaceAllString(stem, "")
	stem = regexp.MustCompile(`\s*\d+$`).ReplaceAllString(stem, "")
	stem = strings.TrimSpace(stem)
	if stem == "" {
		return UnknownKit
	}
	return stem
}

// TrailingIndex extracts a trailing space-separated integer from a
// file stem ("Snare 12" -> 12).
func TrailingIndex(stem string) (int, bool) {
	m := reTrailingIndex.FindStringSubmatch(stem)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByTrailingIndex orders sample paths for velocity layering:
// indexed files first in ascending index order, then unindexed files
// alphabetically by lowercased stem. The sort is stable, so files
// sharing an index keep their relative order.
func SortByTrailingIndex(paths []string) []string {
	sorted := append([]string(nil), paths...)
	sort.SliceStable(sorted, func(i, j int) bool {
		sa, sb := stemOf(sorted[i]), stemOf(sorted[j])
		ia, oka := TrailingIndex(sa)
		ib, okb := TrailingIndex(sb)
		switch {
		case oka && okb:
			return ia < ib
		case oka:
			return true
		case okb:
			return false
		default:
			return strings.ToLower(sa) < strings.ToLower(sb)
		}
	})
	return sorted
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
