// Package kit models named groups of classified sample files and the
// validation rules deciding which groups become presets.
package kit

import (
	"fmt"

	"github.com/llehouerou/kitforge/internal/classify"
)

// Element is one category's ordered file list inside a kit.
type Element struct {
	Category string
	Files    []string
}

// Kit is a named collection of category elements. Element order is
// significant: scanning preserves first-seen order, listing import
// re-establishes mapping declaration order. A kit is accepted or
// rejected as a whole, never partially.
type Kit struct {
	Name     string
	Elements []Element
}

// Stats summarizes a kit for validation.
type Stats struct {
	Total      int
	OnlyOther  bool
	MixedOther bool
}

// Stats computes the total sample count and the uncategorized flags.
func (k Kit) Stats() Stats {
	s := Stats{}
	hasOther := false
	for _, el := range k.Elements {
		s.Total += len(el.Files)
		if el.Category == classify.Other {
			hasOther = true
		}
	}
	s.OnlyOther = hasOther && len(k.Elements) == 1
	s.MixedOther = hasOther && len(k.Elements) > 1
	return s
}

// Files returns the file list for a category, or nil.
func (k Kit) Files(category string) []string {
	for _, el := range k.Elements {
		if el.Category == category {
			return el.Files
		}
	}
	return nil
}

// Append adds a file to a category, creating the element at the end
// of the kit when the category is new.
func (k *Kit) Append(category, file string) {
	for i := range k.Elements {
		if k.Elements[i].Category == category {
			k.Elements[i].Files = append(k.Elements[i].Files, file)
			return
		}
	}
	k.Elements = append(k.Elements, Element{Category: category, Files: []string{file}})
}

// Policy selects what happens when a category receives more samples
// than its reserved notes can hold.
type Policy string

const (
	PolicyReject   Policy = "reject"
	PolicyTruncate Policy = "truncate"
	PolicyTrash    Policy = "trash"
	PolicyIgnore   Policy = "ignore"
)

// ParsePolicy validates an overflow policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyReject, PolicyTruncate, PolicyTrash, PolicyIgnore:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown overflow policy %q (want reject, truncate, trash or ignore)", s)
}
