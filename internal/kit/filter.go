package kit

import (
	"github.com/llehouerou/kitforge/internal/classify"
	"github.com/llehouerou/kitforge/internal/mapping"
)

// Reason is a machine-readable rejection code.
type Reason string

const (
	ReasonTooFewSamples     Reason = "too_few_samples"
	ReasonOnlyOther         Reason = "only_other"
	ReasonMixedOther        Reason = "mixed_other"
	ReasonOverflowOrOther   Reason = "overflow_or_other"
	ReasonTrashInsufficient Reason = "trash_zone_insufficient"
)

// Overflow records one category exceeding its capacity.
type Overflow struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Capacity int    `json:"capacity"`
}

// Details carries rejection diagnostics. TrashNeeded and TrashCapacity
// are only meaningful when the reason is trash_zone_insufficient.
type Details struct {
	Overflow      []Overflow `json:"overflow,omitempty"`
	OtherCount    int        `json:"other_count,omitempty"`
	TrashNeeded   int        `json:"trash_needed,omitempty"`
	TrashCapacity int        `json:"trash_capacity,omitempty"`
}

// Rejection is a kit that failed validation, with its original
// (unsorted) elements kept for inspection.
type Rejection struct {
	Kit     Kit
	Reason  Reason
	Details Details
}

// FilterOptions configures kit validation.
type FilterOptions struct {
	MinTotalSamples   int
	ExcludeOnlyOther  bool
	ExcludeMixedOther bool
	Table             *mapping.Table // nil disables overflow checks
	Policy            Policy
	TrashNotes        []int
}

// Filter validates every kit and splits them into accepted and
// rejected sets. Accepted kits have each category's files sorted into
// velocity-layer order; rejected kits keep their original order.
//
// Rejection reasons are checked in priority order and the first one to
// fire wins: a threshold rejection is never overwritten by a later
// overflow verdict.
func Filter(kits []Kit, opts FilterOptions) (valid []Kit, rejected []Rejection) {
	for _, k := range kits {
		stats := k.Stats()

		var reason Reason
		var details Details

		switch {
		case stats.Total < opts.MinTotalSamples:
			reason = ReasonTooFewSamples
		case opts.ExcludeOnlyOther && stats.OnlyOther:
			reason = ReasonOnlyOther
		case opts.ExcludeMixedOther && stats.MixedOther:
			reason = ReasonMixedOther
		}

		var overflow []Overflow
		otherCount := len(k.Files(classify.Other))
		if opts.Table != nil {
			for _, el := range k.Elements {
				if el.Category == classify.Other {
					continue
				}
				capacity, ok := opts.Table.Capacity(el.Category)
				if ok && len(el.Files) > capacity {
					overflow = append(overflow, Overflow{
						Category: el.Category,
						Count:    len(el.Files),
						Capacity: capacity,
					})
				}
			}
		}

		if len(overflow) > 0 || otherCount > 0 {
			needed := otherCount
			for _, o := range overflow {
				needed += o.Count - o.Capacity
			}

			switch opts.Policy {
			case PolicyReject:
				if reason == "" {
					reason = ReasonOverflowOrOther
				}
			case PolicyTrash:
				capacity := len(opts.TrashNotes) * mapping.MaxLayers
				if needed > capacity {
					details.TrashNeeded = needed
					details.TrashCapacity = capacity
					if reason == "" {
						reason = ReasonTrashInsufficient
					}
				}
			}

			details.Overflow = overflow
			details.OtherCount = otherCount
		}

		if reason != "" {
			rejected = append(rejected, Rejection{Kit: k, Reason: reason, Details: details})
			continue
		}

		sorted := Kit{Name: k.Name, Elements: make([]Element, 0, len(k.Elements))}
		for _, el := range k.Elements {
			sorted.Elements = append(sorted.Elements, Element{
				Category: el.Category,
				Files:    classify.SortByTrailingIndex(el.Files),
			})
		}
		valid = append(valid, sorted)
	}
	return valid, rejected
}
