// Package assign distributes an accepted kit's samples across MIDI
// notes, routing overflow and uncategorized files into the trash pool.
package assign

import (
	"fmt"

	"github.com/llehouerou/kitforge/internal/classify"
	"github.com/llehouerou/kitforge/internal/kit"
	"github.com/llehouerou/kitforge/internal/mapping"
)

// Assignment maps a MIDI note to its ordered sample files. No note
// ever holds more than mapping.MaxLayers entries.
type Assignment map[int][]string

// Notes assigns one kit's samples to MIDI notes and returns the
// assignment plus human-readable warnings for anything dropped.
//
// Each category fills its reserved notes in order, up to MaxLayers
// files per note. Remaining files are overflow: truncated with a
// warning under PolicyTruncate, pushed into the trash pool under
// PolicyTrash and PolicyIgnore. Files in the "other" category go
// straight to the trash pool under those same policies and are dropped
// otherwise. The trash pool is the configured trash-note list minus
// any note reserved by a category; it is consumed left to right, each
// note filled to capacity before the next, never revisited.
func Notes(k kit.Kit, table *mapping.Table, policy kit.Policy, trashNotes []int) (Assignment, []string) {
	notes := make(Assignment)
	var warnings []string

	reserved := table.ReservedNotes()
	pool := make([]int, 0, len(trashNotes))
	for _, n := range trashNotes {
		if !reserved[n] {
			pool = append(pool, n)
		}
	}

	pushTrash := func(samples []string) {
		idx := 0
		for idx < len(samples) && len(pool) > 0 {
			note := pool[0]
			space := mapping.MaxLayers - len(notes[note])
			if space <= 0 {
				pool = pool[1:]
				continue
			}
			take := samples[idx:min(idx+space, len(samples))]
			notes[note] = append(notes[note], take...)
			idx += len(take)
			if len(notes[note]) >= mapping.MaxLayers {
				pool = pool[1:]
			}
		}
		if dropped := len(samples) - idx; dropped > 0 {
			warnings = append(warnings, fmt.Sprintf("dropped %d samples, trash notes full", dropped))
		}
	}

	for _, el := range k.Elements {
		if el.Category == classify.Other {
			if policy == kit.PolicyTrash || policy == kit.PolicyIgnore {
				pushTrash(el.Files)
			}
			continue
		}

		entry, _ := table.Get(el.Category)
		idx := 0
		for _, note := range entry.Notes {
			if idx >= len(el.Files) {
				break
			}
			end := min(idx+mapping.MaxLayers, len(el.Files))
			notes[note] = append(notes[note], el.Files[idx:end]...)
			idx = end
		}

		if overflow := el.Files[idx:]; len(overflow) > 0 {
			switch policy {
			case kit.PolicyTruncate:
				warnings = append(warnings, fmt.Sprintf("overflow in %s, truncated %d samples", el.Category, len(overflow)))
			case kit.PolicyTrash, kit.PolicyIgnore:
				pushTrash(overflow)
			}
		}
	}

	return notes, warnings
}
