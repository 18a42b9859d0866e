// Package mapping loads the category definitions that drive sample
// classification: canonical names, their synonyms, and the MIDI notes
// reserved for each category.
package mapping

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// MaxLayers is the number of sample layers a single pad can hold.
const MaxLayers = 8

// Entry is one category definition.
//
// Notes distinguishes "no note list declared" (nil) from "explicitly
// empty" (non-nil, zero length). A nil list means the category has no
// capacity to check; an empty list means it accepts zero samples.
type Entry struct {
	Canonical string
	Synonyms  []string
	Notes     []int
}

// ParseError reports a malformed line in a mapping definition.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mapping line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Table holds category definitions in declaration order. Iteration
// order is the order lines appeared in the definition file; a line
// redefining an existing canonical name replaces the entry in place.
type Table struct {
	entries []Entry
	index   map[string]int
}

// Parse reads a line-oriented mapping definition. Each non-blank,
// non-comment line is "syn1[/syn2...]" or "syn1[/syn2...]:notespec".
func Parse(r io.Reader) (*Table, error) {
	t := &Table{index: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		left := line
		var notes []int
		if rawLeft, rawRight, found := strings.Cut(line, ":"); found {
			left = strings.TrimSpace(rawLeft)
			rawRight = strings.TrimSpace(rawRight)
			if rawRight == "" {
				notes = []int{}
			} else {
				parsed, err := ParseNoteList(rawRight)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Text: line, Err: err}
				}
				notes = parsed
			}
		}

		var synonyms []string
		for _, tok := range strings.Split(strings.ToLower(left), "/") {
			if tok = strings.TrimSpace(tok); tok != "" {
				synonyms = append(synonyms, tok)
			}
		}
		if len(synonyms) == 0 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("no synonyms")}
		}

		entry := Entry{Canonical: synonyms[0], Synonyms: synonyms, Notes: notes}
		if i, ok := t.index[entry.Canonical]; ok {
			t.entries[i] = entry
		} else {
			t.index[entry.Canonical] = len(t.entries)
			t.entries = append(t.entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// ParseFile parses the mapping definition at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Len returns the number of categories.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the categories in declaration order.
func (t *Table) Entries() []Entry { return t.entries }

// Get returns the entry for a canonical name.
func (t *Table) Get(canonical string) (Entry, bool) {
	i, ok := t.index[canonical]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Capacity returns the maximum sample count a category can hold
// (reserved notes x MaxLayers). ok is false when the category is
// unknown or declared without a note list; such categories are never
// checked for overflow.
func (t *Table) Capacity(canonical string) (capacity int, ok bool) {
	entry, found := t.Get(canonical)
	if !found || entry.Notes == nil {
		return 0, false
	}
	return len(entry.Notes) * MaxLayers, true
}

// ReservedNotes returns the set of MIDI notes reserved by any category.
func (t *Table) ReservedNotes() map[int]bool {
	reserved := make(map[int]bool)
	for _, entry := range t.entries {
		for _, note := range entry.Notes {
			reserved[note] = true
		}
	}
	return reserved
}

// ParseNoteList expands a MIDI note specification like "36,40,82-127"
// into a sorted, de-duplicated list of note numbers.
func ParseNoteList(spec string) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if first, second, found := strings.Cut(part, "-"); found {
			start, err := strconv.Atoi(strings.TrimSpace(first))
			if err != nil {
				return nil, fmt.Errorf("invalid note range %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(second))
			if err != nil {
				return nil, fmt.Errorf("invalid note range %q: %w", part, err)
			}
			for n := start; n <= end; n++ {
				seen[n] = true
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid note %q: %w", part, err)
		}
		seen[n] = true
	}

	notes := make([]int, 0, len(seen))
	for n := range seen {
		notes = append(notes, n)
	}
	sort.Ints(notes)
	return notes, nil
}
