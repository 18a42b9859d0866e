// Package listing reads and writes the JSON interchange format
// between scanning and preset generation: a mapping from kit name to
// category to ordered sample paths.
package listing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/llehouerou/kitforge/internal/classify"
	"github.com/llehouerou/kitforge/internal/kit"
	"github.com/llehouerou/kitforge/internal/mapping"
)

//go:embed valid_schema.json
var validSchema []byte

// SaveValid exports accepted kits as {kit: {category: [paths]}}.
func SaveValid(path string, kits []kit.Kit) error {
	doc := make(map[string]map[string][]string, len(kits))
	for _, k := range kits {
		elements := make(map[string][]string, len(k.Elements))
		for _, el := range k.Elements {
			elements[el.Category] = el.Files
		}
		doc[k.Name] = elements
	}
	return writeJSON(path, doc)
}

type rejectedEntry struct {
	Reason   kit.Reason          `json:"reason"`
	Details  kit.Details         `json:"details"`
	Elements map[string][]string `json:"elements"`
}

// SaveRejected exports rejected kits with their reason and
// diagnostics for downstream inspection.
func SaveRejected(path string, rejections []kit.Rejection) error {
	doc := make(map[string]rejectedEntry, len(rejections))
	for _, r := range rejections {
		elements := make(map[string][]string, len(r.Kit.Elements))
		for _, el := range r.Kit.Elements {
			elements[el.Category] = el.Files
		}
		doc[r.Kit.Name] = rejectedEntry{Reason: r.Reason, Details: r.Details, Elements: elements}
	}
	return writeJSON(path, doc)
}

func writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadValid reads a valid listing, checks it against the listing
// schema and rebuilds the kits in a deterministic order: kits sorted
// by name, categories in mapping declaration order, categories the
// mapping does not know alphabetically after them, "other" last. JSON
// objects do not preserve key order, so the ordering contract is
// re-established here rather than trusted from the file.
func LoadValid(path string, table *mapping.Table) ([]kit.Kit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var doc map[string]map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	kits := make([]kit.Kit, 0, len(names))
	for _, name := range names {
		kits = append(kits, kit.Kit{Name: name, Elements: orderElements(doc[name], table)})
	}
	return kits, nil
}

func orderElements(elements map[string][]string, table *mapping.Table) []kit.Element {
	out := make([]kit.Element, 0, len(elements))
	taken := make(map[string]bool, len(elements))

	for _, entry := range table.Entries() {
		if files, ok := elements[entry.Canonical]; ok {
			out = append(out, kit.Element{Category: entry.Canonical, Files: files})
			taken[entry.Canonical] = true
		}
	}

	var unknown []string
	for category := range elements {
		if !taken[category] && category != classify.Other {
			unknown = append(unknown, category)
		}
	}
	sort.Strings(unknown)
	for _, category := range unknown {
		out = append(out, kit.Element{Category: category, Files: elements[category]})
	}

	if files, ok := elements[classify.Other]; ok {
		out = append(out, kit.Element{Category: classify.Other, Files: files})
	}

	return out
}

func validate(data []byte) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(validSchema))
	if err != nil {
		return fmt.Errorf("compile listing schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate listing: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("listing does not match schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}
