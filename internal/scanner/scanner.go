// Package scanner discovers sample files on disk and groups them into
// kits by derived kit name.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/kitforge/internal/classify"
	"github.com/llehouerou/kitforge/internal/kit"
)

// Sample file extensions accepted by the scanner.
var audioExts = map[string]bool{
	".wav":  true,
	".aif":  true,
	".aiff": true,
	".flac": true,
}

// IsSampleFile reports whether a path has a recognized audio
// extension.
func IsSampleFile(path string) bool {
	return audioExts[strings.ToLower(filepath.Ext(path))]
}

// Scan walks the given folders, classifies every sample file by name
// and groups the results into kits. Kits appear in first-seen order,
// categories within a kit in first-seen order. Unreadable entries are
// skipped so one bad directory does not abort the scan.
func Scan(roots []string, matcher *classify.Matcher) []kit.Kit {
	var kits []kit.Kit
	index := make(map[string]int)

	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			// Skip any walk errors - intentionally continuing to scan other paths
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !IsSampleFile(path) {
				return nil
			}

			name := d.Name()
			category := matcher.Categorize(name)
			kitName := classify.KitName(name, category)

			i, ok := index[kitName]
			if !ok {
				i = len(kits)
				index[kitName] = i
				kits = append(kits, kit.Kit{Name: kitName})
			}
			kits[i].Append(category, path)
			return nil
		})
	}

	return kits
}
