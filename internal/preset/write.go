package preset

import (
	"os"
	"regexp"
	"strings"
)

// Extension is the preset file extension.
const Extension = ".taldrum"

// untitled is the fallback for kit names that sanitize to nothing.
const untitled = "UNTITLED"

var (
	reIllegalFileChars = regexp.MustCompile(`[\\/:*?"<>|]+`)
	reMultiSpace       = regexp.MustCompile(`\s+`)
)

// SanitizeFileName makes a kit name safe to use as a file name:
// illegal character runs become underscores, whitespace collapses to
// single spaces.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = reIllegalFileChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(reMultiSpace.ReplaceAllString(name, " "))
	if name == "" {
		return untitled
	}
	return name
}

// FileName returns the preset file name for a kit.
func FileName(kitName string) string {
	return SanitizeFileName(kitName) + Extension
}

// WriteFile renders the preset and writes it to its path.
func WriteFile(p *Preset) error {
	data, err := Render(p)
	if err != nil {
		return err
	}
	return os.WriteFile(p.Path, data, 0o644)
}
