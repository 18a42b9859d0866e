package preset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathEscapeError reports a sample resolving outside the sample
// library root. Writing such a preset would embed a broken relative
// path, so serialization of the kit fails instead.
type PathEscapeError struct {
	Path string
	Root string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("sample %s is outside the sample root %s", e.Path, e.Root)
}

// RelativeToRoot expresses a sample path relative to the sample
// library root, with forward slashes.
func RelativeToRoot(path, root string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathEscapeError{Path: absPath, Root: absRoot}
	}
	return filepath.ToSlash(rel), nil
}

// RelativeToDir expresses a sample path relative to a directory,
// typically the preset file's own output directory. Unlike
// RelativeToRoot it may climb out of the directory with "..".
func RelativeToDir(path, dir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
