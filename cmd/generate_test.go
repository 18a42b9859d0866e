package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeListing(t *testing.T, path string, doc map[string]map[string][]string) {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunGenerate_WritesPresets(t *testing.T) {
	dir := t.TempDir()
	listingPath := filepath.Join(dir, "valid.json")
	writeListing(t, listingPath, map[string]map[string][]string{
		"808": {"kick": {filepath.Join(dir, "Kick 808 1.wav")}},
	})

	outDir := filepath.Join(dir, "out")
	opts := generateOptions{
		mapping:    writeMapping(t, dir),
		outputDir:  outDir,
		sampleRoot: dir,
		policy:     "trash",
		trashNotes: "82-127",
		padBase:    36,
		padCount:   64,
		colorSeed:  1,
	}

	if err := runGenerate(listingPath, opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "808.taldrum"))
	if err != nil {
		t.Fatalf("preset not written: %v", err)
	}
	if !strings.Contains(string(data), `name="808"`) {
		t.Errorf("preset missing kit name:\n%s", data)
	}
}

func TestRunGenerate_ReportsBuildFailure(t *testing.T) {
	dir := t.TempDir()
	listingPath := filepath.Join(dir, "valid.json")
	writeListing(t, listingPath, map[string]map[string][]string{
		"808": {"kick": {filepath.Join(t.TempDir(), "Kick 808 1.wav")}},
	})

	opts := generateOptions{
		mapping:    writeMapping(t, dir),
		outputDir:  filepath.Join(dir, "out"),
		sampleRoot: filepath.Join(dir, "samples"),
		policy:     "trash",
		trashNotes: "82-127",
		padBase:    36,
		padCount:   64,
		colorSeed:  1,
	}

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	genErr := runGenerate(listingPath, opts)
	w.Close()
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if genErr == nil {
		t.Fatal("runGenerate() expected error when a sample escapes the root")
	}
	if !strings.Contains(string(out), "Failed to build preset") {
		t.Errorf("report missing build failure message:\n%s", out)
	}
}

func TestRunGenerate_RequiresOutputAndRoot(t *testing.T) {
	dir := t.TempDir()
	listingPath := filepath.Join(dir, "valid.json")
	writeListing(t, listingPath, map[string]map[string][]string{})

	if err := runGenerate(listingPath, generateOptions{sampleRoot: dir}); err == nil {
		t.Error("runGenerate() expected error without an output directory")
	}
	if err := runGenerate(listingPath, generateOptions{outputDir: dir}); err == nil {
		t.Error("runGenerate() expected error without a sample root")
	}
}
