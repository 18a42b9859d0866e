package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean name untouched", "808", "808"},
		{"illegal chars replaced", `Kit/A:B`, "Kit_A_B"},
		{"illegal run collapses to one underscore", `Kit???`, "Kit_"},
		{"whitespace collapsed", "  Dusty   Tape  ", "Dusty Tape"},
		{"empty falls back", "", "UNTITLED"},
		{"whitespace only falls back", "   ", "UNTITLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("808"); got != "808.taldrum" {
		t.Errorf("FileName(808) = %q, want 808.taldrum", got)
	}
	if got := FileName("A/B"); got != "A_B.taldrum" {
		t.Errorf("FileName(A/B) = %q, want A_B.taldrum", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := &Preset{
		Name: "808",
		Path: filepath.Join(dir, "808.taldrum"),
		Pads: []Pad{{Index: 0, Note: 36}},
	}

	if err := WriteFile(p); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("written file missing XML declaration")
	}
	if !strings.Contains(string(data), "<taldrum ") {
		t.Error("written file missing taldrum root")
	}
}
