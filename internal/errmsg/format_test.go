package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpMappingParse,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpMappingParse,
			err:      errors.New("file not found"),
			expected: "Failed to parse mapping definition: file not found",
		},
		{
			name:     "scan operation",
			op:       OpScanFolder,
			err:      errors.New("permission denied"),
			expected: "Failed to scan sample folder: permission denied",
		},
		{
			name:     "trash notes operation",
			op:       OpTrashNotesParse,
			err:      errors.New("invalid note \"x\""),
			expected: "Failed to parse trash note list: invalid note \"x\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpListingLoad,
			context:  "valid.json",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpListingLoad,
			context:  "valid.json",
			err:      errors.New("no such file"),
			expected: "Failed to load listing 'valid.json': no such file",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpListingLoad,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to load listing: no such file",
		},
		{
			name:     "output dir with path context",
			op:       OpOutputDir,
			context:  "/out/presets",
			err:      errors.New("read-only file system"),
			expected: "Failed to create output directory '/out/presets': read-only file system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad,
		OpMappingParse,
		OpScanFolder,
		OpListingLoad, OpListingExport,
		OpOutputDir, OpPresetBuild, OpPresetWrite,
		OpTrashNotesParse,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
