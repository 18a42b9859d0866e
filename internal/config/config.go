// Package config loads kitforge settings from TOML config files.
// Values here are defaults; command-line flags override them.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/kitforge/internal/preset"
)

type Config struct {
	Mapping    string `koanf:"mapping"`     // mapping definition file
	OutputDir  string `koanf:"output_dir"`  // preset output directory
	SampleRoot string `koanf:"sample_root"` // global sample library root

	// Validation
	MinTotal          int  `koanf:"min_total"`
	ExcludeOnlyOther  bool `koanf:"exclude_only_other"`
	ExcludeMixedOther bool `koanf:"exclude_mixed_other"`

	// Overflow handling. Empty policy means each command's own
	// default applies (reject for scan, trash for generate).
	OverflowPolicy string `koanf:"overflow_policy"`
	TrashNotes     string `koanf:"trash_notes"`

	// Pad grid
	PadBaseNote int `koanf:"pad_base_note"`
	PadCount    int `koanf:"pad_count"`

	// Color generation. Zero means time-based seeding.
	ColorSeed int64 `koanf:"color_seed"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Mapping:     "mapping.txt",
		TrashNotes:  "82-127",
		PadBaseNote: preset.DefaultBaseNote,
		PadCount:    preset.DefaultPadCount,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Mapping = expandPath(cfg.Mapping)
	cfg.OutputDir = expandPath(cfg.OutputDir)
	cfg.SampleRoot = expandPath(cfg.SampleRoot)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/kitforge/config.toml
		filepath.Join(xdg.ConfigHome, "kitforge", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
