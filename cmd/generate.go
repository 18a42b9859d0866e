package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/llehouerou/kitforge/internal/assign"
	"github.com/llehouerou/kitforge/internal/config"
	"github.com/llehouerou/kitforge/internal/errmsg"
	"github.com/llehouerou/kitforge/internal/kit"
	"github.com/llehouerou/kitforge/internal/listing"
	"github.com/llehouerou/kitforge/internal/mapping"
	"github.com/llehouerou/kitforge/internal/preset"
	"github.com/llehouerou/kitforge/internal/report"
)

type generateOptions struct {
	mapping    string
	outputDir  string
	sampleRoot string
	policy     string
	trashNotes string
	padBase    int
	padCount   int
	colorSeed  int64
}

func generateCommand(cfg *config.Config) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [listing.json]",
		Short: "Generate TAL Drum presets from a valid listing",
		Long:  "Read a valid listing, assign every kit's samples to MIDI pads with velocity layering and write one .taldrum preset per kit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mapping, "mapping", cfg.Mapping, "mapping definition file")
	f.StringVar(&opts.outputDir, "output-dir", cfg.OutputDir, "directory receiving the preset files")
	f.StringVar(&opts.sampleRoot, "sample-root", cfg.SampleRoot, "global sample library root for relative sample paths")
	f.StringVar(&opts.policy, "overflow-policy", valueOr(cfg.OverflowPolicy, string(kit.PolicyTrash)), "overflow policy: reject, truncate, trash or ignore")
	f.StringVar(&opts.trashNotes, "trash-notes", cfg.TrashNotes, "MIDI notes absorbing overflow and uncategorized samples (e.g. 82-127)")
	f.IntVar(&opts.padBase, "pad-base-note", cfg.PadBaseNote, "MIDI note of the first pad")
	f.IntVar(&opts.padCount, "pad-count", cfg.PadCount, "number of pads in the grid")
	f.Int64Var(&opts.colorSeed, "color-seed", cfg.ColorSeed, "seed for pad colors, 0 for time-based")

	return cmd
}

func runGenerate(listingPath string, opts generateOptions) error {
	if opts.outputDir == "" {
		return errors.New("an output directory is required (--output-dir)")
	}
	if opts.sampleRoot == "" {
		return errors.New("a sample library root is required (--sample-root)")
	}

	table, err := mapping.ParseFile(opts.mapping)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpMappingParse, opts.mapping, err))
	}

	policy, err := kit.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}

	trashNotes, err := mapping.ParseNoteList(opts.trashNotes)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpTrashNotesParse, err))
	}

	kits, err := listing.LoadValid(listingPath, table)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpListingLoad, listingPath, err))
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpOutputDir, opts.outputDir, err))
	}
	outDir, err := filepath.Abs(opts.outputDir)
	if err != nil {
		return err
	}

	colors := preset.NewRandomColors(opts.colorSeed)

	results := make([]report.Generation, 0, len(kits))
	failed := false
	for _, k := range kits {
		presetPath := filepath.Join(outDir, preset.FileName(k.Name))
		notes, warnings := assign.Notes(k, table, policy, trashNotes)

		p, err := preset.Build(preset.SanitizeFileName(k.Name), presetPath, notes, preset.BuildOptions{
			BaseNote:   opts.padBase,
			PadCount:   opts.padCount,
			SampleRoot: opts.sampleRoot,
			Colors:     colors,
		})
		if err != nil {
			failed = true
			results = append(results, report.Generation{Kit: k.Name, Err: errors.New(errmsg.Format(errmsg.OpPresetBuild, err))})
			continue
		}

		if err := preset.WriteFile(p); err != nil {
			failed = true
			results = append(results, report.Generation{Kit: k.Name, Err: errors.New(errmsg.FormatWith(errmsg.OpPresetWrite, presetPath, err))})
			continue
		}

		results = append(results, report.Generation{Kit: k.Name, Preset: presetPath, Warnings: warnings})
	}

	fmt.Println(report.Generate(results))

	if failed {
		return errors.New("one or more kits failed")
	}
	return nil
}
