package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/kitforge/internal/classify"
	"github.com/llehouerou/kitforge/internal/config"
	"github.com/llehouerou/kitforge/internal/errmsg"
	"github.com/llehouerou/kitforge/internal/kit"
	"github.com/llehouerou/kitforge/internal/listing"
	"github.com/llehouerou/kitforge/internal/mapping"
	"github.com/llehouerou/kitforge/internal/report"
	"github.com/llehouerou/kitforge/internal/scanner"
)

type scanOptions struct {
	mapping           string
	minTotal          int
	excludeOnlyOther  bool
	excludeMixedOther bool
	policy            string
	trashNotes        string
	exportValid       string
	exportRejected    string
	verbose           bool
}

func scanCommand(cfg *config.Config) *cobra.Command {
	opts := scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [samples-folder]",
		Short: "Scan a sample folder and group files into kits",
		Long:  "Walk a sample folder, classify every audio file by name, group files into kits and report which kits pass validation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScan(args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mapping, "mapping", cfg.Mapping, "mapping definition file")
	f.IntVar(&opts.minTotal, "min-total", cfg.MinTotal, "minimum samples a kit must hold")
	f.BoolVar(&opts.excludeOnlyOther, "exclude-only-other", cfg.ExcludeOnlyOther, "reject kits holding only uncategorized samples")
	f.BoolVar(&opts.excludeMixedOther, "exclude-mixed-other", cfg.ExcludeMixedOther, "reject kits mixing uncategorized samples with real categories")
	f.StringVar(&opts.policy, "overflow-policy", valueOr(cfg.OverflowPolicy, string(kit.PolicyReject)), "overflow policy: reject, truncate, trash or ignore")
	f.StringVar(&opts.trashNotes, "trash-notes", cfg.TrashNotes, "MIDI notes absorbing overflow under the trash policy (e.g. 82-127)")
	f.StringVar(&opts.exportValid, "export-valid", "", "write valid kits to this JSON listing")
	f.StringVar(&opts.exportRejected, "export-rejected", "", "write rejected kits to this JSON listing")
	f.BoolVar(&opts.verbose, "verbose", false, "list every valid kit with its files")

	return cmd
}

func runScan(folder string, opts scanOptions) error {
	table, err := mapping.ParseFile(opts.mapping)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpMappingParse, opts.mapping, err))
	}

	policy, err := kit.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}

	// Trash notes only matter at validation time under the trash
	// policy; other policies either reject outright or defer to
	// generation.
	var trashNotes []int
	if policy == kit.PolicyTrash {
		trashNotes, err = mapping.ParseNoteList(opts.trashNotes)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpTrashNotesParse, err))
		}
	}

	info, err := os.Stat(folder)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpScanFolder, folder, err))
	}
	if !info.IsDir() {
		return errors.New(errmsg.FormatWith(errmsg.OpScanFolder, folder, errors.New("not a directory")))
	}

	kits := scanner.Scan([]string{folder}, classify.NewMatcher(table))

	valid, rejected := kit.Filter(kits, kit.FilterOptions{
		MinTotalSamples:   opts.minTotal,
		ExcludeOnlyOther:  opts.excludeOnlyOther,
		ExcludeMixedOther: opts.excludeMixedOther,
		Table:             table,
		Policy:            policy,
		TrashNotes:        trashNotes,
	})

	fmt.Println(report.Scan(valid, rejected, opts.verbose))

	if opts.exportValid != "" {
		if err := listing.SaveValid(opts.exportValid, valid); err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpListingExport, opts.exportValid, err))
		}
		fmt.Printf("Valid kits exported to %s\n", opts.exportValid)
	}
	if opts.exportRejected != "" {
		if err := listing.SaveRejected(opts.exportRejected, rejected); err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpListingExport, opts.exportRejected, err))
		}
		fmt.Printf("Rejected kits exported to %s\n", opts.exportRejected)
	}

	return nil
}
