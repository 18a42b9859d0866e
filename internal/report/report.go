// Package report renders console summaries for scan and generate
// runs.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/kitforge/internal/kit"
)

// DefaultMaxExamples is the number of example files shown per
// category before the list is truncated.
const DefaultMaxExamples = 3

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Scan renders the result of a scan run. With verbose set, every
// valid kit is expanded into its categories and example files.
func Scan(valid []kit.Kit, rejected []kit.Rejection, verbose bool) string {
	var sb strings.Builder

	total := 0
	for _, k := range valid {
		total += k.Stats().Total
	}

	sb.WriteString(titleStyle.Render("Scan complete"))
	sb.WriteString("\n\n")
	sb.WriteString(successStyle.Render(fmt.Sprintf("Valid kits: %d", len(valid))))
	sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s samples)", humanize.Comma(int64(total)))))
	sb.WriteString("\n")
	sb.WriteString(errorStyle.Render(fmt.Sprintf("Rejected kits: %d", len(rejected))))
	sb.WriteString("\n")

	if verbose && len(valid) > 0 {
		sb.WriteString("\n")
		for _, k := range valid {
			writeKit(&sb, k)
		}
	}

	if len(rejected) > 0 {
		sb.WriteString("\n")
		for _, r := range rejected {
			writeRejection(&sb, r)
		}
	}

	return sb.String()
}

func writeKit(sb *strings.Builder, k kit.Kit) {
	sb.WriteString(titleStyle.Render(k.Name))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d samples", k.Stats().Total)))
	sb.WriteString("\n")
	for _, el := range k.Elements {
		sb.WriteString(fmt.Sprintf("  %s (%d)\n", el.Category, len(el.Files)))
		for i, f := range el.Files {
			if i >= DefaultMaxExamples {
				sb.WriteString("    ")
				sb.WriteString(dimStyle.Render(fmt.Sprintf("… and %d more", len(el.Files)-DefaultMaxExamples)))
				sb.WriteString("\n")
				break
			}
			sb.WriteString("    • ")
			sb.WriteString(dimStyle.Render(f))
			sb.WriteString("\n")
		}
	}
}

func writeRejection(sb *strings.Builder, r kit.Rejection) {
	sb.WriteString(titleStyle.Render(r.Kit.Name))
	sb.WriteString(" ")
	sb.WriteString(errorStyle.Render(string(r.Reason)))
	sb.WriteString("\n")
	for _, o := range r.Details.Overflow {
		sb.WriteString("  ")
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%s: %d samples for capacity %d", o.Category, o.Count, o.Capacity)))
		sb.WriteString("\n")
	}
	if r.Reason == kit.ReasonTrashInsufficient {
		sb.WriteString("  ")
		sb.WriteString(dimStyle.Render(fmt.Sprintf("trash notes hold %d, need %d", r.Details.TrashCapacity, r.Details.TrashNeeded)))
		sb.WriteString("\n")
	}
}

// Generation is the per-kit outcome of a generate run.
type Generation struct {
	Kit      string
	Preset   string
	Warnings []string
	Err      error
}

// Generate renders the result of a generate run.
func Generate(results []Generation) string {
	var sb strings.Builder

	written := 0
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			sb.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", res.Kit, res.Err)))
			sb.WriteString("\n")
			continue
		}
		written++
		sb.WriteString(successStyle.Render(res.Kit))
		sb.WriteString(dimStyle.Render(" → " + res.Preset))
		sb.WriteString("\n")
		for _, w := range res.Warnings {
			sb.WriteString("  ")
			sb.WriteString(warnStyle.Render(w))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 40))
	sb.WriteString("\n")
	summary := fmt.Sprintf("Total: %d presets written", written)
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	sb.WriteString(titleStyle.Render(summary))

	return sb.String()
}
