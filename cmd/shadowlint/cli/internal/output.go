package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shadowsec/shadowlint/shadowlint"
)

// Output renders shadowlint results in the supported formats
type Output struct{}

// NewOutput creates a new Output instance
func NewOutput() *Output {
	return &Output{}
}

// RenderJSON renders the result as indented JSON
func (o *Output) RenderJSON(result *shadowlint.RunResponse) (string, error) {
	var sb strings.Builder
	encoder := json.NewEncoder(&sb)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSONFile writes the JSON result to the given file
func (o *Output) WriteJSONFile(result *shadowlint.RunResponse, outputFile string) error {
	// #nosec G304 - outputFile is controlled by user via CLI flag
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputFile, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", err)
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// RenderTable renders the result as per-target summaries with a findings table
func (o *Output) RenderTable(result *shadowlint.RunResponse) (string, error) {
	var sb strings.Builder
	for _, target := range result.Run.Targets {
		o.renderTarget(&sb, target)
		sb.WriteString("\n") // spacing between targets
	}
	return sb.String(), nil
}

func (o *Output) renderTarget(sb *strings.Builder, target shadowlint.TargetResult) {
	fmt.Fprintf(sb, "Target: %s (%s)\n", target.Source.Ref, target.Source.Type)
	fmt.Fprintf(sb, "Status: %s\n", formatStatus(target.Status))
	sb.WriteString("\n")

	sb.WriteString("Summary:\n")
	fmt.Fprintf(sb, "  Files scanned:     %d\n", target.Summary.Files)
	fmt.Fprintf(sb, "  Chains checked:    %d\n", target.Summary.Chains)
	fmt.Fprintf(sb, "  Patterns seen:     %d\n", target.Summary.Patterns)
	fmt.Fprintf(sb, "  Shadowed patterns: %d\n", target.Summary.Findings)

	for _, e := range target.Errors {
		fmt.Fprintf(sb, "  %s %s\n", color.Yellow.Sprint("!"), e)
	}

	if len(target.Findings) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(renderFindingsTable(target.Findings))
	sb.WriteString("\n")
}

func renderFindingsTable(findings []shadowlint.FindingResult) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Location", "Pattern", "Shadowed By", "Declared At"})
	for _, f := range findings {
		declaredAt := ""
		if len(f.Secondary) > 0 {
			declaredAt = f.Secondary[0].Location.String()
		}
		t.AppendRow(table.Row{
			f.Primary.String(),
			f.Offending,
			f.Broader,
			declaredAt,
		})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}

func formatStatus(status string) string {
	if !IsStdoutATerminal() {
		return status
	}
	switch status {
	case shadowlint.StatusClean:
		return color.Green.Sprint(status)
	case shadowlint.StatusShadowed:
		return color.Red.Sprint(status)
	case shadowlint.StatusError:
		return color.Yellow.Sprint(status)
	default:
		return status
	}
}
