package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"glslpack.dev/pkg/glslpack/internal/glsl"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMinified prints the output verbatim, adding a line break only when
// the output is a terminal so piped output stays byte exact.
func (s *SimpleUI) DisplayMinified(ctx context.Context, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeMinified(s.cmd.OutOrStdout(), output)
}

// DisplayRenames prints the rename table.
func (s *SimpleUI) DisplayRenames(ctx context.Context, renames glsl.RenameTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderRenamesTable(renames))

	return nil
}

// DisplayBuildReport prints one row per built entry and the aggregates.
func (s *SimpleUI) DisplayBuildReport(ctx context.Context, report m.BuildReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderBuildTable(report))

	for _, path := range report.Aggregates {
		s.printf("wrote %s\n", path)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func writeMinified(w io.Writer, output string) error {
	if IsTTY(w) {
		output += "\n"
	}

	_, err := io.WriteString(w, output)

	return err
}

func renderRenamesTable(renames glsl.RenameTable) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Identifier", "Renamed To"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	names := make([]string, 0, len(renames))
	for name := range renames {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		table.Append([]string{name, renames[name]})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(names)), ""})
	table.Render()

	return tableBuffer.String()
}

func renderBuildTable(report m.BuildReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Kind", "Output", "Input", "Embedded", "Ratio"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var totalIn, totalOut int

	for _, entry := range report.Entries {
		table.Append([]string{
			entry.Name,
			string(entry.Kind),
			string(entry.Output),
			fmt.Sprintf("%d", entry.InputSize),
			fmt.Sprintf("%d", entry.OutputSize),
			formatRatio(entry.Ratio()),
		})

		totalIn += entry.InputSize
		totalOut += entry.OutputSize
	}

	total := m.BuildEntry{InputSize: totalIn, OutputSize: totalOut}
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(report.Entries)), "", "",
		fmt.Sprintf("%d", totalIn),
		fmt.Sprintf("%d", totalOut),
		formatRatio(total.Ratio()),
	})

	table.Render()

	return tableBuffer.String()
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}
