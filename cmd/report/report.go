// Package report writes document listings and spreadsheet exports
package report

import (
	"fmt"
	"io"

	"scadenzade/cmd/root"
	"scadenzade/internal/fileutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/report"

	"github.com/spf13/cobra"
)

var (
	group  string
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "List the invoices of a group or export its store to Excel",
	Long: `Write a report for one group.

text  lists every invoice of the group's saved source with its installments.
xlsx  exports the group's CSV store as a spreadsheet; --output is required.

Example:
  scadenzade report --group clients
  scadenzade report -g suppliers -f xlsx -o suppliers.xlsx`,
	SilenceUsage: true,
	RunE:         reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&group, "group", "g", string(models.GroupSuppliers), "Group: suppliers or clients")
	Cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "Report format: text or xlsx")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: standard output, text only)")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}
	g, err := models.ParseGroup(group)
	if err != nil {
		return err
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	if f != report.FormatText && f != report.FormatXLSX {
		return fmt.Errorf("report format must be %s or %s, got %s", report.FormatText, report.FormatXLSX, f)
	}

	eng := c.GetEngine()
	if output == "" {
		if f == report.FormatXLSX {
			return fmt.Errorf("--output is required for the %s format", f)
		}
		return eng.Report(g, f, cmd.OutOrStdout())
	}

	if err := fileutils.WriteFileAtomic(output, func(w io.Writer) error {
		return eng.Report(g, f, w)
	}); err != nil {
		return err
	}
	c.GetLogger().Info("Report written",
		logging.F(logging.FieldGroup, string(g)),
		logging.F(logging.FieldOutputFile, output))
	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", output)
	return nil
}
