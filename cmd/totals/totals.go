// Package totals prints the monthly totals of both groups
package totals

import (
	"fmt"

	"scadenzade/cmd/root"
	"scadenzade/internal/report"

	"github.com/spf13/cobra"
)

var (
	year   int
	format string
)

// Cmd represents the totals command
var Cmd = &cobra.Command{
	Use:   "totals",
	Short: "Print monthly totals of suppliers, clients and their difference",
	Long: `Print the twelve monthly totals of the deadlines due to suppliers and from
clients, and the difference clients minus suppliers, for one year.

The year defaults to the active year. Output formats are text, yaml and json.

Example:
  scadenzade totals
  scadenzade totals --year 2024 --format json`,
	SilenceUsage: true,
	RunE:         totalsFunc,
}

func init() {
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to total (default: the active year)")
	Cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "Output format: text, yaml, json")
}

func totalsFunc(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	if f == report.FormatXLSX {
		return fmt.Errorf("totals cannot be written as %s", f)
	}

	eng := c.GetEngine()
	y := year
	if y == 0 {
		if y, err = eng.ActiveYear(); err != nil {
			return err
		}
	}

	out, err := eng.Totals(y, f)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
