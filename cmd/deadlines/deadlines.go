// Package deadlines lists the installments due in one month
package deadlines

import (
	"fmt"
	"time"

	"scadenzade/cmd/root"
	"scadenzade/internal/models"

	"github.com/spf13/cobra"
)

var (
	group string
	year  int
	month int
)

// Cmd represents the deadlines command
var Cmd = &cobra.Command{
	Use:   "deadlines",
	Short: "List the installments of a group due in one month",
	Long: `List the installments of the suppliers or clients store whose deadline
falls in the given month, with party, amount, deadline and document number.

The year defaults to the active year.

Example:
  scadenzade deadlines --group suppliers --month 2
  scadenzade deadlines -g clients -m 12 -y 2024`,
	SilenceUsage: true,
	RunE:         deadlinesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&group, "group", "g", string(models.GroupSuppliers), "Group: suppliers or clients")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: the active year)")
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month, 1 to 12")
	_ = Cmd.MarkFlagRequired("month")
}

func deadlinesFunc(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}
	g, err := models.ParseGroup(group)
	if err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", month)
	}

	eng := c.GetEngine()
	y := year
	if y == 0 {
		if y, err = eng.ActiveYear(); err != nil {
			return err
		}
	}

	records, err := eng.Deadlines(g, y, time.Month(month))
	if err != nil {
		return err
	}
	return c.GetReportGenerator().WriteDeadlinesText(records, g, cmd.OutOrStdout())
}
