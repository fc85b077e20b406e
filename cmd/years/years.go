// Package years shows and selects the active reporting year
package years

import (
	"fmt"
	"slices"
	"strconv"

	"scadenzade/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the years command
var Cmd = &cobra.Command{
	Use:   "years",
	Short: "Show or change the active year",
	Long: `Show the years the stored deadlines fall in, or change the year used by
totals and deadlines when no --year is given.

Example:
  scadenzade years list
  scadenzade years set-active 2024`,
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List the available years, marking the active one",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		eng := c.GetEngine()
		active, err := eng.ActiveYear()
		if err != nil {
			return err
		}
		available, err := eng.AvailableYears()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(available) == 0 {
			fmt.Fprintf(w, "no years available yet; active year %d\n", active)
			return nil
		}
		for _, y := range available {
			marker := " "
			if y == active {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %d\n", marker, y)
		}
		return nil
	},
}

var setActiveCmd = &cobra.Command{
	Use:          "set-active YEAR",
	Short:        "Make YEAR the active year",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(args[0])
		if err != nil || y <= 0 {
			return fmt.Errorf("invalid year: %s", args[0])
		}
		eng := c.GetEngine()
		available, err := eng.AvailableYears()
		if err != nil {
			return err
		}
		if len(available) > 0 && !slices.Contains(available, y) {
			return fmt.Errorf("year %d is not among the available years %v", y, available)
		}
		if err := eng.SetActiveYear(y); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "active year: %d\n", y)
		return nil
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(setActiveCmd)
}
