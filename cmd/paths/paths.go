// Package paths shows and saves the invoice source paths
package paths

import (
	"fmt"

	"scadenzade/cmd/root"
	"scadenzade/internal/batch"
	"scadenzade/internal/models"

	"github.com/spf13/cobra"
)

var (
	suppliersPath string
	clientsPath   string
)

// Cmd represents the paths command
var Cmd = &cobra.Command{
	Use:   "paths",
	Short: "Show or save the suppliers and clients sources",
	Long: `Show or save the sources read by run when no --suppliers or --clients is
given. Each source is a single XML invoice or a directory of them.

Example:
  scadenzade paths show
  scadenzade paths set --suppliers in/suppliers --clients in/clients`,
	SilenceUsage: true,
}

var showCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the saved sources",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		p, err := c.GetEngine().SourcePaths()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, g := range models.Groups() {
			path := p.For(g)
			if path == "" {
				path = "(not set)"
			}
			fmt.Fprintf(w, "%-10s %s\n", g+":", path)
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:          "set",
	Short:        "Save both sources",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		p := models.PathConfig{Suppliers: suppliersPath, Clients: clientsPath}
		for _, g := range models.Groups() {
			if _, err := batch.ResolveSource(p.For(g), c.GetConfig().Source.Extension); err != nil {
				return fmt.Errorf("%s source: %w", g, err)
			}
		}
		if err := c.GetEngine().SetSourcePaths(p); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "source paths saved")
		return nil
	},
}

func init() {
	setCmd.Flags().StringVarP(&suppliersPath, "suppliers", "s", "", "Suppliers source (file or directory)")
	setCmd.Flags().StringVarP(&clientsPath, "clients", "c", "", "Clients source (file or directory)")
	_ = setCmd.MarkFlagRequired("suppliers")
	_ = setCmd.MarkFlagRequired("clients")

	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(setCmd)
}
