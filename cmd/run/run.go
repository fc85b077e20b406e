// Package run reads both document sources and rewrites the CSV stores
package run

import (
	"fmt"
	"io"
	"path/filepath"

	"scadenzade/cmd/root"
	"scadenzade/internal/dateutils"
	"scadenzade/internal/deadline"
	"scadenzade/internal/engine"
	"scadenzade/internal/models"

	"github.com/spf13/cobra"
)

var (
	suppliersPath string
	clientsPath   string
	manual        bool
	manualDate    string
)

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Extract payment deadlines and rewrite the CSV stores",
	Long: `Read every invoice of the suppliers and clients sources, write one CSV
store per group and record the years the deadlines fall in.

A source is a single XML file or a directory of XML files. Sources not given
on the command line are taken from path.csv; sources given are saved there.

An installment without a deadline takes the invoice date. With --manual the
deadline given with --deadline is written into the invoice instead; without
--deadline such invoices are skipped.

Example:
  scadenzade run --suppliers in/suppliers --clients in/clients
  scadenzade run --manual --deadline 2025-06-30`,
	SilenceUsage: true,
	RunE:         runFunc,
}

func init() {
	Cmd.Flags().StringVarP(&suppliersPath, "suppliers", "s", "", "Suppliers source (file or directory)")
	Cmd.Flags().StringVarP(&clientsPath, "clients", "c", "", "Clients source (file or directory)")
	Cmd.Flags().BoolVar(&manual, "manual", false, "Write the --deadline date into invoices lacking one")
	Cmd.Flags().StringVar(&manualDate, "deadline", "", "Deadline (YYYY-MM-DD) used with --manual")
}

func runFunc(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}

	eng := c.GetEngine()
	if cmd.Flags().Changed("manual") || cmd.Flags().Changed("deadline") {
		if manualDate != "" && !dateutils.IsISODate(manualDate) {
			return fmt.Errorf("--deadline must be YYYY-MM-DD, got %q", manualDate)
		}
		req := deadline.Request{Manual: manual || manualDate != "", ManualDate: manualDate}
		if eng, err = c.WithDeadlineRequest(req); err != nil {
			return err
		}
	}

	paths, err := eng.SourcePaths()
	if err != nil {
		return err
	}
	if suppliersPath != "" {
		paths.Suppliers = suppliersPath
	}
	if clientsPath != "" {
		paths.Clients = clientsPath
	}

	result, err := eng.RunBatchAndPersist(paths.Suppliers, paths.Clients)
	if err != nil {
		return err
	}

	if suppliersPath != "" || clientsPath != "" {
		if err := eng.SetSourcePaths(paths); err != nil {
			return fmt.Errorf("failed to save source paths: %w", err)
		}
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result *engine.RunResult) {
	for _, g := range models.Groups() {
		gr := result.Groups[g]
		if gr == nil {
			continue
		}
		fmt.Fprintf(w, "%s: %d documents, %d installments -> %s\n", g, gr.Documents, gr.Rows, gr.StoreFile)
		for _, s := range gr.Skipped {
			fmt.Fprintf(w, "  skipped %s: %v\n", filepath.Base(s.File), s.Err)
		}
		for _, re := range gr.RowErrors {
			fmt.Fprintf(w, "  skipped installment %d of %s: %v\n", re.Ordinal, filepath.Base(re.Source), re.Err)
		}
	}
	fmt.Fprintf(w, "active year: %d, available: %v\n", result.Years.Active, result.Years.Available)
}
