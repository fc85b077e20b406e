package report_test

import (
	"path/filepath"
	"testing"

	"scadenzade/cmd/report"
	"scadenzade/cmd/root"
	"scadenzade/internal/models"
	"scadenzade/internal/testfixtures"
	"scadenzade/internal/testfixtures/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func prepare(t *testing.T) *workspace.Workspace {
	t.Helper()
	w := workspace.New(t, root.SetContainer)
	testfixtures.Simple("A1", "2025-01-10", "2025-02-10", "122.00").Write(t, w.Suppliers, "a1.xml")
	eng := w.Container.GetEngine()
	require.NoError(t, eng.SetSourcePaths(models.PathConfig{Suppliers: w.Suppliers, Clients: w.Clients}))
	_, err := eng.RunConfigured()
	require.NoError(t, err)
	return w
}

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)
	assert.Contains(t, report.Cmd.Long, "xlsx")
	assert.Equal(t, "text", report.Cmd.Flags().Lookup("format").DefValue)
}

func TestReportCommand_TextToStdout(t *testing.T) {
	prepare(t)

	out, err := workspace.Execute(t, report.Cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Issuer: Fornitore Spa - VAT: 01234567890")
	assert.Contains(t, out, "Deadline 1: 2025-02-10")
}

func TestReportCommand_XLSXToFile(t *testing.T) {
	w := prepare(t)
	dest := filepath.Join(w.Root, "suppliers.xlsx")

	out, err := workspace.Execute(t, report.Cmd, "-f", "xlsx", "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "report written to")

	wb, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()
	rows, err := wb.GetRows("Scadenze")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[1][3])
	assert.True(t, w.Logger.HasEntry("INFO", "Report written"))
}

func TestReportCommand_InvalidInput(t *testing.T) {
	prepare(t)

	_, err := workspace.Execute(t, report.Cmd, "-f", "xlsx")
	assert.ErrorContains(t, err, "--output is required")
	_, err = workspace.Execute(t, report.Cmd, "-f", "json")
	assert.Error(t, err)
	_, err = workspace.Execute(t, report.Cmd, "-g", "vendors")
	assert.Error(t, err)
}
