package report

import (
	"fmt"
	"io"

	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/tabular"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by ExportXLSX.
const SheetName = "Scadenze"

// amountColumns are the Header positions holding amounts; they are written
// as numbers so spreadsheets can sum them.
var amountColumns = map[int]bool{5: true, 7: true}

// ExportXLSX writes records as a single-sheet workbook with the store header.
func (g *Generator) ExportXLSX(records []tabular.Record, w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(tabular.Header))
	for i, h := range tabular.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		row := make([]interface{}, 0, len(tabular.Header))
		for col, v := range r.Values() {
			if amountColumns[col] {
				if d, err := models.ParseAmount(v); err == nil {
					row = append(row, d.InexactFloat64())
					continue
				}
			}
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	g.logger.Info("Exported workbook", logFieldCount(len(records)))
	return nil
}

func logFieldCount(n int) logging.Field {
	return logging.F(logging.FieldCount, n)
}
