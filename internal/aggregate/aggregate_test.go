package aggregate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"scadenzade/internal/logging"
	"scadenzade/internal/tabular"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(deadline, amount string) tabular.Record {
	return tabular.Record{DocumentNumber: deadline, Deadline: deadline, Amount: amount}
}

func TestMonthlyTotals(t *testing.T) {
	records := []tabular.Record{
		rec("10-02-2025", "100.00"),
		rec("28-02-2025", "100.00"),
		rec("01-02-2024", "999.00"),
		rec("31-12-2025", "0.5"),
	}

	totals, errs := MonthlyTotals(records, 2025)
	assert.Empty(t, errs)
	assert.Equal(t, "0.00", totals[0])
	assert.Equal(t, "200.00", totals[1])
	assert.Equal(t, "0.50", totals[11])
	for i := 2; i < 11; i++ {
		assert.Equal(t, "0.00", totals[i])
	}
}

func TestMonthlyTotals_SumMatchesYear(t *testing.T) {
	records := []tabular.Record{
		rec("01-01-2025", "1.10"),
		rec("15-06-2025", "2.20"),
		rec("15-06-2025", "3.30"),
		rec("30-11-2025", "4.40"),
		rec("30-11-2026", "100"),
	}
	totals, _ := MonthlyTotals(records, 2025)
	assert.True(t, decimal.RequireFromString("11.00").Equal(totals.Sum()))
}

func TestMonthlyTotals_ExcludesBadRecords(t *testing.T) {
	records := []tabular.Record{
		rec("2025-02-10", "1.00"),
		rec("10-02-2025", "abc"),
		rec("10-02-2025", "2.00"),
	}
	totals, errs := MonthlyTotals(records, 2025)
	require.Len(t, errs, 2)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, 1, errs[1].Index)
	assert.Equal(t, "2.00", totals[1])
}

func TestMonthlyTotals_Empty(t *testing.T) {
	totals, errs := MonthlyTotals(nil, 2025)
	assert.Empty(t, errs)
	assert.Equal(t, ZeroMonths(), totals)
}

func TestMonthlyTotalsFromStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data_suppliers.csv")
	content := "Denominazione;IdCodice;TipoDocumento;Numero;Data;ImportoTotaleDocumento;DataScadenzaPagamento;ImportoPagamento;ModalitaPagamento;Cessionario;IdCodiceCess\n" +
		"A;1;TD01;1;01-01-2025;100.00;10-02-2025;100.00;MP05;C;2\n" +
		"A;1;TD01;2;01-01-2025;100.00;28-02-2025;100.00;MP05;C;2\n" +
		"A;1;TD01;3;01-01-2025;100.00;bad;100.00;MP05;C;2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	logger := logging.NewMockLogger()
	agg := NewAggregator(nil, logger)
	totals, err := agg.MonthlyTotalsFromStore(path, 2025)
	require.NoError(t, err)
	assert.Equal(t, "200.00", totals[1])
	assert.True(t, logger.HasEntry("WARN", "Excluding record"))
}

func TestMonthlyTotalsFromStore_MissingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_clients.csv")
	totals, err := NewAggregator(nil, nil).MonthlyTotalsFromStore(path, 2025)
	require.NoError(t, err)
	assert.Equal(t, ZeroMonths(), totals)
	_, err = os.Stat(path)
	assert.NoError(t, err, "missing store is created")
}

func TestDifference(t *testing.T) {
	clients := ZeroMonths()
	suppliers := ZeroMonths()
	clients[0] = "300.00"
	suppliers[0] = "120.50"
	suppliers[1] = "10.00"
	clients[2] = "garbage"

	diff := Difference(clients, suppliers)
	assert.Equal(t, "179.50", diff[0])
	assert.Equal(t, "-10.00", diff[1])
	assert.Equal(t, "0.00", diff[2])
}

func TestFilterByMonth(t *testing.T) {
	records := []tabular.Record{
		rec("10-02-2025", "1"),
		rec("10-03-2025", "2"),
		rec("28-02-2025", "3"),
		rec("28-02-2024", "4"),
		rec("bad", "5"),
	}
	got := FilterByMonth(records, 2025, time.February)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Amount)
	assert.Equal(t, "3", got[1].Amount)

	assert.NotNil(t, FilterByMonth(nil, 2025, time.January))
}

func TestNewOverview(t *testing.T) {
	s := ZeroMonths()
	c := ZeroMonths()
	c[5] = "50.00"
	o := NewOverview(2025, s, c)
	assert.Equal(t, 2025, o.Year)
	assert.Equal(t, "50.00", o.Difference[5])
}
