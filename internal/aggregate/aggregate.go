// Package aggregate computes per-month totals over store records.
package aggregate

import (
	"fmt"
	"time"

	"scadenzade/internal/dateutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/tabular"

	"github.com/shopspring/decimal"
)

// Months is a total per calendar month, January first, formatted with two
// fraction digits.
type Months [12]string

// ZeroMonths returns twelve "0.00" entries.
func ZeroMonths() Months {
	var m Months
	for i := range m {
		m[i] = models.FormatAmount(decimal.Zero)
	}
	return m
}

// Sum returns the total across all months. Entries that do not parse count
// as zero.
func (m Months) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		if d, err := models.ParseAmount(v); err == nil {
			total = total.Add(d)
		}
	}
	return total
}

// RecordError is a record left out of a total.
type RecordError struct {
	Index  int
	Record tabular.Record
	Err    error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d (document %s): %v", e.Index, e.Record.DocumentNumber, e.Err)
}

// Aggregator reads store files and totals them.
type Aggregator struct {
	store  *tabular.Store
	logger logging.Logger
}

// NewAggregator creates an Aggregator over store.
func NewAggregator(store *tabular.Store, logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if store == nil {
		store = tabular.NewStore(logger, 0)
	}
	return &Aggregator{store: store, logger: logger}
}

// MonthlyTotals sums the amount of every record whose deadline falls in
// year, per month. Records whose deadline or amount does not parse are
// returned separately and excluded.
func MonthlyTotals(records []tabular.Record, year int) (Months, []RecordError) {
	sums := [12]decimal.Decimal{}
	var errs []RecordError

	for i, r := range records {
		due, err := dateutils.ParseDisplayDate(r.Deadline)
		if err != nil {
			errs = append(errs, RecordError{Index: i, Record: r, Err: err})
			continue
		}
		if due.Year() != year {
			continue
		}
		amount, err := models.ParseAmount(r.Amount)
		if err != nil {
			errs = append(errs, RecordError{Index: i, Record: r, Err: err})
			continue
		}
		sums[due.Month()-1] = sums[due.Month()-1].Add(amount)
	}

	var out Months
	for i, s := range sums {
		out[i] = models.FormatAmount(s)
	}
	return out, errs
}

// MonthlyTotalsFromStore reads path and totals it for year. A missing store
// is created empty first, so it totals to zero.
func (a *Aggregator) MonthlyTotalsFromStore(path string, year int) (Months, error) {
	if err := a.store.EnsureStore(path); err != nil {
		return Months{}, err
	}
	records, err := a.store.Read(path)
	if err != nil {
		return Months{}, err
	}
	totals, errs := MonthlyTotals(records, year)
	for _, e := range errs {
		a.logger.Warn("Excluding record from totals",
			logging.F(logging.FieldFile, path),
			logging.F(logging.FieldDocument, e.Record.DocumentNumber),
			logging.F(logging.FieldError, e.Err.Error()))
	}
	a.logger.Debug("Computed monthly totals",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldYear, year),
		logging.F(logging.FieldCount, len(records)))
	return totals, nil
}

// Records reads every record of path, creating an empty store when missing.
func (a *Aggregator) Records(path string) ([]tabular.Record, error) {
	if err := a.store.EnsureStore(path); err != nil {
		return nil, err
	}
	return a.store.Read(path)
}

// Difference subtracts suppliers from clients month by month. Entries that
// do not parse count as zero.
func Difference(clients, suppliers Months) Months {
	var out Months
	for i := range out {
		c, err := models.ParseAmount(clients[i])
		if err != nil {
			c = decimal.Zero
		}
		s, err := models.ParseAmount(suppliers[i])
		if err != nil {
			s = decimal.Zero
		}
		out[i] = models.FormatAmount(c.Sub(s))
	}
	return out
}

// FilterByMonth returns the records due in month of year, in store order.
func FilterByMonth(records []tabular.Record, year int, month time.Month) []tabular.Record {
	out := []tabular.Record{}
	for _, r := range records {
		due, err := dateutils.ParseDisplayDate(r.Deadline)
		if err != nil {
			continue
		}
		if dateutils.InMonth(due, year, month) {
			out = append(out, r)
		}
	}
	return out
}

// Overview is the yearly view: both groups and their difference.
type Overview struct {
	Year       int    `json:"year" yaml:"year"`
	Suppliers  Months `json:"suppliers" yaml:"suppliers"`
	Clients    Months `json:"clients" yaml:"clients"`
	Difference Months `json:"difference" yaml:"difference"`
}

// NewOverview computes the difference row.
func NewOverview(year int, suppliers, clients Months) Overview {
	return Overview{
		Year:       year,
		Suppliers:  suppliers,
		Clients:    clients,
		Difference: Difference(clients, suppliers),
	}
}
