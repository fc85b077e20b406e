package tabular

import (
	"fmt"
	"sort"

	"scadenzade/internal/dateutils"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"

	"github.com/shopspring/decimal"
)

// RowError is an installment that could not become a row.
type RowError struct {
	Source  string
	Ordinal int
	Err     error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s installment %d: %v", e.Source, e.Ordinal, e.Err)
}

// BuildRows makes one row per installment of every extraction. The document
// total is the sum of taxable base plus tax over all summary blocks. An
// installment whose dates or amounts do not parse is reported in the second
// result and left out.
func BuildRows(extractions []*models.Extraction) ([]models.InvoiceRow, []RowError) {
	var rows []models.InvoiceRow
	var errs []RowError

	for _, ext := range extractions {
		if ext == nil {
			continue
		}
		header := ext.DocumentHeader()
		issuer := ext.IssuerParty()
		recipient := ext.RecipientParty()

		total, totalErr := documentTotal(ext)
		docDate, dateErr := dateutils.ParseISODate(header.Date)

		for _, inst := range ext.AllInstallments() {
			fail := func(field string, err error) {
				errs = append(errs, RowError{
					Source:  ext.Source,
					Ordinal: inst.Ordinal,
					Err: &parsererror.DataExtractionError{
						FilePath: ext.Source, FieldName: field, Reason: "cannot build row", Err: err,
					},
				})
			}
			if totalErr != nil {
				fail(models.TagTaxableBase, totalErr)
				continue
			}
			if dateErr != nil {
				fail(models.TagDocumentDate, dateErr)
				continue
			}
			due, err := dateutils.ParseISODate(inst.Deadline)
			if err != nil {
				fail(models.TagPaymentDeadline, err)
				continue
			}
			amount, err := models.ParseAmount(inst.Amount)
			if err != nil {
				fail(models.TagPaymentAmount, err)
				continue
			}

			rows = append(rows, models.InvoiceRow{
				Issuer:         issuer,
				Recipient:      recipient,
				DocumentType:   header.Type,
				DocumentNumber: header.Number,
				DocumentDate:   docDate,
				DocumentTotal:  total,
				Deadline:       due,
				Amount:         amount,
				PaymentMode:    inst.PaymentMode,
				Source:         ext.Source,
				Ordinal:        inst.Ordinal,
			})
		}
	}
	return rows, errs
}

// documentTotal sums base and tax over the summary blocks. A value absent
// from a block counts as zero.
func documentTotal(ext *models.Extraction) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range ext.Summaries() {
		for _, v := range []string{s.TaxableBase, s.Tax} {
			if v == "" {
				continue
			}
			d, err := models.ParseAmount(v)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(d)
		}
	}
	return total, nil
}

// SortRows orders rows by deadline, then document date. Equal rows keep
// their input order.
func SortRows(rows []models.InvoiceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Less(rows[j])
	})
}
