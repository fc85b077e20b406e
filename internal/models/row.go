package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRow is one installment joined with its document, ready to be
// sorted and written to the tabular store.
type InvoiceRow struct {
	Issuer         PartyInfo
	Recipient      PartyInfo
	DocumentType   string
	DocumentNumber string
	DocumentDate   time.Time
	DocumentTotal  decimal.Decimal
	Deadline       time.Time
	Amount         decimal.Decimal
	PaymentMode    string

	// Source and Ordinal locate the installment; they are not persisted.
	Source  string
	Ordinal int
}

// Less orders rows by deadline, then by document date.
func (r InvoiceRow) Less(other InvoiceRow) bool {
	if !r.Deadline.Equal(other.Deadline) {
		return r.Deadline.Before(other.Deadline)
	}
	return r.DocumentDate.Before(other.DocumentDate)
}
