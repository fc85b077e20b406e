// Package tabular writes installments to the semicolon-separated store files
// and reads them back.
package tabular

import (
	"scadenzade/internal/dateutils"
	"scadenzade/internal/models"
)

// DefaultDelimiter separates the columns of a store file.
const DefaultDelimiter = ';'

// Header is the column order of a store file.
var Header = []string{
	"Denominazione",
	"IdCodice",
	"TipoDocumento",
	"Numero",
	"Data",
	"ImportoTotaleDocumento",
	"DataScadenzaPagamento",
	"ImportoPagamento",
	"ModalitaPagamento",
	"Cessionario",
	"IdCodiceCess",
}

// Record is one line of a store file as text. Dates are DD-MM-YYYY and
// amounts carry two fraction digits. Field order must match Header.
type Record struct {
	IssuerName     string `csv:"Denominazione" json:"issuer_name" yaml:"issuer_name"`
	IssuerTaxID    string `csv:"IdCodice" json:"issuer_tax_id" yaml:"issuer_tax_id"`
	DocumentType   string `csv:"TipoDocumento" json:"document_type" yaml:"document_type"`
	DocumentNumber string `csv:"Numero" json:"document_number" yaml:"document_number"`
	DocumentDate   string `csv:"Data" json:"document_date" yaml:"document_date"`
	DocumentTotal  string `csv:"ImportoTotaleDocumento" json:"document_total" yaml:"document_total"`
	Deadline       string `csv:"DataScadenzaPagamento" json:"deadline" yaml:"deadline"`
	Amount         string `csv:"ImportoPagamento" json:"amount" yaml:"amount"`
	PaymentMode    string `csv:"ModalitaPagamento" json:"payment_mode" yaml:"payment_mode"`
	RecipientName  string `csv:"Cessionario" json:"recipient_name" yaml:"recipient_name"`
	RecipientTaxID string `csv:"IdCodiceCess" json:"recipient_tax_id" yaml:"recipient_tax_id"`
}

// ToRecord renders a row as store text.
func ToRecord(r models.InvoiceRow) Record {
	return Record{
		IssuerName:     r.Issuer.Name,
		IssuerTaxID:    r.Issuer.TaxID,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		DocumentDate:   dateutils.ToDisplay(r.DocumentDate),
		DocumentTotal:  models.FormatAmount(r.DocumentTotal),
		Deadline:       dateutils.ToDisplay(r.Deadline),
		Amount:         models.FormatAmount(r.Amount),
		PaymentMode:    r.PaymentMode,
		RecipientName:  r.Recipient.Name,
		RecipientTaxID: r.Recipient.TaxID,
	}
}

// Values returns the record's fields in Header order.
func (r Record) Values() []string {
	return []string{
		r.IssuerName, r.IssuerTaxID, r.DocumentType, r.DocumentNumber,
		r.DocumentDate, r.DocumentTotal, r.Deadline, r.Amount,
		r.PaymentMode, r.RecipientName, r.RecipientTaxID,
	}
}
