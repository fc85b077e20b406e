package models

// PartyInfo identifies the issuer or the recipient of a document.
type PartyInfo struct {
	Name  string `json:"name" yaml:"name"`
	TaxID string `json:"tax_id" yaml:"tax_id"`
}

// DocumentHeader holds the document-level facts of an invoice.
type DocumentHeader struct {
	Type          string `json:"type" yaml:"type"`
	Number        string `json:"number" yaml:"number"`
	Date          string `json:"date" yaml:"date"`
	DeclaredTotal string `json:"declared_total" yaml:"declared_total"`
}

// SummaryAmount is one DatiRiepilogo block, amounts kept as source text.
type SummaryAmount struct {
	TaxableBase string `json:"taxable_base" yaml:"taxable_base"`
	Tax         string `json:"tax" yaml:"tax"`
}

// Installment is one payment line of a document. Ordinal is 1-based.
type Installment struct {
	Ordinal     int    `json:"ordinal" yaml:"ordinal"`
	Amount      string `json:"amount" yaml:"amount"`
	Deadline    string `json:"deadline" yaml:"deadline"`
	PaymentMode string `json:"payment_mode" yaml:"payment_mode"`
}

// Extraction is everything read from one document.
//
// Installments holds the ordinal-suffixed installment fields
// (ImportoPagamento1, DataScadenzaPagamento1, ...). Summary is the merge of
// every summary block; SummaryBlocks keeps them apart. Recipient keys carry
// RecipientKeyPrefix. Dirty is set when a deadline was injected into the
// in-memory document and the source still has to be rewritten.
type Extraction struct {
	Source           string
	InstallmentCount int
	Installments     FlatFieldMap
	Issuer           FlatFieldMap
	Header           FlatFieldMap
	Summary          FlatFieldMap
	SummaryBlocks    []FlatFieldMap
	Recipient        FlatFieldMap
	Dirty            bool
}

// NewExtraction returns an Extraction with every map allocated.
func NewExtraction(source string) *Extraction {
	return &Extraction{
		Source:       source,
		Installments: FlatFieldMap{},
		Issuer:       FlatFieldMap{},
		Header:       FlatFieldMap{},
		Summary:      FlatFieldMap{},
		Recipient:    FlatFieldMap{},
	}
}

// IssuerParty returns the typed issuer view.
func (e *Extraction) IssuerParty() PartyInfo {
	return PartyInfo{Name: e.Issuer.Get(TagName), TaxID: e.Issuer.Get(TagTaxID)}
}

// RecipientParty returns the typed recipient view.
func (e *Extraction) RecipientParty() PartyInfo {
	return PartyInfo{
		Name:  e.Recipient.Get(RecipientKeyPrefix + TagName),
		TaxID: e.Recipient.Get(RecipientKeyPrefix + TagTaxID),
	}
}

// DocumentHeader returns the typed header view.
func (e *Extraction) DocumentHeader() DocumentHeader {
	return DocumentHeader{
		Type:          e.Header.Get(TagDocumentType),
		Number:        e.Header.Get(TagDocumentNumber),
		Date:          e.Header.Get(TagDocumentDate),
		DeclaredTotal: e.Header.Get(TagDocumentTotal),
	}
}

// Summaries returns one SummaryAmount per summary block.
func (e *Extraction) Summaries() []SummaryAmount {
	out := make([]SummaryAmount, 0, len(e.SummaryBlocks))
	for _, b := range e.SummaryBlocks {
		out = append(out, SummaryAmount{TaxableBase: b.Get(TagTaxableBase), Tax: b.Get(TagTax)})
	}
	return out
}

// Installment returns the installment with the given 1-based ordinal.
func (e *Extraction) Installment(ordinal int) Installment {
	return Installment{
		Ordinal:     ordinal,
		Amount:      e.Installments.Get(InstallmentKey(TagPaymentAmount, ordinal)),
		Deadline:    e.Installments.Get(InstallmentKey(TagPaymentDeadline, ordinal)),
		PaymentMode: e.Installments.Get(InstallmentKey(TagPaymentMode, ordinal)),
	}
}

// AllInstallments returns every installment in document order.
func (e *Extraction) AllInstallments() []Installment {
	out := make([]Installment, 0, e.InstallmentCount)
	for i := 1; i <= e.InstallmentCount; i++ {
		out = append(out, e.Installment(i))
	}
	return out
}
