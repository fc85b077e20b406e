package models

// Tag names of the FatturaPA schema read by the engine.
const (
	TagName             = "Denominazione"
	TagSurname          = "Cognome"
	TagTaxID            = "IdCodice"
	TagDocumentType     = "TipoDocumento"
	TagDocumentNumber   = "Numero"
	TagDocumentDate     = "Data"
	TagDocumentTotal    = "ImportoTotaleDocumento"
	TagTaxableBase      = "ImponibileImporto"
	TagTax              = "Imposta"
	TagPaymentAmount    = "ImportoPagamento"
	TagPaymentDeadline  = "DataScadenzaPagamento"
	TagPaymentMode      = "ModalitaPagamento"
	TagInstallmentBlock = "DettaglioPagamento"
)

// Policy defaults. Each one can be overridden through configuration.
const (
	// EpochFallbackDate is the deadline used when neither the installment nor
	// the document carries a date.
	EpochFallbackDate = "1970-01-01"

	// UnknownPartyName replaces an issuer that has neither a company name
	// nor a surname.
	UnknownPartyName = "Sconosciuto"

	// RecipientKeyPrefix namespaces recipient fields so they do not collide
	// with the issuer's.
	RecipientKeyPrefix = "F"
)
