// Package xmlutils loads, flattens and rewrites FatturaPA documents.
package xmlutils

// FatturaPaths holds the element paths, relative to the document root, of the
// blocks the engine reads.
type FatturaPaths struct {
	Issuer       string
	Recipient    string
	Header       string
	Summary      string
	Installments string
}

// DefaultFatturaPaths returns the paths of the FatturaElettronica schema.
func DefaultFatturaPaths() FatturaPaths {
	return FatturaPaths{
		Issuer:       "FatturaElettronicaHeader/CedentePrestatore/DatiAnagrafici",
		Recipient:    "FatturaElettronicaHeader/CessionarioCommittente/DatiAnagrafici",
		Header:       "FatturaElettronicaBody/DatiGenerali/DatiGeneraliDocumento",
		Summary:      "FatturaElettronicaBody/DatiBeniServizi/DatiRiepilogo",
		Installments: "FatturaElettronicaBody/DatiPagamento/DettaglioPagamento",
	}
}

// XPath expressions used by ValidateFormat.
const (
	XPathHeader = "/*/FatturaElettronicaHeader"
	XPathBody   = "/*/FatturaElettronicaBody"
)

// ExpectedFormat names the schema in format errors.
const ExpectedFormat = "FatturaElettronica (FatturaPA XML)"
