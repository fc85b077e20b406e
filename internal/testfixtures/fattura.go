// Package testfixtures builds FatturaPA documents for tests.
package testfixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Payment is one DettaglioPagamento block. An empty Deadline omits the
// DataScadenzaPagamento element.
type Payment struct {
	Mode     string
	Deadline string
	Amount   string
}

// Summary is one DatiRiepilogo block.
type Summary struct {
	Rate        string
	TaxableBase string
	Tax         string
}

// Invoice describes a document. Zero values produce a minimal valid invoice.
type Invoice struct {
	IssuerName    string
	IssuerSurname string
	IssuerTaxID   string
	ClientName    string
	ClientTaxID   string
	DocType       string
	Number        string
	Date          string
	DeclaredTotal string
	Summaries     []Summary
	Payments      []Payment
}

// XML renders the invoice.
func (inv Invoice) XML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<p:FatturaElettronica xmlns:p="http://ivaservizi.agenziaentrate.gov.it/docs/xsd/fatture/v1.2" versione="FPR12">` + "\n")
	b.WriteString("  <FatturaElettronicaHeader>\n")
	b.WriteString("    <CedentePrestatore>\n      <DatiAnagrafici>\n")
	b.WriteString("        <IdFiscaleIVA>\n          <IdPaese>IT</IdPaese>\n")
	fmt.Fprintf(&b, "          <IdCodice>%s</IdCodice>\n", def(inv.IssuerTaxID, "01234567890"))
	b.WriteString("        </IdFiscaleIVA>\n        <Anagrafica>\n")
	if inv.IssuerName != "" {
		fmt.Fprintf(&b, "          <Denominazione>%s</Denominazione>\n", inv.IssuerName)
	}
	if inv.IssuerSurname != "" {
		fmt.Fprintf(&b, "          <Nome>Mario</Nome>\n          <Cognome>%s</Cognome>\n", inv.IssuerSurname)
	}
	b.WriteString("        </Anagrafica>\n        <RegimeFiscale>RF01</RegimeFiscale>\n")
	b.WriteString("      </DatiAnagrafici>\n    </CedentePrestatore>\n")
	b.WriteString("    <CessionarioCommittente>\n      <DatiAnagrafici>\n")
	b.WriteString("        <IdFiscaleIVA>\n          <IdPaese>IT</IdPaese>\n")
	fmt.Fprintf(&b, "          <IdCodice>%s</IdCodice>\n", def(inv.ClientTaxID, "09876543210"))
	b.WriteString("        </IdFiscaleIVA>\n        <Anagrafica>\n")
	fmt.Fprintf(&b, "          <Denominazione>%s</Denominazione>\n", def(inv.ClientName, "Cliente Srl"))
	b.WriteString("        </Anagrafica>\n      </DatiAnagrafici>\n    </CessionarioCommittente>\n")
	b.WriteString("  </FatturaElettronicaHeader>\n")
	b.WriteString("  <FatturaElettronicaBody>\n    <DatiGenerali>\n      <DatiGeneraliDocumento>\n")
	fmt.Fprintf(&b, "        <TipoDocumento>%s</TipoDocumento>\n", def(inv.DocType, "TD01"))
	b.WriteString("        <Divisa>EUR</Divisa>\n")
	if inv.Date != "" {
		fmt.Fprintf(&b, "        <Data>%s</Data>\n", inv.Date)
	}
	fmt.Fprintf(&b, "        <Numero>%s</Numero>\n", def(inv.Number, "1"))
	if inv.DeclaredTotal != "" {
		fmt.Fprintf(&b, "        <ImportoTotaleDocumento>%s</ImportoTotaleDocumento>\n", inv.DeclaredTotal)
	}
	b.WriteString("      </DatiGeneraliDocumento>\n    </DatiGenerali>\n")
	b.WriteString("    <DatiBeniServizi>\n")
	for _, s := range inv.Summaries {
		b.WriteString("      <DatiRiepilogo>\n")
		fmt.Fprintf(&b, "        <AliquotaIVA>%s</AliquotaIVA>\n", def(s.Rate, "22.00"))
		fmt.Fprintf(&b, "        <ImponibileImporto>%s</ImponibileImporto>\n", s.TaxableBase)
		fmt.Fprintf(&b, "        <Imposta>%s</Imposta>\n", s.Tax)
		b.WriteString("      </DatiRiepilogo>\n")
	}
	b.WriteString("    </DatiBeniServizi>\n")
	if len(inv.Payments) > 0 {
		b.WriteString("    <DatiPagamento>\n      <CondizioniPagamento>TP02</CondizioniPagamento>\n")
		for _, p := range inv.Payments {
			b.WriteString("      <DettaglioPagamento>\n")
			fmt.Fprintf(&b, "        <ModalitaPagamento>%s</ModalitaPagamento>\n", def(p.Mode, "MP05"))
			if p.Deadline != "" {
				fmt.Fprintf(&b, "        <DataScadenzaPagamento>%s</DataScadenzaPagamento>\n", p.Deadline)
			}
			fmt.Fprintf(&b, "        <ImportoPagamento>%s</ImportoPagamento>\n", p.Amount)
			b.WriteString("      </DettaglioPagamento>\n")
		}
		b.WriteString("    </DatiPagamento>\n")
	}
	b.WriteString("  </FatturaElettronicaBody>\n</p:FatturaElettronica>\n")
	return b.String()
}

// Write stores the invoice as dir/name and returns the full path.
func (inv Invoice) Write(t testing.TB, dir, name string) string {
	t.Helper()
	return WriteRaw(t, dir, name, inv.XML())
}

// WriteRaw stores content as dir/name and returns the full path.
func WriteRaw(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

// Simple is a one-installment invoice used by many tests.
func Simple(number, date, deadline, amount string) Invoice {
	return Invoice{
		IssuerName: "Fornitore Spa",
		Number:     number,
		Date:       date,
		Summaries:  []Summary{{TaxableBase: "100.00", Tax: "22.00"}},
		Payments:   []Payment{{Deadline: deadline, Amount: amount}},
	}
}

func def(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
