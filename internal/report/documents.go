package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"scadenzade/internal/models"
	"scadenzade/internal/tabular"
)

const separator = "----------------------------------------"

// WriteDocumentsText writes a plain-text listing of every document and its
// installments.
func (g *Generator) WriteDocumentsText(extractions []*models.Extraction, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, ext := range extractions {
		if ext == nil {
			continue
		}
		issuer := ext.IssuerParty()
		header := ext.DocumentHeader()
		fmt.Fprintf(bw, "Issuer: %s - VAT: %s\n", issuer.Name, issuer.TaxID)
		fmt.Fprintf(bw, "Document: %s no. %s of %s\n", header.Type, header.Number, header.Date)
		fmt.Fprintf(bw, "Total: € %s\n", header.DeclaredTotal)
		fmt.Fprintf(bw, "Installments: %d\n\n", ext.InstallmentCount)
		for _, inst := range ext.AllInstallments() {
			fmt.Fprintf(bw, "  Deadline %d: %s\n", inst.Ordinal, inst.Deadline)
			fmt.Fprintf(bw, "  Amount: € %s\n", inst.Amount)
			fmt.Fprintf(bw, "  Mode: %s\n\n", inst.PaymentMode)
		}
		fmt.Fprintln(bw, separator)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write document listing: %w", err)
	}
	g.logger.Debug("Wrote document listing", logFieldCount(len(extractions)))
	return nil
}

// WriteDeadlinesText writes one line per record: party, amount, deadline
// and document number.
func (g *Generator) WriteDeadlinesText(records []tabular.Record, group models.Group, w io.Writer) error {
	party := "Supplier"
	if group == models.GroupClients {
		party = "Client"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-40s %12s %12s  %s\n", party, "Amount", "Deadline", "Document")
	fmt.Fprintln(bw, strings.Repeat("-", 80))
	for _, r := range records {
		name := r.IssuerName
		if group == models.GroupClients {
			name = r.RecipientName
		}
		fmt.Fprintf(bw, "%-40s %12s %12s  %s\n", truncate(name, 40), r.Amount, r.Deadline, r.DocumentNumber)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write deadline listing: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
