// Package report renders totals and deadline listings for people.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"scadenzade/internal/aggregate"
	"scadenzade/internal/logging"

	"gopkg.in/yaml.v3"
)

// Format names a report output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported report format: %s", s)
}

// Generator renders reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Generator{logger: logger.WithField(logging.FieldComponent, "report")}
}

// GenerateTotals renders a yearly overview as text, yaml or json.
func (g *Generator) GenerateTotals(overview aggregate.Overview, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return g.generateTextTotals(overview)
	case FormatYAML:
		out, err := yaml.Marshal(overview)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(overview, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateTextTotals(o aggregate.Overview) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := []string{fmt.Sprintf("%d", o.Year)}
	for m := time.January; m <= time.December; m++ {
		header = append(header, m.String()[:3])
	}
	writeLine(tw, append(header, "Total"))
	for _, row := range []struct {
		label  string
		months aggregate.Months
	}{
		{"Suppliers", o.Suppliers},
		{"Clients", o.Clients},
		{"Difference", o.Difference},
	} {
		line := append([]string{row.label}, row.months[:]...)
		writeLine(tw, append(line, row.months.Sum().StringFixed(2)))
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(tw *tabwriter.Writer, cells []string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
}
