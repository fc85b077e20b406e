package xmlutils

import (
	"errors"
	"path/filepath"
	"testing"

	"scadenzade/internal/parsererror"
	"scadenzade/internal/testfixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()
	valid := testfixtures.Simple("1", "2025-01-10", "2025-02-10", "10.00").Write(t, dir, "valid.xml")
	malformed := testfixtures.WriteRaw(t, dir, "malformed.xml", "<FatturaElettronica><FatturaElettronicaHeader>")
	noBody := testfixtures.WriteRaw(t, dir, "nobody.xml", "<F><FatturaElettronicaHeader/></F>")
	noHeader := testfixtures.WriteRaw(t, dir, "noheader.xml", "<F><FatturaElettronicaBody/></F>")
	other := testfixtures.WriteRaw(t, dir, "other.xml", "<Document><BkToCstmrStmt/></Document>")

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid invoice", valid, ""},
		{"malformed XML", malformed, "not well-formed"},
		{"missing body", noBody, "missing FatturaElettronicaBody"},
		{"missing header", noHeader, "missing FatturaElettronicaHeader"},
		{"unrelated document", other, "missing FatturaElettronicaHeader"},
		{"missing file", filepath.Join(dir, "absent.xml"), "cannot open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var formatErr *parsererror.InvalidFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
