package xmlutils

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		expected map[string]string
	}{
		{
			name:     "leaves only",
			xml:      `<A><B>1</B><C>2</C></A>`,
			expected: map[string]string{"B": "1", "C": "2"},
		},
		{
			name:     "nested leaves are lifted",
			xml:      `<A><X><Y>z</Y></X><B>1</B></A>`,
			expected: map[string]string{"Y": "z", "B": "1"},
		},
		{
			name:     "last value wins on collision",
			xml:      `<A><X><Name>first</Name></X><Y><Name>second</Name></Y></A>`,
			expected: map[string]string{"Name": "second"},
		},
		{
			name:     "text is trimmed",
			xml:      "<A><B>\n   padded  \n</B></A>",
			expected: map[string]string{"B": "padded"},
		},
		{
			name:     "empty leaf is kept",
			xml:      `<A><B/></A>`,
			expected: map[string]string{"B": ""},
		},
		{
			name:     "namespace prefix is dropped",
			xml:      `<p:A xmlns:p="urn:x"><p:B>1</p:B></p:A>`,
			expected: map[string]string{"B": "1"},
		},
		{
			name:     "element without children",
			xml:      `<A>text</A>`,
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(parseElement(t, tt.xml))
			assert.Equal(t, tt.expected, map[string]string(got))
		})
	}
}

func TestFlatten_NilElement(t *testing.T) {
	got := Flatten(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFlatten_DoesNotModifyTree(t *testing.T) {
	root := parseElement(t, `<A><X><B>1</B></X></A>`)
	before := root.ChildElements()[0].Tag
	_ = Flatten(root)
	assert.Equal(t, before, root.ChildElements()[0].Tag)
	assert.Len(t, root.ChildElements(), 1)
}

func TestFlattenPrefixed(t *testing.T) {
	root := parseElement(t, `<DatiAnagrafici><IdFiscaleIVA><IdCodice>123</IdCodice></IdFiscaleIVA><Anagrafica><Denominazione>ACME</Denominazione></Anagrafica></DatiAnagrafici>`)
	got := FlattenPrefixed(root, "F")
	assert.Equal(t, map[string]string{"FIdCodice": "123", "FDenominazione": "ACME"}, map[string]string(got))
}
