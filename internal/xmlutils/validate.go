package xmlutils

import (
	"encoding/xml"
	"os"

	"scadenzade/internal/parsererror"

	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

var (
	headerPath = xmlpath.MustCompile(XPathHeader)
	bodyPath   = xmlpath.MustCompile(XPathBody)
)

// ValidateFormat checks that path is well-formed XML carrying both the
// FatturaElettronicaHeader and FatturaElettronicaBody blocks. The file is not
// modified. A nil error means the document can be extracted.
func ValidateFormat(path string) error {
	f, err := os.Open(path) // #nosec G304 -- source paths are chosen by the user
	if err != nil {
		return &parsererror.InvalidFormatError{
			FilePath: path, ExpectedFormat: ExpectedFormat, Msg: "cannot open file", Err: err,
		}
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	decoder.CharsetReader = charset.NewReaderLabel
	root, err := xmlpath.ParseDecoder(decoder)
	if err != nil {
		return &parsererror.InvalidFormatError{
			FilePath: path, ExpectedFormat: ExpectedFormat, Msg: "not well-formed XML", Err: err,
		}
	}

	if !headerPath.Exists(root) {
		return &parsererror.InvalidFormatError{
			FilePath: path, ExpectedFormat: ExpectedFormat, Msg: "missing FatturaElettronicaHeader",
		}
	}
	if !bodyPath.Exists(root) {
		return &parsererror.InvalidFormatError{
			FilePath: path, ExpectedFormat: ExpectedFormat, Msg: "missing FatturaElettronicaBody",
		}
	}
	return nil
}
