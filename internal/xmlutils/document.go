package xmlutils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"scadenzade/internal/fileutils"
	"scadenzade/internal/parsererror"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// LoadDocument parses the file at path into a mutable tree. Documents
// declared in a legacy charset (windows-1252, ISO-8859-1) are decoded.
func LoadDocument(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromFile(path); err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: ExpectedFormat,
			Msg:            "cannot parse XML",
			Err:            err,
		}
	}
	if doc.Root() == nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: ExpectedFormat,
			Msg:            "document has no root element",
		}
	}
	return doc, nil
}

// SaveDocument rewrites path with doc, keeping the file mode. The XML
// declaration is updated to UTF-8, the encoding the tree is written in.
func SaveDocument(doc *etree.Document, path string) error {
	var mode os.FileMode = 0644
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	normalizeDeclaration(doc)

	err := fileutils.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to rewrite document %s: %w", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to restore mode of %s: %w", path, err)
	}
	return nil
}

func normalizeDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		pi, ok := tok.(*etree.ProcInst)
		if !ok || pi.Target != "xml" {
			continue
		}
		if !strings.Contains(strings.ToLower(pi.Inst), "utf-8") {
			pi.Inst = `version="1.0" encoding="UTF-8"`
		}
		return
	}
}

// AppendLeaf adds a child element with the given text as the last child of
// parent and returns it.
func AppendLeaf(parent *etree.Element, tag, text string) *etree.Element {
	leaf := parent.CreateElement(tag)
	leaf.SetText(text)
	return leaf
}
