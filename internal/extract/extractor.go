// Package extract turns one FatturaPA document into an Extraction, filling in
// missing payment deadlines on the way.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"scadenzade/internal/deadline"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"
	"scadenzade/internal/xmlutils"

	"github.com/beevik/etree"
)

// Extractor reads documents. It is not safe for concurrent use on the same
// document tree.
type Extractor struct {
	resolver    *deadline.Resolver
	logger      logging.Logger
	paths       xmlutils.FatturaPaths
	unknownName string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPaths overrides the schema paths.
func WithPaths(p xmlutils.FatturaPaths) Option {
	return func(e *Extractor) { e.paths = p }
}

// WithUnknownPartyName overrides the issuer name used when the document
// names neither a company nor a surname.
func WithUnknownPartyName(name string) Option {
	return func(e *Extractor) {
		if name != "" {
			e.unknownName = name
		}
	}
}

// NewExtractor creates an Extractor. A nil resolver uses the default policy.
func NewExtractor(resolver *deadline.Resolver, logger logging.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if resolver == nil {
		resolver = deadline.NewResolver(logger)
	}
	e := &Extractor{
		resolver:    resolver,
		logger:      logger,
		paths:       xmlutils.DefaultFatturaPaths(),
		unknownName: models.UnknownPartyName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads doc, whose file is source. An installment without a
// deadline gets one from the resolver; the date is added to the tree as a
// DataScadenzaPagamento element and the Extraction is marked Dirty. The
// file itself is not touched, see PersistIfDirty.
//
// When a deadline cannot be resolved the whole document is rejected with
// *parsererror.UnresolvedDeadlineError. Nodes injected for earlier
// installments stay in the tree but are never persisted by the caller.
func (e *Extractor) Extract(doc *etree.Document, source string, req deadline.Request) (*models.Extraction, error) {
	if doc == nil || doc.Root() == nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: xmlutils.ExpectedFormat,
			Msg:            "document has no root element",
		}
	}
	root := doc.Root()
	ext := models.NewExtraction(source)

	ext.Issuer = xmlutils.Flatten(root.FindElement(e.paths.Issuer))
	if ext.Issuer.Get(models.TagName) == "" {
		ext.Issuer[models.TagName] = ext.Issuer.GetOr(models.TagSurname, e.unknownName)
	}

	ext.Header = xmlutils.Flatten(root.FindElement(e.paths.Header))

	installments := root.FindElements(e.paths.Installments)
	ext.InstallmentCount = len(installments)
	for i, inst := range installments {
		ordinal := i + 1
		if err := e.ensureDeadline(inst, ext, ordinal, req); err != nil {
			return nil, err
		}
		for _, child := range inst.ChildElements() {
			ext.Installments[models.InstallmentKey(child.Tag, ordinal)] = strings.TrimSpace(child.Text())
		}
	}

	for _, block := range root.FindElements(e.paths.Summary) {
		flat := xmlutils.Flatten(block)
		ext.SummaryBlocks = append(ext.SummaryBlocks, flat)
		ext.Summary.Merge(flat)
	}

	ext.Recipient = xmlutils.FlattenPrefixed(root.FindElement(e.paths.Recipient), models.RecipientKeyPrefix)

	e.logger.Debug("Extracted document",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldDocument, ext.Header.Get(models.TagDocumentNumber)),
		logging.F(logging.FieldCount, ext.InstallmentCount))
	return ext, nil
}

func (e *Extractor) ensureDeadline(inst *etree.Element, ext *models.Extraction, ordinal int, req deadline.Request) error {
	existing := inst.SelectElement(models.TagPaymentDeadline)
	if existing != nil && strings.TrimSpace(existing.Text()) != "" {
		return nil
	}

	res, err := e.resolver.Resolve(ext.Header, ext.Issuer, req)
	if err != nil {
		var unresolved *parsererror.UnresolvedDeadlineError
		if errors.As(err, &unresolved) {
			unresolved.FilePath = ext.Source
			unresolved.Ordinal = ordinal
		}
		return err
	}

	if existing != nil {
		existing.SetText(res.Date)
	} else {
		xmlutils.AppendLeaf(inst, models.TagPaymentDeadline, res.Date)
	}
	ext.Dirty = true
	e.logger.Info("Injected payment deadline",
		logging.F(logging.FieldFile, ext.Source),
		logging.F(logging.FieldOrdinal, ordinal),
		logging.F(logging.FieldDeadline, res.Date),
		logging.F(logging.FieldSource, string(res.Source)))
	return nil
}

// PersistIfDirty rewrites the source file of ext from doc when a deadline
// was injected, then clears Dirty. It reports whether the file was written.
// A clean extraction performs no I/O.
func (e *Extractor) PersistIfDirty(doc *etree.Document, ext *models.Extraction) (bool, error) {
	if ext == nil || !ext.Dirty {
		return false, nil
	}
	if err := xmlutils.SaveDocument(doc, ext.Source); err != nil {
		return false, err
	}
	ext.Dirty = false
	e.logger.Info("Rewrote document with injected deadlines", logging.F(logging.FieldFile, ext.Source))
	return true, nil
}

// ExtractFile validates, loads and extracts the document at path and writes
// injected deadlines back to it.
func (e *Extractor) ExtractFile(path string, req deadline.Request) (*models.Extraction, error) {
	return e.extractFile(path, req, true)
}

// PreviewFile is ExtractFile without the write-back. Injected deadlines show
// up in the extraction, which stays Dirty, but the file is left as it is.
func (e *Extractor) PreviewFile(path string, req deadline.Request) (*models.Extraction, error) {
	return e.extractFile(path, req, false)
}

func (e *Extractor) extractFile(path string, req deadline.Request, persist bool) (*models.Extraction, error) {
	if err := xmlutils.ValidateFormat(path); err != nil {
		return nil, err
	}
	doc, err := xmlutils.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	ext, err := e.Extract(doc, path, req)
	if err != nil {
		return nil, err
	}
	if !persist {
		return ext, nil
	}
	if _, err := e.PersistIfDirty(doc, ext); err != nil {
		return nil, fmt.Errorf("failed to persist deadlines: %w", err)
	}
	return ext, nil
}
