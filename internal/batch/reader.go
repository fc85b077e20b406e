// Package batch reads every document of a source location and discovers the
// years its deadlines fall in.
package batch

import (
	"path/filepath"

	"scadenzade/internal/deadline"
	"scadenzade/internal/extract"
	"scadenzade/internal/fileutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"
)

// DefaultExtension is the extension of document files in a directory source.
const DefaultExtension = ".xml"

// Skip is a document left out of a batch and the reason.
type Skip struct {
	File string
	Err  error
}

// Result is the outcome of one batch. Extractions are in file order.
type Result struct {
	Extractions []*models.Extraction
	Skipped     []Skip
}

// ResolveSource expands path into the documents it designates: a file is
// itself, a directory is every file directly inside it with extension ext
// (case-insensitive), sorted by name. Anything else is a *PathError.
func ResolveSource(path, ext string) ([]string, error) {
	if path == "" {
		return nil, &parsererror.PathError{Path: path, Reason: "no source path configured"}
	}
	if ext == "" {
		ext = DefaultExtension
	}
	switch {
	case fileutils.FileExists(path):
		return []string{path}, nil
	case fileutils.DirectoryExists(path):
		files, err := fileutils.ListFilesWithExtension(path, ext)
		if err != nil {
			return nil, &parsererror.PathError{Path: path, Reason: "cannot list directory", Err: err}
		}
		return files, nil
	}
	return nil, &parsererror.PathError{Path: path, Reason: "not a file or directory"}
}

// Reader runs the extraction pipeline over a source, one document at a time.
type Reader struct {
	extractor *extract.Extractor
	logger    logging.Logger
	ext       string
}

// NewReader creates a Reader. An empty ext means DefaultExtension.
func NewReader(extractor *extract.Extractor, logger logging.Logger, ext string) *Reader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if extractor == nil {
		extractor = extract.NewExtractor(nil, logger)
	}
	if ext == "" {
		ext = DefaultExtension
	}
	return &Reader{extractor: extractor, logger: logger, ext: ext}
}

// ReadBatch extracts every document of path. A document that fails for any
// reason is logged and recorded in Result.Skipped; only an unusable path is
// returned as an error.
func (r *Reader) ReadBatch(path string, req deadline.Request) (Result, error) {
	files, err := ResolveSource(path, r.ext)
	if err != nil {
		return Result{}, err
	}
	return r.ReadFiles(files, req), nil
}

// PreviewBatch is ReadBatch without writing injected deadlines back to the
// documents.
func (r *Reader) PreviewBatch(path string, req deadline.Request) (Result, error) {
	files, err := ResolveSource(path, r.ext)
	if err != nil {
		return Result{}, err
	}
	return r.read(files, req, r.extractor.PreviewFile), nil
}

// ReadFiles is ReadBatch over an already resolved file list.
func (r *Reader) ReadFiles(files []string, req deadline.Request) Result {
	return r.read(files, req, r.extractor.ExtractFile)
}

type extractFunc func(path string, req deadline.Request) (*models.Extraction, error)

func (r *Reader) read(files []string, req deadline.Request, extract extractFunc) Result {
	result := Result{Extractions: make([]*models.Extraction, 0, len(files))}

	for _, file := range files {
		r.logger.Debug("Processing file", logging.F(logging.FieldFile, filepath.Base(file)))

		ext, err := extract(file, req)
		if err != nil {
			r.logger.WithError(err).Warn("Skipping document",
				logging.F(logging.FieldFile, file))
			result.Skipped = append(result.Skipped, Skip{File: file, Err: err})
			continue
		}
		result.Extractions = append(result.Extractions, ext)
	}

	r.logger.Info("Read document batch",
		logging.F(logging.FieldCount, len(result.Extractions)),
		logging.F(logging.FieldSkipped, len(result.Skipped)))
	return result
}
