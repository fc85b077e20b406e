package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"scadenzade/internal/fileutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// Store reads and writes store files.
type Store struct {
	logger    logging.Logger
	delimiter rune
}

// NewStore creates a Store. A zero delimiter means DefaultDelimiter.
func NewStore(logger logging.Logger, delimiter rune) *Store {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Store{logger: logger, delimiter: delimiter}
}

// Write replaces destination with the header followed by rows, in the given
// order. The file is replaced atomically.
func (s *Store) Write(rows []models.InvoiceRow, destination string) error {
	staged, err := s.Stage(rows, destination)
	if err != nil {
		return err
	}
	if err := fileutils.CommitAll(staged); err != nil {
		s.logger.WithError(err).Error("Failed to write store file",
			logging.F(logging.FieldOutputFile, destination))
		return err
	}
	s.logger.Info("Wrote store file",
		logging.F(logging.FieldOutputFile, destination),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

// Stage writes rows into a temporary file beside destination. The store is
// replaced only when the returned file is committed.
func (s *Store) Stage(rows []models.InvoiceRow, destination string) (*fileutils.StagedFile, error) {
	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, ToRecord(r))
	}

	staged, err := fileutils.StageFile(destination, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		csvWriter.Comma = s.delimiter
		if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to write store file",
			logging.F(logging.FieldOutputFile, destination))
		return nil, err
	}
	return staged, nil
}

// Prepare builds and sorts the rows of extractions. Rows that could not be
// built are logged and returned alongside.
func (s *Store) Prepare(extractions []*models.Extraction) ([]models.InvoiceRow, []RowError) {
	rows, rowErrs := BuildRows(extractions)
	for _, re := range rowErrs {
		s.logger.Warn("Skipping installment",
			logging.F(logging.FieldFile, re.Source),
			logging.F(logging.FieldOrdinal, re.Ordinal),
			logging.F(logging.FieldError, re.Err.Error()))
	}
	SortRows(rows)
	return rows, rowErrs
}

// Serialize builds, sorts and writes the rows of extractions. Rows that could
// not be built are returned; they do not fail the write.
func (s *Store) Serialize(extractions []*models.Extraction, destination string) ([]RowError, error) {
	rows, rowErrs := s.Prepare(extractions)
	if err := s.Write(rows, destination); err != nil {
		return rowErrs, err
	}
	return rowErrs, nil
}

// Read returns every record of source. An empty file has no records.
func (s *Store) Read(source string) ([]Record, error) {
	f, err := os.Open(source) // #nosec G304 -- store paths come from configuration
	if err != nil {
		return nil, &parsererror.PathError{Path: source, Reason: "cannot open store file", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	csvReader := csv.NewReader(f)
	csvReader.Comma = s.delimiter
	csvReader.FieldsPerRecord = -1

	var records []Record
	if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []Record{}, nil
		}
		return nil, &parsererror.InvalidFormatError{
			FilePath: source, ExpectedFormat: "store CSV", Msg: "cannot parse", Err: err,
		}
	}
	s.logger.Debug("Read store file",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// EnsureStore creates path with only the header when it does not exist.
func (s *Store) EnsureStore(path string) error {
	if fileutils.FileExists(path) {
		return nil
	}
	s.logger.Info("Creating empty store file", logging.F(logging.FieldOutputFile, path))
	return s.Write(nil, path)
}

// Delimiter returns the column separator in use.
func (s *Store) Delimiter() rune {
	return s.delimiter
}
