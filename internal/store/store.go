// Package store persists the user's configuration: the active and available
// reporting years and the document source of each group.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"scadenzade/internal/fileutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// File names inside the store directory.
const (
	YearFile = "year.csv"
	PathFile = "path.csv"
)

const delimiter = ';'

// ConfigStore loads and saves configuration. Saves replace the whole record.
type ConfigStore interface {
	LoadYears() (models.YearConfig, error)
	SaveYears(models.YearConfig) error
	LoadPaths() (models.PathConfig, error)
	SavePaths(models.PathConfig) error
}

type yearRow struct {
	Active    string `csv:"active"`
	Available string `csv:"available"`
}

type pathRow struct {
	Suppliers string `csv:"suppliers"`
	Clients   string `csv:"clients"`
}

// CSVConfigStore keeps year.csv and path.csv in one directory.
type CSVConfigStore struct {
	dir    string
	logger logging.Logger
}

// NewCSVConfigStore creates a store rooted at dir.
func NewCSVConfigStore(dir string, logger logging.Logger) *CSVConfigStore {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &CSVConfigStore{dir: dir, logger: logger}
}

// Dir returns the store directory.
func (s *CSVConfigStore) Dir() string { return s.dir }

func (s *CSVConfigStore) yearPath() string { return filepath.Join(s.dir, YearFile) }
func (s *CSVConfigStore) pathPath() string { return filepath.Join(s.dir, PathFile) }

// LoadYears reads year.csv. A missing or empty file is the zero config.
func (s *CSVConfigStore) LoadYears() (models.YearConfig, error) {
	var rows []yearRow
	found, err := s.readRows(s.yearPath(), &rows)
	if err != nil {
		return models.YearConfig{}, err
	}
	cfg := models.YearConfig{Available: []int{}}
	if !found || len(rows) == 0 {
		return cfg, nil
	}

	row := rows[0]
	if active := strings.TrimSpace(row.Active); active != "" {
		year, err := strconv.Atoi(active)
		if err != nil {
			return models.YearConfig{}, &parsererror.ParseError{
				Component: "year store", Field: "active", Value: row.Active, Err: err,
			}
		}
		cfg.Active = year
	}
	cfg.Available = parseYearList(row.Available)
	return cfg, nil
}

// SaveYears replaces year.csv. Available is written sorted and
// de-duplicated, as "[2024, 2025]".
func (s *CSVConfigStore) SaveYears(cfg models.YearConfig) error {
	cfg = cfg.Normalized()
	active := ""
	if cfg.Active != 0 {
		active = strconv.Itoa(cfg.Active)
	}
	rows := []yearRow{{Active: active, Available: formatYearList(cfg.Available)}}
	if err := s.writeRows(s.yearPath(), rows); err != nil {
		return err
	}
	s.logger.Debug("Saved year configuration",
		logging.F(logging.FieldYear, cfg.Active),
		logging.F(logging.FieldCount, len(cfg.Available)))
	return nil
}

// LoadPaths reads path.csv. A missing or header-only file yields empty paths.
func (s *CSVConfigStore) LoadPaths() (models.PathConfig, error) {
	var rows []pathRow
	found, err := s.readRows(s.pathPath(), &rows)
	if err != nil {
		return models.PathConfig{}, err
	}
	if !found || len(rows) == 0 {
		return models.PathConfig{}, nil
	}
	return models.PathConfig{
		Suppliers: strings.TrimSpace(rows[0].Suppliers),
		Clients:   strings.TrimSpace(rows[0].Clients),
	}, nil
}

// SavePaths replaces path.csv. Both paths are required.
func (s *CSVConfigStore) SavePaths(cfg models.PathConfig) error {
	if !cfg.IsComplete() {
		return &parsererror.PathError{
			Path:   s.pathPath(),
			Reason: "both a suppliers and a clients path are required",
		}
	}
	rows := []pathRow{{Suppliers: strings.TrimSpace(cfg.Suppliers), Clients: strings.TrimSpace(cfg.Clients)}}
	return s.writeRows(s.pathPath(), rows)
}

// EnsurePathFile creates a header-only path.csv when none exists.
func (s *CSVConfigStore) EnsurePathFile() error {
	if fileutils.FileExists(s.pathPath()) {
		return nil
	}
	return s.writeRows(s.pathPath(), []pathRow{})
}

func (s *CSVConfigStore) readRows(path string, out interface{}) (bool, error) {
	f, err := os.Open(path) // #nosec G304 -- path is inside the store directory
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &parsererror.PathError{Path: path, Reason: "cannot open config file", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	if err := gocsv.UnmarshalCSV(reader, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return false, nil
		}
		return false, &parsererror.InvalidFormatError{
			FilePath: path, ExpectedFormat: "config CSV", Msg: "cannot parse", Err: err,
		}
	}
	return true, nil
}

func (s *CSVConfigStore) writeRows(path string, rows interface{}) error {
	err := fileutils.WriteFileAtomic(path, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		writer.Comma = delimiter
		return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer))
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// parseYearList reads "[2024, 2025]". Items that are not plain integers are
// dropped.
func parseYearList(s string) []int {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	years := []int{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		y, err := strconv.Atoi(item)
		if err != nil || y < 0 {
			continue
		}
		years = append(years, y)
	}
	return models.NormalizeYears(years)
}

func formatYearList(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
