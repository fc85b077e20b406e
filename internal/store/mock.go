package store

import (
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"
)

// MockConfigStore is an in-memory ConfigStore for tests.
type MockConfigStore struct {
	Years models.YearConfig
	Paths models.PathConfig

	// Error flags for testing error conditions
	LoadYearsError error
	SaveYearsError error
	LoadPathsError error
	SavePathsError error

	SaveYearsCalls int
	SavePathsCalls int
}

// LoadYears returns a copy of the mock years.
func (m *MockConfigStore) LoadYears() (models.YearConfig, error) {
	if m.LoadYearsError != nil {
		return models.YearConfig{}, m.LoadYearsError
	}
	return m.Years.Normalized(), nil
}

// SaveYears replaces the mock years.
func (m *MockConfigStore) SaveYears(cfg models.YearConfig) error {
	m.SaveYearsCalls++
	if m.SaveYearsError != nil {
		return m.SaveYearsError
	}
	m.Years = cfg.Normalized()
	return nil
}

// LoadPaths returns the mock paths.
func (m *MockConfigStore) LoadPaths() (models.PathConfig, error) {
	if m.LoadPathsError != nil {
		return models.PathConfig{}, m.LoadPathsError
	}
	return m.Paths, nil
}

// SavePaths replaces the mock paths, rejecting incomplete ones like the CSV
// store does.
func (m *MockConfigStore) SavePaths(cfg models.PathConfig) error {
	m.SavePathsCalls++
	if m.SavePathsError != nil {
		return m.SavePathsError
	}
	if !cfg.IsComplete() {
		return &parsererror.PathError{Path: PathFile, Reason: "both a suppliers and a clients path are required"}
	}
	m.Paths = cfg
	return nil
}
