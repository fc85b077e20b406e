package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestYears_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVConfigStore(dir, nil)

	require.NoError(t, s.SaveYears(models.YearConfig{Active: 2025, Available: []int{2025, 2024, 2025}}))

	raw, err := os.ReadFile(filepath.Join(dir, YearFile))
	require.NoError(t, err)
	assert.Equal(t, "active;available\n2025;[2024, 2025]\n", string(raw))

	cfg, err := s.LoadYears()
	require.NoError(t, err)
	assert.Equal(t, models.YearConfig{Active: 2025, Available: []int{2024, 2025}}, cfg)
}

func TestLoadYears(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    models.YearConfig
		wantErr bool
	}{
		{"legacy file", "active;available\n2024;[2023, 2024]\n", models.YearConfig{Active: 2024, Available: []int{2023, 2024}}, false},
		{"unsorted with junk", "active;available\n2024;[2025, x, 2023,]\n", models.YearConfig{Active: 2024, Available: []int{2023, 2025}}, false},
		{"empty available", "active;available\n2024;[]\n", models.YearConfig{Active: 2024, Available: []int{}}, false},
		{"empty active", "active;available\n;[2024]\n", models.YearConfig{Available: []int{2024}}, false},
		{"header only", "active;available\n", models.YearConfig{Available: []int{}}, false},
		{"empty file", "", models.YearConfig{Available: []int{}}, false},
		{"bad active", "active;available\nnext;[2024]\n", models.YearConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, YearFile), tt.content)

			cfg, err := NewCSVConfigStore(dir, nil).LoadYears()
			if tt.wantErr {
				var parseErr *parsererror.ParseError
				assert.True(t, errors.As(err, &parseErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadYears_Missing(t *testing.T) {
	cfg, err := NewCSVConfigStore(t.TempDir(), nil).LoadYears()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Active)
	assert.NotNil(t, cfg.Available)
	assert.Empty(t, cfg.Available)
}

func TestPaths_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVConfigStore(dir, nil)

	require.NoError(t, s.SavePaths(models.PathConfig{Suppliers: "/data/in", Clients: "/data/out"}))
	cfg, err := s.LoadPaths()
	require.NoError(t, err)
	assert.Equal(t, models.PathConfig{Suppliers: "/data/in", Clients: "/data/out"}, cfg)

	raw, err := os.ReadFile(filepath.Join(dir, PathFile))
	require.NoError(t, err)
	assert.Equal(t, "suppliers;clients\n/data/in;/data/out\n", string(raw))
}

func TestSavePaths_RejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVConfigStore(dir, nil)
	require.NoError(t, s.SavePaths(models.PathConfig{Suppliers: "a", Clients: "b"}))

	for _, cfg := range []models.PathConfig{{Suppliers: "a"}, {Clients: "b"}, {Suppliers: " ", Clients: "b"}} {
		err := s.SavePaths(cfg)
		var pathErr *parsererror.PathError
		assert.True(t, errors.As(err, &pathErr))
	}

	cfg, err := s.LoadPaths()
	require.NoError(t, err)
	assert.Equal(t, models.PathConfig{Suppliers: "a", Clients: "b"}, cfg, "rejected saves leave the file untouched")
}

func TestEnsurePathFile(t *testing.T) {
	dir := t.TempDir()
	s := NewCSVConfigStore(dir, nil)

	require.NoError(t, s.EnsurePathFile())
	raw, err := os.ReadFile(filepath.Join(dir, PathFile))
	require.NoError(t, err)
	assert.Equal(t, "suppliers;clients\n", string(raw))

	cfg, err := s.LoadPaths()
	require.NoError(t, err)
	assert.Equal(t, models.PathConfig{}, cfg)

	require.NoError(t, s.SavePaths(models.PathConfig{Suppliers: "a", Clients: "b"}))
	require.NoError(t, s.EnsurePathFile())
	cfg, err = s.LoadPaths()
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.Suppliers)
}

func TestCSVConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")
	s := NewCSVConfigStore(dir, nil)
	assert.Equal(t, dir, s.Dir())
	require.NoError(t, s.SaveYears(models.YearConfig{Active: 2025}))
	_, err := os.Stat(filepath.Join(dir, YearFile))
	assert.NoError(t, err)
}

func TestMockConfigStore(t *testing.T) {
	var _ ConfigStore = &MockConfigStore{}
	var _ ConfigStore = &CSVConfigStore{}

	m := &MockConfigStore{}
	require.NoError(t, m.SaveYears(models.YearConfig{Active: 2025, Available: []int{2025, 2024}}))
	cfg, err := m.LoadYears()
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, cfg.Available)
	assert.Equal(t, 1, m.SaveYearsCalls)

	assert.Error(t, m.SavePaths(models.PathConfig{Suppliers: "a"}))

	m.LoadPathsError = errors.New("boom")
	_, err = m.LoadPaths()
	assert.EqualError(t, err, "boom")
}
