package years_test

import (
	"testing"

	"scadenzade/cmd/root"
	"scadenzade/cmd/years"
	"scadenzade/internal/models"
	"scadenzade/internal/testfixtures/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "years", years.Cmd.Use)
	names := []string{}
	for _, sub := range years.Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "set-active"}, names)
}

func TestYearsList(t *testing.T) {
	w := workspace.New(t, root.SetContainer)

	out, err := workspace.Execute(t, years.Cmd, "list")
	require.NoError(t, err)
	assert.Equal(t, "no years available yet; active year 2025\n", out)

	require.NoError(t, w.Container.GetConfigStore().SaveYears(models.YearConfig{Active: 2024, Available: []int{2025, 2024}}))
	out, err = workspace.Execute(t, years.Cmd, "list")
	require.NoError(t, err)
	assert.Equal(t, "* 2024\n  2025\n", out)
}

func TestYearsSetActive(t *testing.T) {
	w := workspace.New(t, root.SetContainer)
	store := w.Container.GetConfigStore()
	require.NoError(t, store.SaveYears(models.YearConfig{Active: 2024, Available: []int{2024, 2025}}))

	out, err := workspace.Execute(t, years.Cmd, "set-active", "2025")
	require.NoError(t, err)
	assert.Equal(t, "active year: 2025\n", out)

	cfg, err := store.LoadYears()
	require.NoError(t, err)
	assert.Equal(t, 2025, cfg.Active)
	assert.Equal(t, []int{2024, 2025}, cfg.Available)

	_, err = workspace.Execute(t, years.Cmd, "set-active", "2019")
	assert.ErrorContains(t, err, "not among the available years")
	_, err = workspace.Execute(t, years.Cmd, "set-active", "soon")
	assert.ErrorContains(t, err, "invalid year")
	_, err = workspace.Execute(t, years.Cmd, "set-active")
	assert.Error(t, err)
}
