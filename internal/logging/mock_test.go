package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_ChildrenShareEntries(t *testing.T) {
	m := NewMockLogger()
	errBoom := errors.New("boom")

	m.Info("start")
	m.WithField(FieldFile, "a.xml").WithError(errBoom).Warn("skipped document")

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[1].Level)
	assert.Equal(t, errBoom, entries[1].Error)
	assert.Equal(t, []Field{{Key: FieldFile, Value: "a.xml"}}, entries[1].Fields)

	assert.True(t, m.HasEntry("WARN", "skipped"))
	assert.False(t, m.HasEntry("ERROR", "skipped"))
	assert.Len(t, m.EntriesByLevel("INFO"), 1)

	m.Clear()
	assert.Empty(t, m.Entries())
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var m MockLogger
	m.Debug("x")
	assert.Len(t, m.Entries(), 1)
}
