package fileutils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.xml")
	require.NoError(t, os.WriteFile(file, []byte("<x/>"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.XML", "c.p7m", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "d.xml"), []byte("x"), 0600))

	files, err := ListFilesWithExtension(dir, ".xml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.XML"), filepath.Join(dir, "b.xml")}, files)

	_, err = ListFilesWithExtension(filepath.Join(dir, "missing"), ".xml")
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sub", "out.csv")

	err := WriteFileAtomic(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	})
	require.NoError(t, err)

	err = WriteFileAtomic(target, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return errors.New("boom")
	})
	require.Error(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestCommitAll_AllOrNothing(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, os.WriteFile(first, []byte("old"), 0600))

	writeNew := func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	}
	a, err := StageFile(first, writeNew)
	require.NoError(t, err)
	b, err := StageFile(second, writeNew)
	require.NoError(t, err)

	// The second destination turns into a directory after staging.
	require.NoError(t, os.Mkdir(second, 0750))

	err = CommitAll(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination is a directory")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "staged files must be discarded")
}

func TestCommitAll_ReplacesEveryFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, os.WriteFile(first, []byte("old"), 0600))

	a, err := StageFile(first, func(w io.Writer) error {
		_, err := io.WriteString(w, "one")
		return err
	})
	require.NoError(t, err)
	b, err := StageFile(second, func(w io.Writer) error {
		_, err := io.WriteString(w, "two")
		return err
	})
	require.NoError(t, err)
	assert.False(t, FileExists(second))

	require.NoError(t, CommitAll(a, b))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStageFile_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "store.csv")
	require.NoError(t, os.Mkdir(target, 0750))

	_, err := StageFile(target, func(w io.Writer) error { return nil })
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
