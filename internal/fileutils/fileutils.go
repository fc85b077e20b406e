// Package fileutils provides the file operations shared by the stores and the
// batch reader.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ListFilesWithExtension returns the regular files of dirPath whose extension
// matches ext, case-insensitively. Subdirectories are not descended. The
// result is sorted by name.
func ListFilesWithExtension(dirPath, ext string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			files = append(files, filepath.Join(dirPath, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// WriteFileAtomic writes through a temporary file in the destination
// directory and renames it over filePath, so readers never observe a
// partially written file.
func WriteFileAtomic(filePath string, write func(w io.Writer) error) error {
	staged, err := StageFile(filePath, write)
	if err != nil {
		return err
	}
	return CommitAll(staged)
}

// StagedFile is fully written content waiting in a temporary file next to
// its destination.
type StagedFile struct {
	path string
	tmp  string
}

// Path returns the destination the file is committed to.
func (s *StagedFile) Path() string { return s.path }

// Discard removes the temporary file. Calling it after a commit is a no-op.
func (s *StagedFile) Discard() {
	if s.tmp != "" {
		_ = os.Remove(s.tmp)
		s.tmp = ""
	}
}

// StageFile writes content for filePath into a temporary file in the same
// directory. Nothing is visible at filePath until CommitAll.
func StageFile(filePath string, write func(w io.Writer) error) (staged *StagedFile, err error) {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}
	if DirectoryExists(filePath) {
		return nil, fmt.Errorf("failed to replace %s: destination is a directory", filePath)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = os.Chmod(tmpName, 0600); err != nil {
		return nil, fmt.Errorf("failed to set permissions: %w", err)
	}
	return &StagedFile{path: filePath, tmp: tmpName}, nil
}

// DiscardAll discards every staged file.
func DiscardAll(files ...*StagedFile) {
	for _, f := range files {
		if f != nil {
			f.Discard()
		}
	}
}

// CommitAll moves every staged file into place, or none of them. Existing
// destinations are set aside first and restored if a later rename fails.
func CommitAll(files ...*StagedFile) error {
	for _, f := range files {
		if DirectoryExists(f.path) {
			DiscardAll(files...)
			return fmt.Errorf("failed to replace %s: destination is a directory", f.path)
		}
	}

	type replaced struct {
		file   *StagedFile
		backup string
	}
	var done []replaced
	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			if done[i].backup != "" {
				_ = os.Rename(done[i].backup, done[i].file.path)
			} else {
				_ = os.Remove(done[i].file.path)
			}
		}
	}

	for i, f := range files {
		backup := ""
		if FileExists(f.path) {
			backup = f.tmp + ".prev"
			if err := os.Rename(f.path, backup); err != nil {
				rollback()
				DiscardAll(files[i:]...)
				return fmt.Errorf("failed to replace %s: %w", f.path, err)
			}
		}
		if err := os.Rename(f.tmp, f.path); err != nil {
			if backup != "" {
				_ = os.Rename(backup, f.path)
			}
			rollback()
			DiscardAll(files[i:]...)
			return fmt.Errorf("failed to replace %s: %w", f.path, err)
		}
		done = append(done, replaced{file: f, backup: backup})
	}

	for _, r := range done {
		r.file.tmp = ""
		if r.backup != "" {
			_ = os.Remove(r.backup)
		}
	}
	return nil
}
