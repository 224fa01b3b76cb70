package system

import (
	"os"
	"path/filepath"
)

// FileWriter abstracts the write+chmod primitive used for sudoers artifacts
// and persisted state, so the core can be exercised without root.
type FileWriter interface {
	WriteFile(path string, data []byte, mode os.FileMode) error
	Remove(path string) error
	Exists(path string) bool
}

// OSFileWriter writes through to the local filesystem.
type OSFileWriter struct{}

// WriteFile creates parent directories as needed, writes the file and
// forces the requested mode even when the file already existed with a
// different one.
func (OSFileWriter) WriteFile(path string, data []byte, mode os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, StateDirPerm); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}

// Remove deletes the file at path.
func (OSFileWriter) Remove(path string) error {
	return os.Remove(path)
}

// Exists reports whether path exists.
func (OSFileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
