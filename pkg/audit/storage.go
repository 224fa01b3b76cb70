package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage persists audit events.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

const (
	logFilePerm = os.FileMode(0o640)
	logDirPerm  = os.FileMode(0o750)
)

// fileStorage appends events to a local file, one JSON object per line.
// The file is opened O_APPEND and never truncated or rewritten.
type fileStorage struct {
	path string
}

// NewFileStorage creates an append-only file storage at path.
// The parent directory is created if it does not exist.
func NewFileStorage(path string) (Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrStorageNotAvailable)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, logDirPerm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageNotAvailable, err)
		}
	}
	return &fileStorage{path: path}, nil
}

// Store appends the event as a single JSON line.
func (s *fileStorage) Store(_ context.Context, event Event) error {
	line, err := json.Marshal(event)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return err
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
