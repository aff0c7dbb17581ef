package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON document per collection under
// <dir>/<user>/<name>.json. It is the CLI's default backend.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created
// lazily on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(user, name string) string {
	return filepath.Join(f.dir, user, name+".json")
}

// Load reads a document, reporting ok=false when the file does not exist.
func (f *FileStore) Load(_ context.Context, user, name string) ([]byte, bool, error) {
	doc, err := os.ReadFile(f.path(user, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read %s: %w", f.path(user, name), err)
	}
	return doc, true, nil
}

// Save overwrites a document. The write goes through a temp file and a
// rename so a crash cannot leave a half-written document behind.
func (f *FileStore) Save(_ context.Context, user, name string, doc []byte) error {
	path := f.path(user, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create store directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}
