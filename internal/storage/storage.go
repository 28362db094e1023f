package storage

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoStore implements Store on top of any afero filesystem: the OS disk in
// production, an in-memory filesystem in tests, or a read-only embed.FS.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewOSStore creates a store backed by the local disk.
func NewOSStore() *AferoStore {
	return NewAferoStore(afero.NewOsFs())
}

// NewReadOnlyStore exposes an fs.FS (typically an embed.FS) as a Store.
// Save always fails on it.
func NewReadOnlyStore(fsys fs.FS) *AferoStore {
	return NewAferoStore(afero.NewReadOnlyFs(afero.FromIOFS{FS: fsys}))
}

// Fs returns the underlying filesystem.
func (s *AferoStore) Fs() afero.Fs {
	return s.fs
}

// Save writes the content of the reader to the given path, creating parent
// directories as needed.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Get opens a file for reading.
func (s *AferoStore) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Exists reports whether a regular file exists at path.
func (s *AferoStore) Exists(ctx context.Context, path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
