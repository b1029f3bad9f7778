package file

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/spf13/afero"
)

// File stores each key as a JSON document in a directory
type File struct {
	fs  afero.Fs
	dir string
}

// New creates the storage directory on fs if needed
func New(fs afero.Fs, dir string) (*File, error) {
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	return &File{
		fs:  fs,
		dir: dir,
	}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := afero.ReadFile(f.fs, f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return b, nil
}

// Put writes the value atomically through a temporary file
func (f *File) Put(ctx context.Context, key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"

	if err := afero.WriteFile(f.fs, tmp, value, 0o600); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}

	if err := f.fs.Rename(tmp, path); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}

	return nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	err := f.fs.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *File) Close() error {
	return nil
}
