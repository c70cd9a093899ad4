// FILE: lixenwraith/lightconfig/backend.go
package lightconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Backend is the storage a Configuration persists to. Paths are backend
// specific; FileBackend uses filesystem paths.
type Backend interface {
	Exists(path string) (bool, error)
	IsRegular(path string) bool
	Readable(path string) bool
	Writable(path string) bool
	MkdirAll(dir string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
}

// FileBackend is a Backend on top of an afero filesystem
type FileBackend struct {
	fs afero.Fs
}

// NewFileBackend wraps fs, or the OS filesystem if fs is nil
func NewFileBackend(fs afero.Fs) *FileBackend {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileBackend{fs: fs}
}

// Fs returns the underlying filesystem
func (b *FileBackend) Fs() afero.Fs { return b.fs }

// Exists reports whether path exists
func (b *FileBackend) Exists(path string) (bool, error) {
	return afero.Exists(b.fs, path)
}

// IsRegular reports whether path is an existing regular file
func (b *FileBackend) IsRegular(path string) bool {
	info, err := b.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Readable reports whether path can be opened for reading
func (b *FileBackend) Readable(path string) bool {
	f, err := b.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Writable reports whether path can be opened for writing without truncation
func (b *FileBackend) Writable(path string) bool {
	f, err := b.fs.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// MkdirAll creates dir and any missing parents
func (b *FileBackend) MkdirAll(dir string) error {
	if err := b.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}
	return nil
}

// ReadFile returns the contents of path
func (b *FileBackend) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(b.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return data, nil
}

// WriteFile performs an atomic write: data goes to a temporary file in the
// same directory which is then renamed over path.
func (b *FileBackend) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := afero.TempFile(b.fs, dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in '%s': %w", dir, err)
	}

	tempFilePath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			b.fs.Remove(tempFilePath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempFilePath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempFilePath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempFilePath, err)
	}

	if err := b.fs.Chmod(tempFilePath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on temporary config file '%s': %w", tempFilePath, err)
	}

	if err := b.fs.Rename(tempFilePath, path); err != nil {
		return fmt.Errorf("failed to rename temp file '%s' to '%s': %w", tempFilePath, path, err)
	}
	removed = true

	return nil
}

// Remove deletes path
func (b *FileBackend) Remove(path string) error {
	if err := b.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete config file '%s': %w", path, err)
	}
	return nil
}
