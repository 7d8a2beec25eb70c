package engine

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileSystem is the minimal file access surface the engine consumes
type FileSystem interface {
	// ReadText reads the full content of the file at path
	ReadText(ctx context.Context, path string) (string, error)

	// WriteText replaces the content of the file at path
	WriteText(ctx context.Context, path string, text string) error
}

// 🏭 NewOSFileSystem returns a FileSystem backed by the local disk
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

// 💿 osFileSystem implements FileSystem on top of the os package
type osFileSystem struct{}

func (osFileSystem) ReadText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func (osFileSystem) WriteText(ctx context.Context, path string, text string) error {
	// Preserve the existing mode when the file is already there.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}
