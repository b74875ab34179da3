package schemadoc

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Loader reads schema documents from files or an fs.FS.
type Loader struct {
	fs fs.FS
}

// NewLoader constructs a Loader. The fs.FS may be nil when only file
// sources are used.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load fetches the raw document bytes for the given source.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("schemadoc loader: source is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	switch src.Kind() {
	case SourceKindFile:
		return loadFile(src.Location())
	case SourceKindFS:
		return loadFromFS(l.fs, src.Location())
	default:
		return nil, errors.New("schemadoc loader: unsupported source kind")
	}
}

func loadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("schemadoc loader: file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func loadFromFS(files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("schemadoc loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("schemadoc loader: fs is nil")
	}
	return fs.ReadFile(files, name)
}
