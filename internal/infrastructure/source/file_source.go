package source

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/reglet-dev/linkpage/internal/application/errors"
)

// FileSource reads the document from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.path
}

// Fetch reads the whole file. Access is confined to the file's directory.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := os.OpenRoot(filepath.Dir(s.path))
	if err != nil {
		return nil, apperrors.NewLoadError(s.path, "failed to open document directory", err)
	}
	defer func() {
		_ = root.Close()
	}()

	file, err := root.Open(filepath.Base(s.path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewLoadError(s.path, "document not found", err)
		}
		return nil, apperrors.NewLoadError(s.path, "failed to open document", err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes+1))
	if err != nil {
		return nil, apperrors.NewLoadError(s.path, "failed to read document", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, apperrors.NewLoadError(s.path, "document too large", nil)
	}

	return data, nil
}
