// Package storage keeps uploaded files on the local filesystem.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

const uploadURLPrefix = "/uploads"

// Local writes uploads under a single directory and serves them back
// under /uploads. Re-uploading the same name overwrites the file.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(filename string, data []byte) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", &domain.FieldError{Field: "file", Message: "invalid file name"}
	}

	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", name, err)
	}
	return path.Join(uploadURLPrefix, name), nil
}
