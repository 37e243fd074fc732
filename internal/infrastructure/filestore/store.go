// Package filestore writes rendered view-models under an export root.
package filestore

import (
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

// Path resolves rel under the root and rejects paths that escape it.
func (s *Store) Path(rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", crerr.Newf("invalid export path %q", rel)
	}
	return filepath.Join(s.root, cleaned), nil
}

// Write stores body at rel, creating parent directories. The file is
// written to a temp sibling first and renamed into place.
func (s *Store) Write(rel string, body []byte) error {
	path, err := s.Path(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return crerr.Wrapf(err, "create directory for %s", rel)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", rel)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "write %s", rel)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "close %s", rel)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "chmod %s", rel)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "rename %s", rel)
	}
	return nil
}

func (s *Store) Read(rel string) ([]byte, error) {
	path, err := s.Path(rel)
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read %s", rel)
	}
	return body, nil
}
