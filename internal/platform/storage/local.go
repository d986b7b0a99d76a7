// Package storage provides blob store implementations for uploaded images.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore saves uploads on local disk and serves them through the
// server's /static mount. The stored reference is the bare file name.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the upload directory if missing. baseURL is the
// externally visible server address used to compose public URLs.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes the content under name and returns name as the stored reference.
func (s *LocalStore) Put(_ context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
	// Uploads are keyed by bare name; strip anything path-like.
	name = filepath.Base(name)
	target := filepath.Join(s.dir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	target := filepath.Join(s.dir, filepath.Base(ref))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// PublicURL composes the URL under which the static mount serves the file.
func (s *LocalStore) PublicURL(ref string) string {
	return s.baseURL + "/static/uploads/vehicles/" + ref
}

// Dir returns the directory backing the store, for the static route mount.
func (s *LocalStore) Dir() string {
	return s.dir
}
