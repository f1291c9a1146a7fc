// Package blob reads attachment files from the vault where uploaded documents are kept.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    = errors.New("attachment file not found")
	ErrInvalidPath = errors.New("attachment path escapes vault root")
)

// FSStore serves attachment paths relative to a root directory.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: filepath.Clean(root)}
}

func (s *FSStore) Download(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// Ping reports whether the vault root is a readable directory.
func (s *FSStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("stat vault root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault root %s is not a directory", s.root)
	}
	return nil
}

// Put writes content at path, creating parent directories. Used to seed the vault.
func (s *FSStore) Put(path string, content []byte) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}
	return os.WriteFile(full, content, 0o644)
}

func (s *FSStore) resolve(path string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(path, "/")))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidPath)
	}
	return filepath.Join(s.root, rel), nil
}
