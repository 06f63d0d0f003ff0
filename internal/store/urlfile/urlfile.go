package urlfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File-backed history entry for the terminal front ends. The file holds one
// line: the current query string. No locking; fine for a local single-user
// CLI.

const DefaultFileName = ".checklist"

// DefaultPath is DefaultFileName in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Location implements store.Location over a file.
type Location struct {
	Path string
}

// New returns a Location for path, or for DefaultPath when path is empty.
func New(path string) (*Location, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Location{Path: path}, nil
}

// Query reads the stored query string. A missing file is an empty query.
func (l *Location) Query() (string, error) {
	b, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Replace overwrites the stored query string. The write goes through a
// temporary file and a rename so a crash never leaves half a URL behind.
func (l *Location) Replace(query string) error {
	dir := filepath.Dir(l.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(l.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(query + "\n"); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(name, l.Path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
