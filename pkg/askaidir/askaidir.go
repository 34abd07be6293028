// Package askaidir encapsulates all path knowledge for the per-user .askai
// directory. It provides a Dir value object with accessors for the credential
// and configuration files, plus the write operations the setup wizard needs.
package askaidir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a value object that resolves paths within a .askai directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureRoot to create the directory.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Default returns the Dir at its conventional location, ~/.askai.
func Default() (Dir, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir{}, fmt.Errorf("askaidir: resolve home dir: %w", err)
	}

	return New(filepath.Join(home, ".askai")), nil
}

// Root returns the absolute path to the .askai directory.
func (d Dir) Root() string { return d.root }

// KeyPath returns the path to the API key file.
func (d Dir) KeyPath() string { return filepath.Join(d.root, "key") }

// ConfigPath returns the path to the configuration file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// Exists reports whether the .askai root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// HasKey reports whether a key file is already present.
func (d Dir) HasKey() bool {
	info, err := os.Stat(d.KeyPath())

	return err == nil && info.Mode().IsRegular()
}

// EnsureRoot creates the .askai root directory if it is missing. It is safe
// to call multiple times (idempotent). The directory is private to the owner
// because it holds the API key.
func (d Dir) EnsureRoot() error {
	if err := os.MkdirAll(d.root, 0o700); err != nil {
		return fmt.Errorf("askaidir: create root: %w", err)
	}

	return nil
}

// WriteKey stores the raw credential string, replacing any prior key file.
// The parent directory is created on demand and the file is owner-only.
func (d Dir) WriteKey(key string) error {
	if err := d.EnsureRoot(); err != nil {
		return err
	}

	if err := os.WriteFile(d.KeyPath(), []byte(key), 0o600); err != nil {
		return fmt.Errorf("askaidir: write key: %w", err)
	}

	return nil
}

// ReadKey returns the stored credential with surrounding whitespace trimmed.
func (d Dir) ReadKey() (string, error) {
	data, err := os.ReadFile(d.KeyPath())
	if err != nil {
		return "", fmt.Errorf("askaidir: read key: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
