// Package adapter contains the infrastructure adapters of the glslpack CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	m "glslpack.dev/pkg/glslpack/internal/model"
)

// ErrInputNotFound is returned when an input file does not exist.
var ErrInputNotFound = errors.New("input not found")

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on, so workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file and returns its contents. A UTF-8 or UTF-16 byte
	// order mark is consumed and UTF-16 text is converted to UTF-8.
	ReadFile(path m.Path) ([]byte, error)

	// ReadRaw loads a file byte for byte.
	ReadRaw(path m.Path) ([]byte, error)

	// WriteFile replaces path with content, creating parent directories. The
	// content becomes visible all at once.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads a text file, normalising its encoding to UTF-8.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	data, err := a.ReadRaw(path)
	if err != nil {
		return nil, err
	}

	text, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return text, nil
}

// ReadRaw loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadRaw(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-named inputs is the point
	data, err := os.ReadFile(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrInputNotFound)
	}

	return data, err
}

// WriteFile writes content to a temporary sibling and renames it over path.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	slog.Debug("Wrote file", "path", target, "bytes", len(content))

	return nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	info, err := os.Stat(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrInputNotFound)
	}

	return info, err
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
