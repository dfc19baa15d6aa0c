package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Read for a missing file.
var ErrNotFound = errors.New("store: file not found")

// Read decodes the file at path into out, choosing the format from the
// extension.
func Read(path string, out any) error {
	b, err := readFile(path)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err := Unmarshal(b, FormatFor(path), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Write encodes v in f and atomically replaces path with it.
func Write(path string, v any, f Format, mode os.FileMode) error {
	b, err := Marshal(v, f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, b, mode)
}

// readFile reads the file at path into b; a missing file yields nil, nil.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
