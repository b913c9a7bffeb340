package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/liviaellen/sourmimosa/models"
)

type staged struct {
	tmp  string
	dest string
}

// WriteAll encodes doc for every writer and stages each result in a
// temporary file next to its destination. Only when every output is staged
// are they renamed into place, so an encode or write failure leaves all
// existing files untouched.
func WriteAll(doc *models.Document, writers ...DocumentWriter) error {
	files := make([]staged, 0, len(writers))
	defer func() {
		for _, f := range files {
			_ = os.Remove(f.tmp)
		}
	}()

	for _, w := range writers {
		data, err := w.Encode(doc)
		if err != nil {
			return err
		}
		tmp, err := stage(w.Path(), data)
		if err != nil {
			return err
		}
		files = append(files, staged{tmp: tmp, dest: w.Path()})
	}

	for _, f := range files {
		if err := os.Rename(f.tmp, f.dest); err != nil {
			return fmt.Errorf("storage: rename into %q: %w", f.dest, err)
		}
	}
	return nil
}

// stage writes data to a temporary file in the directory of path.
func stage(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("storage: create temp file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("storage: write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("storage: close %q: %w", path, err)
	}
	if err := os.Chmod(name, 0644); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("storage: chmod %q: %w", path, err)
	}
	return name, nil
}
