package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/liviaellen/sourmimosa/models"
)

// JSONWriter writes the aggregated document as indented JSON.
type JSONWriter struct {
	path string
}

// NewJSONWriter returns a writer targeting path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Path returns the destination file.
func (j *JSONWriter) Path() string { return j.path }

// Encode renders doc with two-space indentation and non-ASCII text left
// unescaped.
func (j *JSONWriter) Encode(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("json: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the destination file with doc.
func (j *JSONWriter) Write(doc *models.Document) error {
	return WriteAll(doc, j)
}
