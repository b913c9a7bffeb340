package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/liviaellen/sourmimosa/models"
)

var csvHeader = []string{
	"id", "category", "name", "city", "type", "instagram_links", "google_maps",
}

// CSVWriter exports the portfolio as one flat row per item. Links are
// joined with newlines inside a single quoted cell.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a writer targeting path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the destination file.
func (c *CSVWriter) Path() string { return c.path }

// Encode renders the flattened portfolio with a header row.
func (c *CSVWriter) Encode(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}

	for _, item := range doc.Portfolio {
		row := []string{
			item.ItemID(),
			item.ItemCategory(),
			item.ItemName(),
			item.ItemCity(),
			item.ItemType(),
			strings.Join(item.ItemLinks(), "\n"),
			item.ItemGoogleMaps(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: write row %s: %w", item.ItemID(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the destination file with the flattened portfolio.
func (c *CSVWriter) Write(doc *models.Document) error {
	return WriteAll(doc, c)
}
