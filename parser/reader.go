package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/liviaellen/sourmimosa/models"
)

// ErrSourceMissing is returned when a source spreadsheet does not exist.
var ErrSourceMissing = errors.New("source file not found")

var utf8BOM = []byte("\xef\xbb\xbf")

// ReadRows loads a CSV file with a header row into Rows, in file order.
// Cells beyond the header are ignored and missing cells are left out of
// the Row, so Row.Get reports them as "".
func ReadRows(path string) ([]models.Row, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}

	rows, err := parseRows(bytes.TrimPrefix(content, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("csv: parse %q: %w", path, err)
	}
	return rows, nil
}

func parseRows(content []byte) ([]models.Row, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []models.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := make(models.Row, len(header))
		for i, col := range header {
			if i >= len(record) {
				break
			}
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
