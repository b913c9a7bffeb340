package storage

import "github.com/liviaellen/sourmimosa/models"

// DocumentWriter renders the aggregated document for one output file.
type DocumentWriter interface {
	Path() string
	Encode(doc *models.Document) ([]byte, error)
}
