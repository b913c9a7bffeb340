package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/liviaellen/sourmimosa/models"
)

func TestCSVWriterFlattensPortfolio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "portfolio.csv")
	doc := sampleDocument()
	hotel := doc.Portfolio[0].(*models.HotelItem)
	hotel.InstagramLinks = append(hotel.InstagramLinks, "https://www.instagram.com/reel/acme")

	if err := NewCSVWriter(path).Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}

	header := records[0]
	if header[0] != "id" || header[5] != "instagram_links" {
		t.Errorf("unexpected header %v", header)
	}

	if records[1][5] != "https://www.instagram.com/acme\nhttps://www.instagram.com/reel/acme" {
		t.Errorf("links cell: got %q", records[1][5])
	}

	tests := []struct {
		row  int
		name string
		typ  string
	}{
		{1, "Acme Ginza", "hotel"},
		{2, "Le Ciel ‚≠êÔ∏è‚≠êÔ∏è", "Restaurant"},
		{3, "Dior - Spa", "Beauty/Grooming"},
	}
	for _, tt := range tests {
		rec := records[tt.row]
		if rec[2] != tt.name || rec[4] != tt.typ {
			t.Errorf("row %d: got name=%q type=%q, want %q/%q", tt.row, rec[2], rec[4], tt.name, tt.typ)
		}
	}
}
