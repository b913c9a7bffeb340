package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/liviaellen/sourmimosa/models"
)

func sampleDocument() *models.Document {
	return &models.Document{
		Portfolio: []models.PortfolioItem{
			&models.HotelItem{
				ID: "hotel_1", Brand: "Acme", Property: "Acme Ginza", City: "東京",
				Category: models.CategoryHotels, InstagramLinks: []string{"https://www.instagram.com/acme"},
				Type: "hotel",
			},
			&models.FnBItem{
				ID: "fnb_1", Venue: "Le Ciel ‚≠êÔ∏è‚≠êÔ∏è", City: "Paris", Category: models.CategoryFnB,
				Type: "Restaurant", Level: "Fine", MichelinStars: 2,
				InstagramLinks: []string{"https://www.instagram.com/leciel"},
			},
			&models.BeyondItem{
				ID: "beyond_1", Brand: "Dior", Item: "Spa", City: "Paris", Category: models.CategoryBeyond,
				Type: "Beauty/Grooming", InstagramLinks: []string{"https://www.instagram.com/p/dior/?a=1&b=2"},
			},
		},
		Stats: models.Stats{TotalItems: 3, Hotels: 1, FnB: 1, Beyond: 1},
	}
}

func TestEncodeFormatting(t *testing.T) {
	data, err := NewJSONWriter("portfolio_data.json").Encode(sampleDocument())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "{\n  \"portfolio\": [\n    {\n      \"id\": \"hotel_1\",") {
		t.Errorf("unexpected indentation:\n%s", out[:80])
	}
	for _, want := range []string{"東京", "Le Ciel ‚≠êÔ∏è‚≠êÔ∏è", "Hotels & Resorts", "?a=1&b=2", `"michelinStars": 2`} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q literally", want)
		}
	}
	if strings.Contains(out, `\u`) {
		t.Errorf("output contains escaped characters:\n%s", out)
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	data, err := NewJSONWriter("portfolio_data.json").Encode(sampleDocument())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := string(data)

	orders := [][]string{
		{`"id": "hotel_1"`, `"brand": "Acme"`, `"property"`, `"city": "東京"`, `"category": "Hotels & Resorts"`, `"brandCategory"`, `"https://www.instagram.com/acme"`, `"googleMaps"`, `"type": "hotel"`},
		{`"id": "fnb_1"`, `"venue"`, `"city": "Paris"`, `"category": "F&B Destinations"`, `"type": "Restaurant"`, `"level"`, `"michelinStars"`, `"https://www.instagram.com/leciel"`},
		{`"id": "beyond_1"`, `"brand": "Dior"`, `"item": "Spa"`, `"category": "Beyond Hotels & F&B"`, `"type": "Beauty/Grooming"`},
		{`"stats"`, `"totalItems": 3`, `"hotels": 1`, `"fnb": 1`, `"beyond": 1`},
	}

	for _, keys := range orders {
		last := -1
		for _, k := range keys {
			idx := strings.Index(out, k)
			if idx < 0 {
				t.Errorf("missing %s", k)
				continue
			}
			if idx < last {
				t.Errorf("%s out of order", k)
			}
			last = idx
		}
	}
}

func TestJSONWriterOverwritesAndCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio_data.json")
	w := NewJSONWriter(path)

	if err := w.Write(&models.Document{Portfolio: []models.PortfolioItem{}}); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := w.Write(sampleDocument()); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var decoded struct {
		Portfolio []map[string]any `json:"portfolio"`
		Stats     models.Stats     `json:"stats"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Portfolio) != 3 || decoded.Stats.TotalItems != 3 {
		t.Errorf("file was not overwritten: %d items, stats %+v", len(decoded.Portfolio), decoded.Stats)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestJSONWriterFailureLeavesExistingFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := NewJSONWriter(filepath.Join(blocker, "portfolio_data.json")).Write(sampleDocument())
	if err == nil {
		t.Fatal("expected error when parent path is a file")
	}

	data, err := os.ReadFile(blocker)
	if err != nil || string(data) != "x" {
		t.Errorf("existing file modified: %q, %v", data, err)
	}
}
