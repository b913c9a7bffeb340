package models

import "strings"

// Category labels written into every item of a source.
const (
	CategoryHotels = "Hotels & Resorts"
	CategoryFnB    = "F&B Destinations"
	CategoryBeyond = "Beyond Hotels & F&B"
)

// SourceType identifies one of the three portfolio spreadsheets.
type SourceType string

const (
	SourceHotel  SourceType = "hotel"
	SourceFnB    SourceType = "fnb"
	SourceBeyond SourceType = "beyond"
)

// Category returns the fixed category label for the source type.
func (s SourceType) Category() string {
	switch s {
	case SourceHotel:
		return CategoryHotels
	case SourceFnB:
		return CategoryFnB
	case SourceBeyond:
		return CategoryBeyond
	}
	return ""
}

// Row is one CSV record keyed by header name.
type Row map[string]string

// Get returns the cell for col, or "" when the column is absent.
func (r Row) Get(col string) string {
	return r[col]
}

// GetTrimmed is Get with surrounding whitespace removed.
func (r Row) GetTrimmed(col string) string {
	return strings.TrimSpace(r[col])
}

// PortfolioItem is a normalised record from any of the three sources.
type PortfolioItem interface {
	ItemID() string
	ItemCategory() string
	ItemName() string
	ItemCity() string
	ItemType() string
	ItemLinks() []string
	ItemGoogleMaps() string
}

// HotelItem is a row from the Hotels & Resorts sheet.
type HotelItem struct {
	ID             string   `json:"id"`
	Brand          string   `json:"brand"`
	Property       string   `json:"property"`
	City           string   `json:"city"`
	Category       string   `json:"category"`
	BrandCategory  string   `json:"brandCategory"`
	InstagramLinks []string `json:"instagramLinks"`
	GoogleMaps     string   `json:"googleMaps"`
	Type           string   `json:"type"`
}

func (h *HotelItem) ItemID() string         { return h.ID }
func (h *HotelItem) ItemCategory() string   { return h.Category }
func (h *HotelItem) ItemCity() string       { return h.City }
func (h *HotelItem) ItemType() string       { return h.Type }
func (h *HotelItem) ItemLinks() []string    { return h.InstagramLinks }
func (h *HotelItem) ItemGoogleMaps() string { return h.GoogleMaps }

// ItemName prefers the property name and falls back to the brand.
func (h *HotelItem) ItemName() string {
	if h.Property != "" {
		return h.Property
	}
	return h.Brand
}

// FnBItem is a row from the F&B Destinations sheet.
// MichelinStars is the raw count of star markers in the venue name.
type FnBItem struct {
	ID             string   `json:"id"`
	Venue          string   `json:"venue"`
	City           string   `json:"city"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	Level          string   `json:"level"`
	MichelinStars  int      `json:"michelinStars"`
	InstagramLinks []string `json:"instagramLinks"`
	GoogleMaps     string   `json:"googleMaps"`
}

func (f *FnBItem) ItemID() string         { return f.ID }
func (f *FnBItem) ItemCategory() string   { return f.Category }
func (f *FnBItem) ItemName() string       { return f.Venue }
func (f *FnBItem) ItemCity() string       { return f.City }
func (f *FnBItem) ItemType() string       { return f.Type }
func (f *FnBItem) ItemLinks() []string    { return f.InstagramLinks }
func (f *FnBItem) ItemGoogleMaps() string { return f.GoogleMaps }

// BeyondItem is a row from the Beyond Hotels & F&B sheet.
type BeyondItem struct {
	ID             string   `json:"id"`
	Brand          string   `json:"brand"`
	Item           string   `json:"item"`
	City           string   `json:"city"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	InstagramLinks []string `json:"instagramLinks"`
	GoogleMaps     string   `json:"googleMaps"`
}

func (b *BeyondItem) ItemID() string         { return b.ID }
func (b *BeyondItem) ItemCategory() string   { return b.Category }
func (b *BeyondItem) ItemCity() string       { return b.City }
func (b *BeyondItem) ItemType() string       { return b.Type }
func (b *BeyondItem) ItemLinks() []string    { return b.InstagramLinks }
func (b *BeyondItem) ItemGoogleMaps() string { return b.GoogleMaps }

// ItemName is "<brand> - <item>" when both are present.
func (b *BeyondItem) ItemName() string {
	switch {
	case b.Item == "":
		return b.Brand
	case b.Brand == "":
		return b.Item
	}
	return b.Brand + " - " + b.Item
}

// Stats holds the item counts written next to the portfolio.
type Stats struct {
	TotalItems int `json:"totalItems"`
	Hotels     int `json:"hotels"`
	FnB        int `json:"fnb"`
	Beyond     int `json:"beyond"`
}

// Document is the aggregated output file.
type Document struct {
	Portfolio []PortfolioItem `json:"portfolio"`
	Stats     Stats           `json:"stats"`
}

// CityCount is one line of the per-city breakdown.
type CityCount struct {
	City  string
	Count int
}

// Summary holds the figures reported on the console after a run.
type Summary struct {
	Stats      Stats
	OutputPath string
	ExportPath string
	Cities     []CityCount
	LinkCount  int
}
