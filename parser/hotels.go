package parser

import (
	"github.com/liviaellen/sourmimosa/models"
)

// Hotels & Resorts columns.
const (
	colBrand         = "Brand"
	colProperty      = "Property"
	colCity          = "City"
	colBrandCategory = "Brand Category"
	colIGPost        = "IG Post / Carousel"
	colIGHighlight   = "IG Highlight"
	colIGReels       = "IG Reels"
	colGoogleMaps    = "Google Maps"
)

// Hotels parses the Hotels & Resorts sheet. Links from the post, highlight
// and reels columns are combined; rows with none are dropped.
func (p *Parser) Hotels(path string) ([]*models.HotelItem, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}

	items := make([]*models.HotelItem, 0, len(rows))
	for i, row := range rows {
		if !hasKey(row, colBrand) {
			p.logger.Debug("[hotels] Row %d skipped: blank %s", rowNumber(i), colBrand)
			continue
		}

		links := p.links.ExtractAll(row.Get(colIGPost), row.Get(colIGHighlight), row.Get(colIGReels))
		if len(links) == 0 {
			p.logger.Debug("[hotels] Row %d skipped: no Instagram links for %q", rowNumber(i), row.GetTrimmed(colBrand))
			continue
		}

		items = append(items, &models.HotelItem{
			ID:             itemID(models.SourceHotel, len(items)+1),
			Brand:          row.GetTrimmed(colBrand),
			Property:       row.GetTrimmed(colProperty),
			City:           row.GetTrimmed(colCity),
			Category:       models.SourceHotel.Category(),
			BrandCategory:  row.GetTrimmed(colBrandCategory),
			InstagramLinks: links,
			GoogleMaps:     row.GetTrimmed(colGoogleMaps),
			Type:           string(models.SourceHotel),
		})
	}

	p.logger.Info("[hotels] Parsed %d rows → %d items (dropped %d)", len(rows), len(items), len(rows)-len(items))
	return items, nil
}
