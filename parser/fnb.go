package parser

import (
	"strings"

	"github.com/liviaellen/sourmimosa/models"
)

// F&B Destinations columns. City and Google Maps are shared with hotels.
const (
	colVenue = "Venue"
	colType  = "Type"
	colLevel = "Level"
	colLink  = "Link"
)

// starMarkers are counted in the venue name to rate Michelin stars. The
// first is how the star emoji appears in the exported sheet after a
// Mac Roman round trip; the second is the well-formed emoji.
var starMarkers = []string{
	"‚≠êÔ∏è",
	"⭐",
}

// CountStars returns the number of star markers in venue.
func CountStars(venue string) int {
	n := 0
	for _, m := range starMarkers {
		n += strings.Count(venue, m)
	}
	return n
}

// FnB parses the F&B Destinations sheet.
func (p *Parser) FnB(path string) ([]*models.FnBItem, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}

	items := make([]*models.FnBItem, 0, len(rows))
	for i, row := range rows {
		if !hasKey(row, colVenue) {
			p.logger.Debug("[fnb] Row %d skipped: blank %s", rowNumber(i), colVenue)
			continue
		}

		link := singleLink(row, colLink)
		if link == "" {
			p.logger.Debug("[fnb] Row %d skipped: no link for %q", rowNumber(i), row.GetTrimmed(colVenue))
			continue
		}

		venue := row.Get(colVenue)
		items = append(items, &models.FnBItem{
			ID:             itemID(models.SourceFnB, len(items)+1),
			Venue:          strings.TrimSpace(venue),
			City:           row.GetTrimmed(colCity),
			Category:       models.SourceFnB.Category(),
			Type:           row.GetTrimmed(colType),
			Level:          row.GetTrimmed(colLevel),
			MichelinStars:  CountStars(venue),
			InstagramLinks: []string{link},
			GoogleMaps:     row.GetTrimmed(colGoogleMaps),
		})
	}

	p.logger.Info("[fnb] Parsed %d rows → %d items (dropped %d)", len(rows), len(items), len(rows)-len(items))
	return items, nil
}
