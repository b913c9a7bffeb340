package parser

import (
	"github.com/liviaellen/sourmimosa/models"
)

// Beyond Hotels & F&B columns.
const (
	colInstitution = "Brand / Institution"
	colItem        = "Item"
)

// Beyond parses the Beyond Hotels & F&B sheet. Type holds the lifestyle
// segment (Beauty/Grooming, Entertainment, Fashion, Tech, Travel).
func (p *Parser) Beyond(path string) ([]*models.BeyondItem, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}

	items := make([]*models.BeyondItem, 0, len(rows))
	for i, row := range rows {
		if !hasKey(row, colInstitution) {
			p.logger.Debug("[beyond] Row %d skipped: blank %s", rowNumber(i), colInstitution)
			continue
		}

		link := singleLink(row, colLink)
		if link == "" {
			p.logger.Debug("[beyond] Row %d skipped: no link for %q", rowNumber(i), row.GetTrimmed(colInstitution))
			continue
		}

		items = append(items, &models.BeyondItem{
			ID:             itemID(models.SourceBeyond, len(items)+1),
			Brand:          row.GetTrimmed(colInstitution),
			Item:           row.GetTrimmed(colItem),
			City:           row.GetTrimmed(colCity),
			Category:       models.SourceBeyond.Category(),
			Type:           row.GetTrimmed(colType),
			InstagramLinks: []string{link},
			GoogleMaps:     row.GetTrimmed(colGoogleMaps),
		})
	}

	p.logger.Info("[beyond] Parsed %d rows → %d items (dropped %d)", len(rows), len(items), len(rows)-len(items))
	return items, nil
}
