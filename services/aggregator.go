package services

import (
	"github.com/liviaellen/sourmimosa/models"
)

// Aggregate concatenates hotels, F&B and beyond items in that order and
// counts each source.
func Aggregate(hotels []*models.HotelItem, fnb []*models.FnBItem, beyond []*models.BeyondItem) *models.Document {
	portfolio := make([]models.PortfolioItem, 0, len(hotels)+len(fnb)+len(beyond))
	for _, h := range hotels {
		portfolio = append(portfolio, h)
	}
	for _, f := range fnb {
		portfolio = append(portfolio, f)
	}
	for _, b := range beyond {
		portfolio = append(portfolio, b)
	}

	return &models.Document{
		Portfolio: portfolio,
		Stats: models.Stats{
			TotalItems: len(portfolio),
			Hotels:     len(hotels),
			FnB:        len(fnb),
			Beyond:     len(beyond),
		},
	}
}
