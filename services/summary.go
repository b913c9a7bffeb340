package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/liviaellen/sourmimosa/models"
	"github.com/liviaellen/sourmimosa/utils"
)

const (
	cityColumnWidth = 28
	maxCityRows     = 10
)

// SummaryService reports what a run produced.
type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate computes the run summary for doc.
func (s *SummaryService) Generate(doc *models.Document, outputPath, exportPath string) *models.Summary {
	sum := &models.Summary{
		Stats:      doc.Stats,
		OutputPath: outputPath,
		ExportPath: exportPath,
	}

	byCity := make(map[string]int)
	for _, item := range doc.Portfolio {
		sum.LinkCount += len(item.ItemLinks())
		if city := item.ItemCity(); city != "" {
			byCity[city]++
		}
	}

	for city, n := range byCity {
		sum.Cities = append(sum.Cities, models.CityCount{City: city, Count: n})
	}
	sort.Slice(sum.Cities, func(i, j int) bool {
		if sum.Cities[i].Count != sum.Cities[j].Count {
			return sum.Cities[i].Count > sum.Cities[j].Count
		}
		return sum.Cities[i].City < sum.Cities[j].City
	})

	s.logger.Debug("[summary] %d items, %d links, %d cities", sum.Stats.TotalItems, sum.LinkCount, len(sum.Cities))
	return sum
}

// Print writes the human readable summary to w.
func (s *SummaryService) Print(w io.Writer, sum *models.Summary) {
	fmt.Fprintf(w, "✅ Processed %d portfolio items\n", sum.Stats.TotalItems)
	fmt.Fprintf(w, "   - %s: %d\n", models.CategoryHotels, sum.Stats.Hotels)
	fmt.Fprintf(w, "   - %s: %d\n", models.CategoryFnB, sum.Stats.FnB)
	fmt.Fprintf(w, "   - %s: %d\n", models.CategoryBeyond, sum.Stats.Beyond)

	if len(sum.Cities) > 0 {
		thin := strings.Repeat("─", cityColumnWidth+12)
		fmt.Fprintf(w, "\n   Items by city (%d links)\n", sum.LinkCount)
		fmt.Fprintf(w, "   %s\n", thin)

		cities := sum.Cities
		if len(cities) > maxCityRows {
			cities = cities[:maxCityRows]
		}
		for _, c := range cities {
			name := runewidth.Truncate(c.City, cityColumnWidth, "...")
			fmt.Fprintf(w, "   %s %4d\n", runewidth.FillRight(name, cityColumnWidth), c.Count)
		}
		if rest := len(sum.Cities) - len(cities); rest > 0 {
			fmt.Fprintf(w, "   ... and %d more\n", rest)
		}
	}

	fmt.Fprintf(w, "\n📄 Data saved to %s\n", sum.OutputPath)
	if sum.ExportPath != "" {
		fmt.Fprintf(w, "📄 CSV export saved to %s\n", sum.ExportPath)
	}
}
