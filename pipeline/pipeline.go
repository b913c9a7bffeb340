// Package pipeline wires the parse, aggregate, write and report steps.
package pipeline

import (
	"fmt"
	"io"

	"github.com/liviaellen/sourmimosa/config"
	"github.com/liviaellen/sourmimosa/models"
	"github.com/liviaellen/sourmimosa/parser"
	"github.com/liviaellen/sourmimosa/services"
	"github.com/liviaellen/sourmimosa/storage"
	"github.com/liviaellen/sourmimosa/utils"
)

// Run parses the three sources, writes the document (and the CSV export when
// configured) and prints the summary to out. Nothing is written unless all
// sources parse.
func Run(cfg *config.Config, logger *utils.Logger, out io.Writer) (*models.Document, error) {
	logger.Info("Sources — hotels: %q | fnb: %q | beyond: %q", cfg.HotelsPath, cfg.FnBPath, cfg.BeyondPath)

	p := parser.New(services.DefaultLinkExtractor(), logger)
	res, err := p.Parse(parser.Sources{
		Hotels: cfg.HotelsPath,
		FnB:    cfg.FnBPath,
		Beyond: cfg.BeyondPath,
	})
	if err != nil {
		return nil, err
	}

	doc := services.Aggregate(res.Hotels, res.FnB, res.Beyond)

	writers := []storage.DocumentWriter{storage.NewJSONWriter(cfg.OutputPath)}
	if cfg.CSVExportPath != "" {
		writers = append(writers, storage.NewCSVWriter(cfg.CSVExportPath))
	}
	if err := storage.WriteAll(doc, writers...); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	for _, w := range writers {
		logger.Debug("Wrote %d items to %s", doc.Stats.TotalItems, w.Path())
	}

	summary := services.NewSummaryService(logger)
	summary.Print(out, summary.Generate(doc, cfg.OutputPath, cfg.CSVExportPath))
	return doc, nil
}
