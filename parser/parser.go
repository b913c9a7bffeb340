// Package parser turns the three portfolio spreadsheets into normalised items.
package parser

import (
	"fmt"
	"strings"

	"github.com/liviaellen/sourmimosa/models"
	"github.com/liviaellen/sourmimosa/services"
	"github.com/liviaellen/sourmimosa/utils"
)

// Sources names the three input files.
type Sources struct {
	Hotels string
	FnB    string
	Beyond string
}

// Result holds the items of each source in file order.
type Result struct {
	Hotels []*models.HotelItem
	FnB    []*models.FnBItem
	Beyond []*models.BeyondItem
}

// Parser reads the portfolio spreadsheets.
type Parser struct {
	links  *services.LinkExtractor
	logger *utils.Logger
}

// New creates a Parser using the given link extractor.
func New(links *services.LinkExtractor, logger *utils.Logger) *Parser {
	return &Parser{links: links, logger: logger}
}

// Parse reads hotels, F&B and beyond in that order. The first failing
// source aborts the run.
func (p *Parser) Parse(src Sources) (*Result, error) {
	hotels, err := p.Hotels(src.Hotels)
	if err != nil {
		return nil, fmt.Errorf("hotels: %w", err)
	}
	fnb, err := p.FnB(src.FnB)
	if err != nil {
		return nil, fmt.Errorf("fnb: %w", err)
	}
	beyond, err := p.Beyond(src.Beyond)
	if err != nil {
		return nil, fmt.Errorf("beyond: %w", err)
	}
	return &Result{Hotels: hotels, FnB: fnb, Beyond: beyond}, nil
}

// itemID builds "<prefix>_<n>" with n counted over kept rows.
func itemID(src models.SourceType, n int) string {
	return fmt.Sprintf("%s_%d", src, n)
}

// hasKey reports whether the primary key cell holds any non-blank text.
func hasKey(row models.Row, col string) bool {
	return strings.TrimSpace(row.Get(col)) != ""
}

// singleLink returns the trimmed link cell, or "" when it is empty or a dash.
// SOON is not treated as a placeholder here.
func singleLink(row models.Row, col string) string {
	link := row.GetTrimmed(col)
	if link == "-" {
		return ""
	}
	return link
}

// rowNumber converts a zero-based data index to the spreadsheet line number.
func rowNumber(i int) int {
	return i + 2
}
