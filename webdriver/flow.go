package webdriver

import (
	"context"
	"fmt"

	"github.com/seleniumwithgo/tablesearch/shared"
)

// Steps of ValidateSearch, used to prefix its errors.
const (
	StepNavigate     = "navigate"
	StepCountTotal   = "count total entries"
	StepSearch       = "search"
	StepCountVisible = "count visible rows"
	StepCaption      = "parse caption"
	StepVerify       = "verify"
)

// ValidateSearch loads the table page at url, counts its entries across all
// pages, searches for cfg.Query, counts the visible rows, parses the caption
// and checks everything against cfg.Expect. The report holds whatever was
// observed before a failure. An invalid cfg fails before the browser is
// touched.
func ValidateSearch(ctx context.Context, d Driver, url string, cfg shared.TableSearchConfig) (shared.SearchReport, error) {
	logger := shared.GetLogger(ctx)
	report := shared.SearchReport{Query: cfg.Query}
	if err := cfg.Validate(); err != nil {
		return report, err
	}
	page := NewTablePage(d, cfg)

	logger.Infof("Opening %s", url)
	if err := page.Open(ctx, url); err != nil {
		return report, fmt.Errorf("%s: %w", StepNavigate, err)
	}

	total, err := page.CalculateTotalEntries(ctx)
	if err != nil {
		return report, fmt.Errorf("%s: %w", StepCountTotal, err)
	}
	report.TotalEntries = total
	logger.Infof("Table has %d entries", total)

	if err := page.Search(ctx, cfg.Query); err != nil {
		return report, fmt.Errorf("%s: %w", StepSearch, err)
	}

	visible, err := page.CountVisibleRows(ctx)
	if err != nil {
		return report, fmt.Errorf("%s: %w", StepCountVisible, err)
	}
	report.VisibleRows = visible
	logger.Infof("Search for %q shows %d rows", cfg.Query, visible)

	caption, text, err := page.Caption(ctx)
	report.CaptionText = text
	if err != nil {
		return report, fmt.Errorf("%s: %w", StepCaption, err)
	}
	report.Caption = caption
	logger.Infof("Caption reports %s", caption)

	if err := report.Verify(cfg.Expect); err != nil {
		return report, fmt.Errorf("%s: %w", StepVerify, err)
	}
	return report, nil
}
