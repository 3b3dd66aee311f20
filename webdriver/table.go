package webdriver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/seleniumwithgo/tablesearch/shared"
)

// TablePage drives a searchable, paginated table page described by the
// config's locators. Element references never outlive a single poll.
type TablePage struct {
	d   Driver
	cfg shared.TableSearchConfig
}

// NewTablePage returns a TablePage for the page currently loaded in d.
func NewTablePage(d Driver, cfg shared.TableSearchConfig) *TablePage {
	return &TablePage{d: d, cfg: cfg}
}

func (p *TablePage) await(condition string, cond Condition) error {
	timeout := p.cfg.WaitTimeout.Duration
	err := p.d.WaitWithTimeoutAndInterval(cond, timeout, p.cfg.PollInterval.Duration)
	if errors.Is(err, ErrWaitTimeout) {
		return &TimeoutError{Condition: condition, Timeout: timeout, Err: err}
	}
	return err
}

// retry lets a condition poll again after the DOM changed under it.
func retry(err error) error {
	if isTransient(err) {
		return nil
	}
	return err
}

func findAll(d Driver, l shared.Locator) ([]Element, error) {
	return d.FindElements(l.By, l.Value)
}

func hasClass(class, token string) bool {
	for _, c := range strings.Fields(class) {
		if c == token {
			return true
		}
	}
	return false
}

func (p *TablePage) awaitVisible(what string, l shared.Locator) (Element, error) {
	var found Element
	err := p.await(fmt.Sprintf("%s (%s) to be visible", what, l), func(d Driver) (bool, error) {
		e, err := d.FindElement(l.By, l.Value)
		if err != nil {
			return false, retry(err)
		}
		shown, err := e.IsDisplayed()
		if err != nil || !shown {
			return false, retry(err)
		}
		found = e
		return true, nil
	})
	return found, err
}

// Open navigates to url and waits for the page header.
func (p *TablePage) Open(ctx context.Context, url string) error {
	if err := p.d.Get(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	_, err := p.awaitVisible("page header", p.cfg.Locators.Header)
	return err
}

// CalculateTotalEntries counts data rows across all pages, clicking the next
// control until it carries the disabled class. The table is left on its last
// page.
func (p *TablePage) CalculateTotalEntries(ctx context.Context) (int, error) {
	logger := shared.GetLogger(ctx)
	seen := mapset.NewSet()
	total := 0
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if page > p.cfg.MaxPages {
			return total, &PageLimitError{MaxPages: p.cfg.MaxPages, Counted: total}
		}

		count, status, err := p.awaitPageRows()
		if err != nil {
			return total, fmt.Errorf("page %d: %w", page, err)
		}
		if status != "" && !seen.Add(status) {
			return total, &PaginationStalledError{Page: page}
		}
		total += count
		logger.Debugf("Page %d: %d rows, %d so far", page, count, total)

		disabled, err := p.clickNext()
		if err != nil {
			return total, fmt.Errorf("page %d: %w", page, err)
		}
		if disabled {
			return total, nil
		}
		if err := p.awaitPageChange(status); err != nil {
			if errors.Is(err, ErrWaitTimeout) {
				return total, &PaginationStalledError{Page: page, Err: err}
			}
			return total, err
		}
	}
}

// awaitPageRows waits for the table body to render at least one row, which
// may be the empty-table placeholder, then returns the number of data rows
// and the caption. The caption names the page's range ("Showing 11 to 20"),
// so unlike row content it differs on every page of the table.
func (p *TablePage) awaitPageRows() (count int, status string, err error) {
	err = p.await("table rows to be present", func(d Driver) (bool, error) {
		rows, err := findAll(d, p.cfg.Locators.Rows)
		if err != nil || len(rows) == 0 {
			return false, retry(err)
		}
		data, err := findAll(d, p.cfg.Locators.DataRows)
		if err != nil {
			return false, retry(err)
		}
		if status, err = p.captionText(d); err != nil {
			return false, retry(err)
		}
		count = len(data)
		return true, nil
	})
	return count, status, err
}

// clickNext clicks the next control unless it is disabled, and reports
// whether it was.
func (p *TablePage) clickNext() (disabled bool, err error) {
	l := p.cfg.Locators.NextButton
	err = p.await("next control to be clickable", func(d Driver) (bool, error) {
		next, err := d.FindElement(l.By, l.Value)
		if err != nil {
			return false, retry(err)
		}
		class, err := next.GetAttribute("class")
		if err != nil {
			return false, retry(err)
		}
		if disabled = hasClass(class, p.cfg.Locators.DisabledClass); disabled {
			return true, nil
		}
		if err := next.Click(); err != nil {
			return false, retry(err)
		}
		return true, nil
	})
	return disabled, err
}

func (p *TablePage) awaitPageChange(previous string) error {
	return p.await("the next page to render", func(d Driver) (bool, error) {
		status, err := p.captionText(d)
		if err != nil {
			return false, retry(err)
		}
		return status != previous, nil
	})
}

// Search replaces the search input's contents with query and waits for the
// table to settle. When the query differs from the input's previous contents,
// the caption or the first row has to change; either way the visible row
// count has to hold still for StablePolls consecutive polls.
func (p *TablePage) Search(ctx context.Context, query string) error {
	input, err := p.awaitVisible("search input", p.cfg.Locators.SearchInput)
	if err != nil {
		return err
	}
	previous, err := input.GetAttribute("value")
	if err != nil {
		return fmt.Errorf("reading search input: %w", err)
	}
	before, err := p.awaitText("search results to be present", p.results)
	if err != nil {
		return err
	}
	if previous != "" {
		if err := input.Clear(); err != nil {
			return fmt.Errorf("clearing %q: %w", previous, err)
		}
	}
	if err := input.SendKeys(query); err != nil {
		return fmt.Errorf("typing %q: %w", query, err)
	}
	if _, err := p.awaitVisible("table", p.cfg.Locators.Table); err != nil {
		return err
	}

	shared.GetLogger(ctx).Debugf("Waiting for results of %q to settle", query)
	last, streak := -1, 0
	return p.await(fmt.Sprintf("results for %q to settle", query), func(d Driver) (bool, error) {
		if query != previous {
			text, err := p.results(d)
			if err != nil || text == before {
				return false, retry(err)
			}
		}
		n, err := p.visibleRows(d)
		if err != nil {
			streak = 0
			return false, retry(err)
		}
		if n == last {
			streak++
		} else {
			last, streak = n, 1
		}
		return streak >= p.cfg.StablePolls, nil
	})
}

// CountVisibleRows counts the rows the browser reports as displayed. A stale
// row restarts the count.
func (p *TablePage) CountVisibleRows(ctx context.Context) (int, error) {
	var count int
	err := p.await("visible rows to be counted", func(d Driver) (bool, error) {
		n, err := p.visibleRows(d)
		if err != nil {
			return false, retry(err)
		}
		count = n
		return true, nil
	})
	return count, err
}

func (p *TablePage) visibleRows(d Driver) (int, error) {
	rows, err := findAll(d, p.cfg.Locators.VisibleRows)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		shown, err := row.IsDisplayed()
		if err != nil {
			return 0, err
		}
		if shown {
			n++
		}
	}
	return n, nil
}

func (p *TablePage) captionText(d Driver) (string, error) {
	l := p.cfg.Locators.Caption
	caption, err := d.FindElement(l.By, l.Value)
	if err != nil {
		return "", err
	}
	return caption.Text()
}

// results identifies what the table shows: the caption and the first
// rendered row, so two filters with equal counts still read differently.
func (p *TablePage) results(d Driver) (string, error) {
	text, err := p.captionText(d)
	if err != nil {
		return "", err
	}
	rows, err := findAll(d, p.cfg.Locators.Rows)
	if err != nil || len(rows) == 0 {
		return text, err
	}
	first, err := rows[0].Text()
	return text + "\n" + first, err
}

func (p *TablePage) awaitText(condition string, read func(Driver) (string, error)) (string, error) {
	var text string
	err := p.await(condition, func(d Driver) (bool, error) {
		var err error
		if text, err = read(d); err != nil {
			return false, retry(err)
		}
		return true, nil
	})
	return text, err
}

// Caption reads and parses the table's caption. The raw text is returned
// even when it does not parse.
func (p *TablePage) Caption(ctx context.Context) (shared.Caption, string, error) {
	text, err := p.awaitText("caption to be present", p.captionText)
	if err != nil {
		return shared.Caption{}, "", err
	}
	c, err := shared.ParseCaption(text)
	return c, text, err
}
