//go:build small

package webdriver_test

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seleniumwithgo/tablesearch/fixture"
	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/seleniumwithgo/tablesearch/webdriver"
)

// fakeTable is an in-memory Driver for the table page. Each poll of
// WaitWithTimeoutAndInterval is one tick of the page's clock; a typed query
// is applied searchDelay ticks after the last keystroke.
type fakeTable struct {
	locators   shared.Locators
	rows       []fixture.Employee
	pageLength int
	page       int
	query      string

	typed       string
	pending     bool
	searchDelay int

	stuck, wrap, endless bool
	// hidden names rows the browser reports as not displayed.
	hidden map[string]bool
	// staleReads makes that many upcoming row reads fail as stale.
	staleReads int
	getErr     error

	clicks int
	polls  int
}

func newFakeTable() *fakeTable {
	return &fakeTable{
		locators:    shared.DefaultLocators(),
		rows:        fixture.Employees,
		pageLength:  10,
		searchDelay: 3,
	}
}

func (f *fakeTable) filtered() [][]string {
	if f.endless {
		out := make([][]string, f.pageLength)
		for i := range out {
			out[i] = []string{fmt.Sprintf("Generated %d.%d", f.page+1, i+1)}
		}
		return out
	}
	matches := fixture.Matching(f.rows, f.query)
	out := make([][]string, len(matches))
	for i, e := range matches {
		out[i] = e.Cells()
	}
	return out
}

func (f *fakeTable) pages() int {
	if f.endless {
		return f.page + 2
	}
	n := (len(f.filtered()) + f.pageLength - 1) / f.pageLength
	if n < 1 {
		return 1
	}
	return n
}

// pageRows returns the rows rendered on the current page.
func (f *fakeTable) pageRows() [][]string {
	if f.endless {
		return f.filtered()
	}
	list := f.filtered()
	start := f.page * f.pageLength
	end := start + f.pageLength
	if end > len(list) {
		end = len(list)
	}
	if start > end {
		return nil
	}
	return list[start:end]
}

func (f *fakeTable) nextDisabled() bool {
	return !f.stuck && !f.wrap && !f.endless && f.page >= f.pages()-1
}

func (f *fakeTable) caption() string {
	if f.endless {
		return fmt.Sprintf("Showing page %d", f.page+1)
	}
	list := f.filtered()
	start, end := f.page*f.pageLength, f.page*f.pageLength+len(f.pageRows())
	if len(list) > 0 {
		start++
	}
	text := fmt.Sprintf("Showing %d to %d of %d entries", start, end, len(list))
	if len(list) != len(f.rows) {
		text += fmt.Sprintf(" (filtered from %d total entries)", len(f.rows))
	}
	return text
}

func (f *fakeTable) clickNext() error {
	if f.nextDisabled() || f.stuck {
		return nil
	}
	f.clicks++
	if f.wrap && f.page >= f.pages()-1 {
		f.page = 0
	} else {
		f.page++
	}
	return nil
}

func (f *fakeTable) tick() {
	f.polls++
	if !f.pending {
		return
	}
	if f.searchDelay > 0 {
		f.searchDelay--
		return
	}
	f.pending = false
	f.query = f.typed
	f.page = 0
}

func (f *fakeTable) element(text string) *fakeElement {
	return &fakeElement{f: f, text: text, displayed: true}
}

func (f *fakeTable) rowElements(includePlaceholder bool) []webdriver.Element {
	rows := f.pageRows()
	if len(rows) == 0 && includePlaceholder {
		return []webdriver.Element{f.element("No matching records found")}
	}
	out := make([]webdriver.Element, len(rows))
	for i, r := range rows {
		text := strings.Join(r, " ")
		e := f.element(text)
		e.row = true
		e.displayed = !f.hidden[r[0]]
		out[i] = e
	}
	return out
}

func (f *fakeTable) Get(url string) error {
	return f.getErr
}

func (f *fakeTable) FindElement(by, value string) (webdriver.Element, error) {
	elements, err := f.FindElements(by, value)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: %s=%s", webdriver.ErrNoSuchElement, by, value)
	}
	return elements[0], nil
}

func (f *fakeTable) FindElements(by, value string) ([]webdriver.Element, error) {
	l := f.locators
	switch (shared.Locator{By: by, Value: value}) {
	case l.Header, l.Table:
		return []webdriver.Element{f.element("")}, nil
	case l.Rows:
		return f.rowElements(true), nil
	case l.DataRows, l.VisibleRows:
		return f.rowElements(false), nil
	case l.Caption:
		return []webdriver.Element{f.element(f.caption())}, nil
	case l.NextButton:
		class := "paginate_button next"
		if f.nextDisabled() {
			class += " disabled"
		}
		e := f.element("Next")
		e.class = class
		e.onClick = f.clickNext
		return []webdriver.Element{e}, nil
	case l.SearchInput:
		e := f.element("")
		e.value = f.typed
		e.onKeys = func(keys string) error {
			f.typed += keys
			f.pending = true
			return nil
		}
		e.onClear = func() error {
			f.typed = ""
			f.pending = true
			return nil
		}
		return []webdriver.Element{e}, nil
	}
	return nil, nil
}

func (f *fakeTable) WaitWithTimeoutAndInterval(condition webdriver.Condition, timeout, interval time.Duration) error {
	for i := 0; i <= int(timeout/interval); i++ {
		f.tick()
		done, err := condition(f)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return fmt.Errorf("%w: after %v", webdriver.ErrWaitTimeout, timeout)
}

func (f *fakeTable) Screenshot() ([]byte, error) {
	return nil, errors.New("no screen")
}

func (f *fakeTable) Quit() error {
	return nil
}

type fakeElement struct {
	f         *fakeTable
	text      string
	class     string
	value     string
	displayed bool
	row       bool
	onClick   func() error
	onKeys    func(string) error
	onClear   func() error
}

func (e *fakeElement) stale() error {
	if e.row && e.f.staleReads > 0 {
		e.f.staleReads--
		return fmt.Errorf("%w: row re-rendered", webdriver.ErrStaleElement)
	}
	return nil
}

func (e *fakeElement) Text() (string, error) {
	if err := e.stale(); err != nil {
		return "", err
	}
	return e.text, nil
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	switch name {
	case "class":
		return e.class, nil
	case "value":
		return e.value, nil
	}
	return "", nil
}

func (e *fakeElement) IsDisplayed() (bool, error) {
	if err := e.stale(); err != nil {
		return false, err
	}
	return e.displayed, nil
}

func (e *fakeElement) SendKeys(keys string) error {
	if e.onKeys == nil {
		return errors.New("element not interactable")
	}
	return e.onKeys(keys)
}

func (e *fakeElement) Clear() error {
	if e.onClear == nil {
		return errors.New("element not interactable")
	}
	return e.onClear()
}

func (e *fakeElement) Click() error {
	if e.onClick == nil {
		return nil
	}
	return e.onClick()
}
