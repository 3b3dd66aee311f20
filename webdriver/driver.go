//go:generate mockgen -destination mock_webdriver/driver_mock.go github.com/seleniumwithgo/tablesearch/webdriver Driver,Element

package webdriver

import "time"

// Condition is polled by Driver.WaitWithTimeoutAndInterval until it returns
// true or an error.
type Condition func(d Driver) (bool, error)

// Driver is the subset of browser automation the table search routines
// need. It mirrors selenium.WebDriver so that other backends can stand in
// for it. Locator strategies are the shared.By* constants.
type Driver interface {
	// Get navigates to url and waits for the page to load.
	Get(url string) error
	// FindElement returns the first matching element, or an error wrapping
	// ErrNoSuchElement.
	FindElement(by, value string) (Element, error)
	// FindElements returns all matching elements, possibly none.
	FindElements(by, value string) ([]Element, error)
	// WaitWithTimeoutAndInterval polls condition every interval. It returns
	// an error wrapping ErrWaitTimeout if condition is not met in time, or
	// the first error condition returns.
	WaitWithTimeoutAndInterval(condition Condition, timeout, interval time.Duration) error
	// Screenshot returns a PNG of the current viewport.
	Screenshot() ([]byte, error)
	// Quit ends the browser session.
	Quit() error
}

// Element is a reference to a single DOM element. References go stale once
// the page re-renders; operations on a stale element return an error
// wrapping ErrStaleElement.
type Element interface {
	Text() (string, error)
	GetAttribute(name string) (string, error)
	IsDisplayed() (bool, error)
	SendKeys(keys string) error
	// Clear empties a text input.
	Clear() error
	Click() error
}
