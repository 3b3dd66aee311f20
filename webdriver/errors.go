package webdriver

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrWaitTimeout is wrapped by every error caused by a wait running out
	// of time.
	ErrWaitTimeout = errors.New("wait timed out")
	// ErrStaleElement means an element reference no longer points into the
	// current DOM.
	ErrStaleElement = errors.New("stale element reference")
	// ErrNoSuchElement means a locator matched nothing.
	ErrNoSuchElement = errors.New("no such element")
)

// TimeoutError names the condition that was not met within the timeout.
type TimeoutError struct {
	Condition string
	Timeout   time.Duration
	Err       error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %v waiting for %s: %v", e.Timeout, e.Condition, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// PageLimitError is returned when a paginated table has more pages than the
// configured maximum, which usually means the next control never disables.
type PageLimitError struct {
	MaxPages int
	// Counted is the number of rows seen before giving up.
	Counted int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("pagination exceeded %d pages (%d rows counted); the next control never disabled", e.MaxPages, e.Counted)
}

// PaginationStalledError is returned when clicking the next control does
// not lead to a new page.
type PaginationStalledError struct {
	Page int
	// Err is the wait error when the page did not change at all; nil when
	// the table cycled back to an earlier page.
	Err error
}

func (e *PaginationStalledError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("next control on page %d did not change the page: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("page %d repeats an earlier page", e.Page)
}

func (e *PaginationStalledError) Unwrap() error {
	return e.Err
}

// isTransient reports errors that a polling condition should treat as "not
// yet" and retry: the DOM changed under us or the element is not there yet.
func isTransient(err error) bool {
	return errors.Is(err, ErrStaleElement) || errors.Is(err, ErrNoSuchElement)
}
