package webdriver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/sirupsen/logrus"
)

// Session is a browser session owned by a single run. It must be closed
// exactly once; later calls to Close are no-ops.
type Session struct {
	Driver

	// ID tags the session's log entries and screenshots.
	ID string

	closers []func() error
	closed  bool
}

// NewSessionFromDriver wraps d. closers run in reverse order after the
// browser quits, e.g. to stop the WebDriver service that serves d.
func NewSessionFromDriver(d Driver, closers ...func() error) *Session {
	return &Session{
		Driver:  d,
		ID:      uuid.New().String(),
		closers: closers,
	}
}

// Logger returns a logger that tags entries with the session ID.
func (s *Session) Logger() shared.Logger {
	return shared.NewLogger(logrus.Fields{"session": s.ID})
}

// Close quits the browser and then releases everything started for it. All
// failures are reported together.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.Driver.Quit(); err != nil {
		errs = append(errs, fmt.Errorf("quitting browser: %w", err))
	}
	if err := closeAll(s.closers); err != nil {
		errs = append(errs, err)
	}
	return shared.NewMultiError(errs, "closing session "+s.ID)
}

func closeAll(closers []func() error) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return shared.NewMultiError(errs, "stopping webdriver services")
}

// Opener acquires a new browser session. NewSession is the flag-driven
// Opener.
type Opener func() (*Session, error)

// RunWithSession opens a session, runs fn with it and closes it, whether fn
// returns normally, returns an error or panics. The context passed to fn
// carries a logger tagged with the session ID. A close failure is returned
// only when fn itself succeeded; otherwise it is logged.
func RunWithSession(ctx context.Context, open Opener, fn func(context.Context, *Session) error) (err error) {
	s, err := open()
	if err != nil {
		return fmt.Errorf("opening browser session: %w", err)
	}
	ctx = shared.WithLogger(ctx, s.Logger())
	logger := shared.GetLogger(ctx)
	logger.Debugf("Browser session opened")

	defer func() {
		cerr := s.Close()
		if cerr == nil {
			logger.Debugf("Browser session closed")
			return
		}
		if err == nil {
			err = cerr
		} else {
			logger.Warningf("%s", cerr.Error())
		}
	}()
	return fn(ctx, s)
}
