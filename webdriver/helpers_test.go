//go:build large

package webdriver

import (
	"context"
	"flag"
	"testing"

	"github.com/seleniumwithgo/tablesearch/fixture"
	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var screenshotDir = flag.String("screenshot_dir", "", "Directory to save screenshots of failed tests in")

// runWebdriverTest serves the table page, opens a fresh browser session and
// runs fn with both. Everything is torn down afterwards, and a screenshot is
// saved if the test failed.
func runWebdriverTest(t *testing.T, fn func(ctx context.Context, t *testing.T, app AppServer, s *Session)) {
	app, err := NewWebserver()
	require.NoError(t, err)
	defer app.Close()

	ctx := shared.WithLogger(context.Background(), shared.NewLogger(logrus.Fields{"test": t.Name()}))
	err = RunWithSession(ctx, NewSession, func(ctx context.Context, s *Session) error {
		defer func() {
			if !t.Failed() || *screenshotDir == "" {
				return
			}
			if path, err := SaveScreenshot(s, *screenshotDir, t.Name()); err != nil {
				t.Logf("Unable to save screenshot: %s", err.Error())
			} else {
				t.Logf("Screenshot saved to %s", path)
			}
		}()
		fn(ctx, t, app, s)
		return nil
	})
	require.NoError(t, err)
}

// fixtureURL returns the URL of a fixture page variant. Variants only exist
// locally, so the test is skipped against the public page.
func fixtureURL(t *testing.T, app AppServer, opts fixture.Options) string {
	if *remote {
		t.Skip("page variants need the local fixture")
	}
	u := app.GetWebappURL(shared.DemoPagePath)
	if q := opts.Query(); len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func demoPageURL(app AppServer) string {
	return app.GetWebappURL(shared.DemoPagePath)
}

// openTable loads rawURL and returns the page once its header is visible.
func openTable(ctx context.Context, t *testing.T, s *Session, rawURL string, cfg shared.TableSearchConfig) *TablePage {
	page := NewTablePage(s, cfg)
	require.NoError(t, page.Open(ctx, rawURL))
	return page
}
