// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/seleniumwithgo/tablesearch/webdriver"
)

var (
	configPath    = flag.String("config", "", "YAML (.yaml, .yml) or TOML (.toml) file overriding the default search settings")
	query         = flag.String("query", "", "Search query; overrides the config file")
	screenshotDir = flag.String("screenshot_dir", "", "Directory to save a screenshot in when validation fails")
	logLevel      = flag.String("log_level", "info", "Log level (debug, info, warning, error)")
)

// validate_search.go runs the table search validation once, outside of
// go test, and logs the report. It exits non-zero if validation fails.
//
// Usage (from util/):
// go run validate_search.go --backend=chromedp --remote
// go run validate_search.go --chromedriver_path=/usr/bin/chromedriver --config=london.yaml
func main() {
	flag.Parse()
	if err := shared.SetLogLevel(*logLevel); err != nil {
		logrus.Fatal(err)
	}
	if err := run(); err != nil {
		logrus.Errorf("Validation failed: %s", err.Error())
		os.Exit(1)
	}
	logrus.Info("Validation passed")
}

func run() error {
	cfg, err := shared.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *query != "" {
		cfg.Query = *query
	}

	app, err := webdriver.NewWebserver()
	if err != nil {
		return err
	}
	defer app.Close()
	url := app.GetWebappURL(cfg.Path)

	return webdriver.RunWithSession(context.Background(), webdriver.NewSession, func(ctx context.Context, s *webdriver.Session) error {
		logger := shared.GetLogger(ctx)
		report, err := webdriver.ValidateSearch(ctx, s, url, cfg)
		logrus.WithFields(logrus.Fields{
			"session":       s.ID,
			"query":         report.Query,
			"total_entries": report.TotalEntries,
			"visible_rows":  report.VisibleRows,
			"caption":       report.CaptionText,
		}).Info("Search report")

		if err != nil && *screenshotDir != "" {
			if path, serr := webdriver.SaveScreenshot(s, *screenshotDir, "validate_search"); serr != nil {
				logger.Warningf("Unable to save screenshot: %s", serr.Error())
			} else {
				logger.Infof("Screenshot saved to %s", path)
			}
		}
		return err
	})
}
