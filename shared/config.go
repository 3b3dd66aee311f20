// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Locator strategies, spelled the way the WebDriver protocol spells them.
const (
	ByXPath       = "xpath"
	ByCSSSelector = "css selector"
	ByID          = "id"
)

// DemoPagePath is the path of the table search demo page, both on the
// public playground and on the local fixture server.
const DemoPagePath = "/selenium-playground/table-sort-search-demo"

// Locator is a strategy + value pair used to find page elements.
type Locator struct {
	By    string `yaml:"by" toml:"by"`
	Value string `yaml:"value" toml:"value"`
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}

// Locators describes the DOM shape of a searchable, paginated table page.
type Locators struct {
	Header      Locator `yaml:"header" toml:"header"`
	Table       Locator `yaml:"table" toml:"table"`
	Rows        Locator `yaml:"rows" toml:"rows"`
	DataRows    Locator `yaml:"data_rows" toml:"data_rows"`
	VisibleRows Locator `yaml:"visible_rows" toml:"visible_rows"`
	NextButton  Locator `yaml:"next_button" toml:"next_button"`
	SearchInput Locator `yaml:"search_input" toml:"search_input"`
	Caption     Locator `yaml:"caption" toml:"caption"`

	// DisabledClass is the class token present on the next button once the
	// last page is reached.
	DisabledClass string `yaml:"disabled_class" toml:"disabled_class"`
}

// Duration is a time.Duration that reads and writes as a Go duration
// string ("10s") in YAML and TOML files.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// TableSearchConfig holds everything a search validation run needs to know
// about its target page.
type TableSearchConfig struct {
	Path   string      `yaml:"path" toml:"path"`
	Query  string      `yaml:"query" toml:"query"`
	Expect Expectation `yaml:"expect" toml:"expect"`

	WaitTimeout  Duration `yaml:"wait_timeout" toml:"wait_timeout"`
	PollInterval Duration `yaml:"poll_interval" toml:"poll_interval"`
	// StablePolls is the number of consecutive polls that must observe the
	// same visible row count before a filter is considered settled.
	StablePolls int `yaml:"stable_polls" toml:"stable_polls"`
	// MaxPages bounds the pagination loop.
	MaxPages int `yaml:"max_pages" toml:"max_pages"`

	Locators Locators `yaml:"locators" toml:"locators"`
}

// DefaultLocators returns the locators of the table search demo page.
func DefaultLocators() Locators {
	return Locators{
		Header:      Locator{ByXPath, "//h1[text()='Table Sorting And Searching']"},
		Table:       Locator{ByID, "example"},
		Rows:        Locator{ByXPath, "//table[@id='example']/tbody/tr"},
		DataRows:    Locator{ByXPath, "//table[@id='example']/tbody/tr[not(td[contains(@class, 'dataTables_empty')])]"},
		VisibleRows: Locator{ByXPath, "//table[@id='example']/tbody/tr[not(contains(@style, 'display: none'))][not(td[contains(@class, 'dataTables_empty')])]"},
		NextButton:  Locator{ByXPath, "//a[contains(@class, 'paginate_button next')]"},
		SearchInput: Locator{ByCSSSelector, "input[type='search']"},
		Caption:     Locator{ByID, "example_info"},

		DisabledClass: "disabled",
	}
}

// DefaultConfig returns the configuration for searching "New York" on the
// demo page, which holds 24 entries, 5 of them in New York.
func DefaultConfig() TableSearchConfig {
	return TableSearchConfig{
		Path:   DemoPagePath,
		Query:  "New York",
		Expect: Expectation{Visible: 5, Total: 24},

		WaitTimeout:  Duration{10 * time.Second},
		PollInterval: Duration{100 * time.Millisecond},
		StablePolls:  3,
		MaxPages:     100,

		Locators: DefaultLocators(),
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file over the
// defaults and validates the result. An empty path returns the defaults.
func LoadConfig(path string) (TableSearchConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid field of the config.
func (c TableSearchConfig) Validate() error {
	var errs []error
	if c.Expect.Visible < 0 || c.Expect.Total < 0 {
		errs = append(errs, errors.New("expected counts must be non-negative"))
	}
	if c.WaitTimeout.Duration <= 0 {
		errs = append(errs, errors.New("wait_timeout must be positive"))
	}
	if c.PollInterval.Duration <= 0 {
		errs = append(errs, errors.New("poll_interval must be positive"))
	}
	if c.StablePolls < 1 {
		errs = append(errs, errors.New("stable_polls must be at least 1"))
	}
	if c.MaxPages < 1 {
		errs = append(errs, errors.New("max_pages must be at least 1"))
	}
	locators := map[string]Locator{
		"header":       c.Locators.Header,
		"table":        c.Locators.Table,
		"rows":         c.Locators.Rows,
		"data_rows":    c.Locators.DataRows,
		"visible_rows": c.Locators.VisibleRows,
		"next_button":  c.Locators.NextButton,
		"search_input": c.Locators.SearchInput,
		"caption":      c.Locators.Caption,
	}
	for _, name := range []string{"header", "table", "rows", "data_rows", "visible_rows", "next_button", "search_input", "caption"} {
		l := locators[name]
		switch l.By {
		case ByXPath, ByCSSSelector, ByID:
		default:
			errs = append(errs, fmt.Errorf("locators.%s: unsupported strategy %q", name, l.By))
		}
		if l.Value == "" {
			errs = append(errs, fmt.Errorf("locators.%s: empty value", name))
		}
	}
	if c.Locators.DisabledClass == "" {
		errs = append(errs, errors.New("locators.disabled_class is empty"))
	}
	return NewMultiError(errs, "validating config")
}
