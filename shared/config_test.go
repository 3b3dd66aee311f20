//go:build small

// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared_test

import (
	"testing"
	"time"

	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/seleniumwithgo/tablesearch/shared/sharedtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := shared.DefaultConfig()
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "New York", cfg.Query)
	assert.Equal(t, shared.Expectation{Visible: 5, Total: 24}, cfg.Expect)
	assert.Equal(t, 10*time.Second, cfg.WaitTimeout.Duration)
	assert.Equal(t, shared.Locator{By: shared.ByID, Value: "example_info"}, cfg.Locators.Caption)
}

func TestLoadConfig_empty(t *testing.T) {
	cfg, err := shared.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, shared.DefaultConfig(), cfg)
}

func TestLoadConfig_yaml(t *testing.T) {
	path := sharedtest.WriteTempFile(t, "search.yaml", `
query: London
expect:
  visible: 5
  total: 24
wait_timeout: 3s
locators:
  search_input:
    by: css selector
    value: "#example_filter input"
`)
	cfg, err := shared.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "London", cfg.Query)
	assert.Equal(t, shared.Expectation{Visible: 5, Total: 24}, cfg.Expect)
	assert.Equal(t, 3*time.Second, cfg.WaitTimeout.Duration)
	assert.Equal(t, "#example_filter input", cfg.Locators.SearchInput.Value)
	// Untouched fields keep their defaults.
	assert.Equal(t, shared.DefaultLocators().NextButton, cfg.Locators.NextButton)
	assert.Equal(t, 100, cfg.MaxPages)
}

func TestLoadConfig_toml(t *testing.T) {
	path := sharedtest.WriteTempFile(t, "search.toml", `
query = "Tokyo"
max_pages = 5
poll_interval = "250ms"

[expect]
visible = 2
total = 24
`)
	cfg, err := shared.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", cfg.Query)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval.Duration)
	assert.Equal(t, shared.Expectation{Visible: 2, Total: 24}, cfg.Expect)
}

func TestLoadConfig_invalid(t *testing.T) {
	path := sharedtest.WriteTempFile(t, "bad.yaml", `
max_pages: 0
stable_polls: 0
locators:
  caption:
    by: link text
    value: ""
`)
	_, err := shared.LoadConfig(path)
	multi, ok := err.(*shared.MultiError)
	require.True(t, ok, "expected MultiError, got %v", err)
	assert.Equal(t, 4, multi.Count())
	assert.Contains(t, err.Error(), "max_pages must be at least 1")
	assert.Contains(t, err.Error(), `locators.caption: unsupported strategy "link text"`)
}

func TestLoadConfig_unsupportedFormat(t *testing.T) {
	path := sharedtest.WriteTempFile(t, "search.json", `{}`)
	_, err := shared.LoadConfig(path)
	assert.EqualError(t, err, `unsupported config format ".json"`)
}

func TestLoadConfig_badDuration(t *testing.T) {
	path := sharedtest.WriteTempFile(t, "search.yaml", "wait_timeout: soon\n")
	_, err := shared.LoadConfig(path)
	assert.NotNil(t, err)
}
