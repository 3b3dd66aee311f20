// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import "fmt"

// Expectation holds the counts a search run must observe.
type Expectation struct {
	Visible int `yaml:"visible" toml:"visible"`
	Total   int `yaml:"total" toml:"total"`
}

// SearchReport is the outcome of one search validation run.
type SearchReport struct {
	Query        string
	TotalEntries int
	VisibleRows  int
	Caption      Caption
	CaptionText  string
}

// MismatchError describes a single observed value that differs from what
// was expected.
type MismatchError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, but found %d", e.Field, e.Expected, e.Actual)
}

// Verify compares the report against the expectation. Every mismatch is
// reported, not just the first.
func (r SearchReport) Verify(e Expectation) error {
	checks := []MismatchError{
		{Field: "visible rows", Expected: e.Visible, Actual: r.VisibleRows},
		{Field: "total entries", Expected: e.Total, Actual: r.TotalEntries},
		{Field: "caption visible entries", Expected: e.Visible, Actual: r.Caption.Visible},
		{Field: "caption total entries", Expected: e.Total, Actual: r.Caption.Total},
	}
	var errs []error
	for i := range checks {
		if checks[i].Expected != checks[i].Actual {
			errs = append(errs, &checks[i])
		}
	}
	return NewMultiError(errs, fmt.Sprintf("verifying search for %q", r.Query))
}
