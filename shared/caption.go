// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Caption is the pair of counts reported by a table's status caption, e.g.
// "Showing 1 to 5 of 5 entries (filtered from 24 total entries)".
type Caption struct {
	Visible int
	Total   int
}

func (c Caption) String() string {
	return fmt.Sprintf("%d of %d", c.Visible, c.Total)
}

// ParseError is returned by ParseCaption when the text does not follow the
// "<N> entries ... filtered from <N> total entries" pattern.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected caption format: %q", e.Text)
}

// captionRE matches the first "<N> entries" followed (lazily, anything in
// between) by "filtered from <N> total entries". Counts may use comma
// thousands separators.
var captionRE = regexp.MustCompile(`(\d[\d,]*) entries .*?filtered from (\d[\d,]*) total entries`)

// ParseCaption extracts the visible and total entry counts from a filtered
// table caption.
func ParseCaption(text string) (Caption, error) {
	match := captionRE.FindStringSubmatch(text)
	if match == nil {
		return Caption{}, &ParseError{Text: text}
	}
	visible, err := parseCount(match[1])
	if err != nil {
		return Caption{}, &ParseError{Text: text}
	}
	total, err := parseCount(match[2])
	if err != nil {
		return Caption{}, &ParseError{Text: text}
	}
	return Caption{Visible: visible, Total: total}, nil
}

func parseCount(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}
