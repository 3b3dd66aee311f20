//go:build small

// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared_test

import (
	"errors"
	"testing"

	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaption(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected shared.Caption
	}{
		{"bare", "5 entries filtered from 24 total entries", shared.Caption{Visible: 5, Total: 24}},
		{"datatables", "Showing 1 to 5 of 5 entries (filtered from 24 total entries)", shared.Caption{Visible: 5, Total: 24}},
		{"no matches", "Showing 0 to 0 of 0 entries (filtered from 24 total entries)", shared.Caption{Visible: 0, Total: 24}},
		{"thousands", "Showing 1 to 10 of 1,024 entries (filtered from 12,345 total entries)", shared.Caption{Visible: 1024, Total: 12345}},
		{"surrounding text", "Status: 3 entries shown, filtered from 7 total entries.", shared.Caption{Visible: 3, Total: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := shared.ParseCaption(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseCaption_mismatch(t *testing.T) {
	for _, text := range []string{
		"No matching records found",
		"Showing 1 to 10 of 24 entries",
		"",
		"entries filtered from total entries",
		"99999999999999999999999 entries filtered from 24 total entries",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := shared.ParseCaption(text)
			var parseErr *shared.ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError, got %v", err)
			assert.Equal(t, text, parseErr.Text)
			assert.Contains(t, err.Error(), "unexpected caption format")
		})
	}
}
