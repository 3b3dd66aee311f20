// Copyright 2018 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sharedtest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/seleniumwithgo/tablesearch/shared"
)

// NewTestContext creates a new context.Context for small tests.
func NewTestContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, shared.DefaultLoggerCtxKey(), shared.NewNilLogger())
	return ctx
}

// WriteTempFile writes contents to a file with the given name in a fresh
// temporary directory and returns its path.
func WriteTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// FastConfig returns the default config with waits shrunk for tests that
// poll a fake driver.
func FastConfig() shared.TableSearchConfig {
	cfg := shared.DefaultConfig()
	cfg.PollInterval = shared.Duration{Duration: cfg.WaitTimeout.Duration / 100}
	return cfg
}
