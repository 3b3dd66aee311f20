//go:build small

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMultiError_non_empty(t *testing.T) {
	err := NewMultiError([]error{errors.New("test1"), errors.New("test2")}, "testing")
	assert.Equal(t, "2 error(s) occurred when testing:\ntest1\ntest2", err.Error())
	multi, ok := err.(*MultiError)
	assert.True(t, ok)
	assert.Equal(t, 2, multi.Count())
}

func TestNewMultiError_nil(t *testing.T) {
	// It is vital to pre-declare the type of err.
	var err error
	err = NewMultiError(nil, "testing")
	// Do NOT use assert.Nil: we use the `nil` literal intentionally here.
	// This is equivalent to `err == nil`. Since err is declared as error,
	// so we are comparing err against (error)(nil), which will fail if
	// NewMultiError incorrectly returns a concrete (*MultiError)(nil).
	assert.Equal(t, nil, err)
	_, ok := err.(*MultiError)
	assert.False(t, ok)
}

func TestMultiError_unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewMultiError([]error{errors.New("other"), sentinel}, "testing")
	assert.True(t, errors.Is(err, sentinel))

	err = NewMultiError([]error{&MismatchError{Field: "f", Expected: 1, Actual: 2}}, "testing")
	var mismatch *MismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "f", mismatch.Field)
}
