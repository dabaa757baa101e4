// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	err := New("bad")
	assert.NotPanics(t, func() { Must(nil) })
	assert.PanicsWithValue(t, err, func() { Must(err) })
	assert.Equal(t, 3, Must1(3, nil))
	assert.Panics(t, func() { Must1(3, err) })
}

func TestLog(t *testing.T) {
	err := New("logged")
	assert.NoError(t, Log(nil))
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 5, Log1(5, nil))
	assert.Equal(t, 0, Log1(0, err))
}

func TestWrappers(t *testing.T) {
	a := New("a")
	b := New("b")
	j := Join(a, b)
	assert.True(t, Is(j, a))
	assert.True(t, Is(j, b))
	assert.False(t, Is(a, b))
	var target interface{ Unwrap() []error }
	assert.True(t, As(j, &target))
	assert.Len(t, target.Unwrap(), 2)
}
