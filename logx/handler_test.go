// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/colors"
	"cogentcore.org/colors/srgb"
)

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = defaultUserLevel }()
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}

func TestHandler(t *testing.T) {
	UserLevel = slog.LevelInfo
	defer func() { UserLevel = defaultUserLevel }()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, termenv.Ascii))
	l.Debug("hidden")
	l.Info("converted", "from", "#FF0000", "to", "lab(54.29, 80.81, 69.89)")
	l.With("n", 3).WithGroup("g").Warn("grouped", "a", 1, slog.Group("b", "c", true))
	l.Error("empty", "s", "")

	want := "INFO converted from=#FF0000 to=\"lab(54.29, 80.81, 69.89)\"\n" +
		"WARN grouped n=3 g.a=1 g.b.c=true\n" +
		"ERROR empty s=\"\"\n"
	assert.Equal(t, want, buf.String())
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, termenv.TrueColor))
	l.Warn("careful")
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[38;2;"))
	assert.Contains(t, buf.String(), "WARN\x1b[0m careful\n")
}

func TestLevelHex(t *testing.T) {
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		c := colors.Convert[srgb.RGB](LevelColors[l])
		assert.False(t, colors.IsImaginary(c), l.String())
		assert.Equal(t, colors.Clamp[srgb.RGB](c).Hex(), LevelHex(l))
	}
	assert.Equal(t, LevelHex(slog.LevelInfo), LevelHex(slog.LevelInfo+2))
	assert.Equal(t, LevelHex(slog.LevelError), LevelHex(slog.LevelError+4))
	assert.Equal(t, LevelHex(slog.LevelDebug), LevelHex(slog.LevelDebug-4))
	assert.NotEqual(t, LevelHex(slog.LevelWarn), LevelHex(slog.LevelError))
}
