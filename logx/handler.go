// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"cogentcore.org/colors"
	"cogentcore.org/colors/lab"
	"cogentcore.org/colors/srgb"
)

// LevelColors are the colors of the level labels printed by [Handler].
// They share lightness and chroma so that no level stands out except
// by hue.
var LevelColors = map[slog.Level]lab.LCh{
	slog.LevelDebug: lab.NewLCh(65, 45, 280),
	slog.LevelInfo:  lab.NewLCh(65, 45, 150),
	slog.LevelWarn:  lab.NewLCh(65, 45, 80),
	slog.LevelError: lab.NewLCh(65, 45, 30),
}

// LevelHex returns the sRGB hex code of the label color for the given
// level. Levels between the standard ones use the color of the next
// lower standard level.
func LevelHex(level slog.Level) string {
	std := slog.LevelError
	switch {
	case level < slog.LevelInfo:
		std = slog.LevelDebug
	case level < slog.LevelWarn:
		std = slog.LevelInfo
	case level < slog.LevelError:
		std = slog.LevelWarn
	}
	return colors.Clamp[srgb.RGB](colors.Convert[srgb.RGB](LevelColors[std])).Hex()
}

// Handler is a [slog.Handler] that writes one line per record, in the
// form "LEVEL message key=value ...", with the level label colored
// for the terminal. Records below [UserLevel] are skipped.
type Handler struct {
	w       io.Writer
	profile termenv.Profile
	mu      *sync.Mutex
	attrs   string
	group   string
}

// NewHandler returns a new [Handler] that writes to w, coloring
// with the given terminal color profile.
func NewHandler(w io.Writer, profile termenv.Profile) *Handler {
	return &Handler{w: w, profile: profile, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler] writing
// to [os.Stderr], using the color profile detected for it.
func SetDefaultLogger() {
	out := termenv.NewOutput(os.Stderr)
	slog.SetDefault(slog.New(NewHandler(out, out.Profile)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	label := r.Level.String()
	sb.WriteString(h.profile.String(label).Foreground(h.profile.Color(LevelHex(r.Level))).String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	for _, a := range attrs {
		writeAttr(&sb, h.group, a)
	}
	nh := *h
	nh.attrs += sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group += name + "."
	return &nh
}

// writeAttr writes " key=value" for the attribute, flattening groups
// into dotted keys.
func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		v = strconv.Quote(v)
	}
	sb.WriteString(v)
}
