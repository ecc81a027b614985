// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup
// used by the command line tools, with a user-selected verbosity level.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to a [Handler] writing
// to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that prefixes the level name with a
// terminal color when the output supports it.
type Handler struct {
	slog.Handler
	out *termenv.Output
}

// NewHandler returns a new [Handler] writing text records to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		}),
		out: termenv.NewOutput(w),
	}
}

// Enabled reports whether the record level is at or above [UserLevel].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// Handle writes the record with a colored level.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	r.Message = h.out.String(r.Message).Foreground(LevelColor(h.out, r.Level)).String()
	return h.Handler.Handle(ctx, r)
}

// LevelColor returns the terminal color used for messages at the given level.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("#e06c75")
	case level >= slog.LevelWarn:
		return out.Color("#e5c07b")
	case level >= slog.LevelInfo:
		return out.Color("#61afef")
	default:
		return out.Color("#98c379")
	}
}
