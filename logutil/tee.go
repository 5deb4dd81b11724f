// Copyright (c) 2025 BVK Chaitanya

package logutil

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler forwards every log record to all handlers that have the record's
// level enabled.
type teeHandler struct {
	handlers []slog.Handler
}

func newTeeHandler(hs ...slog.Handler) *teeHandler {
	return &teeHandler{handlers: hs}
}

// Enabled implements the Enabled method for slog.Handler interface.
func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, v := range h.handlers {
		if v.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle implements the Handle method for slog.Handler interface.
func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, v := range h.handlers {
		if !v.Enabled(ctx, r.Level) {
			continue
		}
		if err := v.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs implements the WithAttrs method for slog.Handler interface.
func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	hs := make([]slog.Handler, len(h.handlers))
	for i, v := range h.handlers {
		hs[i] = v.WithAttrs(attrs)
	}
	return newTeeHandler(hs...)
}

// WithGroup implements the WithGroup method for slog.Handler interface.
func (h *teeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	hs := make([]slog.Handler, len(h.handlers))
	for i, v := range h.handlers {
		hs[i] = v.WithGroup(name)
	}
	return newTeeHandler(hs...)
}
