package dbfs_test

import (
	"context"
	"log/slog"
)

// capturingHandler records the "direction" attribute of every log record
// it receives, letting tests assert on the sequence of directions a BFS
// run actually took without parsing formatted log text.
type capturingHandler struct {
	levels *[]string
}

func (h *capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "direction" {
			*h.levels = append(*h.levels, a.Value.String())
		}

		return true
	})

	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *capturingHandler) WithGroup(_ string) slog.Handler      { return h }

// newCapturingLogger returns a *slog.Logger whose Debug records'
// "direction" attribute is appended to levels in call order.
func newCapturingLogger(levels *[]string) *slog.Logger {
	return slog.New(&capturingHandler{levels: levels})
}
