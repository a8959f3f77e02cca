package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Index != 0 {
		attrs = append(attrs, slog.Int("index", event.Index))
	}

	switch {
	case event.Message != nil:
		m := event.Message
		attrs = append(attrs,
			slog.Int("size", m.Size),
			slog.String("variant", m.Variant.String()),
		)
		if m.Manufacturer != "" {
			attrs = append(attrs,
				slog.String("manufacturer", m.Manufacturer),
				slog.String("manufacturer_name", m.ManufacturerName),
			)
		}
		if m.Variant == VariantUniversal {
			attrs = append(attrs, slog.Int("universal_kind", int(m.UniversalKind)))
		}
		if m.Digest != "" {
			attrs = append(attrs, slog.String("digest", m.Digest))
		}
		if m.Skipped > 0 {
			attrs = append(attrs, slog.Int("skipped", m.Skipped))
		}
	case event.Session != nil:
		attrs = append(attrs,
			slog.String("command", event.Session.Command),
			slog.String("state", event.Session.State),
		)
		if event.Session.State == SessionEnded {
			attrs = append(attrs, slog.Int("messages", event.Session.Messages))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Kind != "" {
			attrs = append(attrs, slog.String("error_kind", event.Error.Kind))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "capture", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
