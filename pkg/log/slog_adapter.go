package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.Line != nil:
		attrs = append(attrs, slog.Int("line_size", event.Line.Size))
		if event.Line.Dropped != "" {
			attrs = append(attrs, slog.String("dropped", event.Line.Dropped))
		}
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("command", event.Command.Name),
			slog.Int("args", event.Command.Args),
		)
	case event.Device != nil:
		attrs = append(attrs,
			slog.String("op", event.Device.Op),
			slog.Int("reply_size", event.Device.ReplySize),
		)
	case event.Recognition != nil:
		attrs = append(attrs,
			slog.Uint64("record", uint64(event.Recognition.Record)),
			slog.Uint64("index", uint64(event.Recognition.Index)),
		)
		if event.Recognition.Group != "" {
			attrs = append(attrs, slog.String("group", event.Recognition.Group))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
