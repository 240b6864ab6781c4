package deviceinfo

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if info, ok := FromContext(ctx); ok {
			return slog.Any("device", info), true
		}
		return slog.Attr{}, false
	}
}
