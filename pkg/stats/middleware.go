package stats

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/logger"
)

// Middleware records the DeviceInfo that deviceinfo.Middleware stored in the
// request context. It must run after it. Recording failures are logged and
// never fail the request.
func Middleware(rec Recorder, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if info, ok := deviceinfo.FromContext(r.Context()); ok {
				if err := rec.Record(r.Context(), info); err != nil && log != nil {
					log.WarnContext(r.Context(), "device info not recorded",
						logger.Component("stats"),
						logger.Error(err),
					)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
