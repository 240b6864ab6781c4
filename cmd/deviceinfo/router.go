package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/deviceinfo/pkg/clientip"
	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/httpserver"
	"github.com/dmitrymomot/deviceinfo/pkg/logger"
	"github.com/dmitrymomot/deviceinfo/pkg/requestid"
	"github.com/dmitrymomot/deviceinfo/pkg/stats"
)

// newRouter wires the HTTP API:
//
//	GET  /classify       classification of ?ua= or of the caller's User-Agent
//	POST /collect        records the caller's classification, 204
//	GET  /stats          recorded counters
//	GET  /health/live    liveness
//	GET  /health/ready   readiness, runs ready checks
func newRouter(c *deviceinfo.Classifier, rec stats.Recorder, ips *clientip.Resolver, log *slog.Logger, ready ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(c.Middleware)
	r.Use(accessLog(log, ips))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, ready...))

	r.Get("/classify", func(w http.ResponseWriter, r *http.Request) {
		info, _ := deviceinfo.FromContext(r.Context())
		if ua := r.URL.Query().Get("ua"); ua != "" {
			info = c.Classify(ua)
		}
		writeJSON(w, http.StatusOK, info)
	})

	r.With(stats.Middleware(rec, log)).Post("/collect", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		snap, err := rec.Snapshot(r.Context())
		if err != nil {
			log.ErrorContext(r.Context(), "stats snapshot failed", logger.Component("stats"), logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// accessLog logs every request at debug level. Request id and device come
// from the context extractors registered on the logger.
func accessLog(log *slog.Logger, ips *clientip.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.DebugContext(r.Context(), "request served",
				logger.HTTPRequest(r.Method, r.URL.Path, sw.status),
				logger.ClientIP(ips.FromRequest(r)),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
