// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown on context cancellation or SIGINT/SIGTERM, and provides the
// liveness/readiness handler used by the deviceinfo service.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(cfg.HTTPAddr),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
