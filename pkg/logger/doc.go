// Package logger builds *slog.Logger instances with a consistent set of
// options and attribute helpers.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler and wraps it in a
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record. Packages expose extractors for the values they keep in the
// request context (deviceinfo.LoggerExtractor, requestid.LoggerExtractor) so
// handlers can log with InfoContext and get those attributes for free.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "deviceinfo"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "classification step failed",
//	    logger.UserAgent(ua),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty slog.Attr for nil errors, which slog
// ignores, so they can be passed unconditionally.
package logger
