// Package requestid attaches a correlation id to every HTTP request so log
// lines written while classifying and recording a request can be grouped.
//
//	handler := requestid.Middleware(router)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
