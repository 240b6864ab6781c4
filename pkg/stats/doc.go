// Package stats aggregates classification results for analytics.
//
// A Recorder counts how many requests came from each browser, OS, device
// category and engine. MemoryRecorder is process local; RedisRecorder keeps
// the counters in Redis hashes (<prefix>:browser, <prefix>:os, ...) so every
// instance of the service contributes to the same totals.
//
//	client, err := stats.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	rec := stats.NewRedisRecorder(client, cfg.KeyPrefix)
//
//	handler := deviceinfo.Middleware(stats.Middleware(rec, log)(router))
//
// Snapshot parses hash fields back into deviceinfo enum values; fields that do
// not name a known value are ignored.
package stats
