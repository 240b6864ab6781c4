package stats

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrRecordFailed                 = errors.New("failed to record device info")
	ErrSnapshotFailed               = errors.New("failed to read device info counters")
)
