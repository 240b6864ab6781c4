package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
)

// Config describes the Redis connection used by RedisRecorder.
type Config struct {
	ConnectionURL  string        `env:"STATS_REDIS_URL"`                             // redis://:password@localhost:6379/0, empty keeps counters in memory
	KeyPrefix      string        `env:"STATS_REDIS_KEY_PREFIX" envDefault:"deviceinfo"` // prefix for the counter hashes
	RetryAttempts  int           `env:"STATS_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"STATS_REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"STATS_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Connect opens a client and pings it until it answers, retrying
// cfg.RetryAttempts times.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// counterStore is the subset of redis.Cmdable the recorder needs.
type counterStore interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisRecorder keeps counters in Redis hashes, one per dimension, so several
// service instances share them. The increments of one Record run in a single
// MULTI/EXEC, so the dimensions always add up to the total.
type RedisRecorder struct {
	client counterStore
	prefix string
}

// NewRedisRecorder accepts a *redis.Client, *redis.ClusterClient or anything
// else implementing the used commands.
func NewRedisRecorder(client counterStore, prefix string) *RedisRecorder {
	if prefix == "" {
		prefix = "deviceinfo"
	}
	return &RedisRecorder{client: client, prefix: prefix}
}

const (
	dimTotal   = "total"
	dimBrowser = "browser"
	dimOS      = "os"
	dimDevice  = "device"
	dimEngine  = "engine"
)

func (r *RedisRecorder) key(dim string) string {
	return r.prefix + ":" + dim
}

// Record counts info in every dimension.
func (r *RedisRecorder) Record(ctx context.Context, info deviceinfo.DeviceInfo) error {
	incr := []struct{ dim, field string }{
		{dimTotal, dimTotal},
		{dimBrowser, string(info.Browser)},
		{dimOS, string(info.OS)},
		{dimDevice, string(info.Device)},
		{dimEngine, string(info.Engine)},
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, c := range incr {
			pipe.HIncrBy(ctx, r.key(c.dim), c.field, 1)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrRecordFailed, err)
	}
	return nil
}

// Snapshot reads every counter hash.
func (r *RedisRecorder) Snapshot(ctx context.Context) (Snapshot, error) {
	snap := newSnapshot()

	total, err := r.hash(ctx, dimTotal)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Total = total[dimTotal]

	if err := collect(ctx, r, dimBrowser, deviceinfo.ParseBrowser, snap.Browsers); err != nil {
		return Snapshot{}, err
	}
	if err := collect(ctx, r, dimOS, deviceinfo.ParseOSType, snap.OS); err != nil {
		return Snapshot{}, err
	}
	if err := collect(ctx, r, dimDevice, deviceinfo.ParseDeviceType, snap.Devices); err != nil {
		return Snapshot{}, err
	}
	if err := collect(ctx, r, dimEngine, deviceinfo.ParseEngineType, snap.Engines); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Ping reports whether Redis is reachable; used as a readiness check.
func (r *RedisRecorder) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRecorder) hash(ctx context.Context, dim string) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, r.key(dim)).Result()
	if err != nil {
		return nil, errors.Join(ErrSnapshotFailed, fmt.Errorf("%s: %w", dim, err))
	}
	out := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Join(ErrSnapshotFailed, fmt.Errorf("%s.%s: %w", dim, field, err))
		}
		out[field] = n
	}
	return out, nil
}

// collect folds a hash into dst. Fields that no longer name an enum member
// (e.g. written by an older release) are skipped.
func collect[T comparable](ctx context.Context, r *RedisRecorder, dim string, parse func(string) (T, error), dst map[T]int64) error {
	counts, err := r.hash(ctx, dim)
	if err != nil {
		return err
	}
	for field, n := range counts {
		v, err := parse(field)
		if err != nil {
			continue
		}
		dst[v] += n
	}
	return nil
}
