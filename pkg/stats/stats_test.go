package stats_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/stats"
)

const (
	chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"
	safariUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1"
)

func TestMemoryRecorder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := stats.NewMemoryRecorder()

	require.NoError(t, rec.Record(ctx, deviceinfo.Classify(chromeUA)))
	require.NoError(t, rec.Record(ctx, deviceinfo.Classify(chromeUA)))
	require.NoError(t, rec.Record(ctx, deviceinfo.Classify(safariUA)))

	snap, err := rec.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), snap.Total)
	assert.Equal(t, int64(2), snap.Browsers[deviceinfo.BrowserChrome])
	assert.Equal(t, int64(1), snap.Browsers[deviceinfo.BrowserSafari])
	assert.Equal(t, int64(2), snap.OS[deviceinfo.OSWindows])
	assert.Equal(t, int64(1), snap.OS[deviceinfo.OSIPhone])
	assert.Equal(t, int64(2), snap.Devices[deviceinfo.DevicePC])
	assert.Equal(t, int64(1), snap.Devices[deviceinfo.DeviceMobile])
	assert.Equal(t, int64(3), snap.Engines[deviceinfo.EngineWebKit])

	require.NoError(t, rec.Record(ctx, deviceinfo.Default()))
	assert.Equal(t, int64(3), snap.Total, "snapshot is a copy")
}

func TestMemoryRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := stats.NewMemoryRecorder()
	info := deviceinfo.Classify(chromeUA)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = rec.Record(ctx, info)
			}
		}()
	}
	wg.Wait()

	snap, err := rec.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), snap.Total)
	assert.Equal(t, int64(1000), snap.Browsers[deviceinfo.BrowserChrome])
}
