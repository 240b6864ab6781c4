package stats_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/stats"
)

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, deviceinfo.DeviceInfo) error {
	return errors.New("boom")
}

func (failingRecorder) Snapshot(context.Context) (stats.Snapshot, error) {
	return stats.Snapshot{}, nil
}

func TestMiddleware_Records(t *testing.T) {
	t.Parallel()

	rec := stats.NewMemoryRecorder()
	called := false
	handler := deviceinfo.Middleware(stats.Middleware(rec, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", chromeUA)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, called)
	snap, err := rec.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Total)
	assert.Equal(t, int64(1), snap.Browsers[deviceinfo.BrowserChrome])
}

func TestMiddleware_WithoutClassification(t *testing.T) {
	t.Parallel()

	rec := stats.NewMemoryRecorder()
	handler := stats.Middleware(rec, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	snap, err := rec.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.Total)
}

func TestMiddleware_RecordFailureIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))
	called := false
	handler := deviceinfo.Middleware(stats.Middleware(failingRecorder{}, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, buf.String(), "device info not recorded")
	assert.Contains(t, buf.String(), "boom")
}
