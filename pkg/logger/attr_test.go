package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deviceinfo/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestUserAgent(t *testing.T) {
	attr := logger.UserAgent("curl/8.1.2")
	require.Equal(t, "user_agent", attr.Key)
	assert.Equal(t, "curl/8.1.2", attr.Value.String())
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestClientIP(t *testing.T) {
	attr := logger.ClientIP("203.0.113.9")
	require.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "203.0.113.9", attr.Value.String())

	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
}

func TestHTTPRequest(t *testing.T) {
	attr := logger.HTTPRequest("GET", "/classify", 200)
	require.Equal(t, "http", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "GET", g[0].Value.String())
	assert.Equal(t, "/classify", g[1].Value.String())
	assert.Equal(t, int64(200), g[2].Value.Int64())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(1500 * time.Microsecond)
	require.Equal(t, "duration_ms", attr.Key)
	assert.InDelta(t, 1.5, attr.Value.Float64(), 0.0001)
}

func TestComponent(t *testing.T) {
	attr := logger.Component("deviceinfo")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "deviceinfo", attr.Value.String())
}
