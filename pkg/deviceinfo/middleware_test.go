package deviceinfo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/logger"
)

const firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/116.0"

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected deviceinfo.DeviceInfo
	}{
		{
			name:     "firefox request",
			ua:       firefoxUA,
			expected: deviceinfo.Classify(firefoxUA),
		},
		{
			name:     "no user agent header",
			ua:       "",
			expected: deviceinfo.Default(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got deviceinfo.DeviceInfo
			var found bool
			handler := deviceinfo.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, found = deviceinfo.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("User-Agent", tc.ua)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			require.True(t, found)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestClassifierMiddleware_UsesClassifierLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	c := deviceinfo.New(deviceinfo.WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	handler := c.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS like Mac OS X) Safari/604.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "os detection failed")
}

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()

	_, ok := deviceinfo.FromContext(context.Background())
	assert.False(t, ok)

	//nolint:staticcheck // nil context is handled explicitly
	_, ok = deviceinfo.FromContext(nil)
	assert.False(t, ok)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(deviceinfo.LoggerExtractor()),
	)

	ctx := deviceinfo.WithContext(context.Background(), deviceinfo.Classify(firefoxUA))
	log.InfoContext(ctx, "request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	device, ok := entry["device"].(map[string]any)
	require.True(t, ok, "device attribute is a group")
	assert.Equal(t, "Firefox", device["browser"])
	assert.Equal(t, "Gecko", device["engine"])

	attr, ok := deviceinfo.LoggerExtractor()(context.Background())
	assert.False(t, ok)
	assert.True(t, attr.Equal(slog.Attr{}))
}
