package deviceinfo

import "context"

type contextKey struct{}

// WithContext stores info in ctx.
func WithContext(ctx context.Context, info DeviceInfo) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

// FromContext returns the DeviceInfo stored by WithContext or the Middleware.
func FromContext(ctx context.Context) (DeviceInfo, bool) {
	if ctx == nil {
		return DeviceInfo{}, false
	}
	info, ok := ctx.Value(contextKey{}).(DeviceInfo)
	return info, ok
}
