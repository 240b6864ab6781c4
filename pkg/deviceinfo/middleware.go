package deviceinfo

import "net/http"

// Middleware classifies the request's User-Agent header with the default
// classifier and stores the result in the request context.
func Middleware(next http.Handler) http.Handler {
	return defaultClassifier.Middleware(next)
}

// Middleware is like the package-level Middleware but uses c.
func (c *Classifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := c.Classify(r.UserAgent())
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), info)))
	})
}
