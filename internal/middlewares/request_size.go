package middlewares

import (
	"fmt"
	"net/http"
)

// RequestSizeLimitMiddleware rejects request bodies larger than maxRequestSize
// bytes. A declared Content-Length over the limit is refused up front; bodies
// without one are capped while they stream so a chunked upload cannot bypass
// the limit.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	tooLarge := fmt.Sprintf(`{"error":"request body exceeds the %dMB limit"}`, maxRequestSize/(1024*1024))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(tooLarge))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
