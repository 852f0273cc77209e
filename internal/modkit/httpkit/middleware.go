package httpkit

import (
	"compress/flate"
	"fmt"
	"net/http"
	"time"

	"sensutv/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware every mounted surface gets.
// Order matters: correlation first, then recovery, then the rest.
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.RecoverJSON,

		middleware.NoCache(),

		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// CacheFor reverses the global no-cache headers for a module whose
// responses are safe to cache briefly, such as the public feed
func CacheFor(ttl time.Duration) func(http.Handler) http.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(ttl.Seconds()))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Del("Expires")
			h.Del("Pragma")
			h.Del("X-Accel-Expires")
			h.Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}
