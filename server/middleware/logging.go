package middleware

import (
	"net/http"
	"time"

	"github.com/felsokning/codeninjas/logger"
)

// RequestLogger logs every request with method, path, status and duration.
// Health and version probes are skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isProbe(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			fields := map[string]interface{}{
				"method":             r.Method,
				"path":               r.URL.Path,
				"query":              r.URL.RawQuery,
				logger.FieldStatus:   sw.Status(),
				logger.FieldDuration: duration.Milliseconds(),
			}
			logByStatus(log.WithContext(r.Context()), fields, sw.Status())
		})
	}
}

func isProbe(path string) bool {
	return path == "/health" || path == "/version"
}

func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		log.Error("Request completed", fields)
	case status >= 400:
		log.Warn("Request completed", fields)
	default:
		log.Info("Request completed", fields)
	}
}
