package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/felsokning/codeninjas/errors"
	"github.com/felsokning/codeninjas/logger"
)

// Recovery turns a panic into a 500 response rendered as an INTERNAL_ERROR.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.WithContext(r.Context()).Error("Panic recovered", map[string]interface{}{
						logger.FieldError: fmt.Sprintf("%v", rec),
						"stack":           string(debug.Stack()),
						"path":            r.URL.Path,
						"method":          r.Method,
					})
					writeJSON(w, http.StatusInternalServerError, errors.Internal(nil).ToResponse())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
