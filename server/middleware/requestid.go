package middleware

import (
	"net/http"

	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/util"
)

// HeaderRequestID matches the header the API clients send.
const HeaderRequestID = "X-Request-ID"

// RequestID keeps a caller supplied X-Request-ID when it is a UUID and
// generates one otherwise. The id is echoed on the response and stored in the
// request context for logging.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if !util.IsID(id) {
				id = util.NewID()
				r.Header.Set(HeaderRequestID, id)
			}
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(logger.ContextWithRequestID(r.Context(), id)))
		})
	}
}
