// Package endpoint provides the facade's probe handlers.
package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/felsokning/codeninjas/observability"
	"github.com/felsokning/codeninjas/version"
)

// Health reports the state of every checker. Any component that is down
// makes the response a 503.
func Health(serviceName string, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := observability.Check(c.Request.Context(), serviceName, version.Version, checkers...)

		status := http.StatusOK
		if report.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	}
}
