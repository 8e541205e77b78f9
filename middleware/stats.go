package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/aiready/logging"
)

// AnalysisTargetKey is the context key handlers use to report the URL
// being analyzed.
const AnalysisTargetKey = "analysisTarget"

// saveEvery persists statistics after this many analysis requests
const saveEvery = 100

// StatsMiddleware tracks visitors and analysis requests
func StatsMiddleware(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Only track analysis requests
		if c.Request.Method != http.MethodPost || c.FullPath() != "/api/analyze" {
			return
		}
		stats.TrackAnalysis(c.GetString(AnalysisTargetKey), time.Since(start), c.Writer.Status() >= 400)

		if stats.Snapshot().TotalRequests%saveEvery == 0 {
			stats.SaveAsync()
		}
	}
}
