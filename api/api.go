// Package api is the HTTP boundary: routing, request binding and mapping
// analysis failures to status codes.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/aiready/analyzer"
	"github.com/seo-optimizer/aiready/logging"
	"github.com/seo-optimizer/aiready/middleware"
	"github.com/seo-optimizer/aiready/stats"
)

// Server holds the collaborators the handlers need
type Server struct {
	analyzer   *analyzer.Analyzer
	statistics *logging.Statistics
	limiter    *middleware.RateLimiter
	logger     *zap.Logger
}

// New creates a Server. statistics and limiter may be nil.
func New(a *analyzer.Analyzer, statistics *logging.Statistics, limiter *middleware.RateLimiter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		analyzer:   a,
		statistics: statistics,
		limiter:    limiter,
		logger:     logger,
	}
}

type analyzeRequest struct {
	URL              string `json:"url" binding:"required"`
	IncludeNarrative bool   `json:"includeNarrative"`
}

// Router builds the gin engine with every route and middleware attached
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.Use(middleware.ErrorHandler(s.logger))
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(cors())
	if s.statistics != nil {
		r.Use(middleware.StatsMiddleware(s.statistics))
	}

	api := r.Group("/api")
	{
		api.GET("/health", s.health)

		analyze := []gin.HandlerFunc{s.analyze}
		if s.limiter != nil {
			analyze = append([]gin.HandlerFunc{s.limiter.RateLimit()}, analyze...)
		}
		api.POST("/analyze", analyze...)

		api.GET("/statistics", s.statisticsHandler)
	}

	r.GET("/metrics", gin.WrapH(s.analyzer.Metrics().Handler()))

	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (s *Server) analyze(c *gin.Context) {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Invalid request: a JSON body with a url is required",
			"category": analyzer.KindInvalidInput,
		})
		return
	}
	c.Set(middleware.AnalysisTargetKey, request.URL)

	result, err := s.analyzer.Analyze(c.Request.Context(), request.URL, analyzer.Options{
		Narrative: request.IncludeNarrative,
	})
	if err != nil {
		var aerr *analyzer.AnalysisError
		if !errors.As(err, &aerr) {
			s.logger.Error("Unclassified analysis error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "Internal analysis error",
				"category": analyzer.KindInternal,
			})
			return
		}
		c.JSON(aerr.Status(), gin.H{
			"error":    aerr.Message,
			"category": aerr.Kind,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) statisticsHandler(c *gin.Context) {
	body := gin.H{
		"cache": s.analyzer.GetCacheStats(),
	}
	if s.statistics != nil {
		body["requests"] = s.statistics.Snapshot()
	}
	if storage := s.analyzer.GetStats(); storage != nil {
		body["monthly"] = storage.GetCurrentStats()
		history := make(map[string]stats.MonthlyStats)
		for _, month := range storage.GetAllMonths() {
			if m, ok := storage.GetMonthlyStats(month); ok {
				history[month] = m
			}
		}
		body["history"] = history
	}
	c.JSON(http.StatusOK, body)
}
