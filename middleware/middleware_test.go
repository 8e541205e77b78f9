package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/aiready/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMemoryStoreWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	if _, _, ok := store.Get("ip"); ok {
		t.Fatal("Expected no window before first request")
	}

	for i := 1; i <= 3; i++ {
		if count, _ := store.Increment("ip", time.Minute); count != i {
			t.Errorf("Expected count %d, got %d", i, count)
		}
	}
	count, resetAt, ok := store.Get("ip")
	if !ok || count != 3 || !resetAt.Equal(now.Add(time.Minute)) {
		t.Errorf("Unexpected window: count=%d reset=%v ok=%v", count, resetAt, ok)
	}

	now = now.Add(time.Minute)
	if _, _, ok := store.Get("ip"); ok {
		t.Error("Window should have expired")
	}
	if count, _ := store.Increment("ip", time.Minute); count != 1 {
		t.Errorf("Expected a fresh window, got count %d", count)
	}

	store.Reset("ip")
	if _, _, ok := store.Get("ip"); ok {
		t.Error("Reset should forget the key")
	}

	store.Increment("old", time.Second)
	now = now.Add(time.Hour)
	store.Prune()
	if len(store.windows) != 0 {
		t.Errorf("Prune should drop expired windows, %d left", len(store.windows))
	}
}

func TestRateLimit(t *testing.T) {
	limiter := NewRateLimiter(NewMemoryStore(), 2, time.Minute)
	r := gin.New()
	r.GET("/limited", limiter.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	statuses := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		r.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
		last = rec
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK || statuses[2] != http.StatusTooManyRequests {
		t.Errorf("Expected [200 200 429], got %v", statuses)
	}
	if last.Header().Get("X-RateLimit-Remaining") != "0" || last.Header().Get("Retry-After") == "" {
		t.Errorf("Missing rate limit headers: %v", last.Header())
	}
	if !strings.Contains(last.Body.String(), "rate-limited") {
		t.Errorf("Unexpected body: %s", last.Body.String())
	}

	// Other clients have their own window
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "192.0.2.2:1234"
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected second client to pass, got %d", rec.Code)
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unexpected error") {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}
}

func TestStatsMiddleware(t *testing.T) {
	stats := logging.NewStatistics(t.TempDir(), true, nil)

	r := gin.New()
	r.Use(StatsMiddleware(stats))
	r.POST("/api/analyze", func(c *gin.Context) {
		c.Set(AnalysisTargetKey, "https://example.com/post")
		c.Status(http.StatusBadGateway)
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/analyze", nil))

	snap := stats.Snapshot()
	if snap.TotalRequests != 1 {
		t.Errorf("Expected only the analysis to be counted, got %d", snap.TotalRequests)
	}
	if snap.ErrorRate != 100 {
		t.Errorf("Expected the failed analysis to count as an error, got %v", snap.ErrorRate)
	}
	if snap.UniqueVisitors24h != 1 {
		t.Errorf("Expected 1 visitor, got %d", snap.UniqueVisitors24h)
	}
	if len(snap.PopularURLs) != 1 || snap.PopularURLs[0].URL != "https://example.com/post" {
		t.Errorf("Unexpected popular URLs: %+v", snap.PopularURLs)
	}
}
