// Package logging builds the zap logger and tracks request statistics for
// the HTTP boundary.
package logging

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const statisticsFile = "statistics.json"

// Statistics represents the collected statistics
type Statistics struct {
	UniqueVisitors   map[string]time.Time `json:"uniqueVisitors"`   // IP -> Last Visit Time
	AnalysisRequests int                  `json:"analysisRequests"` // Total number of analysis requests
	ErrorCount       int                  `json:"errorCount"`       // Number of failed analyses
	PopularURLs      map[string]int       `json:"popularUrls"`      // URL -> Count
	AverageLoadTime  float64              `json:"averageLoadTime"`  // Average handling time in milliseconds
	TotalLoadTime    float64              `json:"totalLoadTime"`
	LastPersisted    time.Time            `json:"lastPersisted"`

	devMode  bool
	filePath string
	logger   *zap.Logger
	mutex    sync.RWMutex
}

// Snapshot is the externally visible view of Statistics. PopularURLs is only
// filled in development mode.
type Snapshot struct {
	UniqueVisitors24h int        `json:"uniqueVisitors24h"`
	TotalRequests     int        `json:"totalRequests"`
	ErrorRate         float64    `json:"errorRate"`
	AverageLoadTime   float64    `json:"averageLoadTime"`
	PopularURLs       []URLCount `json:"popularUrls,omitempty"`
}

// URLCount is one entry of the popular URL ranking
type URLCount struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// NewStatistics creates statistics persisted under dataDir, loading any
// previous file. A load failure is logged and the counters start empty.
func NewStatistics(dataDir string, devMode bool, logger *zap.Logger) *Statistics {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Statistics{
		UniqueVisitors: make(map[string]time.Time),
		PopularURLs:    make(map[string]int),
		LastPersisted:  time.Now(),
		devMode:        devMode,
		filePath:       filepath.Join(dataDir, statisticsFile),
		logger:         logger,
	}

	if err := s.Load(); err != nil {
		logger.Warn("Could not load existing statistics", zap.Error(err))
	}
	return s
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// cleanURL reduces a URL to scheme, host and path. Local and API URLs are
// dropped.
func cleanURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return ""
	}

	// Don't track our own API URLs
	if strings.Contains(u.Host, "localhost") ||
		strings.Contains(u.Host, "127.0.0.1") ||
		strings.Contains(strings.ToLower(u.Path), "/api/") {
		return ""
	}

	cleaned := u.Scheme + "://" + u.Host
	if u.Path != "" && u.Path != "/" {
		cleaned += u.Path
	}
	return strings.TrimSuffix(cleaned, "/")
}

// TrackAnalysis records an analysis request for target
func (s *Statistics) TrackAnalysis(target string, loadTime time.Duration, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++

	if cleaned := cleanURL(target); cleaned != "" {
		s.PopularURLs[cleaned]++
	}

	if hasError {
		s.ErrorCount++
	}

	s.TotalLoadTime += float64(loadTime.Milliseconds())
	s.AverageLoadTime = s.TotalLoadTime / float64(s.AnalysisRequests)
}

// uniqueVisitorsLocked counts visitors seen in the last 24 hours
func (s *Statistics) uniqueVisitorsLocked() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// popularURLsLocked returns the top n URLs by count, ties by URL
func (s *Statistics) popularURLsLocked(n int) []URLCount {
	result := make([]URLCount, 0, len(s.PopularURLs))
	for u, count := range s.PopularURLs {
		result = append(result, URLCount{URL: u, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].URL < result[j].URL
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

func (s *Statistics) errorRateLocked() float64 {
	if s.AnalysisRequests == 0 {
		return 0
	}
	return (float64(s.ErrorCount) / float64(s.AnalysisRequests)) * 100
}

// Snapshot returns the current statistics. Popular URLs are only included
// in development mode.
func (s *Statistics) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap := Snapshot{
		UniqueVisitors24h: s.uniqueVisitorsLocked(),
		TotalRequests:     s.AnalysisRequests,
		ErrorRate:         s.errorRateLocked(),
		AverageLoadTime:   s.AverageLoadTime,
	}
	if s.devMode {
		snap.PopularURLs = s.popularURLsLocked(5)
	}
	return snap
}

// Save persists the statistics, writing a temporary file first
func (s *Statistics) Save() error {
	s.mutex.Lock()
	s.LastPersisted = time.Now()
	data, err := json.Marshal(s)
	s.mutex.Unlock()
	if err != nil {
		return fmt.Errorf("could not encode statistics: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("could not create statistics directory: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("could not write statistics file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("could not replace statistics file: %w", err)
	}
	return nil
}

// SaveAsync persists the statistics in the background, logging failures
func (s *Statistics) SaveAsync() {
	go func() {
		if err := s.Save(); err != nil {
			s.logger.Warn("Failed to save statistics", zap.Error(err))
		}
	}()
}

// Load reads the statistics from disk. A missing file is not an error.
func (s *Statistics) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not open statistics file: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("could not decode statistics: %w", err)
	}
	if s.UniqueVisitors == nil {
		s.UniqueVisitors = make(map[string]time.Time)
	}
	if s.PopularURLs == nil {
		s.PopularURLs = make(map[string]int)
	}
	return nil
}
