package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCleanURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://example.com/", "https://example.com"},
		{"https://example.com/blog/post?utm=1#top", "https://example.com/blog/post"},
		{"http://localhost:8082/api/analyze", ""},
		{"https://example.com/api/v1/items", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		if got := cleanURL(tt.in); got != tt.want {
			t.Errorf("cleanURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrackAnalysis(t *testing.T) {
	s := NewStatistics(t.TempDir(), true, nil)

	s.TrackVisitor("10.0.0.1")
	s.TrackVisitor("10.0.0.2")
	s.TrackVisitor("10.0.0.1")
	s.TrackAnalysis("https://a.com/x", 100*time.Millisecond, false)
	s.TrackAnalysis("https://a.com/x/", 300*time.Millisecond, true)
	s.TrackAnalysis("https://b.com", 200*time.Millisecond, false)

	snap := s.Snapshot()
	if snap.UniqueVisitors24h != 2 {
		t.Errorf("Expected 2 visitors, got %d", snap.UniqueVisitors24h)
	}
	if snap.TotalRequests != 3 {
		t.Errorf("Expected 3 requests, got %d", snap.TotalRequests)
	}
	if snap.AverageLoadTime != 200 {
		t.Errorf("Expected average 200ms, got %v", snap.AverageLoadTime)
	}
	if snap.ErrorRate < 33.3 || snap.ErrorRate > 33.4 {
		t.Errorf("Expected error rate ~33.3, got %v", snap.ErrorRate)
	}
	if len(snap.PopularURLs) != 2 || snap.PopularURLs[0] != (URLCount{URL: "https://a.com/x", Count: 2}) {
		t.Errorf("Unexpected popular URLs: %+v", snap.PopularURLs)
	}
}

func TestSnapshotHidesURLsOutsideDevMode(t *testing.T) {
	s := NewStatistics(t.TempDir(), false, nil)
	s.TrackAnalysis("https://a.com", time.Millisecond, false)
	if urls := s.Snapshot().PopularURLs; urls != nil {
		t.Errorf("Expected no popular URLs in production mode, got %+v", urls)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewStatistics(dir, true, nil)
	s.TrackAnalysis("https://a.com", 50*time.Millisecond, true)

	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, statisticsFile+".tmp")); !os.IsNotExist(err) {
		t.Error("Temporary file should be renamed away")
	}

	reloaded := NewStatistics(dir, true, nil)
	snap := reloaded.Snapshot()
	if snap.TotalRequests != 1 || snap.ErrorRate != 100 || snap.AverageLoadTime != 50 {
		t.Errorf("Unexpected reloaded statistics: %+v", snap)
	}

	reloaded.TrackAnalysis("https://a.com", 150*time.Millisecond, false)
	if got := reloaded.Snapshot().AverageLoadTime; got != 100 {
		t.Errorf("Expected average to continue from persisted totals, got %v", got)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
	}{
		{"info", "json", false},
		{"debug", "console", false},
		{"loud", "json", true},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger error = %v, wantErr %v", err, tt.wantErr)
			}
			if logger != nil {
				logger.Sync()
			}
		})
	}
}
