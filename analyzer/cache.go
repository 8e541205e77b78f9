package analyzer

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strconv"
	"time"

	"github.com/seo-optimizer/aiready/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	result    *AnalysisResult
	timestamp time.Time
}

// generateCacheKey creates a unique key for the URL and options
func generateCacheKey(url string, opts Options) string {
	hash := md5.Sum([]byte(url + "|narrative=" + strconv.FormatBool(opts.Narrative)))
	return hex.EncodeToString(hash[:])
}

// periodicCleanup removes expired entries until Shutdown
func (a *Analyzer) periodicCleanup() {
	defer close(a.cleanupStopped)

	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.cleanup()
		case <-a.stopCleanup:
			return
		}
	}
}

// cleanup removes expired entries and ensures the cache size limit
func (a *Analyzer) cleanup() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cleanupLocked()
}

func (a *Analyzer) cleanupLocked() {
	now := time.Now()
	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(a.cache) > a.maxCacheSize {
		type aged struct {
			key       string
			timestamp time.Time
		}
		entries := make([]aged, 0, len(a.cache))
		for key, entry := range a.cache {
			entries = append(entries, aged{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}
}

// lookup returns a cached result that has not expired
func (a *Analyzer) lookup(key string) (*AnalysisResult, bool) {
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	if !found || time.Since(entry.timestamp) >= a.cacheTTL {
		return nil, false
	}
	return entry.result, true
}

func (a *Analyzer) store(key string, result *AnalysisResult) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	if a.cache == nil || a.cacheTTL <= 0 {
		return
	}
	a.cache[key] = cacheEntry{result: result, timestamp: time.Now()}
	if len(a.cache) > a.maxCacheSize {
		a.cleanupLocked()
	}
}

// ClearCache clears the analysis cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// IsCached checks if a URL is in the cache and not expired
func (a *Analyzer) IsCached(url string, opts Options) bool {
	_, ok := a.lookup(generateCacheKey(url, opts))
	return ok
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	var current stats.MonthlyStats
	if a.stats != nil {
		current = a.stats.GetCurrentStats()
	}

	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     len(a.cache),
		CacheHits:   current.AnalysisCacheHits,
		CacheMisses: current.AnalysisCacheMisses,
		TTL:         a.cacheTTL,
		MaxSize:     a.maxCacheSize,
	}
}
