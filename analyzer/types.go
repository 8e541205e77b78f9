package analyzer

import (
	"time"

	"github.com/seo-optimizer/aiready/checks"
	"github.com/seo-optimizer/aiready/insights"
	"github.com/seo-optimizer/aiready/narrative"
	"github.com/seo-optimizer/aiready/recommend"
	"github.com/seo-optimizer/aiready/scoring"
	"github.com/seo-optimizer/aiready/textstat"
)

// AnalysisResult represents the complete analysis of a webpage
type AnalysisResult struct {
	ID                 string                     `json:"id"`
	URL                string                     `json:"url"`
	Timestamp          time.Time                  `json:"timestamp"`
	Score              int                        `json:"score"`
	RuleBasedScore     int                        `json:"ruleBasedScore"`
	Grade              string                     `json:"grade"`
	Categories         scoring.CategoryScores     `json:"categories"`
	Checks             []checks.Check             `json:"checks"`
	Metadata           PageMetadata               `json:"metadata"`
	Recommendations    []recommend.Recommendation `json:"recommendations"`
	TopRecommendations []recommend.Recommendation `json:"topRecommendations"`
	Insights           insights.Insights          `json:"insights"`
	Narrative          *narrative.Analysis        `json:"narrative,omitempty"`
	Warnings           []string                   `json:"warnings,omitempty"`
}

// PageMetadata describes the fetched page
type PageMetadata struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	WordCount   int                  `json:"wordCount"`
	LoadTimeMs  int64                `json:"loadTimeMs"`
	Domain      string               `json:"domain"`
	Readability textstat.Readability `json:"readability"`
	Language    string               `json:"language,omitempty"`
	Byline      string               `json:"byline,omitempty"`
	SiteName    string               `json:"siteName,omitempty"`
}

// Options controls a single analysis
type Options struct {
	// Narrative requests the external narrative analysis and score blend
	Narrative bool
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	TTL         time.Duration `json:"ttl"`
	MaxSize     int           `json:"maxSize"`
}
