// Package analyzer runs the full AI search readiness pipeline for one URL:
// fetch, parse, check battery, scoring, recommendations, insights and the
// optional narrative blend.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/seo-optimizer/aiready/checks"
	"github.com/seo-optimizer/aiready/fetcher"
	"github.com/seo-optimizer/aiready/insights"
	"github.com/seo-optimizer/aiready/metrics"
	"github.com/seo-optimizer/aiready/narrative"
	"github.com/seo-optimizer/aiready/page"
	"github.com/seo-optimizer/aiready/recommend"
	"github.com/seo-optimizer/aiready/scoring"
	"github.com/seo-optimizer/aiready/stats"
	"github.com/seo-optimizer/aiready/textstat"
)

const (
	DefaultCacheTTL        = 30 * time.Minute
	DefaultMaxCacheSize    = 1000
	DefaultCleanupInterval = 5 * time.Minute
)

// Fetcher downloads a page
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetcher.Result, error)
}

// Narrator produces the optional narrative analysis
type Narrator interface {
	Analyze(ctx context.Context, req narrative.Request) (*narrative.Analysis, error)
}

// Analyzer performs AI search readiness analysis on a given URL
type Analyzer struct {
	fetcher  Fetcher
	narrator Narrator
	battery  *checks.Battery
	stats    *stats.Storage
	metrics  *metrics.Metrics
	logger   *zap.Logger
	tracer   trace.Tracer

	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupStopped  chan struct{}
	shutdownOnce    sync.Once

	inflight singleflight.Group
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithNarrator enables narrative analysis for requests that ask for it
func WithNarrator(n Narrator) Option {
	return func(a *Analyzer) { a.narrator = n }
}

// WithStats records operational counters in s
func WithStats(s *stats.Storage) Option {
	return func(a *Analyzer) { a.stats = s }
}

// WithMetrics records Prometheus metrics in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithCache sets the result cache TTL and size. A zero TTL disables caching.
func WithCache(ttl time.Duration, maxSize int) Option {
	return func(a *Analyzer) {
		a.cacheTTL = ttl
		a.maxCacheSize = maxSize
	}
}

// WithCleanupInterval sets how often expired cache entries are dropped
func WithCleanupInterval(d time.Duration) Option {
	return func(a *Analyzer) { a.cleanupInterval = d }
}

// New creates a new Analyzer. Call Shutdown to stop its cleanup goroutine.
func New(f Fetcher, opts ...Option) *Analyzer {
	a := &Analyzer{
		fetcher:         f,
		cache:           make(map[string]cacheEntry),
		cacheTTL:        DefaultCacheTTL,
		maxCacheSize:    DefaultMaxCacheSize,
		cleanupInterval: DefaultCleanupInterval,
		stopCleanup:     make(chan struct{}),
		cleanupStopped:  make(chan struct{}),
		tracer:          otel.Tracer("github.com/seo-optimizer/aiready/analyzer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.metrics == nil {
		a.metrics = metrics.New()
	}
	if a.maxCacheSize < 1 {
		a.maxCacheSize = DefaultMaxCacheSize
	}
	if a.cleanupInterval <= 0 {
		a.cleanupInterval = DefaultCleanupInterval
	}

	a.battery = checks.DefaultBattery(checks.WithPanicHandler(func(id string, recovered any) {
		a.logger.Error("Check panicked", zap.String("check", id), zap.Any("panic", recovered))
		a.metrics.CheckPanicked(id)
	}))

	go a.periodicCleanup()

	return a
}

// ValidateURL accepts absolute http and https URLs only
func ValidateURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return invalidInput("A URL is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return invalidInput("Invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalidInput("Only http and https URLs can be analyzed")
	}
	if u.Hostname() == "" {
		return invalidInput("Invalid URL %q: missing host", rawURL)
	}
	return nil
}

// Analyze fetches rawURL and analyzes it. Results are cached per URL and
// options; concurrent requests for the same key share one analysis.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string, opts Options) (*AnalysisResult, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := ValidateURL(rawURL); err != nil {
		a.metrics.ObserveAnalysis(string(KindInvalidInput), 0)
		return nil, err
	}

	cacheKey := generateCacheKey(rawURL, opts)
	if result, ok := a.lookup(cacheKey); ok {
		a.metrics.CacheLookup(true)
		a.count(stats.Delta{CacheHits: 1})
		return result, nil
	}
	a.metrics.CacheLookup(false)
	a.count(stats.Delta{CacheMisses: 1})

	v, err, _ := a.inflight.Do(cacheKey, func() (any, error) {
		result, err := a.analyzeURL(ctx, rawURL, opts)
		if err != nil {
			return nil, err
		}
		a.store(cacheKey, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*AnalysisResult), nil
}

func (a *Analyzer) analyzeURL(ctx context.Context, rawURL string, opts Options) (*AnalysisResult, error) {
	start := time.Now()

	ctx, span := a.tracer.Start(ctx, "analyzer.Analyze", trace.WithAttributes(
		attribute.String("url", rawURL),
		attribute.Bool("narrative", opts.Narrative),
	))
	defer span.End()

	res, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		aerr := classifyFetchError(err)
		a.fail(span, rawURL, aerr, start)
		return nil, aerr
	}
	a.metrics.ObserveFetch(res.Elapsed)

	result, err := a.analyzeDocument(ctx, res.HTML, rawURL, res.Elapsed, opts)
	if err != nil {
		var aerr *AnalysisError
		if !errors.As(err, &aerr) {
			aerr = internalError(err)
		}
		a.fail(span, rawURL, aerr, start)
		return nil, aerr
	}

	span.SetAttributes(attribute.Int("score", result.Score), attribute.String("grade", result.Grade))
	a.metrics.ObserveAnalysis("ok", time.Since(start))
	a.count(stats.Delta{Analyses: 1})
	a.logger.Info("Analysis complete",
		zap.String("url", rawURL),
		zap.Int("score", result.Score),
		zap.String("grade", result.Grade),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// AnalyzeHTML analyzes markup that was already fetched. loadTime feeds the
// page-speed check. Results are not cached.
func (a *Analyzer) AnalyzeHTML(ctx context.Context, html, sourceURL string, loadTime time.Duration, opts Options) (*AnalysisResult, error) {
	return a.analyzeDocument(ctx, html, sourceURL, loadTime, opts)
}

func (a *Analyzer) analyzeDocument(ctx context.Context, html, sourceURL string, loadTime time.Duration, opts Options) (*AnalysisResult, error) {
	p, err := page.Parse(html, sourceURL)
	if err != nil {
		if errors.Is(err, page.ErrEmptyDocument) {
			return nil, &AnalysisError{Kind: KindInvalidInput, Message: "The page is empty", Err: err}
		}
		return nil, internalError(err)
	}

	results := a.battery.Run(checks.Input{Page: p, LoadTime: loadTime})
	for _, c := range results {
		if !c.Passed {
			a.metrics.CheckFailed(c.ID)
		}
	}

	summary := scoring.Aggregate(results)
	recs := recommend.Generate(results)
	found, warnings := insights.Extract(p, results)

	metadata := buildMetadata(p, loadTime)
	readability, warning := safeReadability(p.VisibleText)
	if warning != "" {
		warnings = append(warnings, warning)
	}
	metadata.Readability = readability

	result := &AnalysisResult{
		ID:                 uuid.NewString(),
		URL:                sourceURL,
		Timestamp:          time.Now().UTC(),
		Score:              summary.Score,
		RuleBasedScore:     summary.Score,
		Grade:              summary.Grade,
		Categories:         summary.Categories,
		Checks:             results,
		Metadata:           metadata,
		Recommendations:    recs,
		TopRecommendations: recommend.Top(recs, recommend.DefaultTopN),
		Insights:           found,
		Warnings:           warnings,
	}
	for _, w := range warnings {
		a.logger.Warn("Partial analysis", zap.String("url", sourceURL), zap.String("warning", w))
	}

	if opts.Narrative {
		a.applyNarrative(ctx, result, p)
	}

	a.metrics.ObserveScore(result.Score)
	return result, nil
}

func buildMetadata(p *page.ParsedPage, loadTime time.Duration) PageMetadata {
	lang := p.Lang
	if lang == "" {
		lang = p.Article.Language
	}
	return PageMetadata{
		Title:       p.Title,
		Description: p.Description,
		WordCount:   p.WordCount,
		LoadTimeMs:  loadTime.Milliseconds(),
		Domain:      p.Domain,
		Language:    lang,
		Byline:      p.Article.Byline,
		SiteName:    p.Article.SiteName,
	}
}

// readabilityOf scores visible text
var readabilityOf = textstat.Flesch

// safeReadability turns a panic in the scorer into a warning and the
// not-applicable sentinel.
func safeReadability(text string) (r textstat.Readability, warning string) {
	defer func() {
		if rec := recover(); rec != nil {
			r = textstat.Readability{Grade: textstat.NotApplicable}
			warning = fmt.Sprintf("Readability scoring failed: %v", rec)
		}
	}()
	return readabilityOf(text), ""
}

// applyNarrative calls the narrator and blends its score. Any failure is
// recorded as a warning and leaves the rule-based result untouched.
func (a *Analyzer) applyNarrative(ctx context.Context, result *AnalysisResult, p *page.ParsedPage) {
	if a.narrator == nil {
		a.metrics.NarrativeCall("unavailable")
		result.Warnings = append(result.Warnings, "Narrative analysis unavailable: no provider configured")
		return
	}

	passed := make(map[string]bool, len(result.Checks))
	for _, c := range result.Checks {
		passed[c.ID] = c.Passed
	}

	analysis, err := a.narrator.Analyze(ctx, narrative.Request{
		URL:   result.URL,
		Title: p.Title,
		Text:  p.VisibleText,
		Metadata: narrative.Metadata{
			WordCount: p.WordCount,
			HasSchema: checks.HasSchema(p.HTML),
			HasFAQ:    passed["faq-section"],
			HasAuthor: passed["author-info"],
			Headings:  p.HeadingTexts(),
		},
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, narrative.ErrUnavailable) {
			outcome = "unavailable"
		}
		a.metrics.NarrativeCall(outcome)
		a.count(stats.Delta{NarrativeCalls: 1, NarrativeFailures: 1})
		a.logger.Warn("Narrative analysis failed", zap.String("url", result.URL), zap.Error(err))
		result.Warnings = append(result.Warnings, "Narrative analysis unavailable: "+err.Error())
		return
	}

	a.metrics.NarrativeCall("ok")
	a.count(stats.Delta{NarrativeCalls: 1})

	blended, ok := scoring.Blend(analysis.Score, result.RuleBasedScore)
	if !ok {
		result.Warnings = append(result.Warnings, "Narrative analysis returned an unusable score")
		return
	}
	result.Narrative = analysis
	result.Score = blended
	result.Grade = scoring.GradeFor(blended)
}

func (a *Analyzer) fail(span trace.Span, rawURL string, aerr *AnalysisError, start time.Time) {
	span.RecordError(aerr)
	span.SetStatus(codes.Error, string(aerr.Kind))
	a.metrics.ObserveAnalysis(string(aerr.Kind), time.Since(start))
	a.count(stats.Delta{FailedAnalyses: 1})
	a.logger.Warn("Analysis failed",
		zap.String("url", rawURL),
		zap.String("kind", string(aerr.Kind)),
		zap.Error(aerr),
	)
}

func (a *Analyzer) count(d stats.Delta) {
	if a.stats != nil {
		a.stats.IncrementStats(d)
	}
}

// GetStats returns the statistics storage instance, which may be nil
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Metrics returns the metrics the analyzer records into
func (a *Analyzer) Metrics() *metrics.Metrics {
	return a.metrics
}

// Shutdown stops the cache cleanup goroutine and clears the cache. The
// statistics storage is owned by the caller and is not closed here.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	a.shutdownOnce.Do(func() {
		close(a.stopCleanup)
		<-a.cleanupStopped

		a.cacheMutex.Lock()
		a.cache = nil
		a.cacheMutex.Unlock()
	})
	return nil
}
