package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultTimeout = 60 * time.Second
	maxTextRunes   = 6000
)

// Metadata is the rule-based context sent along with the page text.
type Metadata struct {
	WordCount int      `json:"wordCount"`
	HasSchema bool     `json:"hasSchema"`
	HasFAQ    bool     `json:"hasFAQ"`
	HasAuthor bool     `json:"hasAuthor"`
	Headings  []string `json:"headings"`
}

// Request describes the page to analyze.
type Request struct {
	URL      string
	Title    string
	Text     string
	Metadata Metadata
}

// SampleCitation is a passage an assistant might quote, with the model's
// confidence label (high, medium or low).
type SampleCitation struct {
	Text       string `json:"text"`
	Confidence string `json:"confidence"`
}

// CitationSimulation lists how an assistant might cite the page.
type CitationSimulation struct {
	LikelyQueries   []string         `json:"likelyQueries"`
	SampleCitations []SampleCitation `json:"sampleCitations"`
}

// Improvement is one suggested change.
type Improvement struct {
	Category       string `json:"category"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
	Example        string `json:"example,omitempty"`
}

// Rewrite is a suggested replacement for a passage.
type Rewrite struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Reason   string `json:"reason"`
}

// SWO is a strengths, weaknesses and opportunities breakdown.
type SWO struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
}

// Analysis is the narrative reading of a page.
type Analysis struct {
	Summary              string             `json:"summary"`
	Score                int                `json:"score"`
	ContentUnderstanding string             `json:"contentUnderstanding"`
	CitationSimulation   CitationSimulation `json:"citationSimulation"`
	Improvements         []Improvement      `json:"improvements"`
	MissingContent       []string           `json:"missingContent"`
	Rewrites             []Rewrite          `json:"rewrites"`
	SWO                  SWO                `json:"swo"`
	Provider             string             `json:"provider"`
}

// Analyzer runs narrative analysis through the first available provider.
type Analyzer struct {
	providers []Provider
	timeout   time.Duration
	policy    *bluemonday.Policy
}

// NewAnalyzer creates an analyzer. A non-positive timeout uses DefaultTimeout.
func NewAnalyzer(timeout time.Duration, providers ...Provider) *Analyzer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Analyzer{
		providers: providers,
		timeout:   timeout,
		policy:    bluemonday.StrictPolicy(),
	}
}

// Available reports whether any provider can run.
func (a *Analyzer) Available() bool {
	return firstAvailable(a.providers) != nil
}

// Analyze sends one request to the model and validates the reply.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	provider := firstAvailable(a.providers)
	if provider == nil {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := provider.Complete(ctx, systemPrompt, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", provider.Name(), err)
	}

	analysis, err := a.parse(reply)
	if err != nil {
		return nil, err
	}
	analysis.Provider = provider.Name()
	return analysis, nil
}

func (a *Analyzer) parse(reply string) (*Analysis, error) {
	var analysis Analysis
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if analysis.Score < 1 || analysis.Score > 100 {
		return nil, fmt.Errorf("%w: score %d out of range", ErrMalformedResponse, analysis.Score)
	}

	analysis.Summary = a.sanitize(analysis.Summary)
	analysis.ContentUnderstanding = a.sanitize(analysis.ContentUnderstanding)
	a.sanitizeAll(analysis.CitationSimulation.LikelyQueries)
	for i := range analysis.CitationSimulation.SampleCitations {
		c := &analysis.CitationSimulation.SampleCitations[i]
		c.Text = a.sanitize(c.Text)
		c.Confidence = strings.ToLower(a.sanitize(c.Confidence))
	}
	for i := range analysis.Improvements {
		imp := &analysis.Improvements[i]
		imp.Category = a.sanitize(imp.Category)
		imp.Issue = a.sanitize(imp.Issue)
		imp.Recommendation = a.sanitize(imp.Recommendation)
		imp.Priority = strings.ToLower(a.sanitize(imp.Priority))
		imp.Example = a.sanitize(imp.Example)
	}
	a.sanitizeAll(analysis.MissingContent)
	a.sanitizeAll(analysis.SWO.Strengths)
	a.sanitizeAll(analysis.SWO.Weaknesses)
	a.sanitizeAll(analysis.SWO.Opportunities)
	for i := range analysis.Rewrites {
		r := &analysis.Rewrites[i]
		r.Original = a.sanitize(r.Original)
		r.Improved = a.sanitize(r.Improved)
		r.Reason = a.sanitize(r.Reason)
	}
	return &analysis, nil
}

// sanitize strips markup; the strict policy escapes entities so they are
// decoded back to plain text.
func (a *Analyzer) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(a.policy.Sanitize(s)))
}

func (a *Analyzer) sanitizeAll(items []string) {
	for i, s := range items {
		items[i] = a.sanitize(s)
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

const systemPrompt = `You are an expert in how AI assistants and answer engines select and cite web content.
Assess the page you are given and respond with a single JSON object and nothing else.`

func buildPrompt(req Request) string {
	meta, _ := json.Marshal(req.Metadata)

	var b strings.Builder
	fmt.Fprintf(&b, "URL: %s\n", req.URL)
	fmt.Fprintf(&b, "Title: %s\n", req.Title)
	fmt.Fprintf(&b, "Metadata: %s\n\n", meta)
	b.WriteString("Content:\n")
	b.WriteString(truncateRunes(req.Text, maxTextRunes))
	b.WriteString(`

Respond with JSON of this shape:
{
  "summary": "two or three sentences on how AI systems will see this page",
  "score": 1-100,
  "contentUnderstanding": "what the page is about and who it serves",
  "citationSimulation": {
    "likelyQueries": ["..."],
    "sampleCitations": [{"text": "...", "confidence": "high|medium|low"}]
  },
  "improvements": [{"category": "...", "issue": "...", "recommendation": "...", "priority": "critical|high|medium|low", "example": "..."}],
  "missingContent": ["..."],
  "rewrites": [{"original": "...", "improved": "...", "reason": "..."}],
  "swo": {"strengths": ["..."], "weaknesses": ["..."], "opportunities": ["..."]}
}`)
	return b.String()
}
