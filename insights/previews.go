package insights

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seo-optimizer/aiready/checks"
	"github.com/seo-optimizer/aiready/page"
	"github.com/seo-optimizer/aiready/textstat"
)

// Confidence that an assistant would actually cite a preview.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const (
	minPreviewWords = 6
	maxPreviewWords = 40
)

// CitationPreview simulates an AI assistant quoting the page for a query.
type CitationPreview struct {
	Query      string `json:"query"`
	Snippet    string `json:"snippet"`
	Confidence string `json:"confidence"`
}

var (
	definitionSubject = regexp.MustCompile(`(?i)^(.{1,80}?)\s(?:is|are|refers to|is defined as|means)\b`)
	questionStart     = regexp.MustCompile(`(?i)^(?:what|how|why|when|where|who|which)\b`)
)

// CitationPreviews picks statistic-backed sentences first, then definitions.
// With neither, the first reasonably sized sentence is used at low
// confidence.
func CitationPreviews(p *page.ParsedPage) []CitationPreview {
	topic := pageTopic(p)

	var stats, defs []CitationPreview
	for _, s := range p.Sentences {
		if !snippable(s) {
			continue
		}
		switch {
		case checks.StatisticPattern.MatchString(s.Text):
			stats = append(stats, CitationPreview{
				Query:      fmt.Sprintf("What are the key statistics about %s?", topic),
				Snippet:    s.String(),
				Confidence: ConfidenceHigh,
			})
		case checks.DefinitionPattern.MatchString(s.Text):
			subject := topic
			if m := definitionSubject.FindStringSubmatch(s.Text); m != nil {
				subject = strings.TrimSpace(m[1])
			}
			defs = append(defs, CitationPreview{
				Query:      fmt.Sprintf("What is %s?", subject),
				Snippet:    s.String(),
				Confidence: ConfidenceMedium,
			})
		}
	}

	previews := append(stats, defs...)
	if len(previews) == 0 {
		for _, s := range p.Sentences {
			if snippable(s) {
				previews = append(previews, CitationPreview{
					Query:      fmt.Sprintf("Tell me about %s", topic),
					Snippet:    s.String(),
					Confidence: ConfidenceLow,
				})
				break
			}
		}
	}

	if len(previews) > maxCitationPreviews {
		previews = previews[:maxCitationPreviews]
	}
	return nonNil(previews)
}

// Questions collects question-style phrasing from the title, headings and
// body, without duplicates.
func Questions(p *page.ParsedPage) []string {
	seen := make(map[string]bool)
	var questions []string

	add := func(text string) {
		text = strings.TrimSpace(strings.TrimRight(text, "?"))
		if text == "" || len(questions) >= maxQuestions {
			return
		}
		key := strings.ToLower(text)
		if seen[key] {
			return
		}
		seen[key] = true
		questions = append(questions, text+"?")
	}

	if questionStart.MatchString(p.Title) {
		add(p.Title)
	}
	for _, h := range p.Headings {
		if strings.HasSuffix(h.Text, "?") || questionStart.MatchString(h.Text) {
			add(h.Text)
		}
	}
	for _, s := range p.Sentences {
		if s.IsQuestion() && questionStart.MatchString(s.Text) {
			add(s.Text)
		}
	}
	return nonNil(questions)
}

func snippable(s textstat.Sentence) bool {
	n := s.WordCount()
	return s.Terminator != "" && n >= minPreviewWords && n <= maxPreviewWords
}

func pageTopic(p *page.ParsedPage) string {
	switch {
	case p.Title != "":
		return p.Title
	case p.Domain != "":
		return p.Domain
	default:
		return "this page"
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
