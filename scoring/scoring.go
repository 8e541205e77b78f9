// Package scoring turns check results into category scores, an overall score
// and a letter grade.
package scoring

import (
	"math"

	"github.com/seo-optimizer/aiready/checks"
)

// Status buckets a category percentage.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusPoor    Status = "poor"
)

const (
	// Narrative weight in a blended score; the rule-based score gets the rest.
	externalWeight = 0.6
	ruleWeight     = 0.4
)

// CategoryScore is the aggregate of one category's checks.
type CategoryScore struct {
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Percentage int    `json:"percentage"`
	Status     Status `json:"status"`
}

// CategoryScores has one field per category.
type CategoryScores struct {
	ContentStructure   CategoryScore `json:"contentStructure"`
	CitationReadiness  CategoryScore `json:"citationReadiness"`
	TechnicalSEO       CategoryScore `json:"technicalSeo"`
	CredibilitySignals CategoryScore `json:"credibilitySignals"`
	AISpecificFactors  CategoryScore `json:"aiSpecificFactors"`
}

// NamedScore pairs a category with its score.
type NamedScore struct {
	Category checks.Category
	CategoryScore
}

// All returns the scores in checks.Categories order.
func (c CategoryScores) All() []NamedScore {
	return []NamedScore{
		{checks.ContentStructure, c.ContentStructure},
		{checks.CitationReadiness, c.CitationReadiness},
		{checks.TechnicalSEO, c.TechnicalSEO},
		{checks.CredibilitySignals, c.CredibilitySignals},
		{checks.AISpecificFactors, c.AISpecificFactors},
	}
}

func (c *CategoryScores) slot(cat checks.Category) *CategoryScore {
	switch cat {
	case checks.ContentStructure:
		return &c.ContentStructure
	case checks.CitationReadiness:
		return &c.CitationReadiness
	case checks.TechnicalSEO:
		return &c.TechnicalSEO
	case checks.CredibilitySignals:
		return &c.CredibilitySignals
	case checks.AISpecificFactors:
		return &c.AISpecificFactors
	default:
		return nil
	}
}

// Summary is the aggregation output.
type Summary struct {
	Categories CategoryScores
	Score      int
	Grade      string
}

// Aggregate sums scores per category and derives the overall score and grade.
// Checks with an unknown category are ignored.
func Aggregate(results []checks.Check) Summary {
	var cats CategoryScores
	total, totalMax := 0, 0

	for _, c := range results {
		slot := cats.slot(c.Category)
		if slot == nil {
			continue
		}
		slot.Score += c.Score
		slot.MaxScore += c.MaxScore
		total += c.Score
		totalMax += c.MaxScore
	}

	for _, cat := range checks.Categories {
		slot := cats.slot(cat)
		slot.Percentage = Percentage(slot.Score, slot.MaxScore)
		slot.Status = StatusFor(slot.Percentage)
	}

	score := Percentage(total, totalMax)
	return Summary{
		Categories: cats,
		Score:      score,
		Grade:      GradeFor(score),
	}
}

// Percentage is round(100*score/maxScore), or 0 when maxScore is 0.
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(maxScore)))
}

// StatusFor maps a percentage onto good, warning or poor.
func StatusFor(pct int) Status {
	switch {
	case pct >= 70:
		return StatusGood
	case pct >= 40:
		return StatusWarning
	default:
		return StatusPoor
	}
}

// GradeFor maps a 0-100 score to a letter grade. Boundary values take the
// higher grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Blend mixes an external narrative score into the rule-based score. It
// reports false and returns rule unchanged when external is not a valid
// score in (0,100].
func Blend(external, rule int) (int, bool) {
	if external <= 0 || external > 100 {
		return rule, false
	}
	return int(math.Round(externalWeight*float64(external) + ruleWeight*float64(rule))), true
}
