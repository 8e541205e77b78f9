// Package checks holds the heuristic battery that scores a parsed page for AI
// search readiness. Every check is independent of every other check.
package checks

import (
	"time"

	"github.com/seo-optimizer/aiready/page"
)

// Category groups checks for scoring.
type Category string

const (
	ContentStructure   Category = "contentStructure"
	CitationReadiness  Category = "citationReadiness"
	TechnicalSEO       Category = "technicalSeo"
	CredibilitySignals Category = "credibilitySignals"
	AISpecificFactors  Category = "aiSpecificFactors"
)

// Categories lists every category in reporting order.
var Categories = []Category{
	ContentStructure,
	CitationReadiness,
	TechnicalSEO,
	CredibilitySignals,
	AISpecificFactors,
}

// Label returns the human readable category name.
func (c Category) Label() string {
	switch c {
	case ContentStructure:
		return "Content Structure"
	case CitationReadiness:
		return "Citation Readiness"
	case TechnicalSEO:
		return "Technical SEO"
	case CredibilitySignals:
		return "Credibility Signals"
	case AISpecificFactors:
		return "AI-Specific Factors"
	default:
		return string(c)
	}
}

// Check is the outcome of one heuristic.
type Check struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Details  string   `json:"details"`
}

// Input is everything a check may look at.
type Input struct {
	Page     *page.ParsedPage
	LoadTime time.Duration
}

// Outcome is what a check function reports before the runner stamps it with
// the definition's identity and clamps the score.
type Outcome struct {
	Passed  bool
	Score   int
	Details string
}

// Func evaluates one heuristic.
type Func func(in Input) Outcome

// Definition binds a check function to its fixed identity and point value.
type Definition struct {
	ID       string
	Category Category
	Name     string
	MaxScore int
	Run      Func
}

// binary is the common all-or-nothing outcome.
func binary(passed bool, maxScore int, details string) Outcome {
	if passed {
		return Outcome{Passed: true, Score: maxScore, Details: details}
	}
	return Outcome{Details: details}
}
