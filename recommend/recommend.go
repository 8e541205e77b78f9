// Package recommend maps failed checks to prioritized remediation advice.
package recommend

import (
	"sort"

	"github.com/seo-optimizer/aiready/checks"
)

// Priority orders recommendations; lower rank comes first.
type Priority string

const (
	Critical Priority = "critical"
	High     Priority = "high"
	Medium   Priority = "medium"
	Low      Priority = "low"
)

// DefaultTopN is how many recommendations Top returns by default.
const DefaultTopN = 5

func (p Priority) rank() int {
	switch p {
	case Critical:
		return 0
	case High:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// Recommendation is remediation advice for one failed check.
type Recommendation struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Impact         string   `json:"impact"`
	Implementation string   `json:"implementation"`
	Example        string   `json:"example,omitempty"`
}

// Generate returns one recommendation per failed check that has a template,
// sorted by priority. Equal priorities keep check order.
func Generate(results []checks.Check) []Recommendation {
	recs := make([]Recommendation, 0)
	for _, c := range results {
		if c.Passed {
			continue
		}
		tpl, ok := templates[c.ID]
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			ID:             c.ID,
			Category:       tpl.category.Label(),
			Priority:       tpl.priority,
			Title:          tpl.title,
			Description:    tpl.description,
			Impact:         tpl.impact,
			Implementation: tpl.implementation,
			Example:        tpl.example,
		})
	}
	Sort(recs)
	return recs
}

// Sort orders recs by priority in place, preserving relative order within a
// priority.
func Sort(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.rank() < recs[j].Priority.rank()
	})
}

// Top returns at most n recommendations, preferring critical and high ones.
// When there are none of those it falls back to the first n overall.
func Top(recs []Recommendation, n int) []Recommendation {
	var urgent []Recommendation
	for _, r := range recs {
		if r.Priority == Critical || r.Priority == High {
			urgent = append(urgent, r)
		}
	}
	if len(urgent) == 0 {
		urgent = recs
	}
	if len(urgent) > n {
		urgent = urgent[:n]
	}
	out := make([]Recommendation, len(urgent))
	copy(out, urgent)
	return out
}
