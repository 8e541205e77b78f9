package insights

import (
	"regexp"

	"github.com/seo-optimizer/aiready/page"
	"github.com/seo-optimizer/aiready/recommend"
)

// ContentGap is a content pattern the page lacks.
type ContentGap struct {
	Type        string             `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    recommend.Priority `json:"priority"`
}

type gapRule struct {
	present *regexp.Regexp
	gap     ContentGap
}

var gapRules = []gapRule{
	{
		present: regexp.MustCompile(`(?i)\b(?:vs\.?|versus|compared (?:to|with)|comparison|better than|difference between)\b`),
		gap: ContentGap{
			Type:        "comparison",
			Title:       "No comparison content",
			Description: "Comparison queries are common in AI search. Compare your subject with alternatives.",
			Priority:    recommend.Medium,
		},
	},
	{
		present: regexp.MustCompile(`(?i)(?:\bstep[- ]by[- ]step\b|\bstep \d|\bfirst,|\bnext,|\bfinally,|\bhow to\b)`),
		gap: ContentGap{
			Type:        "step-by-step",
			Title:       "No step-by-step instructions",
			Description: "Numbered steps are frequently lifted into AI answers for how-to queries.",
			Priority:    recommend.High,
		},
	},
	{
		present: regexp.MustCompile(`(?i)\b(?:pros and cons|advantages|disadvantages|benefits and drawbacks|drawbacks|downsides)\b`),
		gap: ContentGap{
			Type:        "pros-cons",
			Title:       "No pros and cons",
			Description: "Balanced pros and cons help assistants answer evaluation questions.",
			Priority:    recommend.Medium,
		},
	},
	{
		present: regexp.MustCompile(`(?i)(?:["“][^"”]{10,}["”]\s*,?\s*(?:said|says|according to)|\b(?:said|says)\b[^.]{0,60}\b(?:expert|professor|dr\.?|ceo|analyst|researcher)\b)`),
		gap: ContentGap{
			Type:        "expert-quotes",
			Title:       "No expert quotes",
			Description: "Attributed quotes from experts add authority that AI systems weigh when choosing sources.",
			Priority:    recommend.High,
		},
	},
	{
		present: regexp.MustCompile(`(?i)(?:\bsummary\b|\bkey takeaways?\b|\bin conclusion\b|\btl;\s?dr\b|\bbottom line\b)`),
		gap: ContentGap{
			Type:        "summary",
			Title:       "No summary",
			Description: "A short recap gives assistants a ready-made answer to cite.",
			Priority:    recommend.Medium,
		},
	},
}

// ContentGaps lists every content pattern absent from the visible text, in a
// fixed order.
func ContentGaps(p *page.ParsedPage) []ContentGap {
	var gaps []ContentGap
	for _, r := range gapRules {
		if !r.present.MatchString(p.VisibleText) {
			gaps = append(gaps, r.gap)
		}
	}
	return nonNil(gaps)
}
