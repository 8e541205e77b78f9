package insights

import "github.com/seo-optimizer/aiready/checks"

// PlatformTip is advice for one AI platform. Implemented mirrors the outcome
// of the check named by CheckID.
type PlatformTip struct {
	Platform    string `json:"platform"`
	Tip         string `json:"tip"`
	CheckID     string `json:"checkId"`
	Implemented bool   `json:"implemented"`
}

var platformTips = []PlatformTip{
	{Platform: "ChatGPT", CheckID: "upfront-answer", Tip: "Lead with a direct, self-contained answer to the page's main question."},
	{Platform: "ChatGPT", CheckID: "faq-section", Tip: "Cover follow-up questions in an FAQ section."},
	{Platform: "Perplexity", CheckID: "source-citations", Tip: "Cite primary sources inline; Perplexity favors well-referenced pages."},
	{Platform: "Perplexity", CheckID: "statistics", Tip: "Include concrete, recent statistics it can quote with attribution."},
	{Platform: "Google AI Overviews", CheckID: "schema-markup", Tip: "Describe the page with Article, FAQPage or HowTo structured data."},
	{Platform: "Google AI Overviews", CheckID: "subheadings", Tip: "Use descriptive H2 and H3 headings that match search queries."},
	{Platform: "Claude", CheckID: "quotable-statements", Tip: "Write clear declarative statements without hedging."},
	{Platform: "Claude", CheckID: "author-info", Tip: "Show author credentials to signal expertise."},
	{Platform: "Microsoft Copilot", CheckID: "publish-date", Tip: "Show publish and update dates so freshness can be judged."},
	{Platform: "Microsoft Copilot", CheckID: "meta-description", Tip: "Write a precise meta description; Bing relies on it for summaries."},
}

// PlatformTips returns the fixed tip list flagged from results. Tips whose
// check is missing from results are not implemented.
func PlatformTips(results []checks.Check) []PlatformTip {
	passed := make(map[string]bool, len(results))
	for _, c := range results {
		passed[c.ID] = c.Passed
	}

	tips := make([]PlatformTip, len(platformTips))
	for i, tip := range platformTips {
		tip.Implemented = passed[tip.CheckID]
		tips[i] = tip
	}
	return tips
}
