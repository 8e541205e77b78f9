package insights

import (
	"fmt"
	"regexp"

	"github.com/seo-optimizer/aiready/checks"
	"github.com/seo-optimizer/aiready/page"
)

// Snippet kinds.
const (
	SnippetStatistic  = "statistic"
	SnippetDefinition = "definition"
	SnippetClaim      = "claim"
)

// Snippet is a sentence an assistant could quote as is.
type Snippet struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// WeakSnippet is a sentence that hedges, with a suggested fix.
type WeakSnippet struct {
	Text       string `json:"text"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// weakHedgePattern is broader than the quotable-statements hedge list.
var weakHedgePattern = regexp.MustCompile(`(?i)\b(?:might|maybe|perhaps|probably|possibly|could be|seems? to|somewhat|sort of|kind of|i think|i believe|arguably|it depends)\b`)

// Snippets classifies sentences into strong quotable snippets and weak,
// hedging ones.
func Snippets(p *page.ParsedPage) ([]Snippet, []WeakSnippet) {
	var strong []Snippet
	var weak []WeakSnippet

	for _, s := range p.Sentences {
		if !snippable(s) {
			continue
		}

		if hedge := weakHedgePattern.FindString(s.Text); hedge != "" {
			if len(weak) < maxWeakSnippets {
				weak = append(weak, WeakSnippet{
					Text:       s.String(),
					Issue:      fmt.Sprintf("Hedging language (%q) weakens the statement", hedge),
					Suggestion: "State the point directly and support it with a specific fact or source.",
				})
			}
			continue
		}

		if len(strong) >= maxStrongSnippets {
			continue
		}
		switch {
		case checks.StatisticPattern.MatchString(s.Text):
			strong = append(strong, Snippet{Text: s.String(), Type: SnippetStatistic})
		case checks.DefinitionPattern.MatchString(s.Text):
			strong = append(strong, Snippet{Text: s.String(), Type: SnippetDefinition})
		case checks.EvidencePattern.MatchString(s.Text):
			strong = append(strong, Snippet{Text: s.String(), Type: SnippetClaim})
		}
	}
	return nonNil(strong), nonNil(weak)
}
