// Package insights runs secondary heuristics over a parsed page. Nothing here
// affects the score; the output only helps explain it.
package insights

import (
	"fmt"

	"github.com/seo-optimizer/aiready/checks"
	"github.com/seo-optimizer/aiready/page"
)

const (
	maxCitationPreviews = 3
	maxQuestions        = 10
	maxEntities         = 15
	maxStrongSnippets   = 8
	maxWeakSnippets     = 5
)

// Insights bundles every extractor's output.
type Insights struct {
	CitationPreviews []CitationPreview `json:"citationPreviews"`
	Questions        []string          `json:"questions"`
	Entities         []Entity          `json:"entities"`
	QuotableSnippets []Snippet         `json:"quotableSnippets"`
	WeakSnippets     []WeakSnippet     `json:"weakSnippets"`
	ContentGaps      []ContentGap      `json:"contentGaps"`
	PlatformTips     []PlatformTip     `json:"platformTips"`
}

// extractor fills its part of an Insights value.
type extractor struct {
	name string
	run  func(p *page.ParsedPage, results []checks.Check, out *Insights)
}

var extractors = []extractor{
	{"citation-previews", func(p *page.ParsedPage, _ []checks.Check, out *Insights) {
		out.CitationPreviews = CitationPreviews(p)
	}},
	{"questions", func(p *page.ParsedPage, _ []checks.Check, out *Insights) {
		out.Questions = Questions(p)
	}},
	{"entities", func(p *page.ParsedPage, _ []checks.Check, out *Insights) {
		out.Entities = Entities(p.Sentences)
	}},
	{"snippets", func(p *page.ParsedPage, _ []checks.Check, out *Insights) {
		out.QuotableSnippets, out.WeakSnippets = Snippets(p)
	}},
	{"content-gaps", func(p *page.ParsedPage, _ []checks.Check, out *Insights) {
		out.ContentGaps = ContentGaps(p)
	}},
	{"platform-tips", func(_ *page.ParsedPage, results []checks.Check, out *Insights) {
		out.PlatformTips = PlatformTips(results)
	}},
}

// Extract runs all extractors. results is the already computed battery
// output, used only to flag platform tips as implemented. An extractor that
// panics leaves its fields empty and adds one warning.
func Extract(p *page.ParsedPage, results []checks.Check) (Insights, []string) {
	var (
		out      Insights
		warnings []string
	)
	for _, e := range extractors {
		if msg := runExtractor(e, p, results, &out); msg != "" {
			warnings = append(warnings, msg)
		}
	}

	out.CitationPreviews = nonNil(out.CitationPreviews)
	out.Questions = nonNil(out.Questions)
	out.Entities = nonNil(out.Entities)
	out.QuotableSnippets = nonNil(out.QuotableSnippets)
	out.WeakSnippets = nonNil(out.WeakSnippets)
	out.ContentGaps = nonNil(out.ContentGaps)
	out.PlatformTips = nonNil(out.PlatformTips)
	return out, warnings
}

// runExtractor runs e on a scratch copy so a panic cannot leave half-written
// fields behind.
func runExtractor(e extractor, p *page.ParsedPage, results []checks.Check, out *Insights) (warning string) {
	defer func() {
		if r := recover(); r != nil {
			warning = fmt.Sprintf("Insight extraction failed (%s): %v", e.name, r)
		}
	}()

	scratch := *out
	e.run(p, results, &scratch)
	*out = scratch
	return ""
}
