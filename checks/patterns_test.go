package checks

import (
	"regexp"
	"testing"
)

func TestPatterns(t *testing.T) {
	tests := []struct {
		name    string
		re      *regexp.Regexp
		matches []string
		rejects []string
	}{
		{
			name:    "statistic",
			re:      StatisticPattern,
			matches: []string{"45%", "3.5 %", "$1,200", "$5 million", "2 billion users", "10x faster", "3 out of 4", "12 percent"},
			rejects: []string{"chapter one", "version 2", "x-ray"},
		},
		{
			name:    "hedge",
			re:      HedgePattern,
			matches: []string{"It might work", "Perhaps not", "This is probably fine"},
			rejects: []string{"A mighty oak", "It works"},
		},
		{
			name:    "evidence",
			re:      EvidencePattern,
			matches: []string{"Research shows that", "according to the CDC", "A 2023 study found", "Experts agree"},
			rejects: []string{"I think so", "We researched it"},
		},
		{
			name:    "date",
			re:      DatePattern,
			matches: []string{"March 15, 2024", "15 March 2024", "2024-03-15", "3/15/2024", "since 2019", "Q3 2023"},
			rejects: []string{"in 1850", "page 2024", "march forward"},
		},
		{
			name:    "definition",
			re:      DefinitionPattern,
			matches: []string{"Retrieval augmented generation is a technique for grounding models", "Latency refers to delay"},
			rejects: []string{"We shipped it yesterday", "However, this is a thing"},
		},
		{
			name:    "direct answer",
			re:      directAnswerPattern,
			matches: []string{"The short answer is yes", "Simply put, it works", "Here's how it works"},
			rejects: []string{"We shipped it yesterday"},
		},
		{
			name:    "faq keyword",
			re:      faqKeywordPattern,
			matches: []string{"FAQ", "Read our FAQs", "Frequently Asked Questions"},
			rejects: []string{"faqir"},
		},
		{
			name:    "question and answer",
			re:      qaPattern,
			matches: []string{"What is SEO? Search engine optimization improves rankings."},
			rejects: []string{"Why? Because.", "What is SEO? yes it is a thing."},
		},
		{
			name:    "faq schema",
			re:      faqSchemaPattern,
			matches: []string{`"@type": "FAQPage"`, `itemtype="https://schema.org/FAQPage"`},
			rejects: []string{`"@type":"Article"`},
		},
		{
			name:    "json-ld",
			re:      jsonLDPattern,
			matches: []string{`<script type="application/ld+json">`},
			rejects: []string{`<script type="text/javascript">`},
		},
		{
			name:    "microdata",
			re:      microdataPattern,
			matches: []string{`<div itemscope itemtype="https://schema.org/Person">`},
			rejects: []string{`<div class="item">`},
		},
		{
			name:    "rich schema",
			re:      richSchemaPattern,
			matches: []string{`"@type": "HowTo"`, `"@type":["Article"]`, `itemtype="https://schema.org/Product"`},
			rejects: []string{`"@type": "Person"`, `"@type": "WebPage"`},
		},
		{
			name:    "author schema",
			re:      authorSchemaPattern,
			matches: []string{`"author": {"@type": "Person"}`, `itemprop="author"`},
			rejects: []string{`"authorName": "x"`},
		},
		{
			name:    "byline markup",
			re:      bylineMarkupPattern,
			matches: []string{`<a rel="author">`, `<span class="post-author">`, `<meta name="author" content="x">`},
			rejects: []string{`<div class="authority">`},
		},
		{
			name:    "byline text",
			re:      bylineTextPattern,
			matches: []string{"By Jane Doe", "Written by Alex Smith"},
			rejects: []string{"by the way", "by Jane"},
		},
		{
			name:    "publish markup",
			re:      publishMarkupPattern,
			matches: []string{`"datePublished": "2024-01-01"`, `<meta property="article:published_time"`, `<time datetime="2024-01-01">`},
			rejects: []string{`<time>yesterday</time>`},
		},
		{
			name:    "publish text",
			re:      publishTextPattern,
			matches: []string{"Published on March 3, 2024", "Updated: 2024-01-05", "Posted 12/01/2023"},
			rejects: []string{"Published research"},
		},
		{
			name:    "about href",
			re:      aboutHrefPattern,
			matches: []string{"/about", "https://example.com/about-us/", "/team#leads"},
			rejects: []string{"/blog/about-seo", "/aboutness"},
		},
		{
			name:    "about text",
			re:      aboutTextPattern,
			matches: []string{"About Us", "Our Team"},
			rejects: []string{"About this recipe"},
		},
		{
			name:    "bracket citation",
			re:      bracketCitationPattern,
			matches: []string{"[1]", "as shown [12]"},
			rejects: []string{"[a]"},
		},
		{
			name:    "source label",
			re:      sourceLabelPattern,
			matches: []string{"Source: CDC", "Sources:"},
			rejects: []string{"open source software"},
		},
		{
			name:    "according to",
			re:      accordingToPattern,
			matches: []string{"According to NASA"},
			rejects: []string{"accordingly"},
		},
		{
			name:    "cite element",
			re:      citeElementPattern,
			matches: []string{"<cite>", `<cite class="ref">`},
			rejects: []string{"<citation>"},
		},
		{
			name:    "table of contents",
			re:      tocKeywordPattern,
			matches: []string{"Table of Contents", "On this page"},
			rejects: []string{"contents"},
		},
		{
			name:    "summary",
			re:      summaryPattern,
			matches: []string{"Key Takeaways", "TL;DR", "In conclusion", "Summary"},
			rejects: []string{"summarize this"},
		},
		{
			name:    "paywall text",
			re:      paywallTextPattern,
			matches: []string{"Subscribe to continue reading", "Already a subscriber?", "Members only"},
			rejects: []string{"Subscribe to our newsletter"},
		},
		{
			name:    "paywall markup",
			re:      paywallMarkupPattern,
			matches: []string{`<div class="article paywall">`, `"isAccessibleForFree": "False"`},
			rejects: []string{`<div class="wall">`},
		},
		{
			name:    "aria label",
			re:      ariaLabelPattern,
			matches: []string{`<nav aria-label="Main">`, `<div aria-labelledby="x">`},
			rejects: []string{`<nav>`},
		},
		{
			name:    "aria role",
			re:      ariaRolePattern,
			matches: []string{`<nav role="navigation">`},
			rejects: []string{`<div data-role="x">`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.matches {
				if !tt.re.MatchString(s) {
					t.Errorf("Expected %s pattern to match %q", tt.name, s)
				}
			}
			for _, s := range tt.rejects {
				if tt.re.MatchString(s) {
					t.Errorf("Expected %s pattern not to match %q", tt.name, s)
				}
			}
		})
	}
}
