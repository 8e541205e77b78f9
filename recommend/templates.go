package recommend

import "github.com/seo-optimizer/aiready/checks"

type template struct {
	category       checks.Category
	priority       Priority
	title          string
	description    string
	impact         string
	implementation string
	example        string
}

// templates maps a check id to its remediation. Checks missing here are
// diagnostic only and never produce a recommendation.
var templates = map[string]template{
	"single-h1": {
		category:       checks.ContentStructure,
		priority:       Critical,
		title:          "Use exactly one H1 heading",
		description:    "AI systems use the H1 to understand what a page is about. Missing or multiple H1s make the main topic ambiguous.",
		impact:         "Clearer topic identification for AI crawlers and answer engines",
		implementation: "Wrap the page's main title in a single <h1> and demote any other H1 elements to H2.",
		example:        "<h1>What Is Structured Data?</h1>",
	},
	"content-length": {
		category:       checks.ContentStructure,
		priority:       Critical,
		title:          "Expand your content to at least 800 words",
		description:    "Thin pages rarely contain enough depth for an AI assistant to quote them as an authoritative source.",
		impact:         "More citable passages and stronger topical authority",
		implementation: "Cover the topic in depth: add background, worked examples, common questions and a summary.",
	},
	"no-paywall": {
		category:       checks.AISpecificFactors,
		priority:       Critical,
		title:          "Make the content accessible without a paywall",
		description:    "AI crawlers cannot read content behind subscription gates, so gated pages are effectively invisible to them.",
		impact:         "Content becomes eligible for citation in AI answers",
		implementation: "Serve the full text to crawlers, or publish an openly accessible summary with the key facts.",
	},
	"faq-section": {
		category:       checks.ContentStructure,
		priority:       High,
		title:          "Add an FAQ section",
		description:    "Question and answer pairs map directly onto the queries people type into AI assistants.",
		impact:         "Higher chance of being quoted for question-style queries",
		implementation: "Add a section with 3-5 common questions as headings, each followed by a concise answer, and mark it up with FAQPage schema.",
		example:        `{"@context": "https://schema.org", "@type": "FAQPage", "mainEntity": [...]}`,
	},
	"statistics": {
		category:       checks.CitationReadiness,
		priority:       High,
		title:          "Include specific statistics and data",
		description:    "Concrete numbers are among the passages AI assistants most often cite.",
		impact:         "More quotable, verifiable facts",
		implementation: "Add at least three specific figures (percentages, amounts, counts) and attribute each to its source.",
		example:        "Organic traffic grew 43% within six months of adding structured data.",
	},
	"schema-markup": {
		category:       checks.TechnicalSEO,
		priority:       High,
		title:          "Add structured data markup",
		description:    "Schema.org markup tells machines exactly what a page contains and who published it.",
		impact:         "Better machine understanding and eligibility for rich results",
		implementation: "Add a JSON-LD block describing the page as an Article, FAQPage, HowTo or Product, including author and publish date.",
		example:        `<script type="application/ld+json">{"@context": "https://schema.org", "@type": "Article", "headline": "..."}</script>`,
	},
	"meta-description": {
		category:       checks.TechnicalSEO,
		priority:       High,
		title:          "Write a 120-160 character meta description",
		description:    "The meta description is often used as the summary of your page in search and AI results.",
		impact:         "Accurate snippets and better click-through",
		implementation: "Summarize the page's main answer in one or two sentences between 120 and 160 characters.",
	},
	"upfront-answer": {
		category:       checks.AISpecificFactors,
		priority:       High,
		title:          "Answer the main question up front",
		description:    "AI assistants favor pages that state the answer in the opening paragraph instead of building up to it.",
		impact:         "Opening paragraph becomes a ready-made citation",
		implementation: "Start with a one or two sentence definition or direct answer, then expand on it.",
		example:        "Structured data is a standardized format for describing a page's content to search engines.",
	},
	"author-info": {
		category:       checks.CredibilitySignals,
		priority:       High,
		title:          "Show who wrote the content",
		description:    "Named authors with credentials are a strong trust signal for AI systems weighing sources.",
		impact:         "Higher perceived expertise and trustworthiness",
		implementation: "Add a visible byline and an author property in your Article schema, linking to an author bio.",
	},
	"subheadings": {
		category:       checks.ContentStructure,
		priority:       Medium,
		title:          "Organize content with H2 and H3 subheadings",
		description:    "A clear heading hierarchy lets AI systems extract individual sections as standalone answers.",
		impact:         "Sections become independently citable",
		implementation: "Break the content into at least two H2 sections with H3 subsections where topics have detail.",
	},
	"quotable-statements": {
		category:       checks.CitationReadiness,
		priority:       Medium,
		title:          "Write clear, quotable statements",
		description:    "Short declarative sentences without hedging are easy for AI assistants to lift verbatim.",
		impact:         "More passages suitable for direct quotation",
		implementation: "Rewrite key points as confident 8-25 word sentences and avoid words like might, maybe and probably.",
	},
	"source-citations": {
		category:       checks.CredibilitySignals,
		priority:       Medium,
		title:          "Cite your sources",
		description:    "Referencing primary sources shows claims are verifiable, which AI systems reward.",
		impact:         "Stronger credibility for the facts on the page",
		implementation: "Link to original research and data, using inline attributions or numbered references.",
	},
	"summary-section": {
		category:       checks.AISpecificFactors,
		priority:       Medium,
		title:          "Add a summary or key takeaways section",
		description:    "A concise recap gives AI assistants a pre-packaged summary to cite.",
		impact:         "Easier extraction of the page's main points",
		implementation: "End with a Key Takeaways list of 3-5 bullet points restating the most important facts.",
	},
	"meta-title": {
		category:       checks.TechnicalSEO,
		priority:       Medium,
		title:          "Keep the title tag between 30 and 60 characters",
		description:    "Titles outside this range are truncated or too vague to describe the page.",
		impact:         "Accurate page titles in search and AI results",
		implementation: "Write a descriptive title that contains the main topic and fits in 30-60 characters.",
	},
	"table-of-contents": {
		category:       checks.AISpecificFactors,
		priority:       Low,
		title:          "Add a table of contents",
		description:    "A table of contents exposes the page structure and gives each section a linkable anchor.",
		impact:         "Better navigation for readers and section-level linking",
		implementation: "Add a linked list of the page's H2 sections near the top, pointing to id anchors on each heading.",
	},
}

// HasTemplate reports whether a failing check id produces a recommendation.
func HasTemplate(checkID string) bool {
	_, ok := templates[checkID]
	return ok
}
