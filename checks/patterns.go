package checks

import "regexp"

// Pattern table. Every heuristic that matches text or markup goes through one
// of these; each is covered by its own case in patterns_test.go. Text patterns
// run over visible text, markup patterns over the raw HTML.
var (
	// StatisticPattern: percentages, currency amounts, scale words, multipliers, "n out of m".
	StatisticPattern = regexp.MustCompile(`(?i)(?:\d+(?:\.\d+)?\s?%|\$\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|trillion|[kmb])\b)?|\b\d[\d,]*(?:\.\d+)?\s(?:million|billion|trillion|thousand|percent)\b|\b\d+(?:\.\d+)?x\b|\b\d+\s(?:out of|in)\s\d+\b)`)

	// HedgePattern: words that disqualify a sentence from being quotable.
	HedgePattern = regexp.MustCompile(`(?i)\b(?:might|maybe|perhaps|probably)\b`)

	// EvidencePattern: phrases that attribute a claim to evidence.
	EvidencePattern = regexp.MustCompile(`(?i)\b(?:research (?:shows|suggests|indicates|found|finds)|stud(?:y|ies) (?:shows?|suggests?|finds?|found|indicates?)|according to|data (?:shows|suggests|indicates|from)|surveys? (?:shows?|found|of)|experts? (?:say|says|agree|recommend)|evidence (?:shows|suggests)|published (?:in|by)|reports? (?:by|from|that))\b`)

	// DatePattern: calendar dates and year references.
	DatePattern = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}|\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|(?:in|since|by|during|until|from)\s+(?:19|20)\d{2}|q[1-4]\s+(?:19|20)\d{2})\b`)

	// DefinitionPattern: a sentence that defines its subject ("X is a ...").
	DefinitionPattern = regexp.MustCompile(`(?i)^(?:[^,;:]{1,80}?\s(?:is|are)\s(?:a|an|the)\s|.*?\b(?:refers to|is defined as|means)\b)`)

	// directAnswerPattern: answer-first phrasing near the top of the page.
	directAnswerPattern = regexp.MustCompile(`(?i)(?:\bthe (?:short )?answer is\b|\bin short\b|\bsimply put\b|\bput simply\b|\bin a nutshell\b|\bhere(?:'s| is) (?:what|how|why)\b|\bis defined as\b|\brefers to\b|\b(?:is|are) (?:a|an|the)\s)`)

	faqKeywordPattern = regexp.MustCompile(`(?i)\b(?:faqs?|frequently asked questions)\b`)

	// qaPattern: a question immediately followed by an answering statement.
	qaPattern = regexp.MustCompile(`[^.!?]{5,}\?\s+[A-Z][^.!?]{10,}[.!]`)

	faqSchemaPattern = regexp.MustCompile(`(?i)(?:"@type"\s*:\s*"FAQPage"|schema\.org/FAQPage)`)

	jsonLDPattern    = regexp.MustCompile(`(?i)<script[^>]*type\s*=\s*["']?application/ld\+json`)
	microdataPattern = regexp.MustCompile(`(?i)\sitem(?:scope|type)\b`)

	// richSchemaPattern: schema types that earn the full schema-markup score.
	richSchemaPattern = regexp.MustCompile(`(?i)(?:"@type"\s*:\s*(?:\[\s*)?"|schema\.org/)(?:Article|NewsArticle|BlogPosting|TechArticle|FAQPage|HowTo|Product|Review|Organization)\b`)

	authorSchemaPattern = regexp.MustCompile(`(?i)(?:"author"\s*:\s*[{\["]|itemprop\s*=\s*["']author["'])`)
	bylineMarkupPattern = regexp.MustCompile(`(?i)(?:rel\s*=\s*["']author["']|class\s*=\s*["'][^"']*\b(?:author|byline)\b|<meta[^>]+name\s*=\s*["']author["'])`)

	// bylineTextPattern is case sensitive: the name must be capitalized.
	bylineTextPattern = regexp.MustCompile(`\b(?:[Bb]y|[Ww]ritten by|[Aa]uthor:)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z.]+)+`)

	publishMarkupPattern = regexp.MustCompile(`(?i)(?:"datePublished"|article:published_time|itemprop\s*=\s*["']datePublished["']|<time[^>]+datetime\s*=)`)
	publishTextPattern   = regexp.MustCompile(`(?i)\b(?:published|posted|updated)(?:\s+on)?:?\s+(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}|\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4})`)

	aboutHrefPattern = regexp.MustCompile(`(?i)(?:^|/)(?:about|about-us|about_us|team|our-team|company|who-we-are)(?:[/?#.]|$)`)
	aboutTextPattern = regexp.MustCompile(`(?i)^(?:about|about us|our team|meet the team|the team|company|our company|who we are)$`)

	bracketCitationPattern = regexp.MustCompile(`\[\d{1,3}\]`)
	sourceLabelPattern     = regexp.MustCompile(`(?i)\bsources?\s*:`)
	accordingToPattern     = regexp.MustCompile(`(?i)\baccording to\b`)
	citeElementPattern     = regexp.MustCompile(`(?i)<cite[\s>]`)
	tocKeywordPattern      = regexp.MustCompile(`(?i)\b(?:table of contents|on this page|in this article|jump to)\b`)
	summaryPattern         = regexp.MustCompile(`(?i)(?:\bkey takeaways?\b|\bsummary\b|\btl;\s?dr\b|\btldr\b|\bin conclusion\b|\bbottom line\b)`)
	paywallTextPattern     = regexp.MustCompile(`(?i)\b(?:subscribe to (?:continue|read|unlock)|subscribers? only|premium (?:content|article)|members? only|become a (?:member|subscriber) to|sign (?:up|in) to (?:continue|read)|unlock (?:this|the full) (?:article|story)|already a subscriber|paywall)\b`)
	paywallMarkupPattern   = regexp.MustCompile(`(?i)(?:class\s*=\s*["'][^"']*\b(?:paywall|subscriber-only|premium-gate)\b|"isAccessibleForFree"\s*:\s*"?false)`)
	ariaLabelPattern       = regexp.MustCompile(`(?i)\saria-label(?:ledby)?\s*=`)
	ariaRolePattern        = regexp.MustCompile(`(?i)\srole\s*=\s*["']?[a-z]`)
)
