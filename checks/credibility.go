package checks

import (
	"fmt"
)

const (
	minCitationMarkers = 2
	minExternalLinks   = 2
)

func credibilitySignalChecks() []Definition {
	return []Definition{
		{ID: "author-info", Category: CredibilitySignals, Name: "Author Information", MaxScore: 15, Run: checkAuthorInfo},
		{ID: "publish-date", Category: CredibilitySignals, Name: "Publish Date", MaxScore: 12, Run: checkPublishDate},
		{ID: "about-section", Category: CredibilitySignals, Name: "About Page Link", MaxScore: 8, Run: checkAboutSection},
		{ID: "source-citations", Category: CredibilitySignals, Name: "Source Citations", MaxScore: 12, Run: checkSourceCitations},
		{ID: "external-links", Category: CredibilitySignals, Name: "External Links", MaxScore: 8, Run: checkExternalLinks},
	}
}

func checkAuthorInfo(in Input) Outcome {
	p := in.Page
	if authorSchemaPattern.MatchString(p.HTML) {
		return Outcome{Passed: true, Score: 15, Details: "Author found in structured data"}
	}
	if p.Article.Byline != "" {
		return Outcome{Passed: true, Score: 10, Details: "Byline: " + p.Article.Byline}
	}
	if bylineMarkupPattern.MatchString(p.HTML) || bylineTextPattern.MatchString(p.VisibleText) {
		return Outcome{Passed: true, Score: 10, Details: "Author byline found"}
	}
	return Outcome{Details: "No author information found"}
}

func checkPublishDate(in Input) Outcome {
	p := in.Page
	if publishMarkupPattern.MatchString(p.HTML) {
		return binary(true, 12, "Publish date found in markup")
	}
	if publishTextPattern.MatchString(p.VisibleText) {
		return binary(true, 12, "Publish date found in text")
	}
	return binary(false, 12, "No publish date found")
}

func checkAboutSection(in Input) Outcome {
	for _, l := range in.Page.Links {
		if aboutHrefPattern.MatchString(l.Href) || aboutTextPattern.MatchString(l.Text) {
			return binary(true, 8, "Links to "+l.Href)
		}
	}
	return binary(false, 8, "No link to an about or team page")
}

// countCitationMarkers counts bracketed references, "source:" labels,
// "according to" attributions and <cite> elements.
func countCitationMarkers(in Input) int {
	p := in.Page
	return len(bracketCitationPattern.FindAllString(p.VisibleText, -1)) +
		len(sourceLabelPattern.FindAllString(p.VisibleText, -1)) +
		len(accordingToPattern.FindAllString(p.VisibleText, -1)) +
		len(citeElementPattern.FindAllString(p.HTML, -1))
}

func checkSourceCitations(in Input) Outcome {
	n := countCitationMarkers(in)
	return binary(n >= minCitationMarkers, 12, fmt.Sprintf("Found %d citation markers", n))
}

func checkExternalLinks(in Input) Outcome {
	n := len(in.Page.ExternalLinks())
	return binary(n >= minExternalLinks, 8, fmt.Sprintf("Found %d external links", n))
}
