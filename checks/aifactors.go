package checks

import (
	"fmt"
	"strings"

	"github.com/seo-optimizer/aiready/textstat"
)

const (
	upfrontWords        = 200
	minAnchorLinks      = 4
	accessibilityToPass = 7
)

func aiSpecificChecks() []Definition {
	return []Definition{
		{ID: "upfront-answer", Category: AISpecificFactors, Name: "Upfront Answer", MaxScore: 15, Run: checkUpfrontAnswer},
		{ID: "table-of-contents", Category: AISpecificFactors, Name: "Table of Contents", MaxScore: 10, Run: checkTableOfContents},
		{ID: "summary-section", Category: AISpecificFactors, Name: "Summary Section", MaxScore: 12, Run: checkSummarySection},
		{ID: "no-paywall", Category: AISpecificFactors, Name: "No Paywall", MaxScore: 10, Run: checkNoPaywall},
		{ID: "accessibility", Category: AISpecificFactors, Name: "Accessibility", MaxScore: 10, Run: checkAccessibility},
	}
}

func checkUpfrontAnswer(in Input) Outcome {
	p := in.Page
	opening := textstat.FirstWords(p.VisibleText, upfrontWords)

	score := 0
	var found []string
	if directAnswerPattern.MatchString(opening) {
		score += 10
		found = append(found, "direct answer in the opening")
	}
	if len(p.Sentences) > 0 && DefinitionPattern.MatchString(p.Sentences[0].Text) {
		score += 5
		found = append(found, "definition in the first sentence")
	}

	if len(found) == 0 {
		return Outcome{Details: fmt.Sprintf("No direct answer in the first %d words", upfrontWords)}
	}
	return Outcome{Passed: score >= 10, Score: score, Details: "Found " + strings.Join(found, " and ")}
}

func checkTableOfContents(in Input) Outcome {
	p := in.Page
	if p.Doc.Find("#toc, .toc, #table-of-contents, .table-of-contents").Length() > 0 {
		return binary(true, 10, "Table of contents element found")
	}
	if tocKeywordPattern.MatchString(p.VisibleText) {
		return binary(true, 10, "Table of contents found")
	}

	anchors := 0
	for _, l := range p.Links {
		if strings.HasPrefix(l.Href, "#") && len(l.Href) > 1 {
			anchors++
		}
	}
	return binary(anchors >= minAnchorLinks, 10, fmt.Sprintf("Found %d same-page anchor links", anchors))
}

func checkSummarySection(in Input) Outcome {
	p := in.Page
	if m := summaryPattern.FindString(p.VisibleText); m != "" {
		return binary(true, 12, fmt.Sprintf("Summary found (%q)", m))
	}
	return binary(false, 12, "No summary or key takeaways section")
}

func checkNoPaywall(in Input) Outcome {
	p := in.Page
	if m := paywallTextPattern.FindString(p.VisibleText); m != "" {
		return binary(false, 10, fmt.Sprintf("Paywall language detected (%q)", m))
	}
	if paywallMarkupPattern.MatchString(p.HTML) {
		return binary(false, 10, "Paywall markup detected")
	}
	return binary(true, 10, "No paywall detected")
}

func checkAccessibility(in Input) Outcome {
	p := in.Page

	score := 0
	var found []string
	if p.Lang != "" {
		score += 4
		found = append(found, "lang attribute")
	}
	if ariaLabelPattern.MatchString(p.HTML) {
		score += 3
		found = append(found, "ARIA labels")
	}
	if ariaRolePattern.MatchString(p.HTML) {
		score += 3
		found = append(found, "ARIA roles")
	}

	details := "No accessibility attributes found"
	if len(found) > 0 {
		details = "Found " + strings.Join(found, ", ")
	}
	return Outcome{Passed: score >= accessibilityToPass, Score: score, Details: details}
}
