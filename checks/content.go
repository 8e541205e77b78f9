package checks

import (
	"fmt"
)

const (
	minWordsGood      = 800
	minWordsExcellent = 1500
	minWordsThin      = 400
	minQAPairs        = 3
	minLists          = 2
)

func contentStructureChecks() []Definition {
	return []Definition{
		{ID: "single-h1", Category: ContentStructure, Name: "Single H1 Heading", MaxScore: 10, Run: checkSingleH1},
		{ID: "subheadings", Category: ContentStructure, Name: "Subheading Hierarchy", MaxScore: 10, Run: checkSubheadings},
		{ID: "content-length", Category: ContentStructure, Name: "Content Length", MaxScore: 10, Run: checkContentLength},
		{ID: "faq-section", Category: ContentStructure, Name: "FAQ Section", MaxScore: 20, Run: checkFAQSection},
		{ID: "has-lists", Category: ContentStructure, Name: "Lists", MaxScore: 6, Run: checkHasLists},
	}
}

func checkSingleH1(in Input) Outcome {
	count := in.Page.HeadingCount(1)
	switch count {
	case 1:
		return binary(true, 10, "Page has exactly one H1 heading")
	case 0:
		return binary(false, 10, "No H1 heading found")
	default:
		return binary(false, 10, fmt.Sprintf("Found %d H1 headings, expected exactly one", count))
	}
}

func checkSubheadings(in Input) Outcome {
	h2 := in.Page.HeadingCount(2)
	h3 := in.Page.HeadingCount(3)
	details := fmt.Sprintf("Found %d H2 and %d H3 headings", h2, h3)

	switch {
	case h2 >= 2 && h3 >= 1:
		return Outcome{Passed: true, Score: 10, Details: details}
	case h2 >= 1:
		return Outcome{Score: 5, Details: details}
	default:
		return Outcome{Details: details}
	}
}

func checkContentLength(in Input) Outcome {
	words := in.Page.WordCount
	details := fmt.Sprintf("%d words", words)

	// Score calculation
	score := 0
	switch {
	case words >= minWordsExcellent:
		score = 10
	case words >= minWordsGood:
		score = 7
	case words >= minWordsThin:
		score = 3
	}
	return Outcome{Passed: words >= minWordsGood, Score: score, Details: details}
}

func checkFAQSection(in Input) Outcome {
	p := in.Page
	if faqSchemaPattern.MatchString(p.HTML) {
		return Outcome{Passed: true, Score: 20, Details: "FAQPage schema markup found"}
	}

	if faqKeywordPattern.MatchString(p.VisibleText) {
		return Outcome{Passed: true, Score: 15, Details: "FAQ section found"}
	}

	pairs := len(qaPattern.FindAllString(p.VisibleText, -1))
	if pairs >= minQAPairs {
		return Outcome{Passed: true, Score: 15, Details: fmt.Sprintf("Found %d question and answer pairs", pairs)}
	}
	return Outcome{Details: fmt.Sprintf("No FAQ section; %d question and answer pairs", pairs)}
}

func checkHasLists(in Input) Outcome {
	lists := in.Page.Doc.Find("ul, ol").Length()
	return binary(lists >= minLists, 6, fmt.Sprintf("Found %d lists", lists))
}
