package checks

import (
	"fmt"
	"strings"

	"github.com/seo-optimizer/aiready/textstat"
)

const (
	minStatistics       = 3
	minQuotable         = 5
	minQuotableWords    = 8
	maxQuotableWords    = 25
	minEvidencePhrases  = 2
	maxClearCommas      = 3
	maxClearWords       = 35
	minClearSentencePct = 70
	minDates            = 2
)

func citationReadinessChecks() []Definition {
	return []Definition{
		{ID: "statistics", Category: CitationReadiness, Name: "Statistics and Data", MaxScore: 15, Run: checkStatistics},
		{ID: "quotable-statements", Category: CitationReadiness, Name: "Quotable Statements", MaxScore: 15, Run: checkQuotableStatements},
		{ID: "specific-claims", Category: CitationReadiness, Name: "Evidence-Backed Claims", MaxScore: 12, Run: checkSpecificClaims},
		{ID: "sentence-clarity", Category: CitationReadiness, Name: "Sentence Clarity", MaxScore: 8, Run: checkSentenceClarity},
		{ID: "dates-timelines", Category: CitationReadiness, Name: "Dates and Timelines", MaxScore: 8, Run: checkDatesTimelines},
	}
}

func checkStatistics(in Input) Outcome {
	n := len(StatisticPattern.FindAllString(in.Page.VisibleText, -1))
	return binary(n >= minStatistics, 15, fmt.Sprintf("Found %d statistics", n))
}

// IsQuotable reports whether s is a short declarative statement free of
// hedging.
func IsQuotable(s textstat.Sentence) bool {
	words := s.WordCount()
	return s.IsDeclarative() &&
		words >= minQuotableWords && words <= maxQuotableWords &&
		!HedgePattern.MatchString(s.Text)
}

func checkQuotableStatements(in Input) Outcome {
	n := 0
	for _, s := range in.Page.Sentences {
		if IsQuotable(s) {
			n++
		}
	}
	return binary(n >= minQuotable, 15, fmt.Sprintf("Found %d quotable statements", n))
}

func checkSpecificClaims(in Input) Outcome {
	n := len(EvidencePattern.FindAllString(in.Page.VisibleText, -1))
	return binary(n >= minEvidencePhrases, 12, fmt.Sprintf("Found %d evidence-backed claims", n))
}

func checkSentenceClarity(in Input) Outcome {
	sentences := in.Page.Sentences
	if len(sentences) == 0 {
		return binary(false, 8, "No sentences found")
	}

	clearCount := 0
	for _, s := range sentences {
		if strings.Count(s.Text, ",") <= maxClearCommas && s.WordCount() <= maxClearWords {
			clearCount++
		}
	}
	pct := clearCount * 100 / len(sentences)
	return binary(pct >= minClearSentencePct, 8, fmt.Sprintf("%d%% of %d sentences are clear", pct, len(sentences)))
}

func checkDatesTimelines(in Input) Outcome {
	n := len(DatePattern.FindAllString(in.Page.VisibleText, -1))
	return binary(n >= minDates, 8, fmt.Sprintf("Found %d date references", n))
}
