package textstat

import (
	"math"
	"regexp"
	"strings"
)

// NotApplicable is the grade reported when text has no words or sentences.
const NotApplicable = "N/A"

// Readability is a Flesch Reading Ease score with its label.
type Readability struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
}

var (
	nonLetters   = regexp.MustCompile(`[^a-z]`)
	silentEnding = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY     = regexp.MustCompile(`^y`)
	vowelGroup   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Syllables estimates the syllable count of a single English word.
func Syllables(word string) int {
	w := nonLetters.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 3 {
		return 1
	}

	w = silentEnding.ReplaceAllString(w, "")
	w = leadingY.ReplaceAllString(w, "")

	count := len(vowelGroup.FindAllString(w, -1))
	if count < 1 {
		return 1
	}
	return count
}

// Flesch computes Flesch Reading Ease, clamped to [0,100] and rounded.
// Text without words or sentences scores 0 with grade N/A.
func Flesch(text string) Readability {
	words := Words(text)
	sentences := SplitSentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return Readability{Score: 0, Grade: NotApplicable}
	}

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	raw := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord

	score := int(math.Round(math.Max(0, math.Min(100, raw))))
	return Readability{Score: score, Grade: GradeLabel(score)}
}

// GradeLabel maps a Flesch score onto its conventional difficulty band.
func GradeLabel(score int) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}
