// Package textstat splits plain text into words and sentences and scores its
// readability. Everything here is pure and independent of HTML.
package textstat

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentence is one segment of text ending at a run of terminators.
type Sentence struct {
	Text       string `json:"text"`
	Terminator string `json:"terminator,omitempty"`
}

// IsQuestion reports whether the sentence ended with a question mark.
func (s Sentence) IsQuestion() bool {
	return strings.Contains(s.Terminator, "?")
}

// IsDeclarative reports whether the sentence ended with a full stop.
func (s Sentence) IsDeclarative() bool {
	return s.Terminator != "" && !s.IsQuestion() && !strings.Contains(s.Terminator, "!")
}

// WordCount returns the number of whitespace separated tokens.
func (s Sentence) WordCount() int {
	return len(strings.Fields(s.Text))
}

// String returns the sentence with its terminator.
func (s Sentence) String() string {
	if s.Terminator == "" {
		return s.Text
	}
	return s.Text + s.Terminator[:1]
}

var terminatorRun = regexp.MustCompile(`[.!?]+`)

// Normalize applies NFKC normalization and collapses all whitespace runs to
// single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(text)), " ")
}

// Words splits text on whitespace, dropping empty tokens.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount is len(Words(text)).
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// FirstWords returns at most n leading words of text joined by spaces.
func FirstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// SplitSentences segments text on runs of '.', '!' and '?'. Whitespace-only
// fragments are dropped.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	start := 0

	for _, loc := range terminatorRun.FindAllStringIndex(text, -1) {
		if fragment := strings.TrimSpace(text[start:loc[0]]); fragment != "" {
			sentences = append(sentences, Sentence{
				Text:       fragment,
				Terminator: text[loc[0]:loc[1]],
			})
		}
		start = loc[1]
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, Sentence{Text: tail})
	}
	return sentences
}
