package textstat

import (
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Sentence
	}{
		{
			name: "simple statements",
			text: "The cat sat. The dog ran.",
			expected: []Sentence{
				{Text: "The cat sat", Terminator: "."},
				{Text: "The dog ran", Terminator: "."},
			},
		},
		{
			name: "terminator runs and trailing fragment",
			text: "Really?! Yes... no terminator here",
			expected: []Sentence{
				{Text: "Really", Terminator: "?!"},
				{Text: "Yes", Terminator: "..."},
				{Text: "no terminator here"},
			},
		},
		{
			name: "decimal point splits like any full stop",
			text: "Revenue grew 3.5% last year. Costs fell.",
			expected: []Sentence{
				{Text: "Revenue grew 3", Terminator: "."},
				{Text: "5% last year", Terminator: "."},
				{Text: "Costs fell", Terminator: "."},
			},
		},
		{
			name: "number without a closing terminator",
			text: "Growth was 3.5 percent",
			expected: []Sentence{
				{Text: "Growth was 3", Terminator: "."},
				{Text: "5 percent"},
			},
		},
		{
			name:     "whitespace only",
			text:     "   . ! ?  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d sentences, got %d: %#v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Sentence %d: expected %#v, got %#v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSentenceKinds(t *testing.T) {
	q := Sentence{Text: "What is it", Terminator: "?"}
	if !q.IsQuestion() || q.IsDeclarative() {
		t.Errorf("Expected question, got %#v", q)
	}

	d := Sentence{Text: "It is", Terminator: "."}
	if d.IsQuestion() || !d.IsDeclarative() {
		t.Errorf("Expected declarative, got %#v", d)
	}

	if got := (Sentence{Text: "Stop", Terminator: "!!"}).String(); got != "Stop!" {
		t.Errorf("Expected 'Stop!', got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("  ﬁrst line \n\t second  ")
	if got != "first line second" {
		t.Errorf("Expected 'first line second', got %q", got)
	}
}

func TestFirstWords(t *testing.T) {
	if got := FirstWords("one two three four", 2); got != "one two" {
		t.Errorf("Expected 'one two', got %q", got)
	}
	if got := FirstWords("one", 5); got != "one" {
		t.Errorf("Expected 'one', got %q", got)
	}
}
