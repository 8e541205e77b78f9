package textstat

import "testing"

func TestSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"the", 1},
		{"a", 1},
		{"42", 1},
		{"table", 2},
		{"makes", 1}, // "kes" stripped, leaving "ma"
		{"water", 2},
		{"yellow", 2},
		{"computer", 3},
		{"Organization!", 5},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Syllables(tt.word); got != tt.expected {
				t.Errorf("Syllables(%q) = %d, expected %d", tt.word, got, tt.expected)
			}
		})
	}
}

func TestFleschSimpleTextIsEasy(t *testing.T) {
	r := Flesch("The cat sat. The dog ran.")
	if r.Score < 80 {
		t.Errorf("Expected score >= 80 for simple text, got %d", r.Score)
	}
	if r.Grade != "Very Easy" && r.Grade != "Easy" {
		t.Errorf("Expected an easy grade, got %q", r.Grade)
	}
}

func TestFleschComplexTextIsHard(t *testing.T) {
	text := "Notwithstanding considerable organizational heterogeneity, interdisciplinary " +
		"collaboration fundamentally necessitates comprehensive institutional accountability, " +
		"methodological transparency, and unprecedented administrative coordination throughout " +
		"international implementation initiatives involving multinational stakeholders."

	r := Flesch(text)
	if r.Score > 50 {
		t.Errorf("Expected score <= 50 for complex text, got %d", r.Score)
	}
}

func TestFleschEmptyTextUsesSentinel(t *testing.T) {
	for _, text := range []string{"", "   ", "...!?"} {
		r := Flesch(text)
		if r.Score != 0 || r.Grade != NotApplicable {
			t.Errorf("Flesch(%q) = %+v, expected {0 N/A}", text, r)
		}
	}
}

func TestFleschBounds(t *testing.T) {
	texts := []string{
		"Go.",
		"I am. You are. We go.",
		"Incomprehensibilities characteristically overwhelm institutionalization.",
	}
	for _, text := range texts {
		r := Flesch(text)
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("Flesch(%q) out of bounds: %d", text, r.Score)
		}
	}
}

func TestGradeLabel(t *testing.T) {
	tests := map[int]string{
		95: "Very Easy",
		85: "Easy",
		75: "Fairly Easy",
		65: "Standard",
		55: "Fairly Difficult",
		35: "Difficult",
		10: "Very Difficult",
	}
	for score, expected := range tests {
		if got := GradeLabel(score); got != expected {
			t.Errorf("GradeLabel(%d) = %q, expected %q", score, got, expected)
		}
	}
}
