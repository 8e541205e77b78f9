package scoring

import (
	"testing"

	"github.com/seo-optimizer/aiready/checks"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		grade string
	}{
		{100, "A"}, {95, "A"}, {90, "A"},
		{89, "B"}, {85, "B"}, {80, "B"},
		{79, "C"}, {75, "C"}, {70, "C"},
		{69, "D"}, {65, "D"}, {60, "D"},
		{59, "F"}, {55, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.grade {
			t.Errorf("GradeFor(%d) = %s, expected %s", tt.score, got, tt.grade)
		}
	}
}

func TestStatusFor(t *testing.T) {
	tests := map[int]Status{
		100: StatusGood,
		70:  StatusGood,
		69:  StatusWarning,
		40:  StatusWarning,
		39:  StatusPoor,
		0:   StatusPoor,
	}
	for pct, expected := range tests {
		if got := StatusFor(pct); got != expected {
			t.Errorf("StatusFor(%d) = %s, expected %s", pct, got, expected)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(1, 3); got != 33 {
		t.Errorf("Expected 33, got %d", got)
	}
	if got := Percentage(2, 3); got != 67 {
		t.Errorf("Expected 67, got %d", got)
	}
	if got := Percentage(5, 0); got != 0 {
		t.Errorf("Expected 0 for zero max, got %d", got)
	}
}

func TestAggregate(t *testing.T) {
	results := []checks.Check{
		{ID: "a", Category: checks.ContentStructure, Score: 10, MaxScore: 10},
		{ID: "b", Category: checks.ContentStructure, Score: 0, MaxScore: 10},
		{ID: "c", Category: checks.CitationReadiness, Score: 15, MaxScore: 15},
		{ID: "d", Category: checks.TechnicalSEO, Score: 3, MaxScore: 10},
		{ID: "e", Category: checks.CredibilitySignals, Score: 8, MaxScore: 8},
		{ID: "f", Category: checks.AISpecificFactors, Score: 0, MaxScore: 12},
		{ID: "g", Category: checks.Category("unknown"), Score: 99, MaxScore: 99},
	}

	s := Aggregate(results)

	cs := s.Categories.ContentStructure
	if cs.Score != 10 || cs.MaxScore != 20 || cs.Percentage != 50 || cs.Status != StatusWarning {
		t.Errorf("Unexpected contentStructure score: %+v", cs)
	}
	if s.Categories.CitationReadiness.Status != StatusGood {
		t.Errorf("Expected citationReadiness good, got %+v", s.Categories.CitationReadiness)
	}
	if s.Categories.TechnicalSEO.Status != StatusPoor {
		t.Errorf("Expected technicalSeo poor, got %+v", s.Categories.TechnicalSEO)
	}

	// 36 of 65
	if s.Score != 55 || s.Grade != "F" {
		t.Errorf("Expected overall 55/F, got %d/%s", s.Score, s.Grade)
	}

	all := s.Categories.All()
	if len(all) != len(checks.Categories) {
		t.Fatalf("Expected %d categories, got %d", len(checks.Categories), len(all))
	}
	for i, cat := range checks.Categories {
		if all[i].Category != cat {
			t.Errorf("Category %d: expected %s, got %s", i, cat, all[i].Category)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	if s.Score != 0 || s.Grade != "F" {
		t.Errorf("Expected 0/F for no checks, got %d/%s", s.Score, s.Grade)
	}
	for _, c := range s.Categories.All() {
		if c.Percentage != 0 || c.Status != StatusPoor {
			t.Errorf("Expected empty category to be 0%% poor, got %+v", c)
		}
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		external int
		rule     int
		expected int
		blended  bool
	}{
		{"weighted", 80, 50, 68, true},
		{"rounds to nearest", 77, 51, 67, true},
		{"zero external ignored", 0, 50, 50, false},
		{"negative external ignored", -5, 50, 50, false},
		{"out of range ignored", 120, 50, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Blend(tt.external, tt.rule)
			if got != tt.expected || ok != tt.blended {
				t.Errorf("Blend(%d, %d) = %d, %v; expected %d, %v", tt.external, tt.rule, got, ok, tt.expected, tt.blended)
			}
		})
	}
}
