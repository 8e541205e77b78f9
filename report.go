package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seo-optimizer/aiready/analyzer"
)

func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	default:
		return false
	}
}

// writeReport renders result in the requested format
func writeReport(w io.Writer, result *analyzer.AnalysisResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAMLTree(result)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeText(w, result)
	}
}

// toYAMLTree round-trips through JSON so the YAML keys match the JSON API
func toYAMLTree(result *analyzer.AnalysisResult) any {
	data, err := json.Marshal(result)
	if err != nil {
		return result
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return result
	}
	return tree
}

func writeText(w io.Writer, r *analyzer.AnalysisResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.URL)
	if r.Metadata.Title != "" {
		fmt.Fprintf(&b, "%s\n", r.Metadata.Title)
	}
	fmt.Fprintf(&b, "\nScore: %d/100 (%s)\n", r.Score, r.Grade)
	if r.Narrative != nil {
		fmt.Fprintf(&b, "Rule-based score: %d, narrative score: %d\n", r.RuleBasedScore, r.Narrative.Score)
	}
	fmt.Fprintf(&b, "Words: %d  Readability: %d (%s)  Load time: %dms\n",
		r.Metadata.WordCount, r.Metadata.Readability.Score, r.Metadata.Readability.Grade, r.Metadata.LoadTimeMs)

	b.WriteString("\nCategories\n")
	for _, c := range r.Categories.All() {
		fmt.Fprintf(&b, "  %-22s %3d/%-3d %3d%%  %s\n", c.Category.Label(), c.Score, c.MaxScore, c.Percentage, c.Status)
	}

	if len(r.TopRecommendations) > 0 {
		b.WriteString("\nTop recommendations\n")
		for i, rec := range r.TopRecommendations {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, rec.Priority, rec.Title)
		}
	}

	if r.Narrative != nil && r.Narrative.Summary != "" {
		fmt.Fprintf(&b, "\nSummary\n  %s\n", r.Narrative.Summary)
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "\nWarning: %s\n", warning)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
