package page

import (
	"errors"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html lang="en">
<head>
	<title>Plain Title Tag</title>
	<meta name="description" content="Meta description text">
	<meta property="og:title" content="Open Graph Title">
	<script>var hidden = "script text";</script>
	<style>.x { color: red; }</style>
</head>
<body>
	<h1>Main Heading</h1>
	<p>First paragraph with <a href="https://www.example.com/about">about us</a>.</p>
	<noscript>Enable JavaScript</noscript>
	<iframe src="https://ads.example.net">Frame text</iframe>
	<h2>Second level</h2>
	<p>Read <a href="https://other.org/study">the study</a> or <a href="#top">go up</a>.</p>
	<h3>Third level</h3>
	<img src="a.png" alt="A chart">
	<img src="b.png" alt="  ">
	<img src="c.png">
</body>
</html>`

func TestParseTitleAndDescription(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		title       string
		description string
	}{
		{
			name:        "og tags win",
			html:        `<head><title>Tag</title><meta property="og:title" content="OG"><meta property="og:description" content="OG desc"><meta name="description" content="Meta"></head><h1>H</h1>`,
			title:       "OG",
			description: "OG desc",
		},
		{
			name:        "title element then meta description",
			html:        `<head><title> Tag </title><meta name="description" content="Meta"></head><h1>H</h1>`,
			title:       "Tag",
			description: "Meta",
		},
		{
			name:  "first h1 fallback",
			html:  `<body><h1>First   heading</h1><h1>Second</h1></body>`,
			title: "First heading",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.html, "https://example.com/")
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if p.Title != tt.title {
				t.Errorf("Expected title %q, got %q", tt.title, p.Title)
			}
			if p.Description != tt.description {
				t.Errorf("Expected description %q, got %q", tt.description, p.Description)
			}
		})
	}
}

func TestParseVisibleTextSkipsHiddenElements(t *testing.T) {
	p, err := Parse(samplePage, "https://example.com/post")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, hidden := range []string{"script text", "color: red", "Enable JavaScript", "Frame text"} {
		if strings.Contains(p.VisibleText, hidden) {
			t.Errorf("Visible text should not contain %q: %q", hidden, p.VisibleText)
		}
	}
	if !strings.Contains(p.VisibleText, "First paragraph with about us") {
		t.Errorf("Expected paragraph text, got %q", p.VisibleText)
	}
	if p.WordCount != len(strings.Fields(p.VisibleText)) {
		t.Errorf("Word count %d does not match visible text", p.WordCount)
	}
	if p.Lang != "en" {
		t.Errorf("Expected lang 'en', got %q", p.Lang)
	}
	if p.Domain != "example.com" {
		t.Errorf("Expected domain 'example.com', got %q", p.Domain)
	}
}

func TestParseStructure(t *testing.T) {
	p, err := Parse(samplePage, "https://example.com/post")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expectedHeadings := []Heading{{1, "Main Heading"}, {2, "Second level"}, {3, "Third level"}}
	if len(p.Headings) != len(expectedHeadings) {
		t.Fatalf("Expected %d headings, got %d", len(expectedHeadings), len(p.Headings))
	}
	for i, h := range expectedHeadings {
		if p.Headings[i] != h {
			t.Errorf("Heading %d: expected %+v, got %+v", i, h, p.Headings[i])
		}
	}
	if p.HeadingCount(2) != 1 {
		t.Errorf("Expected 1 h2, got %d", p.HeadingCount(2))
	}

	if len(p.Links) != 3 {
		t.Fatalf("Expected 3 links, got %d", len(p.Links))
	}
	if p.Links[0].IsExternal {
		t.Error("www. variant of the page host should not be external")
	}
	if !p.Links[1].IsExternal {
		t.Error("Link to other.org should be external")
	}
	if p.Links[2].IsExternal {
		t.Error("Fragment link should not be external")
	}
	if got := len(p.ExternalLinks()); got != 1 {
		t.Errorf("Expected 1 external link, got %d", got)
	}

	if len(p.Images) != 3 {
		t.Fatalf("Expected 3 images, got %d", len(p.Images))
	}
	if !p.Images[0].HasAlt || p.Images[1].HasAlt || p.Images[2].HasAlt {
		t.Errorf("Unexpected alt flags: %+v", p.Images)
	}
}

func TestParseMeta(t *testing.T) {
	p, err := Parse(samplePage, "https://example.com/post")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := p.Meta("og:title"); got != "Open Graph Title" {
		t.Errorf("Expected og:title, got %q", got)
	}
	if got := p.Meta("og:image"); got != "" {
		t.Errorf("Expected empty og:image, got %q", got)
	}
}

func TestParseMalformedHTML(t *testing.T) {
	p, err := Parse(`<div><p>Unclosed paragraph<span>nested<h2>Heading<unknown-tag>text`, "https://example.com")
	if err != nil {
		t.Fatalf("Malformed HTML should parse best effort, got %v", err)
	}
	if p.HeadingCount(2) != 1 {
		t.Errorf("Expected the h2 to be recovered, got %+v", p.Headings)
	}
	if !strings.Contains(p.VisibleText, "Unclosed paragraph") {
		t.Errorf("Expected visible text, got %q", p.VisibleText)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	for _, input := range []string{"", "   \n\t"} {
		if _, err := Parse(input, "https://example.com"); !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("Parse(%q): expected ErrEmptyDocument, got %v", input, err)
		}
	}
}

func TestParseEmptyBody(t *testing.T) {
	p, err := Parse(`<html><head><title>Nothing here</title></head><body></body></html>`, "https://example.com")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.WordCount != 0 || p.VisibleText != "" {
		t.Errorf("Expected no visible text, got %d words %q", p.WordCount, p.VisibleText)
	}
	if len(p.Sentences) != 0 {
		t.Errorf("Expected no sentences, got %d", len(p.Sentences))
	}
}
