// Package page turns raw HTML into a read-only ParsedPage: title,
// description, visible text, headings, links, images and the main article.
package page

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seo-optimizer/aiready/textstat"
)

// ErrEmptyDocument is returned when there is no markup to parse at all.
var ErrEmptyDocument = errors.New("empty document")

// Heading is an h1-h6 element in document order.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is an anchor with an href.
type Link struct {
	Href       string `json:"href"`
	Text       string `json:"text"`
	IsExternal bool   `json:"isExternal"`
}

// Image is an img element.
type Image struct {
	HasAlt bool   `json:"hasAlt"`
	Alt    string `json:"alt"`
}

// Article is the main-content view produced by readability extraction. It is
// the zero value when extraction found nothing usable.
type Article struct {
	Byline      string `json:"byline,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Language    string `json:"language,omitempty"`
	TextContent string `json:"-"`
}

// ParsedPage is derived once per analysis and never mutated afterwards, so
// it can be shared by concurrently running checks.
type ParsedPage struct {
	URL             string
	Domain          string
	Title           string
	TitleTag        string
	Description     string
	MetaDescription string
	VisibleText     string
	WordCount       int
	Sentences       []textstat.Sentence
	Headings        []Heading
	Links           []Link
	Images          []Image
	Lang            string
	Article         Article

	// HTML is the raw markup; several checks match patterns on it directly.
	HTML string
	Doc  *goquery.Document
}

// HeadingCount returns how many headings of the given level exist.
func (p *ParsedPage) HeadingCount(level int) int {
	n := 0
	for _, h := range p.Headings {
		if h.Level == level {
			n++
		}
	}
	return n
}

// HeadingTexts returns the text of every heading in order.
func (p *ParsedPage) HeadingTexts() []string {
	texts := make([]string, 0, len(p.Headings))
	for _, h := range p.Headings {
		texts = append(texts, h.Text)
	}
	return texts
}

// ExternalLinks returns links pointing at another domain.
func (p *ParsedPage) ExternalLinks() []Link {
	var links []Link
	for _, l := range p.Links {
		if l.IsExternal {
			links = append(links, l)
		}
	}
	return links
}

// Meta returns the content of the first meta tag whose property or name
// equals key, or "".
func (p *ParsedPage) Meta(key string) string {
	var value string
	p.Doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		property, _ := s.Attr("property")
		name, _ := s.Attr("name")
		if !strings.EqualFold(property, key) && !strings.EqualFold(name, key) {
			return true
		}
		if content, ok := s.Attr("content"); ok && strings.TrimSpace(content) != "" {
			value = strings.TrimSpace(content)
			return false
		}
		return true
	})
	return value
}

// Parse builds a ParsedPage from raw HTML fetched from sourceURL. Malformed
// markup is parsed best effort; only empty input is an error.
func Parse(rawHTML, sourceURL string) (*ParsedPage, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ErrEmptyDocument
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		base = nil
	}

	p := &ParsedPage{
		URL:  sourceURL,
		HTML: rawHTML,
		Doc:  doc,
	}
	if base != nil {
		p.Domain = stripWWW(base.Hostname())
	}

	p.TitleTag = strings.TrimSpace(doc.Find("title").First().Text())
	p.MetaDescription = strings.TrimSpace(doc.Find("meta[name='description']").AttrOr("content", ""))
	p.Title = extractTitle(p)
	p.Description = extractDescription(p)

	p.VisibleText = visibleText(doc)
	p.WordCount = textstat.WordCount(p.VisibleText)
	p.Sentences = textstat.SplitSentences(p.VisibleText)

	p.Headings = extractHeadings(doc)
	p.Links = extractLinks(doc, base)
	p.Images = extractImages(doc)
	p.Lang = strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))
	p.Article = extractArticle(rawHTML, base)

	return p, nil
}

func stripWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
