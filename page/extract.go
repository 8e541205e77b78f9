package page

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/seo-optimizer/aiready/textstat"
)

// hiddenTags never contribute to visible text.
var hiddenTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
}

// extractTitle: og:title > <title> > first h1
func extractTitle(p *ParsedPage) string {
	if og := p.Doc.Find("meta[property='og:title']").AttrOr("content", ""); strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	if p.TitleTag != "" {
		return p.TitleTag
	}
	return textstat.Normalize(p.Doc.Find("h1").First().Text())
}

// extractDescription: og:description > meta description
func extractDescription(p *ParsedPage) string {
	if og := p.Doc.Find("meta[property='og:description']").AttrOr("content", ""); strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return p.MetaDescription
}

// visibleText walks the body (or the whole tree when there is none) and
// joins every text node outside hidden subtrees.
func visibleText(doc *goquery.Document) string {
	roots := doc.Find("body").Nodes
	if len(roots) == 0 {
		roots = doc.Nodes
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hiddenTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	return textstat.Normalize(buf.String())
}

func extractHeadings(doc *goquery.Document) []Heading {
	var headings []Heading
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		headings = append(headings, Heading{
			Level: int(name[1] - '0'),
			Text:  textstat.Normalize(s.Text()),
		})
	})
	return headings
}

func extractLinks(doc *goquery.Document, base *url.URL) []Link {
	var links []Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		links = append(links, Link{
			Href:       href,
			Text:       textstat.Normalize(s.Text()),
			IsExternal: isExternal(href, base),
		})
	})
	return links
}

// isExternal reports whether href resolves to an http(s) URL on a host other
// than the page's own, ignoring a leading "www.".
func isExternal(href string, base *url.URL) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if base == nil {
		return u.Host != ""
	}
	return stripWWW(u.Hostname()) != stripWWW(base.Hostname())
}

func extractImages(doc *goquery.Document) []Image {
	var images []Image
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		images = append(images, Image{HasAlt: alt != "", Alt: alt})
	})
	return images
}

// extractArticle runs readability over its own copy of the markup; a failed
// extraction leaves the zero Article.
func extractArticle(rawHTML string, base *url.URL) Article {
	if base == nil {
		return Article{}
	}
	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return Article{}
	}
	return Article{
		Byline:      strings.TrimSpace(article.Byline),
		SiteName:    strings.TrimSpace(article.SiteName),
		Excerpt:     strings.TrimSpace(article.Excerpt),
		Language:    strings.TrimSpace(article.Language),
		TextContent: textstat.Normalize(article.TextContent),
	}
}
