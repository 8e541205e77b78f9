package checks

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minTitleLength       = 30
	maxTitleLength       = 60
	minDescriptionLength = 120
	maxDescriptionLength = 160
	minAltTextPct        = 80

	fastLoad       = 1500 * time.Millisecond
	acceptableLoad = 3000 * time.Millisecond
	slowLoad       = 5000 * time.Millisecond
)

func technicalSEOChecks() []Definition {
	return []Definition{
		{ID: "schema-markup", Category: TechnicalSEO, Name: "Schema Markup", MaxScore: 20, Run: checkSchemaMarkup},
		{ID: "meta-title", Category: TechnicalSEO, Name: "Meta Title", MaxScore: 10, Run: checkMetaTitle},
		{ID: "meta-description", Category: TechnicalSEO, Name: "Meta Description", MaxScore: 10, Run: checkMetaDescription},
		{ID: "open-graph", Category: TechnicalSEO, Name: "Open Graph Tags", MaxScore: 8, Run: checkOpenGraph},
		{ID: "canonical-url", Category: TechnicalSEO, Name: "Canonical URL", MaxScore: 6, Run: checkCanonicalURL},
		{ID: "page-speed", Category: TechnicalSEO, Name: "Page Speed", MaxScore: 10, Run: checkPageSpeed},
		{ID: "mobile-viewport", Category: TechnicalSEO, Name: "Mobile Viewport", MaxScore: 6, Run: checkMobileViewport},
		{ID: "image-alt-text", Category: TechnicalSEO, Name: "Image Alt Text", MaxScore: 6, Run: checkImageAltText},
	}
}

// HasSchema reports whether the markup carries JSON-LD or microdata.
func HasSchema(html string) bool {
	return jsonLDPattern.MatchString(html) || microdataPattern.MatchString(html)
}

func checkSchemaMarkup(in Input) Outcome {
	html := in.Page.HTML
	switch {
	case !HasSchema(html):
		return Outcome{Details: "No structured data found"}
	case richSchemaPattern.MatchString(html):
		return Outcome{Passed: true, Score: 20, Details: "Rich schema type found: " + richSchemaPattern.FindString(html)}
	default:
		return Outcome{Passed: true, Score: 12, Details: "Structured data found without a rich schema type"}
	}
}

func checkMetaTitle(in Input) Outcome {
	title := in.Page.TitleTag
	if title == "" {
		return binary(false, 10, "No title tag found")
	}
	length := utf8.RuneCountInString(title)
	passed := length >= minTitleLength && length <= maxTitleLength
	return binary(passed, 10, fmt.Sprintf("Title is %d characters (recommended %d-%d)", length, minTitleLength, maxTitleLength))
}

func checkMetaDescription(in Input) Outcome {
	desc := in.Page.MetaDescription
	if desc == "" {
		desc = in.Page.Description
	}
	if desc == "" {
		return binary(false, 10, "No meta description found")
	}
	length := utf8.RuneCountInString(desc)
	passed := length >= minDescriptionLength && length <= maxDescriptionLength
	return binary(passed, 10, fmt.Sprintf("Description is %d characters (recommended %d-%d)", length, minDescriptionLength, maxDescriptionLength))
}

func checkOpenGraph(in Input) Outcome {
	var missing []string
	for _, tag := range []string{"og:title", "og:description", "og:image"} {
		if in.Page.Meta(tag) == "" {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return binary(false, 8, "Missing "+strings.Join(missing, ", "))
	}
	return binary(true, 8, "Open Graph title, description and image present")
}

func checkCanonicalURL(in Input) Outcome {
	href := strings.TrimSpace(in.Page.Doc.Find("link[rel='canonical']").AttrOr("href", ""))
	if href == "" {
		return binary(false, 6, "No canonical link found")
	}
	return binary(true, 6, "Canonical URL: "+href)
}

func checkPageSpeed(in Input) Outcome {
	load := in.LoadTime
	details := fmt.Sprintf("Page loaded in %dms", load.Milliseconds())

	// Score calculation
	score := 0
	switch {
	case load < fastLoad:
		score = 10
	case load < acceptableLoad:
		score = 7
	case load < slowLoad:
		score = 3
	}
	return Outcome{Passed: load < acceptableLoad, Score: score, Details: details}
}

func checkMobileViewport(in Input) Outcome {
	if in.Page.Doc.Find("meta[name='viewport']").Length() == 0 {
		return binary(false, 6, "No viewport meta tag found")
	}
	return binary(true, 6, "Viewport meta tag present")
}

func checkImageAltText(in Input) Outcome {
	images := in.Page.Images
	if len(images) == 0 {
		return binary(true, 6, "No images on the page")
	}

	withAlt := 0
	for _, img := range images {
		if img.HasAlt {
			withAlt++
		}
	}
	pct := withAlt * 100 / len(images)
	return binary(pct >= minAltTextPct, 6, fmt.Sprintf("%d of %d images have alt text", withAlt, len(images)))
}
