package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
	"golang.org/x/net/html"
)

// ExtractHeadings walks rendered HTML and returns the ordered h2-h4 entries
// with deterministic anchor ids. Duplicate heading text resolves to
// suffixed ids (a, a-1, a-2) so in-page links are never ambiguous.
func ExtractHeadings(content string) []Heading {
	var headings []Heading
	seen := map[string]bool{}

	tokenizer := html.NewTokenizer(strings.NewReader(content))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return headings

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			level := headingLevel(string(name))
			if level == 0 {
				continue
			}

			text := collectHeadingText(tokenizer, string(name))
			if text == "" {
				continue
			}

			base := anchorID(text)
			id := base
			// A suffixed id can collide with a heading that spells
			// the suffix out, so keep bumping until unused.
			for n := 1; seen[id]; n++ {
				id = fmt.Sprintf("%s-%d", base, n)
			}
			seen[id] = true

			headings = append(headings, Heading{ID: id, Text: text, Level: level})
		}
	}
}

// headingLevel maps h2-h4 tags to their numeric level. Level 1 is reserved
// for the page's own title and h5+ never appears in the TOC.
func headingLevel(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}

// collectHeadingText consumes tokens until the heading closes, returning the
// concatenated text content with nested markup stripped.
func collectHeadingText(tokenizer *html.Tokenizer, tag string) string {
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == tag {
				return strings.TrimSpace(b.String())
			}
		}
	}
}

func anchorID(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil || normalized == "" {
		return "section"
	}
	return normalized
}
