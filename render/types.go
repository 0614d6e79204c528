// Package render turns raw article content into final HTML: shortcode spans
// are replaced with resolved product widgets, the remaining prose is
// optionally auto-linked against the site's catalog, and a table of contents
// is derived from the output. Resolution happens at read time; the stored
// content string is never rewritten.
package render

import (
	"html/template"

	"github.com/goliatone/go-affiliate/catalog"
)

// Heading is one table-of-contents entry derived from the rendered HTML.
// Entries are recomputed fresh on every render, never cached.
type Heading struct {
	// ID is the anchor id derived deterministically from the heading
	// text, so deep links shared via URL fragment stay stable.
	ID string `json:"id"`

	Text string `json:"text"`

	// Level is 2, 3 or 4. Level 1 is reserved for the page title.
	Level int `json:"level"`
}

// Request carries everything one render pass needs. All maps and slices are
// immutable snapshots supplied by the caller; the renderer only reads them.
type Request struct {
	Content  string
	SiteSlug string

	// Products maps product slug to its card projection for every
	// product referenced by a shortcode. Missing entries degrade to
	// "render nothing" for that reference.
	Products map[string]catalog.ProductCardData

	// CategoryProducts maps category slug to its member cards in catalog
	// order.
	CategoryProducts map[string][]catalog.ProductCardData

	// AllProducts and AllCategories feed the auto-linker. Only consulted
	// when EnableAutoLink is set.
	AllProducts   []catalog.ProductLink
	AllCategories []catalog.CategoryLink

	EnableAutoLink bool
}

// Result is the outcome of one render pass.
type Result struct {
	HTML     template.HTML `json:"html"`
	Headings []Heading     `json:"headings"`

	// AutoLinked lists the entity names the auto-linker wrapped, in
	// order of first appearance. Useful for diagnostics and tests.
	AutoLinked []string `json:"auto_linked,omitempty"`
}
