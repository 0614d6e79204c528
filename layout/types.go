// Package layout resolves a niche's declarative product-page layout into the
// ordered list of sections a page render walks. Structure resolution happens
// here; per-product visibility is evaluated later by each section component,
// so one layout document serves every product in the niche.
package layout

// Config is the declarative layout tree a niche may carry: ordered zones,
// each holding ordered sections.
type Config struct {
	Zones []Zone `json:"zones"`
}

// Zone names a region of the product detail page and the blocks assigned to it.
type Zone struct {
	ID       string    `json:"id"`
	Sections []Section `json:"sections"`
}

// Section points at a registered renderable component by id. A section whose
// id is not registered is silently skipped during resolution; that is a
// soft-fail contract, not an error.
type Section struct {
	ID string `json:"id"`

	// ConditionField optionally names a product-metadata key whose
	// truthiness gates the section at render time. The resolver keeps
	// the field verbatim and never evaluates it.
	ConditionField string `json:"condition_field,omitempty"`
}

// Section ids used by the default product-page layout.
const (
	SectionHero             = "hero"
	SectionProsCons         = "pros-cons"
	SectionFullReview       = "full-review"
	SectionFeaturedArticles = "featured-articles"
	SectionRelatedProducts  = "related-products"
	SectionStickyBar        = "sticky-bar"
)

// DefaultConfig returns the layout used when a niche carries no custom
// configuration or an empty zone list.
func DefaultConfig() Config {
	return Config{
		Zones: []Zone{
			{
				ID: "main",
				Sections: []Section{
					{ID: SectionHero},
					{ID: SectionProsCons, ConditionField: "pros"},
					{ID: SectionFullReview},
				},
			},
			{
				ID: "aside",
				Sections: []Section{
					{ID: SectionFeaturedArticles},
					{ID: SectionRelatedProducts},
				},
			},
			{
				ID: "footer",
				Sections: []Section{
					{ID: SectionStickyBar, ConditionField: "affiliate_url"},
				},
			},
		},
	}
}
