package interfaces

import (
	"context"
	"html/template"
)

// SectionComponent renders one block of a product detail page. Components
// receive the product's metadata map and decide their own visibility when a
// layout section names a condition field.
type SectionComponent interface {
	// ID returns the stable identifier layout configurations refer to.
	ID() string

	// Render produces the section markup for the supplied product payload.
	Render(ctx context.Context, payload SectionPayload) (template.HTML, error)
}

// SectionPayload carries the data a section component renders from.
type SectionPayload struct {
	SiteSlug    string
	ProductSlug string
	Metadata    map[string]any
}
