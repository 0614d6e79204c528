package shortcode

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Comparison shortcodes carry between 2 and 4 product slugs. The parser
// stays permissive about persisted content; these bounds apply at editor
// insertion time only.
const (
	MinComparisonSlugs = 2
	MaxComparisonSlugs = 4
)

// Validate enforces the editor-side contract for inserting a new shortcode.
// It is intentionally stricter than ParseValue: persisted content that
// predates a rule change must keep rendering, but the editor should never
// produce a degenerate directive.
func (p Params) Validate() error {
	errs := validation.Errors{}

	if !p.Type.Known() {
		errs["type"] = validation.NewError("shortcode.type_unknown", "shortcode type is not recognized")
		return errs
	}

	switch p.Type {
	case TypeProduct:
		if p.Slug == "" {
			errs["slug"] = validation.NewError("shortcode.product.slug_required", "product slug is required")
		}
		switch p.Variant {
		case "", VariantDefault, VariantCompact, VariantFeatured:
		default:
			errs["variant"] = validation.NewError("shortcode.product.variant_invalid", "variant must be default, compact or featured")
		}

	case TypeProducts:
		if p.CategorySlug == "" {
			errs["category_slug"] = validation.NewError("shortcode.products.category_required", "category slug is required")
		}
		if p.Limit < 0 {
			errs["limit"] = validation.NewError("shortcode.products.limit_invalid", "limit must be a positive number")
		}

	case TypeComparison:
		filled := 0
		for _, slug := range p.Slugs {
			if slug != "" {
				filled++
			}
		}
		if filled < MinComparisonSlugs || filled > MaxComparisonSlugs {
			errs["slugs"] = validation.NewError("shortcode.comparison.slugs_out_of_range", "comparison requires between 2 and 4 products")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
