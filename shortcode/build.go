package shortcode

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildValue emits the canonical bracketed form for the supplied params.
// The canonical form is the shortest string that round-trips through
// ParseValue: default-valued segments (variant "default", limit 3) are
// omitted. Non-canonical but valid input therefore normalizes on a
// build-after-parse cycle.
func BuildValue(p Params) string {
	switch p.Type {
	case TypeProduct:
		if p.Variant != "" && p.Variant != VariantDefault {
			return fmt.Sprintf("[product:%s,%s]", p.Slug, p.Variant)
		}
		return fmt.Sprintf("[product:%s]", p.Slug)

	case TypeProducts:
		if p.Limit != 0 && p.Limit != DefaultProductsLimit {
			return fmt.Sprintf("[products:%s,%d]", p.CategorySlug, p.Limit)
		}
		return fmt.Sprintf("[products:%s]", p.CategorySlug)

	case TypeComparison:
		return fmt.Sprintf("[comparison:%s]", strings.Join(p.Slugs, ","))
	}

	return ""
}

// Label produces a short human-readable description of the shortcode for
// editor affordances. It has no bearing on rendering.
func Label(p Params) string {
	switch p.Type {
	case TypeProduct:
		if p.Slug == "" {
			return "Product: (none selected)"
		}
		if p.Variant != "" && p.Variant != VariantDefault {
			return fmt.Sprintf("Product: %s (%s)", p.Slug, p.Variant)
		}
		return "Product: " + p.Slug

	case TypeProducts:
		limit := p.Limit
		if limit == 0 {
			limit = DefaultProductsLimit
		}
		return fmt.Sprintf("Products: %s (top %d)", p.CategorySlug, limit)

	case TypeComparison:
		count := 0
		for _, slug := range p.Slugs {
			if slug != "" {
				count++
			}
		}
		return "Comparison: " + strconv.Itoa(count) + " products"
	}

	return ""
}
