package shortcode

// References collects the distinct catalog entities a piece of content
// refers to. The caller issues one batched fetch per entity kind before the
// render pass instead of fetching inside the render loop.
type References struct {
	ProductSlugs  []string
	CategorySlugs []string
}

// Empty reports whether the content referenced nothing.
func (r References) Empty() bool {
	return len(r.ProductSlugs) == 0 && len(r.CategorySlugs) == 0
}

// ExtractReferences scans the entire content string once and returns the
// de-duplicated sets of product and category slugs referenced by any
// shortcode. Slug order follows first appearance so fetch batches stay
// deterministic.
func ExtractReferences(content string) References {
	var refs References
	seenProducts := map[string]struct{}{}
	seenCategories := map[string]struct{}{}

	addProduct := func(slug string) {
		if slug == "" {
			return
		}
		if _, ok := seenProducts[slug]; ok {
			return
		}
		seenProducts[slug] = struct{}{}
		refs.ProductSlugs = append(refs.ProductSlugs, slug)
	}

	for _, tok := range FindAll(content) {
		switch tok.Params.Type {
		case TypeProduct:
			addProduct(tok.Params.Slug)
		case TypeProducts:
			slug := tok.Params.CategorySlug
			if slug == "" {
				continue
			}
			if _, ok := seenCategories[slug]; ok {
				continue
			}
			seenCategories[slug] = struct{}{}
			refs.CategorySlugs = append(refs.CategorySlugs, slug)
		case TypeComparison:
			for _, slug := range tok.Params.Slugs {
				addProduct(slug)
			}
		}
	}

	return refs
}
