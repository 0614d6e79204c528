// Package shortcode implements the bracketed inline directives embedded in
// article content: [product:slug], [products:category,n] and
// [comparison:a,b,c]. The canonical string form is what gets persisted inside
// an article's content field, so the grammar here is a compatibility
// contract: previously authored content must keep parsing.
package shortcode

// Type enumerates the supported shortcode kinds. The set is closed; each
// type has a fixed parameter shape.
type Type string

const (
	// TypeProduct embeds a single product card.
	TypeProduct Type = "product"
	// TypeProducts embeds a grid of products drawn from one category.
	TypeProducts Type = "products"
	// TypeComparison embeds a side-by-side comparison of 2-4 products.
	TypeComparison Type = "comparison"
)

// Known reports whether t is one of the supported shortcode types.
func (t Type) Known() bool {
	switch t {
	case TypeProduct, TypeProducts, TypeComparison:
		return true
	}
	return false
}

// Variant names for the product shortcode's presentation.
const (
	VariantDefault  = "default"
	VariantCompact  = "compact"
	VariantFeatured = "featured"
)

// DefaultProductsLimit is the grid size used when the products shortcode
// omits its limit parameter or supplies one that does not parse.
const DefaultProductsLimit = 3

// Params holds the parsed parameters of one shortcode occurrence,
// discriminated by Type. Only the fields matching the type carry meaning.
type Params struct {
	Type Type

	// Slug is the product slug for TypeProduct. It may be empty when the
	// author has not selected a product yet; callers treat that as
	// "nothing to render".
	Slug string

	// Variant selects the product card presentation for TypeProduct.
	Variant string

	// CategorySlug identifies the category for TypeProducts.
	CategorySlug string

	// Limit caps how many products a TypeProducts grid renders.
	Limit int

	// Slugs is the ordered product slug list for TypeComparison. The
	// parser preserves it verbatim, empty entries included; minimum
	// length enforcement belongs to the editor, not the grammar.
	Slugs []string
}

// Token records one shortcode occurrence located in content. Tokens are
// ephemeral: they exist for the duration of a single render pass and are
// never persisted.
type Token struct {
	Params Params

	// Start and End delimit the raw [type:params] span in the scanned
	// content, End exclusive.
	Start int
	End   int
}

// Raw returns the original source text of the token within content.
func (t Token) Raw(content string) string {
	if t.Start < 0 || t.End > len(content) || t.Start > t.End {
		return ""
	}
	return content[t.Start:t.End]
}
