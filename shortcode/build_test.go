package shortcode_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-affiliate/shortcode"
)

func TestBuildValue_CanonicalForms(t *testing.T) {
	cases := []struct {
		name   string
		params shortcode.Params
		want   string
	}{
		{
			"product default variant omitted",
			shortcode.Params{Type: shortcode.TypeProduct, Slug: "mouse", Variant: shortcode.VariantDefault},
			"[product:mouse]",
		},
		{
			"product explicit variant",
			shortcode.Params{Type: shortcode.TypeProduct, Slug: "mouse", Variant: shortcode.VariantFeatured},
			"[product:mouse,featured]",
		},
		{
			"products default limit omitted",
			shortcode.Params{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: 3},
			"[products:mice]",
		},
		{
			"products explicit limit",
			shortcode.Params{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: 5},
			"[products:mice,5]",
		},
		{
			"comparison",
			shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a", "b", "c"}},
			"[comparison:a,b,c]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shortcode.BuildValue(tc.params); got != tc.want {
				t.Fatalf("BuildValue mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

// Parse(Build(p)) must return p for every valid params value. The reverse
// direction is deliberately not guaranteed: non-canonical input normalizes.
func TestBuildParseRoundTrip(t *testing.T) {
	values := []shortcode.Params{
		{Type: shortcode.TypeProduct, Slug: "mouse", Variant: shortcode.VariantDefault},
		{Type: shortcode.TypeProduct, Slug: "mouse", Variant: shortcode.VariantCompact},
		{Type: shortcode.TypeProduct, Slug: "mouse", Variant: shortcode.VariantFeatured},
		{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: 3},
		{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: 1},
		{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: 10},
		{Type: shortcode.TypeComparison, Slugs: []string{"a", "b"}},
		{Type: shortcode.TypeComparison, Slugs: []string{"a", "b", "c", "d"}},
	}

	for _, want := range values {
		built := shortcode.BuildValue(want)
		inner := strings.TrimSuffix(strings.TrimPrefix(built, "["), "]")
		got, ok := shortcode.ParseValue(inner)
		if !ok {
			t.Fatalf("built value %q did not parse", built)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch for %q:\n got %#v\nwant %#v", built, got, want)
		}
	}
}

func TestBuildValue_NormalizesNonCanonicalInput(t *testing.T) {
	p, ok := shortcode.ParseValue("product:mouse,default")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if got := shortcode.BuildValue(p); got != "[product:mouse]" {
		t.Fatalf("expected canonical form, got %q", got)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		params shortcode.Params
		want   string
	}{
		{shortcode.Params{Type: shortcode.TypeProduct, Slug: "mouse", Variant: shortcode.VariantFeatured}, "Product: mouse (featured)"},
		{shortcode.Params{Type: shortcode.TypeProduct, Slug: "mouse"}, "Product: mouse"},
		{shortcode.Params{Type: shortcode.TypeProduct}, "Product: (none selected)"},
		{shortcode.Params{Type: shortcode.TypeProducts, CategorySlug: "mice"}, "Products: mice (top 3)"},
		{shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a", "b", "c"}}, "Comparison: 3 products"},
		{shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a", "b", ""}}, "Comparison: 2 products"},
	}

	for _, tc := range cases {
		if got := shortcode.Label(tc.params); got != tc.want {
			t.Fatalf("Label(%#v) = %q, want %q", tc.params, got, tc.want)
		}
	}
}
