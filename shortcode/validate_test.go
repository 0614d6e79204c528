package shortcode_test

import (
	"testing"

	"github.com/goliatone/go-affiliate/shortcode"
)

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		params  shortcode.Params
		wantErr bool
	}{
		{"valid product", shortcode.Params{Type: shortcode.TypeProduct, Slug: "mouse"}, false},
		{"product missing slug", shortcode.Params{Type: shortcode.TypeProduct}, true},
		{"product bad variant", shortcode.Params{Type: shortcode.TypeProduct, Slug: "mouse", Variant: "hero"}, true},
		{"valid products", shortcode.Params{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: 4}, false},
		{"products missing category", shortcode.Params{Type: shortcode.TypeProducts}, true},
		{"products negative limit", shortcode.Params{Type: shortcode.TypeProducts, CategorySlug: "mice", Limit: -1}, true},
		{"valid comparison", shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a", "b"}}, false},
		{"comparison too short", shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a"}}, true},
		{"comparison blanks ignored", shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a", "", ""}}, true},
		{"comparison too long", shortcode.Params{Type: shortcode.TypeComparison, Slugs: []string{"a", "b", "c", "d", "e"}}, true},
		{"unknown type", shortcode.Params{Type: shortcode.Type("gallery")}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
