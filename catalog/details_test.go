package catalog_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-affiliate/catalog"
)

func TestParseDetails(t *testing.T) {
	raw := []byte(`{
		"pros": ["light", "quiet"],
		"cons": ["pricey"],
		"specifications": {"weight": "58g", "dpi": "26000"}
	}`)

	details, err := catalog.ParseDetails("wireless-mouse", raw)
	if err != nil {
		t.Fatalf("ParseDetails: %v", err)
	}
	if len(details.Pros) != 2 || details.Pros[0] != "light" {
		t.Fatalf("pros mismatch: %#v", details.Pros)
	}
	if details.Specifications["weight"] != "58g" {
		t.Fatalf("specifications mismatch: %#v", details.Specifications)
	}
}

func TestParseDetails_Empty(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("null")} {
		details, err := catalog.ParseDetails("x", raw)
		if err != nil {
			t.Fatalf("ParseDetails(%q): %v", raw, err)
		}
		if details != nil {
			t.Fatalf("expected nil details for %q", raw)
		}
	}
}

func TestParseDetails_RejectsWrongShape(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"pros not array", `{"pros": "great"}`},
		{"spec values not strings", `{"specifications": {"weight": 58}}`},
		{"unknown field", `{"color": "black"}`},
		{"not json", `{pros}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.ParseDetails("x", []byte(tc.raw))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, catalog.ErrDetailsInvalid) {
				t.Fatalf("expected ErrDetailsInvalid, got %v", err)
			}
		})
	}
}

func TestProductCard(t *testing.T) {
	excerpt := "A very good mouse."
	image := "/img/mouse.webp"
	price := 59.0
	p := catalog.Product{
		Slug:          "wireless-mouse",
		Title:         "Wireless Mouse",
		Excerpt:       &excerpt,
		FeaturedImage: &image,
		PriceFrom:     &price,
		PriceCurrency: "EUR",
		IsFeatured:    true,
	}

	card := p.Card()
	if card.Slug != "wireless-mouse" || card.Title != "Wireless Mouse" {
		t.Fatalf("card identity mismatch: %#v", card)
	}
	if card.Excerpt != excerpt || card.FeaturedImage != image {
		t.Fatalf("card optional fields mismatch: %#v", card)
	}
	if card.PriceFrom == nil || *card.PriceFrom != price || card.PriceCurrency != "EUR" {
		t.Fatalf("card price mismatch: %#v", card)
	}
	if !card.IsFeatured {
		t.Fatalf("expected featured card")
	}
}
