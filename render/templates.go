package render

import (
	"fmt"
	"html/template"
	"strings"
)

// cardTemplates hold the default widget markup. Hosts can swap the whole set
// through WithTemplates when a theme ships its own partials.
var defaultTemplates = map[string]string{
	"product-card":    defaultProductCard,
	"product-grid":    defaultProductGrid,
	"comparison":      defaultComparison,
	"comparison-cell": defaultComparisonCell,
}

const defaultProductCard = `<div class="product-card product-card-{{.Variant}}{{if .Card.IsFeatured}} product-card-highlight{{end}}" data-product="{{.Card.Slug}}">
  {{if .Card.FeaturedImage}}<img class="product-card-image" src="{{.Card.FeaturedImage}}" alt="{{.Card.Title}}" loading="lazy">{{end}}
  <div class="product-card-body">
    <span class="product-card-title">{{if .Card.URL}}<a href="{{.Card.URL}}">{{.Card.Title}}</a>{{else}}{{.Card.Title}}{{end}}</span>
    {{if ne .Variant "compact"}}{{with .Card.Excerpt}}<p class="product-card-excerpt">{{.}}</p>{{end}}{{end}}
    {{with .Card.Rating}}<span class="product-card-rating" data-rating="{{.}}">{{printf "%.1f" .}}</span>{{end}}
    {{if .Card.PriceFrom}}<span class="product-card-price">{{formatPrice .Card.PriceFrom .Card.PriceCurrency}}</span>{{end}}
  </div>
</div>
`

const defaultProductGrid = `<div class="product-grid" data-category="{{.CategorySlug}}">
{{range .Cards}}{{template "product-card" dict "Card" . "Variant" "default"}}{{end}}</div>
`

const defaultComparison = `<table class="product-comparison">
  <thead>
    <tr>{{range .Cards}}<th scope="col">{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</th>{{end}}</tr>
  </thead>
  <tbody>
    <tr>{{range .Cards}}{{template "comparison-cell" .}}{{end}}</tr>
  </tbody>
</table>
`

const defaultComparisonCell = `<td class="comparison-cell" data-product="{{.Slug}}">
  {{if .FeaturedImage}}<img src="{{.FeaturedImage}}" alt="{{.Title}}" loading="lazy">{{end}}
  {{with .Rating}}<span class="comparison-rating">{{printf "%.1f" .}}</span>{{end}}
  {{if .PriceFrom}}<span class="comparison-price">{{formatPrice .PriceFrom .PriceCurrency}}</span>{{end}}
</td>
`

func newTemplateSet(overrides map[string]string) (*template.Template, error) {
	root := template.New("widgets").Funcs(template.FuncMap{
		"formatPrice": formatPrice,
		"dict":        templateDict,
	})

	for name, text := range defaultTemplates {
		if custom, ok := overrides[name]; ok {
			text = custom
		}
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("render: parsing template %s: %w", name, err)
		}
	}
	return root, nil
}

func formatPrice(amount *float64, currency string) string {
	if amount == nil {
		return ""
	}
	symbol := currencySymbol(currency)
	if symbol != "" {
		return fmt.Sprintf("%s%.2f", symbol, *amount)
	}
	return fmt.Sprintf("%.2f %s", *amount, strings.ToUpper(currency))
}

func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "USD", "":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	}
	return ""
}

func templateDict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("render: dict requires key/value pairs")
	}
	dict := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("render: dict keys must be strings")
		}
		dict[key] = pairs[i+1]
	}
	return dict, nil
}
