package render

import (
	"context"
	"html/template"
	"strings"

	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/logging"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
	"github.com/goliatone/go-affiliate/shortcode"
)

// Renderer resolves shortcode spans and auto-links prose in a single
// left-to-right pass over content. It holds no per-request state and is safe
// for concurrent use.
//
// Content-shape problems never produce errors: a dangling product reference,
// an unknown category or a comparison slug that fails to resolve all degrade
// to rendering less. Only the surrounding fetch layer can fail a page.
type Renderer struct {
	templates    *template.Template
	links        interfaces.LinkResolver
	logger       interfaces.Logger
	defaultLimit int
}

// Option configures the renderer.
type Option func(*Renderer)

// WithLinkResolver wires the resolver used for card titles and auto-links.
// Without one, cards render unlinked and auto-linking is a no-op.
func WithLinkResolver(resolver interfaces.LinkResolver) Option {
	return func(r *Renderer) {
		r.links = resolver
	}
}

// WithLogger attaches a logger for dropped-reference diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTemplates overrides individual widget templates by name
// (product-card, product-grid, comparison, comparison-cell).
func WithTemplates(overrides map[string]string) Option {
	return func(r *Renderer) {
		set, err := newTemplateSet(overrides)
		if err == nil {
			r.templates = set
		}
	}
}

// WithDefaultProductsLimit changes how many cards a grid shortcode renders
// when the author omits the limit. Values below 1 keep the built-in default.
func WithDefaultProductsLimit(limit int) Option {
	return func(r *Renderer) {
		if limit > 0 {
			r.defaultLimit = limit
		}
	}
}

// NewRenderer constructs a renderer with the default widget templates.
func NewRenderer(opts ...Option) (*Renderer, error) {
	set, err := newTemplateSet(nil)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		templates:    set,
		logger:       logging.NoOp(),
		defaultLimit: shortcode.DefaultProductsLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render produces the final HTML for one article body plus the derived
// table of contents. Shortcode-substituted markup always wins over
// auto-linking: the linker only ever sees the literal text between spans.
func (r *Renderer) Render(ctx context.Context, req Request) Result {
	tokens := shortcode.FindAll(req.Content)

	var linker *autoLinker
	if req.EnableAutoLink {
		linker = newAutoLinker(r.links, req.SiteSlug, req.AllProducts, req.AllCategories)
	}

	var out strings.Builder
	out.Grow(len(req.Content))

	pos := 0
	for _, tok := range tokens {
		out.WriteString(r.literal(ctx, linker, req.Content[pos:tok.Start]))
		out.WriteString(r.renderToken(ctx, req, tok))
		pos = tok.End
	}
	out.WriteString(r.literal(ctx, linker, req.Content[pos:]))

	rendered := out.String()

	result := Result{
		HTML:     template.HTML(rendered),
		Headings: ExtractHeadings(rendered),
	}
	if linker != nil {
		result.AutoLinked = linker.names
	}
	return result
}

func (r *Renderer) literal(ctx context.Context, linker *autoLinker, text string) string {
	if linker == nil || text == "" {
		return text
	}
	return linker.linkFragment(ctx, text)
}

func (r *Renderer) renderToken(ctx context.Context, req Request, tok shortcode.Token) string {
	switch tok.Params.Type {
	case shortcode.TypeProduct:
		return r.renderProduct(ctx, req, tok.Params)
	case shortcode.TypeProducts:
		return r.renderProducts(ctx, req, tok.Params)
	case shortcode.TypeComparison:
		return r.renderComparison(ctx, req, tok.Params)
	}
	return ""
}

func (r *Renderer) renderProduct(ctx context.Context, req Request, p shortcode.Params) string {
	card, ok := req.Products[p.Slug]
	if !ok {
		// Slug typo or deleted product: the article renders around
		// the hole instead of failing.
		r.logger.Debug("dropping unresolved product shortcode", "slug", p.Slug, "site", req.SiteSlug)
		return ""
	}

	variant := p.Variant
	switch variant {
	case shortcode.VariantDefault, shortcode.VariantCompact, shortcode.VariantFeatured:
	default:
		variant = shortcode.VariantDefault
	}

	return r.execute("product-card", map[string]any{
		"Card":    r.withURL(ctx, req.SiteSlug, card),
		"Variant": variant,
	})
}

func (r *Renderer) renderProducts(ctx context.Context, req Request, p shortcode.Params) string {
	cards, ok := req.CategoryProducts[p.CategorySlug]
	if !ok {
		r.logger.Debug("dropping unresolved products shortcode", "category", p.CategorySlug, "site", req.SiteSlug)
		return ""
	}

	limit := p.Limit
	if limit < 1 {
		limit = r.defaultLimit
	}
	if limit > len(cards) {
		limit = len(cards)
	}
	if limit == 0 {
		return ""
	}

	resolved := make([]catalog.ProductCardData, 0, limit)
	for _, card := range cards[:limit] {
		resolved = append(resolved, r.withURL(ctx, req.SiteSlug, card))
	}

	return r.execute("product-grid", map[string]any{
		"CategorySlug": p.CategorySlug,
		"Cards":        resolved,
	})
}

func (r *Renderer) renderComparison(ctx context.Context, req Request, p shortcode.Params) string {
	resolved := make([]catalog.ProductCardData, 0, len(p.Slugs))
	for _, slug := range p.Slugs {
		card, ok := req.Products[slug]
		if !ok {
			// A dead slug degrades the comparison instead of
			// leaving a blank column.
			if slug != "" {
				r.logger.Debug("dropping unresolved comparison entry", "slug", slug, "site", req.SiteSlug)
			}
			continue
		}
		resolved = append(resolved, r.withURL(ctx, req.SiteSlug, card))
	}

	if len(resolved) == 0 {
		return ""
	}

	return r.execute("comparison", map[string]any{
		"Cards": resolved,
	})
}

// withURL copies the card and fills in its public URL when a resolver is
// configured. Resolution failures leave the card unlinked.
func (r *Renderer) withURL(ctx context.Context, siteSlug string, card catalog.ProductCardData) catalog.ProductCardData {
	if r.links == nil {
		return card
	}
	url, err := r.links.ProductURL(ctx, siteSlug, card.Slug)
	if err != nil {
		r.logger.Debug("product url resolution failed", "slug", card.Slug, "error", err)
		return card
	}
	card.URL = url
	return card
}

func (r *Renderer) execute(name string, data any) string {
	var buf strings.Builder
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("widget template execution failed", "template", name, "error", err)
		return ""
	}
	return buf.String()
}
