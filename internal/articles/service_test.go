package articles_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	articlespkg "github.com/goliatone/go-affiliate/articles"
	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/articles"
	"github.com/goliatone/go-affiliate/render"
)

type stubArticleRepo struct {
	bySlug map[string]*articlespkg.Article
}

func (s *stubArticleRepo) GetBySlug(_ context.Context, _ uuid.UUID, slug string) (*articlespkg.Article, error) {
	record, ok := s.bySlug[slug]
	if !ok {
		return nil, articlespkg.ErrArticleNotFound
	}
	return record, nil
}

func (s *stubArticleRepo) ListPublished(context.Context, uuid.UUID) ([]*articlespkg.Article, error) {
	return nil, nil
}

type stubCatalog struct {
	cards      map[string]catalog.ProductCardData
	categories map[string][]catalog.ProductCardData
	links      []catalog.ProductLink
	catLinks   []catalog.CategoryLink

	cardCalls     int
	categoryCalls int
}

func (s *stubCatalog) CardsBySlugs(_ context.Context, _ uuid.UUID, slugs []string) (map[string]catalog.ProductCardData, error) {
	s.cardCalls++
	out := map[string]catalog.ProductCardData{}
	for _, slug := range slugs {
		if card, ok := s.cards[slug]; ok {
			out[slug] = card
		}
	}
	return out, nil
}

func (s *stubCatalog) CardsByCategorySlugs(_ context.Context, _ uuid.UUID, slugs []string) (map[string][]catalog.ProductCardData, error) {
	s.categoryCalls++
	out := map[string][]catalog.ProductCardData{}
	for _, slug := range slugs {
		if cards, ok := s.categories[slug]; ok {
			out[slug] = cards
		}
	}
	return out, nil
}

func (s *stubCatalog) ProductLinks(context.Context, uuid.UUID) ([]catalog.ProductLink, error) {
	return s.links, nil
}

func (s *stubCatalog) CategoryLinks(context.Context, uuid.UUID) ([]catalog.CategoryLink, error) {
	return s.catLinks, nil
}

func (s *stubCatalog) GetProductBySlug(context.Context, uuid.UUID, string) (*catalog.Product, error) {
	return nil, &catalog.NotFoundError{Resource: "product", Key: "stub"}
}

func (s *stubCatalog) GetCategoryBySlug(context.Context, uuid.UUID, string) (*catalog.Category, error) {
	return nil, &catalog.NotFoundError{Resource: "category", Key: "stub"}
}

type staticLinkResolver struct{}

func (staticLinkResolver) ProductURL(_ context.Context, siteSlug, productSlug string) (string, error) {
	return "/" + siteSlug + "/products/" + productSlug, nil
}

func (staticLinkResolver) CategoryURL(_ context.Context, siteSlug, categorySlug string) (string, error) {
	return "/" + siteSlug + "/categories/" + categorySlug, nil
}

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	renderer, err := render.NewRenderer(render.WithLinkResolver(staticLinkResolver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestService_Render_FullPipeline(t *testing.T) {
	siteID := uuid.New()

	content := strings.Join([]string{
		"<h2>Our Verdict</h2>",
		"<p>The Acme Widget is the one to beat. Acme Widget fans agree; Acme Widget stock sells out fast.</p>",
		"[product:acme-widget,featured]",
		"<h2>Our Verdict</h2>",
		"<p>Buy it at Acme.</p>",
	}, "\n")

	repo := &stubArticleRepo{bySlug: map[string]*articlespkg.Article{
		"acme-widget-review": {
			ID:      uuid.New(),
			SiteID:  siteID,
			Slug:    "acme-widget-review",
			Title:   "Acme Widget Review",
			Content: content,
		},
	}}

	catalogStub := &stubCatalog{
		cards: map[string]catalog.ProductCardData{
			"acme-widget": {Slug: "acme-widget", Title: "Acme Widget", PriceCurrency: "USD"},
		},
		links: []catalog.ProductLink{{Slug: "acme-widget", Title: "Acme Widget"}},
	}

	svc := articles.NewService(repo, catalogStub, newTestRenderer(t))

	rendered, err := svc.Render(context.Background(), articlespkg.RenderRequest{
		SiteID:   siteID,
		SiteSlug: "gadget-site",
		Slug:     "acme-widget-review",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if rendered.Article.Content != content {
		t.Fatal("stored content must never be rewritten")
	}

	if !strings.Contains(rendered.HTML, `class="product-card`) {
		t.Fatalf("expected product card widget in output:\n%s", rendered.HTML)
	}

	// The card widget links its own title too; only the prose paragraph
	// proves the auto-linker's work.
	start := strings.Index(rendered.HTML, "<p>The")
	end := strings.Index(rendered.HTML, "</p>")
	if start < 0 || end < start {
		t.Fatalf("expected intro paragraph in output:\n%s", rendered.HTML)
	}
	prose := rendered.HTML[start:end]
	wantLink := `<a href="/gadget-site/products/acme-widget">Acme Widget</a>`
	if got := strings.Count(prose, wantLink); got != 1 {
		t.Fatalf("entity must be auto-linked exactly once in prose, found %d in:\n%s", got, prose)
	}
	if strings.Count(prose, "Acme Widget") != 3 {
		t.Fatalf("later mentions must stay plain text:\n%s", prose)
	}
	if len(rendered.AutoLinked) != 1 || rendered.AutoLinked[0] != "Acme Widget" {
		t.Fatalf("unexpected auto-linked names: %v", rendered.AutoLinked)
	}

	if len(rendered.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %+v", rendered.Headings)
	}
	if rendered.Headings[0].ID == rendered.Headings[1].ID {
		t.Fatalf("duplicate heading ids must be disambiguated: %+v", rendered.Headings)
	}

	if catalogStub.cardCalls != 1 {
		t.Fatalf("product cards must be fetched in one batch, got %d calls", catalogStub.cardCalls)
	}
	if catalogStub.categoryCalls != 0 {
		t.Fatalf("no category refs, expected no category fetch, got %d", catalogStub.categoryCalls)
	}
}

func TestService_Render_DisableAutoLink(t *testing.T) {
	siteID := uuid.New()
	article := &articlespkg.Article{
		ID:      uuid.New(),
		SiteID:  siteID,
		Slug:    "draft-preview",
		Content: "<p>The Acme Widget is great.</p>",
	}

	catalogStub := &stubCatalog{
		links: []catalog.ProductLink{{Slug: "acme-widget", Title: "Acme Widget"}},
	}

	svc := articles.NewService(&stubArticleRepo{bySlug: map[string]*articlespkg.Article{}}, catalogStub, newTestRenderer(t))

	rendered, err := svc.Render(context.Background(), articlespkg.RenderRequest{
		SiteID:          siteID,
		SiteSlug:        "gadget-site",
		Article:         article,
		DisableAutoLink: true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(rendered.HTML, "<a ") {
		t.Fatalf("auto-linking must be off: %s", rendered.HTML)
	}
	if len(rendered.AutoLinked) != 0 {
		t.Fatalf("expected no auto-linked names, got %v", rendered.AutoLinked)
	}
}

func TestService_Render_DanglingReferencesDegrade(t *testing.T) {
	siteID := uuid.New()
	article := &articlespkg.Article{
		ID:      uuid.New(),
		SiteID:  siteID,
		Slug:    "roundup",
		Content: "<p>Intro.</p>\n[comparison:alpha,ghost,omega]\n<p>Outro.</p>",
	}

	catalogStub := &stubCatalog{
		cards: map[string]catalog.ProductCardData{
			"alpha": {Slug: "alpha", Title: "Alpha", PriceCurrency: "USD"},
			"omega": {Slug: "omega", Title: "Omega", PriceCurrency: "USD"},
		},
	}

	svc := articles.NewService(&stubArticleRepo{bySlug: map[string]*articlespkg.Article{}}, catalogStub, newTestRenderer(t), articles.WithAutoLink(false))

	rendered, err := svc.Render(context.Background(), articlespkg.RenderRequest{
		SiteID:   siteID,
		SiteSlug: "gadget-site",
		Article:  article,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rendered.HTML, "Alpha") || !strings.Contains(rendered.HTML, "Omega") {
		t.Fatalf("resolved comparison entries must render: %s", rendered.HTML)
	}
	if strings.Contains(rendered.HTML, "ghost") {
		t.Fatalf("dangling comparison slug must be dropped: %s", rendered.HTML)
	}
}

func TestService_References(t *testing.T) {
	siteID := uuid.New()
	repo := &stubArticleRepo{bySlug: map[string]*articlespkg.Article{
		"guide": {
			ID:      uuid.New(),
			SiteID:  siteID,
			Slug:    "guide",
			Content: "[product:alpha] [products:mice,5] [comparison:alpha,beta]",
		},
	}}

	svc := articles.NewService(repo, &stubCatalog{}, newTestRenderer(t))

	refs, err := svc.References(context.Background(), siteID, "guide")
	if err != nil {
		t.Fatalf("references: %v", err)
	}
	if len(refs.ProductSlugs) != 2 {
		t.Fatalf("expected deduped product slugs, got %v", refs.ProductSlugs)
	}
	if len(refs.CategorySlugs) != 1 || refs.CategorySlugs[0] != "mice" {
		t.Fatalf("unexpected category slugs: %v", refs.CategorySlugs)
	}

	if _, err := svc.References(context.Background(), siteID, "missing"); !errors.Is(err, articlespkg.ErrArticleNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_GetBySlug_Validation(t *testing.T) {
	svc := articles.NewService(&stubArticleRepo{}, &stubCatalog{}, newTestRenderer(t))

	if _, err := svc.GetBySlug(context.Background(), uuid.Nil, "x"); !errors.Is(err, articlespkg.ErrSiteRequired) {
		t.Fatalf("expected site required, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), uuid.New(), "  "); !errors.Is(err, articlespkg.ErrSlugRequired) {
		t.Fatalf("expected slug required, got %v", err)
	}
}
