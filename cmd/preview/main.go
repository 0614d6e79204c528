// Command preview boots the module against an in-memory database, seeds a
// small demo catalog, imports a Markdown article and prints the rendered
// result. Useful for eyeballing widget markup and auto-link behaviour.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	affiliate "github.com/goliatone/go-affiliate"
	"github.com/goliatone/go-affiliate/articles"
	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/domain"
	"github.com/goliatone/go-affiliate/internal/di"
	"github.com/goliatone/go-affiliate/sites"
)

const demoArticle = `---
title: The Best Widgets of the Year
kind: roundup
status: published
---

## Our Top Pick

The Acme Widget wins on build quality alone.

[product:acme-widget,featured]

## The Full Field

[products:widgets,3]

## Head to Head

[comparison:acme-widget,beta-widget]

The Beta Widget is the value pick; the Acme Widget is the one to keep.
`

func main() {
	ctx := context.Background()

	bunDB, err := openDB()
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer bunDB.Close()

	siteID, err := seed(ctx, bunDB)
	if err != nil {
		log.Fatalf("seed fixtures: %v", err)
	}

	cfg := affiliate.DefaultConfig()
	cfg.Routes.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://gadgets.example",
				Paths: map[string]string{
					"product":  "/:site/products/:slug",
					"category": "/:site/categories/:slug",
				},
			},
		},
	}

	module, err := affiliate.New(cfg, di.WithBunDB(bunDB))
	if err != nil {
		log.Fatalf("initialise module: %v", err)
	}

	source := demoArticle
	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("read article %s: %v", os.Args[1], err)
		}
		source = string(raw)
	}

	article, err := module.Importer().Import(siteID, []byte(source))
	if err != nil {
		log.Fatalf("import article: %v", err)
	}

	rendered, err := module.Articles().Render(ctx, articles.RenderRequest{
		SiteID:   siteID,
		SiteSlug: "gadget-site",
		Article:  article,
	})
	if err != nil {
		log.Fatalf("render article: %v", err)
	}

	fmt.Printf("# %s\n\n", article.Title)
	if len(rendered.Headings) > 0 {
		fmt.Println("## Table of contents")
		for _, h := range rendered.Headings {
			fmt.Printf("%*s- %s (#%s)\n", (h.Level-2)*2, "", h.Text, h.ID)
		}
		fmt.Println()
	}
	if len(rendered.AutoLinked) > 0 {
		fmt.Printf("## Auto-linked entities\n")
		for _, name := range rendered.AutoLinked {
			fmt.Printf("- %s\n", name)
		}
		fmt.Println()
	}
	fmt.Println("## HTML")
	fmt.Println(rendered.HTML)
}

func openDB() (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		return nil, err
	}
	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	ctx := context.Background()
	models := []any{
		(*sites.Niche)(nil),
		(*sites.Site)(nil),
		(*catalog.Product)(nil),
		(*catalog.Category)(nil),
		(*catalog.ProductCategory)(nil),
		(*articles.Article)(nil),
	}
	for _, model := range models {
		if _, err := bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return nil, fmt.Errorf("create table %T: %w", model, err)
		}
	}
	return bunDB, nil
}

func seed(ctx context.Context, db *bun.DB) (uuid.UUID, error) {
	nicheID := uuid.New()
	siteID := uuid.New()

	niche := &sites.Niche{ID: nicheID, Slug: "gadgets", Name: "Gadgets"}
	if _, err := db.NewInsert().Model(niche).Exec(ctx); err != nil {
		return uuid.Nil, err
	}

	site := &sites.Site{
		ID:       siteID,
		NicheID:  nicheID,
		Slug:     "gadget-site",
		Name:     "Gadget Site",
		Domain:   "gadgets.example",
		IsActive: true,
	}
	if _, err := db.NewInsert().Model(site).Exec(ctx); err != nil {
		return uuid.Nil, err
	}

	category := &catalog.Category{ID: uuid.New(), SiteID: siteID, Slug: "widgets", Name: "Widgets"}
	if _, err := db.NewInsert().Model(category).Exec(ctx); err != nil {
		return uuid.Nil, err
	}

	products := []struct {
		slug    string
		title   string
		price   float64
		rating  float64
		excerpt string
	}{
		{"acme-widget", "Acme Widget", 79.99, 4.7, "The benchmark widget."},
		{"beta-widget", "Beta Widget", 49.99, 4.2, "Great value for money."},
		{"gamma-widget", "Gamma Widget", 129.00, 4.5, "The premium option."},
	}

	for i, p := range products {
		price := p.price
		rating := p.rating
		excerpt := p.excerpt
		record := &catalog.Product{
			ID:            uuid.New(),
			SiteID:        siteID,
			Slug:          p.slug,
			Title:         p.title,
			Excerpt:       &excerpt,
			PriceFrom:     &price,
			PriceCurrency: "USD",
			Rating:        &rating,
			Status:        domain.StatusPublished,
			IsFeatured:    i == 0,
		}
		if _, err := db.NewInsert().Model(record).Exec(ctx); err != nil {
			return uuid.Nil, err
		}
		link := &catalog.ProductCategory{ProductID: record.ID, CategoryID: category.ID, Position: i}
		if _, err := db.NewInsert().Model(link).Exec(ctx); err != nil {
			return uuid.Nil, err
		}
	}

	return siteID, nil
}
