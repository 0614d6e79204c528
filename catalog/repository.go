package catalog

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewProductRepository(db *bun.DB) repository.Repository[*Product] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Product]{
		NewRecord: func() *Product { return &Product{} },
		GetID: func(p *Product) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Product, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *Product) string {
			return p.Slug
		},
	})
}

func NewCategoryRepository(db *bun.DB) repository.Repository[*Category] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Category]{
		NewRecord: func() *Category { return &Category{} },
		GetID: func(c *Category) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Category, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(c *Category) string {
			return c.Slug
		},
	})
}
