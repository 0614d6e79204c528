package sites

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewSiteRepository(db *bun.DB) repository.Repository[*Site] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Site]{
		NewRecord: func() *Site { return &Site{} },
		GetID: func(s *Site) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Site, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(s *Site) string {
			return s.Slug
		},
	})
}

func NewNicheRepository(db *bun.DB) repository.Repository[*Niche] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Niche]{
		NewRecord: func() *Niche { return &Niche{} },
		GetID: func(n *Niche) uuid.UUID {
			return n.ID
		},
		SetID: func(n *Niche, id uuid.UUID) {
			n.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(n *Niche) string {
			return n.Slug
		},
	})
}
