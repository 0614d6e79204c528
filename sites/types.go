// Package sites models the multi-tenant surface: many independently branded
// sites share one codebase and database, each attached to a niche that
// supplies taxonomy and an optional product-page layout.
package sites

import (
	"time"

	"github.com/goliatone/go-affiliate/layout"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Niche is a named vertical (e.g. "Gaming", "Tech") shared by every site
// built on it.
type Niche struct {
	bun.BaseModel `bun:"table:niches,alias:n"`

	ID           uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Slug         string         `bun:"slug,notnull,unique" json:"slug"`
	Name         string         `bun:"name,notnull" json:"name"`
	Description  *string        `bun:"description" json:"description,omitempty"`
	Layout       *layout.Config `bun:"layout,type:jsonb" json:"layout,omitempty"`
	ProductTypes []string       `bun:"product_types,type:jsonb" json:"product_types,omitempty"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Sites []*Site `bun:"rel:has-many,join:id=niche_id" json:"sites,omitempty"`
}

// Site is one branded storefront. Theme settings stay site-local; layout and
// taxonomy come from the niche.
type Site struct {
	bun.BaseModel `bun:"table:sites,alias:s"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	NicheID   uuid.UUID      `bun:"niche_id,notnull,type:uuid" json:"niche_id"`
	Slug      string         `bun:"slug,notnull,unique" json:"slug"`
	Name      string         `bun:"name,notnull" json:"name"`
	Domain    string         `bun:"domain,notnull" json:"domain"`
	Theme     ThemeSettings  `bun:"theme,type:jsonb" json:"theme"`
	Metadata  map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	IsActive  bool           `bun:"is_active,notnull" json:"is_active"`
	DeletedAt *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Niche *Niche `bun:"rel:belongs-to,join:niche_id=id" json:"niche,omitempty"`
}

// ThemeSettings records per-site presentation knobs.
type ThemeSettings struct {
	PrimaryColor string         `json:"primary_color,omitempty"`
	AccentColor  string         `json:"accent_color,omitempty"`
	LogoURL      string         `json:"logo_url,omitempty"`
	FontFamily   string         `json:"font_family,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}
