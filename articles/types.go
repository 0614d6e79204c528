// Package articles holds the editorial records and the read-side rendering
// contract. An article's stored content is the source of truth and is never
// rewritten by rendering: shortcode resolution happens at read time, so new
// widget styles ship without data migrations.
package articles

import (
	"time"

	"github.com/goliatone/go-affiliate/domain"
	"github.com/goliatone/go-affiliate/render"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Kind enumerates the editorial formats the platform serves.
type Kind string

const (
	KindReview     Kind = "review"
	KindRoundup    Kind = "roundup"
	KindComparison Kind = "comparison"
	KindGuide      Kind = "guide"
)

// Article is one piece of editorial content belonging to a site.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID            uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	SiteID        uuid.UUID      `bun:"site_id,notnull,type:uuid" json:"site_id"`
	Slug          string         `bun:"slug,notnull" json:"slug"`
	Title         string         `bun:"title,notnull" json:"title"`
	Excerpt       *string        `bun:"excerpt" json:"excerpt,omitempty"`
	Content       string         `bun:"content,notnull" json:"content"`
	Kind          Kind           `bun:"kind,notnull,default:'review'" json:"kind"`
	Status        domain.Status  `bun:"status,notnull,default:'draft'" json:"status"`
	FeaturedImage *string        `bun:"featured_image" json:"featured_image,omitempty"`
	Metadata      map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	PublishAt     *time.Time     `bun:"publish_at,nullzero" json:"publish_at,omitempty"`
	PublishedAt   *time.Time     `bun:"published_at,nullzero" json:"published_at,omitempty"`
	DeletedAt     *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// RenderRequest asks for the public rendering of one article.
type RenderRequest struct {
	SiteID   uuid.UUID
	SiteSlug string

	// Slug identifies the article when Article is nil.
	Slug string

	// Article supplies the record directly, bypassing the lookup. Used
	// by previews of unsaved drafts.
	Article *Article

	// DisableAutoLink turns cross-link rewriting off for this render
	// regardless of the site-wide setting.
	DisableAutoLink bool
}

// RenderedArticle is the outcome of one read-time render pass.
type RenderedArticle struct {
	Article  *Article         `json:"article"`
	HTML     string           `json:"html"`
	Headings []render.Heading `json:"headings"`

	// AutoLinked lists entity names the cross-linker wrapped.
	AutoLinked []string `json:"auto_linked,omitempty"`
}
