// Package catalog defines the product and category records shared by every
// site on the platform, plus the read-side projections the rendering
// pipeline consumes.
package catalog

import (
	"time"

	"github.com/goliatone/go-affiliate/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Product is the canonical catalog record for a reviewable product.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID            uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	SiteID        uuid.UUID       `bun:"site_id,notnull,type:uuid" json:"site_id"`
	Slug          string          `bun:"slug,notnull" json:"slug"`
	Title         string          `bun:"title,notnull" json:"title"`
	Excerpt       *string         `bun:"excerpt" json:"excerpt,omitempty"`
	FeaturedImage *string         `bun:"featured_image" json:"featured_image,omitempty"`
	PriceFrom     *float64        `bun:"price_from" json:"price_from,omitempty"`
	PriceCurrency string          `bun:"price_currency,notnull,default:'USD'" json:"price_currency"`
	Rating        *float64        `bun:"rating" json:"rating,omitempty"`
	ProductType   string          `bun:"product_type" json:"product_type,omitempty"`
	IsFeatured    bool            `bun:"is_featured,notnull,default:false" json:"is_featured"`
	AffiliateURL  *string         `bun:"affiliate_url" json:"affiliate_url,omitempty"`
	Details       *ProductDetails `bun:"details,type:jsonb" json:"details,omitempty"`
	Status        domain.Status   `bun:"status,notnull,default:'draft'" json:"status"`
	DeletedAt     *time.Time      `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Categories []*Category `bun:"-" json:"categories,omitempty"`
}

// ProductDetails is the typed shape of the product's review payload. It is
// validated at the data-access boundary so the rendering core never sees
// untyped JSON.
type ProductDetails struct {
	Pros           []string          `json:"pros,omitempty"`
	Cons           []string          `json:"cons,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
}

// Category groups products within one site's taxonomy.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	SiteID      uuid.UUID  `bun:"site_id,notnull,type:uuid" json:"site_id"`
	Slug        string     `bun:"slug,notnull" json:"slug"`
	Name        string     `bun:"name,notnull" json:"name"`
	Description *string    `bun:"description" json:"description,omitempty"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Products []*Product `bun:"-" json:"products,omitempty"`
}

// ProductCategory is the join record linking products to categories.
// Position preserves catalog order within a category so grids render
// deterministically.
type ProductCategory struct {
	bun.BaseModel `bun:"table:product_categories,alias:pc"`

	ProductID  uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	CategoryID uuid.UUID `bun:"category_id,pk,type:uuid" json:"category_id"`
	Position   int       `bun:"position,notnull,default:0" json:"position"`
}

// ProductCardData is the read-only projection the renderer consumes. It is
// borrowed from the catalog for the duration of one render and never
// mutated.
type ProductCardData struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt,omitempty"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	PriceFrom     *float64  `json:"price_from,omitempty"`
	PriceCurrency string    `json:"price_currency,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	ProductType   string    `json:"product_type,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	URL           string    `json:"url,omitempty"`
}

// Card projects the product into its renderer-facing snapshot.
func (p *Product) Card() ProductCardData {
	card := ProductCardData{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		PriceFrom:     p.PriceFrom,
		PriceCurrency: p.PriceCurrency,
		Rating:        p.Rating,
		ProductType:   p.ProductType,
		IsFeatured:    p.IsFeatured,
	}
	if p.Excerpt != nil {
		card.Excerpt = *p.Excerpt
	}
	if p.FeaturedImage != nil {
		card.FeaturedImage = *p.FeaturedImage
	}
	return card
}

// ProductLink is the minimal product projection the auto-linker scans for.
type ProductLink struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// CategoryLink is the minimal category projection the auto-linker scans for.
type CategoryLink struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}
