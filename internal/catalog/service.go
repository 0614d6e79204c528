package catalog

import (
	"context"

	"github.com/google/uuid"

	catalogpkg "github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/logging"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

// ProductRepository is the product storage surface the service needs.
type ProductRepository interface {
	GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*catalogpkg.Product, error)
	ListBySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) ([]*catalogpkg.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*catalogpkg.Product, error)
	ListPublished(ctx context.Context, siteID uuid.UUID) ([]*catalogpkg.Product, error)
}

// CategoryRepository is the category storage surface the service needs.
type CategoryRepository interface {
	GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*catalogpkg.Category, error)
	ListBySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) ([]*catalogpkg.Category, error)
	List(ctx context.Context, siteID uuid.UUID) ([]*catalogpkg.Category, error)
}

// ServiceOption customizes the catalog service.
type ServiceOption func(*service)

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	products   ProductRepository
	categories CategoryRepository
	logger     interfaces.Logger
}

// NewService constructs the catalog read service.
func NewService(products ProductRepository, categories CategoryRepository, opts ...ServiceOption) catalogpkg.Service {
	s := &service{
		products:   products,
		categories: categories,
		logger:     logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) CardsBySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) (map[string]catalogpkg.ProductCardData, error) {
	cards := make(map[string]catalogpkg.ProductCardData, len(slugs))
	if len(slugs) == 0 {
		return cards, nil
	}

	records, err := s.products.ListBySlugs(ctx, siteID, slugs)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		cards[record.Slug] = record.Card()
	}

	if missing := len(slugs) - len(cards); missing > 0 {
		s.logger.Debug("catalog: unresolved product references", "site_id", siteID, "requested", len(slugs), "missing", missing)
	}

	return cards, nil
}

func (s *service) CardsByCategorySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) (map[string][]catalogpkg.ProductCardData, error) {
	grouped := make(map[string][]catalogpkg.ProductCardData, len(slugs))
	if len(slugs) == 0 {
		return grouped, nil
	}

	categories, err := s.categories.ListBySlugs(ctx, siteID, slugs)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		members, err := s.products.ListByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		cards := make([]catalogpkg.ProductCardData, 0, len(members))
		for _, member := range members {
			cards = append(cards, member.Card())
		}
		grouped[category.Slug] = cards
	}

	return grouped, nil
}

func (s *service) ProductLinks(ctx context.Context, siteID uuid.UUID) ([]catalogpkg.ProductLink, error) {
	records, err := s.products.ListPublished(ctx, siteID)
	if err != nil {
		return nil, err
	}

	links := make([]catalogpkg.ProductLink, 0, len(records))
	for _, record := range records {
		links = append(links, catalogpkg.ProductLink{
			Slug:  record.Slug,
			Title: record.Title,
		})
	}
	return links, nil
}

func (s *service) CategoryLinks(ctx context.Context, siteID uuid.UUID) ([]catalogpkg.CategoryLink, error) {
	records, err := s.categories.List(ctx, siteID)
	if err != nil {
		return nil, err
	}

	links := make([]catalogpkg.CategoryLink, 0, len(records))
	for _, record := range records {
		links = append(links, catalogpkg.CategoryLink{
			Slug: record.Slug,
			Name: record.Name,
		})
	}
	return links, nil
}

func (s *service) GetProductBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*catalogpkg.Product, error) {
	return s.products.GetBySlug(ctx, siteID, slug)
}

func (s *service) GetCategoryBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*catalogpkg.Category, error) {
	return s.categories.GetBySlug(ctx, siteID, slug)
}
