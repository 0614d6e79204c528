package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	catalogpkg "github.com/goliatone/go-affiliate/catalog"
)

// BunProductRepository wraps the generated product repository with catalog
// error semantics.
type BunProductRepository struct {
	repo repository.Repository[*catalogpkg.Product]
}

func NewBunProductRepository(db *bun.DB) *BunProductRepository {
	return NewBunProductRepositoryWithCache(db, nil, nil)
}

func NewBunProductRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunProductRepository {
	base := catalogpkg.NewProductRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunProductRepository{repo: wrapped}
}

func (r *BunProductRepository) Create(ctx context.Context, record *catalogpkg.Product) (*catalogpkg.Product, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalogpkg.Product, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "product", id.String())
	}
	return record, nil
}

// GetBySlug scopes the lookup to one site; slugs are only unique per tenant.
func (r *BunProductRepository) GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*catalogpkg.Product, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.deleted_at IS NULL")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "product", slug)
	}
	if len(records) == 0 {
		return nil, &catalogpkg.NotFoundError{Resource: "product", Key: slug}
	}
	return records[0], nil
}

// ListBySlugs returns the published products matching any of the supplied
// slugs in one query. Unknown slugs are simply not present in the result.
func (r *BunProductRepository) ListBySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) ([]*catalogpkg.Product, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.slug IN (?)", bun.In(slugs)).
				Where("?TableAlias.status = ?", "published").
				Where("?TableAlias.deleted_at IS NULL")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "product", fmt.Sprintf("%d slugs", len(slugs)))
	}
	return records, nil
}

// ListByCategory returns the category's published members in catalog order.
func (r *BunProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*catalogpkg.Product, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Join("JOIN product_categories AS pc ON pc.product_id = ?TableAlias.id").
				Where("pc.category_id = ?", categoryID).
				Where("?TableAlias.status = ?", "published").
				Where("?TableAlias.deleted_at IS NULL").
				OrderExpr("pc.position ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "category products", categoryID.String())
	}
	return records, nil
}

// ListPublished returns every published product for a site ordered by title.
func (r *BunProductRepository) ListPublished(ctx context.Context, siteID uuid.UUID) ([]*catalogpkg.Product, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.status = ?", "published").
				Where("?TableAlias.deleted_at IS NULL").
				OrderExpr("?TableAlias.title ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "products", siteID.String())
	}
	return records, nil
}

// BunCategoryRepository wraps the category repository with catalog error
// semantics.
type BunCategoryRepository struct {
	repo repository.Repository[*catalogpkg.Category]
}

func NewBunCategoryRepository(db *bun.DB) *BunCategoryRepository {
	return NewBunCategoryRepositoryWithCache(db, nil, nil)
}

func NewBunCategoryRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunCategoryRepository {
	base := catalogpkg.NewCategoryRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunCategoryRepository{repo: wrapped}
}

func (r *BunCategoryRepository) Create(ctx context.Context, record *catalogpkg.Category) (*catalogpkg.Category, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunCategoryRepository) GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*catalogpkg.Category, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.deleted_at IS NULL")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "category", slug)
	}
	if len(records) == 0 {
		return nil, &catalogpkg.NotFoundError{Resource: "category", Key: slug}
	}
	return records[0], nil
}

func (r *BunCategoryRepository) ListBySlugs(ctx context.Context, siteID uuid.UUID, slugs []string) ([]*catalogpkg.Category, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.slug IN (?)", bun.In(slugs)).
				Where("?TableAlias.deleted_at IS NULL")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "category", fmt.Sprintf("%d slugs", len(slugs)))
	}
	return records, nil
}

func (r *BunCategoryRepository) List(ctx context.Context, siteID uuid.UUID) ([]*catalogpkg.Category, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.deleted_at IS NULL").
				OrderExpr("?TableAlias.name ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "categories", siteID.String())
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &catalogpkg.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
