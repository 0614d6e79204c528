package articles

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	articlespkg "github.com/goliatone/go-affiliate/articles"
)

// BunArticleRepository provides article storage backed by bun.
type BunArticleRepository struct {
	repo repository.Repository[*articlespkg.Article]
}

func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := articlespkg.NewArticleRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunArticleRepository{repo: base}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *articlespkg.Article) (*articlespkg.Article, error) {
	return r.repo.Create(ctx, record)
}

// GetBySlug scopes the lookup to one site; article slugs are only unique per
// tenant.
func (r *BunArticleRepository) GetBySlug(ctx context.Context, siteID uuid.UUID, slug string) (*articlespkg.Article, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.deleted_at IS NULL")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, articlespkg.ErrArticleNotFound
		}
		return nil, fmt.Errorf("articles repository error: %w", err)
	}
	if len(records) == 0 {
		return nil, articlespkg.ErrArticleNotFound
	}
	return records[0], nil
}

// ListPublished returns a site's published articles, newest first.
func (r *BunArticleRepository) ListPublished(ctx context.Context, siteID uuid.UUID) ([]*articlespkg.Article, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.site_id = ?", siteID).
				Where("?TableAlias.status = ?", "published").
				Where("?TableAlias.deleted_at IS NULL").
				OrderExpr("?TableAlias.published_at DESC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("articles repository error: %w", err)
	}
	return records, nil
}
