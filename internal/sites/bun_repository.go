package sites

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sitespkg "github.com/goliatone/go-affiliate/sites"
)

// BunSiteRepository provides site lookups backed by bun.
type BunSiteRepository struct {
	repo repository.Repository[*sitespkg.Site]
}

func NewBunSiteRepository(db *bun.DB) *BunSiteRepository {
	return NewBunSiteRepositoryWithCache(db, nil, nil)
}

func NewBunSiteRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunSiteRepository {
	base := sitespkg.NewSiteRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunSiteRepository{repo: wrapped}
}

func (r *BunSiteRepository) Create(ctx context.Context, record *sitespkg.Site) (*sitespkg.Site, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunSiteRepository) GetBySlug(ctx context.Context, slug string) (*sitespkg.Site, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug).
				Where("?TableAlias.is_active = ?", true).
				Where("?TableAlias.deleted_at IS NULL")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, sitespkg.ErrSiteNotFound)
	}
	if len(records) == 0 {
		return nil, sitespkg.ErrSiteNotFound
	}
	return records[0], nil
}

func (r *BunSiteRepository) GetByDomain(ctx context.Context, domain string) (*sitespkg.Site, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.domain = ?", domain).
				Where("?TableAlias.is_active = ?", true).
				Where("?TableAlias.deleted_at IS NULL")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, sitespkg.ErrSiteNotFound)
	}
	if len(records) == 0 {
		return nil, sitespkg.ErrSiteNotFound
	}
	return records[0], nil
}

func (r *BunSiteRepository) GetByID(ctx context.Context, id uuid.UUID) (*sitespkg.Site, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, sitespkg.ErrSiteNotFound)
	}
	return record, nil
}

// BunNicheRepository provides niche lookups backed by bun.
type BunNicheRepository struct {
	repo repository.Repository[*sitespkg.Niche]
}

func NewBunNicheRepository(db *bun.DB) *BunNicheRepository {
	return NewBunNicheRepositoryWithCache(db, nil, nil)
}

func NewBunNicheRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunNicheRepository {
	base := sitespkg.NewNicheRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunNicheRepository{repo: wrapped}
}

func (r *BunNicheRepository) Create(ctx context.Context, record *sitespkg.Niche) (*sitespkg.Niche, error) {
	return r.repo.Create(ctx, record)
}

func (r *BunNicheRepository) GetByID(ctx context.Context, id uuid.UUID) (*sitespkg.Niche, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, sitespkg.ErrNicheNotFound)
	}
	return record, nil
}

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return notFound
	}
	return fmt.Errorf("sites repository error: %w", err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
