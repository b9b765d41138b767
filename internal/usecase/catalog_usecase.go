package usecase

import (
	"context"
	"fmt"
	"time"

	"shopfront/config"
	"shopfront/internal/domain"
	"shopfront/pkg/cache"
	"shopfront/pkg/logger"

	"golang.org/x/sync/singleflight"
)

const productListKey = "catalog:products"

// CatalogUsecase serves products from the catalog API. Successful answers
// are cached for the configured TTL; concurrent identical fetches share one
// upstream call. Returned slices are shared and must not be modified.
type CatalogUsecase struct {
	catalog domain.ProductCatalog
	cache   cache.CacheService
	ttl     time.Duration
	group   singleflight.Group
}

func NewCatalogUsecase(catalog domain.ProductCatalog, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		catalog: catalog,
		cache:   cache,
		ttl:     cfg.CacheProductTTL,
	}
}

// ListProducts returns the catalog filtered by search.
func (u *CatalogUsecase) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	products, err := u.allProducts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterProducts(products, search), nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if u.ttl > 0 {
		if val, found := u.cache.Get(productListKey); found {
			for _, p := range val.([]domain.Product) {
				if p.ID == id {
					return &p, nil
				}
			}
		}
	}

	key := fmt.Sprintf("catalog:product:%d", id)
	if u.ttl > 0 {
		if val, found := u.cache.Get(key); found {
			return val.(*domain.Product), nil
		}
	}

	v, err, _ := u.group.Do(key, func() (interface{}, error) {
		return u.catalog.GetProduct(context.WithoutCancel(ctx), id)
	})
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Int("product_id", id).Msg("Catalog: product fetch failed")
		return nil, err
	}

	product := v.(*domain.Product)
	if u.ttl > 0 {
		u.cache.Set(key, product, u.ttl)
	}
	return product, nil
}

func (u *CatalogUsecase) allProducts(ctx context.Context) ([]domain.Product, error) {
	if u.ttl > 0 {
		if val, found := u.cache.Get(productListKey); found {
			return val.([]domain.Product), nil
		}
	}

	// Detached from the caller so one cancelled request does not fail the
	// others waiting on the same fetch; the HTTP client timeout still applies.
	v, err, shared := u.group.Do(productListKey, func() (interface{}, error) {
		return u.catalog.ListProducts(context.WithoutCancel(ctx))
	})
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Msg("Catalog: product list fetch failed")
		return nil, err
	}

	products := v.([]domain.Product)
	logger.WithContext(ctx).Debug().Int("count", len(products)).Bool("shared", shared).Msg("Catalog: fetched products")
	if u.ttl > 0 {
		u.cache.Set(productListKey, products, u.ttl)
	}
	return products, nil
}
