package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopfront/config"
	"shopfront/pkg/cache"
)

const sitemapKey = "sitemap:items"

type SitemapItem struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float32
}

type SitemapUsecase struct {
	products productLister
	baseURL  string
	cache    cache.CacheService
	ttl      time.Duration
}

func NewSitemapUsecase(products productLister, cache cache.CacheService, cfg *config.Config) *SitemapUsecase {
	return &SitemapUsecase{
		products: products,
		baseURL:  strings.TrimSuffix(cfg.PublicURL, "/"),
		cache:    cache,
		ttl:      cfg.CacheSitemapTTL,
	}
}

// GenerateSitemap lists the home page and every product page.
func (u *SitemapUsecase) GenerateSitemap(ctx context.Context) ([]SitemapItem, error) {
	if u.ttl > 0 {
		if val, found := u.cache.Get(sitemapKey); found {
			return val.([]SitemapItem), nil
		}
	}

	products, err := u.products.ListProducts(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	now := time.Now().Format("2006-01-02")
	items := make([]SitemapItem, 0, len(products)+1)
	items = append(items, SitemapItem{
		Loc:        u.baseURL + "/",
		LastMod:    now,
		ChangeFreq: "daily",
		Priority:   1.0,
	})
	for _, p := range products {
		items = append(items, SitemapItem{
			Loc:        fmt.Sprintf("%s/product/%d", u.baseURL, p.ID),
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   0.9,
		})
	}

	if u.ttl > 0 {
		u.cache.Set(sitemapKey, items, u.ttl)
	}
	return items, nil
}
