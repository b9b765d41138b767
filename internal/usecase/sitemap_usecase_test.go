package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemap(t *testing.T) {
	cfg := testConfig()
	cfg.PublicURL = "https://shop.example/"
	cfg.CacheSitemapTTL = cfg.CacheProductTTL
	catalog := &fakeCatalog{products: testProducts}
	uc := NewSitemapUsecase(NewCatalogUsecase(catalog, testCache(t), cfg), testCache(t), cfg)

	items, err := uc.GenerateSitemap(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "https://shop.example/", items[0].Loc)
	assert.Equal(t, float32(1.0), items[0].Priority)
	assert.Equal(t, "https://shop.example/product/1", items[1].Loc)
	assert.Equal(t, "https://shop.example/product/3", items[3].Loc)

	catalog.setErr(errors.New("down"))
	cached, err := uc.GenerateSitemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, cached)
}

func TestGenerateSitemapUpstreamError(t *testing.T) {
	cfg := testConfig()
	catalog := &fakeCatalog{err: errors.New("down")}
	uc := NewSitemapUsecase(NewCatalogUsecase(catalog, testCache(t), cfg), testCache(t), cfg)

	_, err := uc.GenerateSitemap(context.Background())
	assert.Error(t, err)
}
