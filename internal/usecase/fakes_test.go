package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shopfront/config"
	"shopfront/internal/domain"
	memcache "shopfront/internal/infrastructure/cache"
	"shopfront/pkg/cache"
)

var testProducts = []domain.Product{
	{ID: 1, Title: "Fjallraven Backpack", Price: 109.95, Image: "img/1"},
	{ID: 2, Title: "Men's Shirt", Price: 10, Image: "img/2"},
	{ID: 3, Title: "Gold Ring", Price: 5, Image: "img/3"},
}

type fakeCatalog struct {
	mu        sync.Mutex
	products  []domain.Product
	err       error
	listCalls atomic.Int32
	getCalls  atomic.Int32
	delay     time.Duration
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	f.listCalls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	f.getCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeCatalog) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func testConfig() *config.Config {
	return &config.Config{
		CacheProductTTL: time.Minute,
		CacheImageTTL:   time.Minute,
		SessionTTL:      time.Minute,
		MaxCartQuantity: 1000,
	}
}

func testCache(t *testing.T) cache.CacheService {
	t.Helper()
	return memcache.NewMemoryCacheWithEviction(time.Minute, time.Minute, CloseResource)
}
