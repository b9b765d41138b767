package app

import (
	"fmt"
	"net/http"
	"time"

	"shopfront/config"
	v1 "shopfront/internal/delivery/http/v1"
	"shopfront/internal/delivery/web"
	"shopfront/internal/infrastructure/cache"
	"shopfront/internal/infrastructure/fakestore"
	"shopfront/internal/usecase"
)

// NewStorefront wires the catalog client, caches and handlers.
func NewStorefront(cfg *config.Config) (*App, error) {
	client := fakestore.NewClient(cfg.CatalogBaseURL, cfg.UpstreamTimeout)

	// Items carry their own TTL; the default only covers callers that pass 0.
	memCache := cache.NewMemoryCache(cfg.SessionTTL, 10*time.Minute)

	catalogUC := usecase.NewCatalogUsecase(client, memCache, cfg)
	cartUC := usecase.NewCartUsecase(catalogUC, memCache, cfg)
	imageUC := usecase.NewImageUsecase(catalogUC, client, memCache, cfg)
	searchUC := usecase.NewSearchUsecase(catalogUC)
	sitemapUC := usecase.NewSitemapUsecase(catalogUC, memCache, cfg)

	mux := http.NewServeMux()

	pages, err := web.NewStorefrontHandler(catalogUC, cartUC, imageUC)
	if err != nil {
		return nil, fmt.Errorf("failed to load storefront templates: %w", err)
	}
	pages.Register(mux)

	catalogHandler := v1.NewCatalogHandler(catalogUC)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/search", v1.NewSearchHandler(searchUC).Search)
	mux.Handle("GET /sitemap.xml", v1.NewSitemapHandler(sitemapUC))

	cartHandler := v1.NewCartHandler(cartUC)
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart", cartHandler.AddToCart)
	mux.HandleFunc("PUT /api/v1/cart", cartHandler.UpdateCart)
	mux.HandleFunc("DELETE /api/v1/cart/{productId}", cartHandler.RemoveFromCart)

	return newApp(config.ServiceStorefront, cfg.Port, cfg, mux)
}
