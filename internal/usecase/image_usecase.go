package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"shopfront/config"
	"shopfront/internal/domain"
	"shopfront/pkg/cache"
	"shopfront/pkg/utils"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultThumbnailWidth = 300
	MaxThumbnailWidth     = 1200
)

type Thumbnail struct {
	Data        []byte
	ContentType string
}

// ImageUsecase serves resized product images for listing pages.
type ImageUsecase struct {
	products productLookup
	images   domain.ImageSource
	cache    cache.CacheService
	ttl      time.Duration
	group    singleflight.Group
}

func NewImageUsecase(products productLookup, images domain.ImageSource, cache cache.CacheService, cfg *config.Config) *ImageUsecase {
	return &ImageUsecase{
		products: products,
		images:   images,
		cache:    cache,
		ttl:      cfg.CacheImageTTL,
	}
}

// Thumbnail returns the product image at most width pixels wide. Width is
// clamped to (0, MaxThumbnailWidth]; zero or less selects the default.
func (u *ImageUsecase) Thumbnail(ctx context.Context, productID, width int) (*Thumbnail, error) {
	switch {
	case width <= 0:
		width = DefaultThumbnailWidth
	case width > MaxThumbnailWidth:
		width = MaxThumbnailWidth
	}

	key := fmt.Sprintf("thumb:%d:%d", productID, width)
	if u.ttl > 0 {
		if val, found := u.cache.Get(key); found {
			return val.(*Thumbnail), nil
		}
	}

	v, err, _ := u.group.Do(key, func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)
		product, err := u.products.GetProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		raw, err := u.images.FetchImage(ctx, product.Image)
		if err != nil {
			return nil, fmt.Errorf("fetch image for product %d: %w", productID, err)
		}
		data, contentType, err := utils.ResizeImage(bytes.NewReader(raw), width)
		if err != nil {
			return nil, fmt.Errorf("resize image for product %d: %w", productID, err)
		}
		return &Thumbnail{Data: data, ContentType: contentType}, nil
	})
	if err != nil {
		return nil, err
	}

	thumb := v.(*Thumbnail)
	if u.ttl > 0 {
		u.cache.Set(key, thumb, u.ttl)
	}
	return thumb, nil
}
