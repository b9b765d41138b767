package usecase

import (
	"context"
	"fmt"

	"shopfront/config"
	"shopfront/internal/domain"
	"shopfront/internal/session"
	"shopfront/pkg/cache"
	"shopfront/pkg/logger"
)

type productLookup interface {
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}

// CartUsecase applies cart actions to the cart of a session.
type CartUsecase struct {
	products productLookup
	carts    *session.Store[*domain.Cart]
}

func NewCartUsecase(products productLookup, c cache.CacheService, cfg *config.Config) *CartUsecase {
	maxQuantity := cfg.MaxCartQuantity
	return &CartUsecase{
		products: products,
		carts: session.NewStore(c, "cart", cfg.SessionTTL, func() *domain.Cart {
			return domain.NewCart(maxQuantity)
		}),
	}
}

func (u *CartUsecase) Cart(sessionID string) *domain.Cart {
	return u.carts.Get(sessionID)
}

// AddToCart resolves the product through the catalog and adds one unit.
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	product, err := u.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("add product %d: %w", productID, err)
	}

	cart := u.carts.Get(sessionID)
	cart.Add(*product)
	logger.WithContext(ctx).Debug().
		Int("product_id", productID).
		Int("quantity", cart.Quantity(productID)).
		Msg("Cart: item added")
	return cart, nil
}

// UpdateQuantity sets a line's quantity; values below 1 leave the cart unchanged.
func (u *CartUsecase) UpdateQuantity(sessionID string, productID, quantity int) *domain.Cart {
	cart := u.carts.Get(sessionID)
	cart.UpdateQuantity(productID, quantity)
	return cart
}

func (u *CartUsecase) RemoveFromCart(sessionID string, productID int) *domain.Cart {
	cart := u.carts.Get(sessionID)
	cart.Remove(productID)
	return cart
}
