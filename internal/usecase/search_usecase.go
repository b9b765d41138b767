package usecase

import (
	"context"

	"shopfront/internal/domain"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type productLister interface {
	ListProducts(ctx context.Context, search string) ([]domain.Product, error)
}

// SearchUsecase pages through catalog search results.
type SearchUsecase struct {
	products productLister
}

func NewSearchUsecase(products productLister) *SearchUsecase {
	return &SearchUsecase{products: products}
}

// Search returns one page of the products whose title matches query.
// Out of range page and limit values are normalized.
func (u *SearchUsecase) Search(ctx context.Context, query string, page, limit int) ([]domain.Product, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = defaultSearchLimit
	case limit > maxSearchLimit:
		limit = maxSearchLimit
	}

	products, err := u.products.ListProducts(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	items, pagination := domain.Paginate(products, page, limit)
	return items, pagination, nil
}
