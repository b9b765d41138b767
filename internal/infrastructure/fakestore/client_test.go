package fakestore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopfront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
 {"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://fakestoreapi.com/img/1.jpg","rating":{"rate":3.9,"count":120}},
 {"id":2,"title":"Mens Casual T-Shirt","price":22.3,"description":"Slim-fitting","category":"men's clothing","image":"https://fakestoreapi.com/img/2.jpg","rating":{"rate":4.1,"count":259}}
]`

func newUpstream(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestListProducts(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Write([]byte(productsJSON))
	})

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, domain.Product{
		ID:          1,
		Title:       "Fjallraven Backpack",
		Price:       109.95,
		Description: "Your perfect pack",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/1.jpg",
		Rating:      domain.Rating{Rate: 3.9, Count: 120},
	}, products[0])
}

func TestListProductsServerError(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListProducts(context.Background())
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
}

func TestListProductsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(srv.URL, time.Second)

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	var upstream *domain.UpstreamError
	assert.False(t, errors.As(err, &upstream))
}

func TestListProductsTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.ListProducts(context.Background())
	assert.Error(t, err, "a hung upstream resolves to an error")
}

func TestGetProduct(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/2":
			w.Write([]byte(`{"id":2,"title":"Mens Casual T-Shirt","price":22.3}`))
		case "/products/404":
			// the real API answers unknown ids with an empty 200
		case "/products/5":
			w.Write([]byte(`null`))
		default:
			http.NotFound(w, r)
		}
	})

	p, err := c.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, 22.3, p.Price)

	_, err = c.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = c.GetProduct(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductMalformed(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":`))
	})
	_, err := c.GetProduct(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFetchImage(t *testing.T) {
	c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "image/*", r.Header.Get("Accept"))
		w.Write([]byte("img-bytes"))
	})

	data, err := c.FetchImage(context.Background(), c.baseURL+"/img/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("img-bytes"), data)
}
