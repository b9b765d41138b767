// Package fakestore is a client for the public product catalog API.
package fakestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopfront/internal/domain"

	"github.com/goccy/go-json"
)

const (
	serviceName  = "catalog"
	maxBodyBytes = 8 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListProducts fetches GET {root}/products.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.get(ctx, c.baseURL+"/products", "application/json")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetProduct fetches GET {root}/products/{id}. The API answers unknown ids
// with 200 and an empty body, which maps to domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), "application/json")
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.ErrProductNotFound
	}

	var product *domain.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product %d: %w", id, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// FetchImage downloads a product image.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url, "image/*")
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &domain.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	return body, nil
}
