package apiclient

import (
	"context"
	"net/http"

	"emerald-console/internal/core/domain"
)

// ListSellers calls GET /sellers.
func (c *Client) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	var sellers []domain.Seller
	err := c.do(ctx, operation{
		name:    "list_sellers",
		failure: "Failed to fetch sellers",
		method:  http.MethodGet,
		path:    "/sellers",
	}, &sellers)
	return sellers, err
}

// GetSeller calls GET /sellers/{id}.
func (c *Client) GetSeller(ctx context.Context, sellerID int64) (domain.Seller, error) {
	var seller domain.Seller
	err := c.do(ctx, operation{
		name:    "get_seller",
		failure: "Failed to fetch seller details",
		method:  http.MethodGet,
		path:    idPath("/sellers/%d", sellerID),
	}, &seller)
	return seller, err
}

// CreateSeller calls POST /sellers.
func (c *Client) CreateSeller(ctx context.Context, seller domain.NewSeller) (domain.Seller, error) {
	var created domain.Seller
	err := c.do(ctx, operation{
		name:    "create_seller",
		failure: "Failed to create seller",
		method:  http.MethodPost,
		path:    "/sellers",
		body:    seller,
	}, &created)
	return created, err
}

// TopUpSeller calls POST /sellers/{id}/top-up.
func (c *Client) TopUpSeller(ctx context.Context, sellerID int64, topUp domain.TopUp) (domain.Seller, error) {
	var updated domain.Seller
	err := c.do(ctx, operation{
		name:    "top_up_seller",
		failure: "Failed to top up seller",
		method:  http.MethodPost,
		path:    idPath("/sellers/%d/top-up", sellerID),
		body:    topUp,
	}, &updated)
	return updated, err
}
