package apiclient

import (
	"context"
	"net/http"

	"emerald-console/internal/core/domain"
)

// ListProducts calls GET /products/sellers/{sellerId}/products.
func (c *Client) ListProducts(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, operation{
		name:    "list_products",
		failure: "Failed to fetch products",
		method:  http.MethodGet,
		path:    idPath("/products/sellers/%d/products", sellerID),
	}, &products)
	return products, err
}

// CreateProduct calls POST /products/sellers/{sellerId}/products.
func (c *Client) CreateProduct(ctx context.Context, sellerID int64, product domain.NewProduct) (domain.Product, error) {
	var created domain.Product
	err := c.do(ctx, operation{
		name:    "create_product",
		failure: "Failed to create product",
		method:  http.MethodPost,
		path:    idPath("/products/sellers/%d/products", sellerID),
		body:    product,
	}, &created)
	return created, err
}
