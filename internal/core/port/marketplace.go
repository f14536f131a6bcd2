package port

import (
	"context"
	"errors"

	"emerald-console/internal/core/domain"
)

// ErrRequestFailed matches every RequestFailedError.
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError is the single failure kind of the marketplace API.
// Message names the operation and is safe to show to users; Err keeps the
// cause for logs only.
type RequestFailedError struct {
	Message string
	Err     error
}

func (e *RequestFailedError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *RequestFailedError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRequestFailed) hold.
func (e *RequestFailedError) Is(target error) bool { return target == ErrRequestFailed }

// UserMessage returns the message to display for err. Request failures
// expose their fixed message; anything else falls back to fallback.
func UserMessage(err error, fallback string) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Message
	}
	return fallback
}

// Marketplace is the remote seller/product/campaign API. It is an outbound
// port; every method performs exactly one request and returns a
// *RequestFailedError on any failure. Mock implementations are kept in the
// mocks package.
type Marketplace interface {
	// ListSellers returns every seller.
	ListSellers(ctx context.Context) ([]domain.Seller, error)
	// GetSeller returns one seller, used to refresh the balance.
	GetSeller(ctx context.Context, sellerID int64) (domain.Seller, error)
	// CreateSeller creates a seller with an initial balance.
	CreateSeller(ctx context.Context, seller domain.NewSeller) (domain.Seller, error)
	// TopUpSeller adds to a seller's balance and returns the updated seller.
	TopUpSeller(ctx context.Context, sellerID int64, topUp domain.TopUp) (domain.Seller, error)

	// ListProducts returns the products of a seller.
	ListProducts(ctx context.Context, sellerID int64) ([]domain.Product, error)
	// CreateProduct creates a product owned by sellerID.
	CreateProduct(ctx context.Context, sellerID int64, product domain.NewProduct) (domain.Product, error)

	// ListCampaigns returns the campaigns of a product.
	ListCampaigns(ctx context.Context, productID int64) ([]domain.Campaign, error)
	// CreateCampaign creates a campaign for productID.
	CreateCampaign(ctx context.Context, productID int64, fields domain.CampaignFields) (domain.Campaign, error)
	// UpdateCampaign replaces every field of a campaign.
	UpdateCampaign(ctx context.Context, campaignID int64, fields domain.CampaignFields) (domain.Campaign, error)
	// DeleteCampaign removes a campaign.
	DeleteCampaign(ctx context.Context, campaignID int64) error

	// ListTowns returns the town dictionary.
	ListTowns(ctx context.Context) ([]domain.Town, error)
	// SearchKeywords returns dictionary keywords matching query. An empty
	// query lists keywords without a filter.
	SearchKeywords(ctx context.Context, query string) ([]domain.Keyword, error)
}
