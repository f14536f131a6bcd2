package apiclient

import (
	"context"
	"net/http"

	"emerald-console/internal/core/domain"
)

// ListCampaigns calls GET /campaigns/products/{productId}/campaigns.
func (c *Client) ListCampaigns(ctx context.Context, productID int64) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := c.do(ctx, operation{
		name:    "list_campaigns",
		failure: "Failed to fetch campaigns",
		method:  http.MethodGet,
		path:    idPath("/campaigns/products/%d/campaigns", productID),
	}, &campaigns)
	return campaigns, err
}

// CreateCampaign calls POST /campaigns/products/{productId}/campaigns.
func (c *Client) CreateCampaign(ctx context.Context, productID int64, fields domain.CampaignFields) (domain.Campaign, error) {
	var created domain.Campaign
	err := c.do(ctx, operation{
		name:    "create_campaign",
		failure: "Failed to create campaign",
		method:  http.MethodPost,
		path:    idPath("/campaigns/products/%d/campaigns", productID),
		body:    fields,
	}, &created)
	return created, err
}

// UpdateCampaign calls PUT /campaigns/{campaignId}.
func (c *Client) UpdateCampaign(ctx context.Context, campaignID int64, fields domain.CampaignFields) (domain.Campaign, error) {
	var updated domain.Campaign
	err := c.do(ctx, operation{
		name:    "update_campaign",
		failure: "Failed to update campaign",
		method:  http.MethodPut,
		path:    idPath("/campaigns/%d", campaignID),
		body:    fields,
	}, &updated)
	return updated, err
}

// DeleteCampaign calls DELETE /campaigns/{campaignId}. The response body is
// ignored.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID int64) error {
	return c.do(ctx, operation{
		name:    "delete_campaign",
		failure: "Failed to delete campaign",
		method:  http.MethodDelete,
		path:    idPath("/campaigns/%d", campaignID),
	}, nil)
}
