package domain

import "time"

// Event is a notification a console component sends to the shell.
type Event interface {
	EventName() string
}

// SellerSelected is emitted when a seller is picked from the list.
type SellerSelected struct {
	Seller Seller
}

// ProductSelected is emitted when a product of SellerID is picked from the
// list.
type ProductSelected struct {
	SellerID int64
	Product  Product
}

// SellerCreated is emitted after a seller was created.
type SellerCreated struct {
	Seller Seller
}

// ProductCreated is emitted after a product was created for SellerID.
type ProductCreated struct {
	SellerID int64
	Product  Product
}

// CampaignChange says what happened to a campaign.
type CampaignChange string

const (
	CampaignCreated CampaignChange = "created"
	CampaignUpdated CampaignChange = "updated"
	CampaignDeleted CampaignChange = "deleted"
)

// CampaignsChanged is emitted after any campaign mutation. The seller's
// balance may have moved as a side effect.
type CampaignsChanged struct {
	ProductID  int64
	CampaignID int64
	Name       string
	Change     CampaignChange
}

func (SellerSelected) EventName() string   { return "seller_selected" }
func (ProductSelected) EventName() string  { return "product_selected" }
func (SellerCreated) EventName() string    { return "seller_created" }
func (ProductCreated) EventName() string   { return "product_created" }
func (CampaignsChanged) EventName() string { return "campaigns_changed" }

// ActivityKind classifies an activity log entry.
type ActivityKind string

const (
	ActivitySellerCreated   ActivityKind = "seller_created"
	ActivitySellerTopUp     ActivityKind = "seller_top_up"
	ActivityProductCreated  ActivityKind = "product_created"
	ActivityCampaignCreated ActivityKind = "campaign_created"
	ActivityCampaignUpdated ActivityKind = "campaign_updated"
	ActivityCampaignDeleted ActivityKind = "campaign_deleted"
)

// Activity is one mutation performed through the console. Identifiers that
// do not apply to the kind are zero.
type Activity struct {
	ID         int64
	Kind       ActivityKind
	SellerID   int64
	ProductID  int64
	CampaignID int64
	Summary    string
	CreatedAt  time.Time
}
