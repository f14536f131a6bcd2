package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
	"emerald-console/internal/debounce"
)

const msgTopUpSeller = "Failed to top up seller"

// ShellOptions configures a Shell. Every field is optional.
type ShellOptions struct {
	Logger *slog.Logger
	// Activity receives an entry per successful mutation.
	Activity port.ActivityRepository
	// KeywordDelay defaults to DefaultKeywordDelay.
	KeywordDelay time.Duration
	// Clock drives keyword debouncing; tests pass a debounce.ManualClock.
	Clock debounce.Clock
}

// ShellView is a snapshot of the whole console for rendering. Exactly one
// of Sellers, Products and Campaigns is set, matching Nav.
type ShellView struct {
	Nav        domain.Navigation
	Sellers    *SellerPickerView
	Products   *ProductPickerView
	Campaigns  *CampaignManagerView
	TopUpError string
	TopUpDraft string
}

// Shell owns the navigation state of one browser session and the component
// that is currently shown. Components report to it through Emit.
type Shell struct {
	ctx          context.Context
	api          port.Marketplace
	logger       *slog.Logger
	activity     port.ActivityRepository
	keywordDelay time.Duration
	clock        debounce.Clock

	mu         sync.Mutex
	nav        domain.Navigation
	sellers    *SellerPicker
	products   *ProductPicker
	campaigns  *CampaignManager
	refreshSeq uint64
	topUpErr   string
	topUpDraft string
}

// NewShell returns a shell browsing sellers. ctx bounds background work
// such as keyword searches and is usually the session's lifetime.
func NewShell(ctx context.Context, api port.Marketplace, opts ShellOptions) *Shell {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.KeywordDelay <= 0 {
		opts.KeywordDelay = DefaultKeywordDelay
	}
	s := &Shell{
		ctx:          ctx,
		api:          api,
		logger:       opts.Logger,
		activity:     opts.Activity,
		keywordDelay: opts.KeywordDelay,
		clock:        opts.Clock,
		nav:          domain.NavBrowsing{},
	}
	s.sellers = NewSellerPicker(api, s, s.logger)
	return s
}

// Navigation returns the current drill-down position.
func (s *Shell) Navigation() domain.Navigation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// Sellers returns the seller picker, nil unless browsing sellers.
func (s *Shell) Sellers() *SellerPicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sellers
}

// Products returns the product picker, nil unless a seller without a
// product is selected.
func (s *Shell) Products() *ProductPicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

// Campaigns returns the campaign manager, nil unless a product is selected.
func (s *Shell) Campaigns() *CampaignManager {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.campaigns
}

// Emit implements port.EventSink for the shell's components.
func (s *Shell) Emit(ctx context.Context, event domain.Event) {
	switch e := event.(type) {
	case domain.SellerSelected:
		s.selectSeller(e.Seller)
	case domain.ProductSelected:
		if err := s.selectProduct(e.SellerID, e.Product); err != nil {
			s.logger.Warn("product selection ignored", slog.Int64("seller_id", e.SellerID),
				slog.Int64("product_id", e.Product.ID), slog.Any("error", err))
		}
	case domain.SellerCreated:
		s.record(ctx, domain.Activity{
			Kind:     domain.ActivitySellerCreated,
			SellerID: e.Seller.ID,
			Summary:  fmt.Sprintf("Created seller %q with balance %s", e.Seller.Name, e.Seller.EmeraldBalance.Display()),
		})
	case domain.ProductCreated:
		s.record(ctx, domain.Activity{
			Kind:      domain.ActivityProductCreated,
			SellerID:  e.SellerID,
			ProductID: e.Product.ID,
			Summary:   fmt.Sprintf("Created product %q", e.Product.Name),
		})
	case domain.CampaignsChanged:
		seller, _ := domain.SelectedSeller(s.Navigation())
		s.record(ctx, domain.Activity{
			Kind:       campaignActivity(e.Change),
			SellerID:   seller.ID,
			ProductID:  e.ProductID,
			CampaignID: e.CampaignID,
			Summary:    fmt.Sprintf("Campaign %q %s", e.Name, e.Change),
		})
		s.RefreshSeller(ctx)
	default:
		s.logger.Debug("unhandled event", slog.String("event", event.EventName()))
	}
}

func (s *Shell) selectSeller(seller domain.Seller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCampaigns()
	s.nav = domain.SelectSeller(s.nav, seller)
	s.sellers = nil
	s.products = NewProductPicker(s.api, s, s.logger, seller.ID)
	s.topUpErr, s.topUpDraft = "", ""
}

func (s *Shell) selectProduct(sellerID int64, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seller, ok := domain.SelectedSeller(s.nav)
	if !ok {
		return domain.ErrNoSellerSelected
	}
	if seller.ID != sellerID {
		return fmt.Errorf("product of seller %d while seller %d is selected: %w", sellerID, seller.ID, ErrNotFound)
	}
	nav, err := domain.SelectProduct(s.nav, product)
	if err != nil {
		return err
	}
	s.closeCampaigns()
	s.nav = nav
	s.products = nil
	opts := []debounce.Option{debounce.WithClock(s.clock)}
	search := NewKeywordSearch(s.ctx, s.api, s.logger, s.keywordDelay, opts...)
	s.campaigns = NewCampaignManager(s.api, s, s.logger, product.ID, search)
	return nil
}

// BackToSellers clears both selections and shows a freshly loaded seller
// list.
func (s *Shell) BackToSellers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCampaigns()
	s.nav = domain.BackToSellers(s.nav)
	s.products = nil
	s.sellers = NewSellerPicker(s.api, s, s.logger)
	s.topUpErr, s.topUpDraft = "", ""
}

// BackToProducts clears the selected product and shows the seller's
// products again.
func (s *Shell) BackToProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nav.(domain.NavProduct); !ok {
		return
	}
	s.closeCampaigns()
	s.nav = domain.BackToProducts(s.nav)
	seller, _ := domain.SelectedSeller(s.nav)
	s.products = NewProductPicker(s.api, s, s.logger, seller.ID)
}

// closeCampaigns must be called with s.mu held.
func (s *Shell) closeCampaigns() {
	if s.campaigns != nil {
		s.campaigns.Close()
		s.campaigns = nil
	}
}

// RefreshSeller re-fetches the selected seller so its balance reflects
// server-side changes. Failures are logged and the previous record is kept.
func (s *Shell) RefreshSeller(ctx context.Context) {
	s.mu.Lock()
	seller, ok := domain.SelectedSeller(s.nav)
	s.refreshSeq++
	seq := s.refreshSeq
	s.mu.Unlock()
	if !ok {
		return
	}

	fresh, err := s.api.GetSeller(ctx, seller.ID)
	if err != nil {
		s.logger.Warn("refresh seller failed", slog.Int64("seller_id", seller.ID), slog.Any("error", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.refreshSeq {
		return
	}
	s.nav = domain.ReplaceSeller(s.nav, fresh)
}

// TopUp adds amount to the selected seller's balance.
func (s *Shell) TopUp(ctx context.Context, amount string) (domain.Seller, error) {
	s.mu.Lock()
	seller, ok := domain.SelectedSeller(s.nav)
	s.topUpErr, s.topUpDraft = "", amount
	s.mu.Unlock()
	if !ok {
		return domain.Seller{}, domain.ErrNoSellerSelected
	}

	req, err := parseTopUp(amount)
	if err != nil {
		s.setTopUpError(formMessage(err, msgTopUpSeller))
		return domain.Seller{}, err
	}

	updated, err := s.api.TopUpSeller(ctx, seller.ID, req)
	if err != nil {
		s.logger.Warn("top up failed", slog.Int64("seller_id", seller.ID), slog.Any("error", err))
		s.setTopUpError(port.UserMessage(err, msgTopUpSeller))
		return domain.Seller{}, err
	}

	s.mu.Lock()
	// A newer refresh must not overwrite the top-up result.
	s.refreshSeq++
	s.nav = domain.ReplaceSeller(s.nav, updated)
	s.topUpDraft = ""
	s.mu.Unlock()

	s.record(ctx, domain.Activity{
		Kind:     domain.ActivitySellerTopUp,
		SellerID: updated.ID,
		Summary:  fmt.Sprintf("Topped up %q by %s", updated.Name, req.Amount.Fixed()),
	})
	return updated, nil
}

func parseTopUp(amount string) (domain.TopUp, error) {
	a, err := domain.NewAmount(amount)
	if err != nil {
		return domain.TopUp{}, &domain.ValidationError{Field: "amount", Message: "amount must be a number"}
	}
	req := domain.TopUp{Amount: a}
	return req, req.Validate()
}

func (s *Shell) setTopUpError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topUpErr = msg
}

// EnsureLoaded starts the initial fetch of the component being shown.
func (s *Shell) EnsureLoaded(ctx context.Context) {
	s.mu.Lock()
	sellers, products, campaigns := s.sellers, s.products, s.campaigns
	s.mu.Unlock()

	switch {
	case sellers != nil:
		sellers.EnsureLoaded(ctx)
	case products != nil:
		products.EnsureLoaded(ctx)
	case campaigns != nil:
		campaigns.EnsureLoaded(ctx)
	}
}

// Snapshot returns the current state for rendering.
func (s *Shell) Snapshot() ShellView {
	s.mu.Lock()
	v := ShellView{Nav: s.nav, TopUpError: s.topUpErr, TopUpDraft: s.topUpDraft}
	sellers, products, campaigns := s.sellers, s.products, s.campaigns
	s.mu.Unlock()

	switch {
	case sellers != nil:
		sv := sellers.Snapshot()
		v.Sellers = &sv
	case products != nil:
		pv := products.Snapshot()
		v.Products = &pv
	case campaigns != nil:
		cv := campaigns.Snapshot()
		v.Campaigns = &cv
	}
	return v
}

// Close releases background work. The session store calls it on expiry.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCampaigns()
}

func (s *Shell) record(ctx context.Context, a domain.Activity) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, a); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("record activity failed", slog.String("kind", string(a.Kind)), slog.Any("error", err))
	}
}

func campaignActivity(c domain.CampaignChange) domain.ActivityKind {
	switch c {
	case domain.CampaignUpdated:
		return domain.ActivityCampaignUpdated
	case domain.CampaignDeleted:
		return domain.ActivityCampaignDeleted
	default:
		return domain.ActivityCampaignCreated
	}
}
