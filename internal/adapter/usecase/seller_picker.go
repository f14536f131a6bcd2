package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

const (
	msgFetchSellers = "Failed to fetch sellers"
	msgCreateSeller = "Failed to create seller"
)

// SellerDraft holds the raw inputs of the seller creation form.
type SellerDraft struct {
	Name           string
	InitialBalance string
}

func (d SellerDraft) parse() (domain.NewSeller, error) {
	if strings.TrimSpace(d.InitialBalance) == "" {
		return domain.NewSeller{}, &domain.ValidationError{Field: "initialEmeraldBalance", Message: "initial balance is required"}
	}
	balance, err := domain.NewAmount(d.InitialBalance)
	if err != nil {
		return domain.NewSeller{}, &domain.ValidationError{Field: "initialEmeraldBalance", Message: "initial balance must be a number"}
	}
	s := domain.NewSeller{Name: strings.TrimSpace(d.Name), InitialEmeraldBalance: balance}
	return s, s.Validate()
}

// SellerPickerView is a snapshot of the seller picker for rendering.
type SellerPickerView struct {
	State     LoadState
	Error     string
	Sellers   []domain.Seller
	FormOpen  bool
	FormError string
	Draft     SellerDraft
}

// SellerPicker lists sellers, creates new ones and reports the selection
// to the shell.
type SellerPicker struct {
	api    port.Marketplace
	sink   port.EventSink
	logger *slog.Logger

	mu       sync.Mutex
	started  bool
	seq      uint64
	state    LoadState
	loadErr  string
	sellers  *Collection[int64, domain.Seller]
	formOpen bool
	formErr  string
	draft    SellerDraft
}

// NewSellerPicker returns a picker in the Loading state. Call Load or
// EnsureLoaded to fetch the list.
func NewSellerPicker(api port.Marketplace, sink port.EventSink, logger *slog.Logger) *SellerPicker {
	return &SellerPicker{
		api:     api,
		sink:    sink,
		logger:  logger,
		sellers: NewCollection(func(s domain.Seller) int64 { return s.ID }),
		draft:   SellerDraft{InitialBalance: "0"},
	}
}

// EnsureLoaded starts the initial fetch once.
func (p *SellerPicker) EnsureLoaded(ctx context.Context) {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		p.Load(ctx)
	}
}

// Load fetches the full seller list. A response to an older Load is
// dropped.
func (p *SellerPicker) Load(ctx context.Context) {
	p.mu.Lock()
	p.started = true
	p.seq++
	seq := p.seq
	p.state, p.loadErr = Loading, ""
	p.mu.Unlock()

	sellers, err := p.api.ListSellers(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		return
	}
	if err != nil {
		p.logger.Warn("list sellers failed", slog.Any("error", err))
		p.state, p.loadErr = LoadFailed, msgFetchSellers
		return
	}
	p.sellers.Reset(sellers)
	p.state = Loaded
}

// ToggleForm opens or closes the creation form.
func (p *SellerPicker) ToggleForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.formOpen = !p.formOpen
	p.formErr = ""
	if !p.formOpen {
		p.draft = SellerDraft{InitialBalance: "0"}
	}
}

// Create validates the draft, creates the seller and appends it to the
// list without refetching. On failure the form stays open with the draft.
func (p *SellerPicker) Create(ctx context.Context, draft SellerDraft) (domain.Seller, error) {
	p.mu.Lock()
	p.formOpen, p.formErr, p.draft = true, "", draft
	p.mu.Unlock()

	req, err := draft.parse()
	if err != nil {
		p.setFormError(err, msgCreateSeller)
		return domain.Seller{}, err
	}

	created, err := p.api.CreateSeller(ctx, req)
	if err != nil {
		p.logger.Warn("create seller failed", slog.Any("error", err))
		p.setFormError(err, msgCreateSeller)
		return domain.Seller{}, err
	}

	p.mu.Lock()
	p.sellers.Insert(created)
	p.formOpen, p.formErr, p.draft = false, "", SellerDraft{InitialBalance: "0"}
	p.mu.Unlock()

	p.sink.Emit(ctx, domain.SellerCreated{Seller: created})
	return created, nil
}

// Select reports the seller with id to the shell.
func (p *SellerPicker) Select(ctx context.Context, id int64) error {
	p.mu.Lock()
	seller, ok := p.sellers.Get(id)
	p.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	p.sink.Emit(ctx, domain.SellerSelected{Seller: seller})
	return nil
}

// Snapshot returns the current state for rendering.
func (p *SellerPicker) Snapshot() SellerPickerView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return SellerPickerView{
		State:     p.state,
		Error:     p.loadErr,
		Sellers:   p.sellers.Items(),
		FormOpen:  p.formOpen,
		FormError: p.formErr,
		Draft:     p.draft,
	}
}

func (p *SellerPicker) setFormError(err error, fallback string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.formErr = formMessage(err, fallback)
}

// formMessage turns err into the inline message of a form.
func formMessage(err error, fallback string) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return port.UserMessage(err, fallback)
}
