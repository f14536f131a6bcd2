package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

const (
	msgFetchProducts = "Failed to fetch products"
	msgCreateProduct = "Failed to create product"
)

// ProductPickerView is a snapshot of the product picker for rendering.
type ProductPickerView struct {
	SellerID  int64
	State     LoadState
	Error     string
	Products  []domain.Product
	FormOpen  bool
	FormError string
	DraftName string
}

// ProductPicker lists and creates the products of one seller. The shell
// builds a new picker whenever the selected seller changes.
type ProductPicker struct {
	api      port.Marketplace
	sink     port.EventSink
	logger   *slog.Logger
	sellerID int64

	mu        sync.Mutex
	started   bool
	seq       uint64
	state     LoadState
	loadErr   string
	products  *Collection[int64, domain.Product]
	formOpen  bool
	formErr   string
	draftName string
}

// NewProductPicker returns a picker scoped to sellerID.
func NewProductPicker(api port.Marketplace, sink port.EventSink, logger *slog.Logger, sellerID int64) *ProductPicker {
	return &ProductPicker{
		api:      api,
		sink:     sink,
		logger:   logger.With(slog.Int64("seller_id", sellerID)),
		sellerID: sellerID,
		products: NewCollection(func(p domain.Product) int64 { return p.ID }),
	}
}

// SellerID returns the seller the picker is scoped to.
func (p *ProductPicker) SellerID() int64 {
	return p.sellerID
}

// EnsureLoaded starts the initial fetch once.
func (p *ProductPicker) EnsureLoaded(ctx context.Context) {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		p.Load(ctx)
	}
}

// Load fetches the seller's products.
func (p *ProductPicker) Load(ctx context.Context) {
	p.mu.Lock()
	p.started = true
	p.seq++
	seq := p.seq
	p.state, p.loadErr = Loading, ""
	p.mu.Unlock()

	products, err := p.api.ListProducts(ctx, p.sellerID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		return
	}
	if err != nil {
		p.logger.Warn("list products failed", slog.Any("error", err))
		p.state, p.loadErr = LoadFailed, msgFetchProducts
		return
	}
	p.products.Reset(products)
	p.state = Loaded
}

// ToggleForm opens or closes the creation form.
func (p *ProductPicker) ToggleForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.formOpen = !p.formOpen
	p.formErr = ""
	if !p.formOpen {
		p.draftName = ""
	}
}

// Create creates a product named name and appends it to the list.
func (p *ProductPicker) Create(ctx context.Context, name string) (domain.Product, error) {
	p.mu.Lock()
	p.formOpen, p.formErr, p.draftName = true, "", name
	p.mu.Unlock()

	req := domain.NewProduct{Name: strings.TrimSpace(name)}
	if err := req.Validate(); err != nil {
		p.setFormError(err)
		return domain.Product{}, err
	}

	created, err := p.api.CreateProduct(ctx, p.sellerID, req)
	if err != nil {
		p.logger.Warn("create product failed", slog.Any("error", err))
		p.setFormError(err)
		return domain.Product{}, err
	}

	p.mu.Lock()
	p.products.Insert(created)
	p.formOpen, p.formErr, p.draftName = false, "", ""
	p.mu.Unlock()

	p.sink.Emit(ctx, domain.ProductCreated{SellerID: p.sellerID, Product: created})
	return created, nil
}

// Select reports the product with id to the shell.
func (p *ProductPicker) Select(ctx context.Context, id int64) error {
	p.mu.Lock()
	product, ok := p.products.Get(id)
	p.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	p.sink.Emit(ctx, domain.ProductSelected{SellerID: p.sellerID, Product: product})
	return nil
}

// Snapshot returns the current state for rendering.
func (p *ProductPicker) Snapshot() ProductPickerView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ProductPickerView{
		SellerID:  p.sellerID,
		State:     p.state,
		Error:     p.loadErr,
		Products:  p.products.Items(),
		FormOpen:  p.formOpen,
		FormError: p.formErr,
		DraftName: p.draftName,
	}
}

func (p *ProductPicker) setFormError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.formErr = formMessage(err, msgCreateProduct)
}
