package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

const (
	msgFetchInitialData = "Failed to fetch initial data"
	msgCreateCampaign   = "Failed to create campaign"
	msgUpdateCampaign   = "Failed to update campaign"
	msgDeleteCampaign   = "Failed to delete campaign"
)

// CampaignDraft holds the raw inputs of the campaign form. Keywords are
// kept separately since they are edited through the search widget.
type CampaignDraft struct {
	Name         string
	BidAmount    string
	CampaignFund string
	Status       string
	TownID       string
	RadiusKm     string
}

// DraftFromFields renders fields as form inputs.
func DraftFromFields(f domain.CampaignFields) CampaignDraft {
	d := CampaignDraft{
		Name:         f.Name,
		BidAmount:    f.BidAmount.Fixed(),
		CampaignFund: f.CampaignFund.Fixed(),
		Status:       string(f.Status),
		RadiusKm:     strconv.Itoa(f.RadiusKm),
	}
	if f.TownID != nil {
		d.TownID = strconv.FormatInt(*f.TownID, 10)
	}
	return d
}

// Fields parses the draft and validates the result.
func (d CampaignDraft) Fields(keywords domain.KeywordSet) (domain.CampaignFields, error) {
	f := domain.CampaignFields{
		Name:     strings.TrimSpace(d.Name),
		Keywords: keywords.Values(),
	}

	var err error
	if f.BidAmount, err = domain.NewAmount(d.BidAmount); err != nil {
		return f, &domain.ValidationError{Field: "bidAmount", Message: "bid amount must be a number"}
	}
	if f.CampaignFund, err = domain.NewAmount(d.CampaignFund); err != nil {
		return f, &domain.ValidationError{Field: "campaignFund", Message: "campaign fund must be a number"}
	}
	if f.Status, err = domain.ParseCampaignStatus(d.Status); err != nil {
		return f, err
	}
	if town := strings.TrimSpace(d.TownID); town != "" {
		id, err := strconv.ParseInt(town, 10, 64)
		if err != nil || id <= 0 {
			return f, &domain.ValidationError{Field: "townId", Message: "unknown town"}
		}
		f.TownID = &id
	}
	if f.RadiusKm, err = strconv.Atoi(strings.TrimSpace(d.RadiusKm)); err != nil {
		return f, &domain.ValidationError{Field: "radiusKm", Message: "radius must be a whole number"}
	}
	return f, f.Validate()
}

// CampaignFormView is a snapshot of the open create/edit form.
type CampaignFormView struct {
	// EditingID is the campaign being edited, zero when creating.
	EditingID int64
	Draft     CampaignDraft
	Keywords  []string
	Search    KeywordSearchView
	Error     string
}

// Editing reports whether the form edits an existing campaign.
func (v CampaignFormView) Editing() bool {
	return v.EditingID != 0
}

// CampaignManagerView is a snapshot of the campaign manager for rendering.
type CampaignManagerView struct {
	ProductID int64
	State     LoadState
	Error     string
	// ListError is shown above the list, for instance after a failed delete.
	ListError string
	Campaigns []domain.Campaign
	Towns     []domain.Town
	Form      *CampaignFormView
	// ConfirmDelete is the campaign awaiting delete confirmation, if any.
	ConfirmDelete *domain.Campaign
}

type campaignForm struct {
	editingID int64
	draft     CampaignDraft
	keywords  domain.KeywordSet
	err       string
}

// CampaignManager lists, creates, edits and deletes the campaigns of one
// product. Every successful mutation emits domain.CampaignsChanged.
type CampaignManager struct {
	api       port.Marketplace
	sink      port.EventSink
	logger    *slog.Logger
	productID int64
	search    *KeywordSearch

	mu            sync.Mutex
	started       bool
	seq           uint64
	state         LoadState
	loadErr       string
	listErr       string
	campaigns     *Collection[int64, domain.Campaign]
	towns         []domain.Town
	form          *campaignForm
	pendingDelete int64
}

// NewCampaignManager returns a manager scoped to productID that uses search
// for its keyword widget.
func NewCampaignManager(api port.Marketplace, sink port.EventSink, logger *slog.Logger, productID int64, search *KeywordSearch) *CampaignManager {
	return &CampaignManager{
		api:       api,
		sink:      sink,
		logger:    logger.With(slog.Int64("product_id", productID)),
		productID: productID,
		search:    search,
		campaigns: NewCollection(func(c domain.Campaign) int64 { return c.ID }),
	}
}

// ProductID returns the product the manager is scoped to.
func (m *CampaignManager) ProductID() int64 {
	return m.productID
}

// EnsureLoaded starts the initial fetch once.
func (m *CampaignManager) EnsureLoaded(ctx context.Context) {
	m.mu.Lock()
	started := m.started
	m.mu.Unlock()
	if !started {
		m.Load(ctx)
	}
}

// Load fetches the product's campaigns and the town dictionary in parallel.
// If either fails the whole load fails with one generic message.
func (m *CampaignManager) Load(ctx context.Context) {
	m.mu.Lock()
	m.started = true
	m.seq++
	seq := m.seq
	m.state, m.loadErr = Loading, ""
	m.mu.Unlock()

	var (
		campaigns []domain.Campaign
		towns     []domain.Town
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = m.api.ListCampaigns(gctx, m.productID)
		return err
	})
	g.Go(func() error {
		var err error
		towns, err = m.api.ListTowns(gctx)
		return err
	})
	err := g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.seq {
		return
	}
	if err != nil {
		m.logger.Warn("load campaigns failed", slog.Any("error", err))
		m.state, m.loadErr = LoadFailed, msgFetchInitialData
		return
	}
	m.campaigns.Reset(campaigns)
	m.towns = towns
	m.state = Loaded
}

// OpenCreate opens an empty creation form.
func (m *CampaignManager) OpenCreate() {
	m.mu.Lock()
	m.form = &campaignForm{
		draft:    DraftFromFields(domain.DefaultCampaignFields()),
		keywords: domain.NewKeywordSet(),
	}
	m.mu.Unlock()
	m.search.Reset()
}

// OpenEdit opens the form pre-populated with the campaign's fields.
func (m *CampaignManager) OpenEdit(id int64) error {
	m.mu.Lock()
	campaign, ok := m.campaigns.Get(id)
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	m.form = &campaignForm{
		editingID: id,
		draft:     DraftFromFields(campaign.CampaignFields),
		keywords:  domain.NewKeywordSet(campaign.Keywords...),
	}
	m.mu.Unlock()
	m.search.Reset()
	return nil
}

// CloseForm discards the form and its inputs.
func (m *CampaignManager) CloseForm() {
	m.mu.Lock()
	m.form = nil
	m.mu.Unlock()
	m.search.Reset()
}

// SetDraft keeps unsaved form inputs, for instance while keywords are
// being edited.
func (m *CampaignManager) SetDraft(draft CampaignDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.form == nil {
		return ErrFormClosed
	}
	m.form.draft = draft
	return nil
}

// SetKeywordQuery feeds the keyword search widget of the open form.
func (m *CampaignManager) SetKeywordQuery(q string) error {
	m.mu.Lock()
	open := m.form != nil
	m.mu.Unlock()
	if !open {
		return ErrFormClosed
	}
	m.search.SetQuery(q)
	return nil
}

// AddKeyword appends value to the form's keywords unless already present,
// then clears the query.
func (m *CampaignManager) AddKeyword(value string) error {
	m.mu.Lock()
	if m.form == nil {
		m.mu.Unlock()
		return ErrFormClosed
	}
	m.form.keywords.Add(value)
	m.mu.Unlock()
	m.search.Reset()
	return nil
}

// RemoveKeyword drops value from the form's keywords. Absent values are
// ignored.
func (m *CampaignManager) RemoveKeyword(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.form == nil {
		return ErrFormClosed
	}
	m.form.keywords.Remove(value)
	return nil
}

// Submit validates draft together with the selected keywords and creates
// or updates the campaign. Validation failures never reach the API. On
// failure the form stays open with the draft and an inline message.
func (m *CampaignManager) Submit(ctx context.Context, draft CampaignDraft) (domain.Campaign, error) {
	m.mu.Lock()
	form := m.form
	if form == nil {
		m.mu.Unlock()
		return domain.Campaign{}, ErrFormClosed
	}
	form.draft, form.err = draft, ""
	editingID := form.editingID
	keywords := domain.NewKeywordSet(form.keywords.Values()...)
	m.mu.Unlock()

	failure := msgCreateCampaign
	if editingID != 0 {
		failure = msgUpdateCampaign
	}

	fields, err := draft.Fields(keywords)
	if err != nil {
		m.setFormError(form, formMessage(err, failure))
		return domain.Campaign{}, err
	}

	var (
		saved  domain.Campaign
		change domain.CampaignChange
	)
	if editingID != 0 {
		saved, err = m.api.UpdateCampaign(ctx, editingID, fields)
		change = domain.CampaignUpdated
	} else {
		saved, err = m.api.CreateCampaign(ctx, m.productID, fields)
		change = domain.CampaignCreated
	}
	if err != nil {
		m.logger.Warn("save campaign failed", slog.Int64("campaign_id", editingID), slog.Any("error", err))
		m.setFormError(form, port.UserMessage(err, failure))
		return domain.Campaign{}, err
	}

	m.mu.Lock()
	if change == domain.CampaignUpdated {
		m.campaigns.Replace(saved)
	} else {
		m.campaigns.Insert(saved)
	}
	closed := m.form == form
	if closed {
		m.form = nil
	}
	m.mu.Unlock()
	if closed {
		m.search.Reset()
	}

	m.sink.Emit(ctx, domain.CampaignsChanged{
		ProductID:  m.productID,
		CampaignID: saved.ID,
		Name:       saved.Name,
		Change:     change,
	})
	return saved, nil
}

// RequestDelete asks for confirmation before deleting campaign id. Nothing
// is sent until ConfirmDelete.
func (m *CampaignManager) RequestDelete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns.Get(id); !ok {
		return ErrNotFound
	}
	m.pendingDelete = id
	return nil
}

// CancelDelete dismisses the confirmation.
func (m *CampaignManager) CancelDelete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDelete = 0
}

// ConfirmDelete deletes the campaign awaiting confirmation. It is a no-op
// when no deletion was requested.
func (m *CampaignManager) ConfirmDelete(ctx context.Context) error {
	m.mu.Lock()
	id := m.pendingDelete
	m.pendingDelete = 0
	campaign, ok := m.campaigns.Get(id)
	m.mu.Unlock()
	if id == 0 || !ok {
		return nil
	}

	if err := m.api.DeleteCampaign(ctx, id); err != nil {
		m.logger.Warn("delete campaign failed", slog.Int64("campaign_id", id), slog.Any("error", err))
		m.mu.Lock()
		m.listErr = port.UserMessage(err, msgDeleteCampaign)
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.campaigns.Remove(id)
	m.listErr = ""
	m.mu.Unlock()

	m.sink.Emit(ctx, domain.CampaignsChanged{
		ProductID:  m.productID,
		CampaignID: id,
		Name:       campaign.Name,
		Change:     domain.CampaignDeleted,
	})
	return nil
}

// Close stops background keyword searches. The shell calls it when the
// manager is no longer shown.
func (m *CampaignManager) Close() {
	m.search.Reset()
}

// Snapshot returns the current state for rendering.
func (m *CampaignManager) Snapshot() CampaignManagerView {
	var search KeywordSearchView
	m.mu.Lock()
	hasForm := m.form != nil
	m.mu.Unlock()
	if hasForm {
		search = m.search.Snapshot()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	v := CampaignManagerView{
		ProductID: m.productID,
		State:     m.state,
		Error:     m.loadErr,
		ListError: m.listErr,
		Campaigns: m.campaigns.Items(),
		Towns:     append([]domain.Town(nil), m.towns...),
	}
	if m.form != nil {
		v.Form = &CampaignFormView{
			EditingID: m.form.editingID,
			Draft:     m.form.draft,
			Keywords:  m.form.keywords.Values(),
			Search:    search,
			Error:     m.form.err,
		}
	}
	if m.pendingDelete != 0 {
		if c, ok := m.campaigns.Get(m.pendingDelete); ok {
			v.ConfirmDelete = &c
		}
	}
	return v
}

func (m *CampaignManager) setFormError(form *campaignForm, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.form == form {
		form.err = msg
	}
}
