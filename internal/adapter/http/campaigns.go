package httpadapter

import (
	"net/http"

	"emerald-console/internal/adapter/usecase"
)

// campaigns returns the shell and its campaign manager, answering the
// request itself when no product is selected.
func (h *Handler) campaigns(w http.ResponseWriter, r *http.Request) (*usecase.Shell, *usecase.CampaignManager, bool) {
	shell := h.shell(w, r)
	m := shell.Campaigns()
	if m == nil {
		h.fail(w, r, errStaleView)
		return nil, nil, false
	}
	return shell, m, true
}

func campaignDraft(r *http.Request) usecase.CampaignDraft {
	return usecase.CampaignDraft{
		Name:         r.PostForm.Get("campaignName"),
		BidAmount:    r.PostForm.Get("bidAmount"),
		CampaignFund: r.PostForm.Get("campaignFund"),
		Status:       r.PostForm.Get("status"),
		TownID:       r.PostForm.Get("townId"),
		RadiusKm:     r.PostForm.Get("radiusKm"),
	}
}

func (h *Handler) handleOpenCreateCampaign(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	m.OpenCreate()
	h.done(w, r, shell)
}

func (h *Handler) handleOpenEditCampaign(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := m.OpenEdit(id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleCloseCampaignForm(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	m.CloseForm()
	h.done(w, r, shell)
}

func (h *Handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if _, err := m.Submit(r.Context(), campaignDraft(r)); err != nil && !shownError(err) {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleRequestDelete(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := m.RequestDelete(id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	if err := m.ConfirmDelete(r.Context()); err != nil && !shownError(err) {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleCancelDelete(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	m.CancelDelete()
	h.done(w, r, shell)
}
