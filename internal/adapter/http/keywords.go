package httpadapter

import (
	"log/slog"
	"net/http"

	"emerald-console/internal/adapter/usecase"
)

// handleKeywordQuery stores the typed query. The search itself runs once
// the query has settled; HTMX clients poll handleKeywordSuggestions until
// then.
func (h *Handler) handleKeywordQuery(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.keepDraft(r, m)
	if err := m.SetKeywordQuery(r.PostForm.Get("query")); err != nil {
		h.fail(w, r, err)
		return
	}
	if !isHTMXRequest(r) {
		h.done(w, r, shell)
		return
	}
	h.suggestions(w, r, m)
}

func (h *Handler) handleKeywordSuggestions(w http.ResponseWriter, r *http.Request) {
	_, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	h.suggestions(w, r, m)
}

func (h *Handler) handleAddKeyword(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.keepDraft(r, m)
	if err := m.AddKeyword(r.PostForm.Get("keyword")); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleRemoveKeyword(w http.ResponseWriter, r *http.Request) {
	shell, m, ok := h.campaigns(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.keepDraft(r, m)
	if err := m.RemoveKeyword(r.PostForm.Get("keyword")); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request, m *usecase.CampaignManager) {
	v := m.Snapshot()
	if v.Form == nil {
		h.fail(w, r, usecase.ErrFormClosed)
		return
	}
	renderFragment(w, r, suggestionsComponent(v.Form.Search))
}

// keepDraft saves the campaign inputs posted along with a keyword action
// so the re-rendered form does not lose them.
func (h *Handler) keepDraft(r *http.Request, m *usecase.CampaignManager) {
	if !r.PostForm.Has("campaignName") {
		return
	}
	if err := m.SetDraft(campaignDraft(r)); err != nil {
		h.logger.Debug("draft not kept", slog.Any("error", err))
	}
}
