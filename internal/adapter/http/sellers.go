package httpadapter

import (
	"net/http"

	"emerald-console/internal/adapter/usecase"
)

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.shell(w, r))
}

func (h *Handler) handleToggleSellerForm(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	sellers := shell.Sellers()
	if sellers == nil {
		h.fail(w, r, errStaleView)
		return
	}
	sellers.ToggleForm()
	h.done(w, r, shell)
}

func (h *Handler) handleCreateSeller(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	sellers := shell.Sellers()
	if sellers == nil {
		h.fail(w, r, errStaleView)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	draft := usecase.SellerDraft{
		Name:           r.PostForm.Get("name"),
		InitialBalance: r.PostForm.Get("initialEmeraldBalance"),
	}
	if _, err := sellers.Create(r.Context(), draft); err != nil && !shownError(err) {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleSelectSeller(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid seller id", http.StatusBadRequest)
		return
	}
	sellers := shell.Sellers()
	if sellers == nil {
		h.fail(w, r, errStaleView)
		return
	}
	if err := sellers.Select(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleTopUp(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if _, err := shell.TopUp(r.Context(), r.PostForm.Get("amount")); err != nil && !shownError(err) {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleToggleProductForm(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	products := shell.Products()
	if products == nil {
		h.fail(w, r, errStaleView)
		return
	}
	products.ToggleForm()
	h.done(w, r, shell)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	products := shell.Products()
	if products == nil {
		h.fail(w, r, errStaleView)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if _, err := products.Create(r.Context(), r.PostForm.Get("name")); err != nil && !shownError(err) {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleSelectProduct(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	products := shell.Products()
	if products == nil {
		h.fail(w, r, errStaleView)
		return
	}
	if err := products.Select(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, shell)
}

func (h *Handler) handleBackToSellers(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	shell.BackToSellers()
	h.done(w, r, shell)
}

func (h *Handler) handleBackToProducts(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	shell.BackToProducts()
	h.done(w, r, shell)
}
