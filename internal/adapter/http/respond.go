package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"emerald-console/internal/adapter/usecase"
	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

var errStaleView = errors.New("view is no longer shown")

// shell returns the caller's shell, starting a session when the request
// carries no valid cookie.
func (h *Handler) shell(w http.ResponseWriter, r *http.Request) *usecase.Shell {
	if c, err := r.Cookie(h.opts.CookieName); err == nil {
		if shell, ok := h.sessions.Get(c.Value); ok {
			return shell
		}
	}
	id, shell := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL() / time.Second),
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return shell
}

// render writes the console page for shell, loading the active component
// first when needed.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, shell *usecase.Shell) {
	shell.EnsureLoaded(r.Context())
	renderPage(w, r, pageComponent(newPageData(shell.Snapshot())))
}

// done finishes a state-changing request. HTMX gets the updated page
// fragment; plain form posts are redirected back to the console.
func (h *Handler) done(w http.ResponseWriter, r *http.Request, shell *usecase.Shell) {
	if isHTMXRequest(r) {
		h.render(w, r, shell)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// fail answers errors that cannot be shown inside the page. Validation and
// request failures are rendered by the components themselves, so callers
// use done for those.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrNoSellerSelected),
		errors.Is(err, usecase.ErrFormClosed),
		errors.Is(err, errStaleView):
		http.Error(w, "the page is out of date, reload it", http.StatusConflict)
	default:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// shownError reports whether err was already rendered into the page state.
func shownError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, port.ErrRequestFailed)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
