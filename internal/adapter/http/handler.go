package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"emerald-console/internal/core/port"
)

const (
	defaultCookieName = "emerald_session"
	activityLimit     = 50
)

// Options tunes the browser-facing behaviour of a Handler.
type Options struct {
	// CookieName names the session cookie. Defaults to "emerald_session".
	CookieName string
	// CookieSecure marks the session cookie Secure.
	CookieSecure bool
	// Metrics, when set, is mounted on /metrics.
	Metrics http.Handler
}

// Handler is the inbound HTTP adapter of the console. Every browser gets a
// session cookie that maps to its own usecase.Shell; routes drive that shell
// and answer with server-rendered HTML.
type Handler struct {
	sessions *SessionStore
	activity port.ActivityRepository
	logger   *slog.Logger
	opts     Options
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. activity may be
// nil, in which case the activity page stays empty.
func NewHandler(sessions *SessionStore, activity port.ActivityRepository, logger *slog.Logger, opts Options) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	h := &Handler{sessions: sessions, activity: activity, logger: logger, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Get("/", h.handleIndex)
	r.Get("/activity", h.handleActivity)

	r.Post("/sellers/form", h.handleToggleSellerForm)
	r.Post("/sellers", h.handleCreateSeller)
	r.Post("/sellers/{id}/select", h.handleSelectSeller)
	r.Post("/seller/top-up", h.handleTopUp)

	r.Post("/products/form", h.handleToggleProductForm)
	r.Post("/products", h.handleCreateProduct)
	r.Post("/products/{id}/select", h.handleSelectProduct)

	r.Post("/navigation/sellers", h.handleBackToSellers)
	r.Post("/navigation/products", h.handleBackToProducts)

	r.Route("/campaigns", func(r chi.Router) {
		r.Post("/new", h.handleOpenCreateCampaign)
		r.Post("/{id}/edit", h.handleOpenEditCampaign)
		r.Post("/{id}/delete", h.handleRequestDelete)
		r.Post("/delete/confirm", h.handleConfirmDelete)
		r.Post("/delete/cancel", h.handleCancelDelete)

		r.Post("/form", h.handleSubmitCampaign)
		r.Post("/form/cancel", h.handleCloseCampaignForm)
		r.Post("/form/keywords/query", h.handleKeywordQuery)
		r.Get("/form/keywords/suggestions", h.handleKeywordSuggestions)
		r.Post("/form/keywords", h.handleAddKeyword)
		r.Post("/form/keywords/remove", h.handleRemoveKeyword)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// requestLogger emits one slog record per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
