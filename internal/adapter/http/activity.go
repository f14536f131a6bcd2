package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleActivity renders the most recent mutations made through the
// console, newest first.
func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	shell := h.shell(w, r)
	data := newPageData(shell.Snapshot())
	data.ShowActivity = true

	if h.activity != nil {
		entries, err := h.activity.Recent(r.Context(), activityLimit)
		if err != nil {
			h.logger.Error("load activity failed", slog.Any("error", err))
			data.ActivityError = "Failed to load activity"
		}
		data.Activity = entries
	}
	renderPage(w, r, pageComponent(data))
}
