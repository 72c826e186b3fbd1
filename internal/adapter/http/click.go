package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"traffic-sender/internal/core/domain"
)

// handleClick redirects a visitor to a URL of the campaign picked by weight.
// A campaign without eligible URLs answers 404 "no inventory". Internal
// errors are logged and also answered with 404 so visitors never see them.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	click, err := h.svc.Clicks.Serve(r.Context(), campaignID)
	if err != nil {
		if !errors.Is(err, domain.ErrNoEligibleURL) {
			h.logger.Error("click error", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		}
		http.Error(w, "no inventory", http.StatusNotFound)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, click.TargetURL, http.StatusFound)
}
