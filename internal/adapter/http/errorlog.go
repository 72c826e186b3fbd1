package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type errorLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	CampaignID *int64     `json:"campaignId,omitempty"`
	Endpoint   string     `json:"endpoint"`
	Method     string     `json:"method"`
	Payload    string     `json:"payload,omitempty"`
	Message    string     `json:"message"`
	RetryCount int        `json:"retryCount"`
	Resolved   bool       `json:"resolved"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func (h *Handler) handleListErrors(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.Errors.ListUnresolved(r.Context(), limit)
	if err != nil {
		h.writeError(w, "list error log", err)
		return
	}
	resp := make([]errorLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, errorLogResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleResolveError(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "errorID"))
	if err != nil {
		http.Error(w, "invalid errorID", http.StatusBadRequest)
		return
	}
	if err = h.svc.Errors.Resolve(r.Context(), id); err != nil {
		h.writeError(w, "resolve error log", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClearErrors(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Errors.Clear(r.Context())
	if err != nil {
		h.writeError(w, "clear error log", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
