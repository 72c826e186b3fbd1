package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
)

type settingsResponse struct {
	MinimumClicksThreshold   int64           `json:"minimumClicksThreshold"`
	RemainingClicksThreshold int64           `json:"remainingClicksThreshold"`
	SpendThreshold           decimal.Decimal `json:"spendThreshold"`
	DefaultWaitMinutes       int             `json:"defaultWaitMinutes"`
	DebounceWindowMinutes    int             `json:"debounceWindowMinutes"`
	StagedThreshold          decimal.Decimal `json:"stagedThreshold"`
	StagedIncrement          decimal.Decimal `json:"stagedIncrement"`
	UpdatedAt                *time.Time      `json:"updatedAt,omitempty"`
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	resp := settingsResponse{
		MinimumClicksThreshold:   s.MinimumClicksThreshold,
		RemainingClicksThreshold: s.RemainingClicksThreshold,
		SpendThreshold:           s.SpendThreshold,
		DefaultWaitMinutes:       s.DefaultWaitMinutes,
		DebounceWindowMinutes:    int(s.DebounceWindow / time.Minute),
		StagedThreshold:          s.StagedThreshold,
		StagedIncrement:          s.StagedIncrement,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = &s.UpdatedAt
	}
	return resp
}

// updateSettingsRequest is a partial update; absent fields keep their
// stored values.
type updateSettingsRequest struct {
	MinimumClicksThreshold   *int64           `json:"minimumClicksThreshold"`
	RemainingClicksThreshold *int64           `json:"remainingClicksThreshold"`
	SpendThreshold           *decimal.Decimal `json:"spendThreshold"`
	DefaultWaitMinutes       *int             `json:"defaultWaitMinutes"`
	DebounceWindowMinutes    *int             `json:"debounceWindowMinutes"`
	StagedThreshold          *decimal.Decimal `json:"stagedThreshold"`
	StagedIncrement          *decimal.Decimal `json:"stagedIncrement"`
}

func (req updateSettingsRequest) apply(s domain.Settings) domain.Settings {
	if req.MinimumClicksThreshold != nil {
		s.MinimumClicksThreshold = *req.MinimumClicksThreshold
	}
	if req.RemainingClicksThreshold != nil {
		s.RemainingClicksThreshold = *req.RemainingClicksThreshold
	}
	if req.SpendThreshold != nil {
		s.SpendThreshold = *req.SpendThreshold
	}
	if req.DefaultWaitMinutes != nil {
		s.DefaultWaitMinutes = *req.DefaultWaitMinutes
	}
	if req.DebounceWindowMinutes != nil {
		s.DebounceWindow = time.Duration(*req.DebounceWindowMinutes) * time.Minute
	}
	if req.StagedThreshold != nil {
		s.StagedThreshold = *req.StagedThreshold
	}
	if req.StagedIncrement != nil {
		s.StagedIncrement = *req.StagedIncrement
	}
	return s
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Settings.GetSettings(r.Context())
	if err != nil {
		h.writeError(w, "get settings error", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	current, err := h.svc.Settings.GetSettings(r.Context())
	if err != nil {
		h.writeError(w, "get settings error", err)
		return
	}
	updated, err := h.svc.Settings.UpdateSettings(r.Context(), req.apply(current))
	if err != nil {
		h.writeError(w, "update settings error", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(updated))
}
