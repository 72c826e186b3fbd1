package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
)

type automationResponse struct {
	CampaignID        int64                     `json:"campaignId"`
	Enabled           bool                      `json:"enabled"`
	State             domain.AutomationState    `json:"state"`
	WaitMinutes       int                       `json:"waitMinutes"`
	WaitStartTime     *time.Time                `json:"waitStartTime,omitempty"`
	DailySpent        decimal.Decimal           `json:"dailySpent"`
	DailySpentDate    string                    `json:"dailySpentDate,omitempty"`
	RemainingClicks   int64                     `json:"remainingClicks"`
	AppliedBudget     decimal.Decimal           `json:"appliedBudget"`
	PendingURLBudgets map[int64]decimal.Decimal `json:"pendingUrlBudgets"`
	BudgetedURLIDs    []int64                   `json:"budgetedUrlIds"`
	LastAction        *time.Time                `json:"lastAction,omitempty"`
}

func toAutomationResponse(s *port.AutomationStatus) automationResponse {
	resp := automationResponse{
		CampaignID:        s.CampaignID,
		Enabled:           s.Enabled,
		State:             s.State,
		WaitMinutes:       s.WaitMinutes,
		WaitStartTime:     s.WaitStartTime,
		DailySpent:        s.DailySpent,
		DailySpentDate:    s.DailySpentDate,
		RemainingClicks:   s.RemainingClicks,
		AppliedBudget:     s.AppliedBudget,
		PendingURLBudgets: s.PendingURLBudgets,
		BudgetedURLIDs:    s.BudgetedURLIDs,
		LastAction:        s.LastAction,
	}
	if resp.PendingURLBudgets == nil {
		resp.PendingURLBudgets = map[int64]decimal.Decimal{}
	}
	if resp.BudgetedURLIDs == nil {
		resp.BudgetedURLIDs = []int64{}
	}
	return resp
}

func (h *Handler) handleAutomationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	st, err := h.svc.Automation.Status(r.Context(), id)
	if err != nil {
		h.writeError(w, "automation status error", err)
		return
	}
	writeJSON(w, http.StatusOK, toAutomationResponse(st))
}

// handleRunAutomation forces one evaluation and returns the resulting
// status. It waits for an evaluation already in progress.
func (h *Handler) handleRunAutomation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	st, err := h.svc.Automation.RunNow(r.Context(), id)
	if err != nil {
		h.writeError(w, "automation run error", err)
		return
	}
	writeJSON(w, http.StatusOK, toAutomationResponse(st))
}

type configureAutomationRequest struct {
	Enabled     *bool `json:"enabled"`
	WaitMinutes *int  `json:"waitMinutes"`
}

func (h *Handler) handleConfigureAutomation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	var req configureAutomationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st, err := h.svc.Automation.Configure(r.Context(), id, port.ConfigureAutomationReq{
		Enabled:     req.Enabled,
		WaitMinutes: req.WaitMinutes,
	})
	if err != nil {
		h.writeError(w, "configure automation error", err)
		return
	}
	writeJSON(w, http.StatusOK, toAutomationResponse(st))
}

type multiplierRequest struct {
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (h *Handler) handleSetMultiplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	var req multiplierRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	n, err := h.svc.URLs.SetMultiplier(r.Context(), id, req.Multiplier)
	if err != nil {
		h.writeError(w, "set multiplier error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updatedUrls": n})
}
