package httpadapter

import (
	"net/http"
	"time"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
)

type urlResponse struct {
	ID                 int64               `json:"id"`
	CampaignID         int64               `json:"campaignId"`
	TargetURL          string              `json:"targetUrl"`
	ClickLimit         int64               `json:"clickLimit"`
	OriginalClickLimit int64               `json:"originalClickLimit"`
	Clicks             int64               `json:"clicks"`
	Weight             int                 `json:"weight"`
	Status             domain.URLStatus    `json:"status"`
	ActiveStatus       domain.ActiveStatus `json:"activeStatus"`
	CreatedAt          time.Time           `json:"createdAt"`
}

func toURLResponse(u domain.URL) urlResponse {
	return urlResponse{
		ID:                 u.ID,
		CampaignID:         u.CampaignID,
		TargetURL:          u.TargetURL,
		ClickLimit:         u.ClickLimit,
		OriginalClickLimit: u.OriginalClickLimit,
		Clicks:             u.Clicks,
		Weight:             u.Weight,
		Status:             u.Status,
		ActiveStatus:       u.ActiveStatus(),
		CreatedAt:          u.CreatedAt,
	}
}

func (h *Handler) handleListURLs(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	urls, err := h.svc.URLs.ListURLs(r.Context(), id)
	if err != nil {
		h.writeError(w, "list urls error", err)
		return
	}
	resp := make([]urlResponse, 0, len(urls))
	for _, u := range urls {
		resp = append(resp, toURLResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

type createURLRequest struct {
	TargetURL          string `json:"targetUrl"`
	OriginalClickLimit int64  `json:"originalClickLimit"`
	Weight             int    `json:"weight"`
}

func (h *Handler) handleCreateURL(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "campaignID")
	if !ok {
		return
	}
	var req createURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.svc.URLs.CreateURL(r.Context(), port.CreateURLReq{
		CampaignID:         id,
		TargetURL:          req.TargetURL,
		OriginalClickLimit: req.OriginalClickLimit,
		Weight:             req.Weight,
	})
	if err != nil {
		h.writeError(w, "create url error", err)
		return
	}
	writeJSON(w, http.StatusCreated, toURLResponse(*created))
}

type updateURLRequest struct {
	TargetURL          *string           `json:"targetUrl"`
	Status             *domain.URLStatus `json:"status"`
	Weight             *int              `json:"weight"`
	OriginalClickLimit *int64            `json:"originalClickLimit"`
	BypassProtection   bool              `json:"bypassProtection"`
}

type updateURLResponse struct {
	URL              urlResponse `json:"url"`
	BaselineRejected bool        `json:"baselineRejected"`
}

// handleUpdateURL is the administrative edit path. originalClickLimit only
// changes when bypassProtection is set; otherwise the write is discarded,
// a warning is recorded and baselineRejected is true.
func (h *Handler) handleUpdateURL(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "urlID")
	if !ok {
		return
	}
	var req updateURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.URLs.UpdateURL(r.Context(), id, domain.URLUpdate{
		TargetURL:          req.TargetURL,
		Status:             req.Status,
		Weight:             req.Weight,
		OriginalClickLimit: req.OriginalClickLimit,
	}, req.BypassProtection)
	if err != nil {
		h.writeError(w, "update url error", err)
		return
	}
	writeJSON(w, http.StatusOK, updateURLResponse{
		URL:              toURLResponse(res.URL),
		BaselineRejected: res.BaselineRejected,
	})
}

type warningResponse struct {
	ID             int64     `json:"id"`
	URLID          int64     `json:"urlId"`
	AttemptedValue int64     `json:"attemptedValue"`
	RetainedValue  int64     `json:"retainedValue"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (h *Handler) handleListWarnings(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	warnings, err := h.svc.URLs.ListWarnings(r.Context(), limit)
	if err != nil {
		h.writeError(w, "list warnings error", err)
		return
	}
	resp := make([]warningResponse, 0, len(warnings))
	for _, wr := range warnings {
		resp = append(resp, warningResponse(wr))
	}
	writeJSON(w, http.StatusOK, resp)
}
