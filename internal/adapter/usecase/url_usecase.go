package usecase

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
)

var maxMultiplier = decimal.NewFromInt(100)

// URLUseCase manages campaign URLs and multipliers. Every creation is
// forwarded to the budget aggregator.
type URLUseCase struct {
	campaigns port.CampaignRepository
	urls      port.URLRepository
	inventory port.ClickInventory
	events    port.BudgetEvents
	logger    *slog.Logger
}

// NewURLUseCase creates the URL use case.
func NewURLUseCase(
	campaigns port.CampaignRepository,
	urls port.URLRepository,
	inventory port.ClickInventory,
	events port.BudgetEvents,
	logger *slog.Logger,
) *URLUseCase {
	return &URLUseCase{campaigns: campaigns, urls: urls, inventory: inventory, events: events, logger: logger}
}

// ListURLs returns the URLs of a campaign.
func (u *URLUseCase) ListURLs(ctx context.Context, campaignID int64) ([]domain.URL, error) {
	if _, err := u.campaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.urls.ListByCampaign(ctx, campaignID)
}

// CreateURL stores a new URL and emits its URLCreated event. A failing
// aggregator does not undo the creation.
func (u *URLUseCase) CreateURL(ctx context.Context, req port.CreateURLReq) (*domain.URL, error) {
	if err := validateTarget(req.TargetURL); err != nil {
		return nil, err
	}
	if req.OriginalClickLimit < 0 {
		return nil, &domain.ValidationError{Field: "originalClickLimit", Reason: "must not be negative"}
	}
	if req.Weight < 0 {
		return nil, &domain.ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	c, err := u.campaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	created := &domain.URL{
		CampaignID:         req.CampaignID,
		TargetURL:          req.TargetURL,
		OriginalClickLimit: req.OriginalClickLimit,
		Weight:             req.Weight,
		Status:             domain.URLStatusActive,
	}
	if err = u.urls.CreateURL(ctx, created); err != nil {
		return nil, err
	}
	u.inventory.Invalidate(req.CampaignID)

	ev := domain.URLCreated{
		CampaignID:       created.CampaignID,
		URLID:            created.ID,
		ClickLimit:       created.ClickLimit,
		Clicks:           created.Clicks,
		Status:           created.Status,
		PricePerThousand: c.PricePerThousand,
		At:               created.CreatedAt,
	}
	if err = u.events.URLCreated(ctx, ev); err != nil {
		u.logger.Warn("url budget not queued",
			slog.Int64("campaign_id", created.CampaignID),
			slog.Int64("url_id", created.ID),
			slog.Any("error", err))
	}
	return created, nil
}

// UpdateURL applies an administrative update. A baseline change without
// bypass is discarded by the repository and reported in the result.
func (u *URLUseCase) UpdateURL(ctx context.Context, id int64, upd domain.URLUpdate, bypass bool) (*port.URLUpdateResult, error) {
	if upd.TargetURL != nil {
		if err := validateTarget(*upd.TargetURL); err != nil {
			return nil, err
		}
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}
	if upd.Weight != nil && *upd.Weight < 1 {
		return nil, &domain.ValidationError{Field: "weight", Reason: "must be positive"}
	}
	if upd.OriginalClickLimit != nil && *upd.OriginalClickLimit < 0 {
		return nil, &domain.ValidationError{Field: "originalClickLimit", Reason: "must not be negative"}
	}

	res, err := u.urls.UpdateURL(ctx, id, upd, bypass)
	if err != nil {
		return nil, err
	}
	u.inventory.Invalidate(res.URL.CampaignID)
	if err := res.Violation(); err != nil {
		u.logger.Warn("baseline update discarded", slog.Any("error", err))
	}
	if bypass && upd.OriginalClickLimit != nil {
		u.logger.Info("original click limit changed with bypass",
			slog.Int64("url_id", id),
			slog.Int64("original_click_limit", res.URL.OriginalClickLimit))
	}
	return res, nil
}

// SetMultiplier stores a campaign multiplier and recomputes click limits.
func (u *URLUseCase) SetMultiplier(ctx context.Context, campaignID int64, multiplier decimal.Decimal) (int64, error) {
	if !multiplier.IsPositive() || multiplier.GreaterThan(maxMultiplier) {
		return 0, &domain.ValidationError{Field: "multiplier", Reason: "must be in (0, 100]"}
	}
	updated, err := u.campaigns.UpdateMultiplier(ctx, campaignID, multiplier)
	if err != nil {
		return 0, err
	}
	u.inventory.Invalidate(campaignID)
	return updated, nil
}

// ListWarnings returns recent discarded baseline writes.
func (u *URLUseCase) ListWarnings(ctx context.Context, limit int) ([]domain.ClickLimitWarning, error) {
	return u.urls.ListClickLimitWarnings(ctx, clampLimit(limit))
}

func (u *URLUseCase) campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

func validateTarget(raw string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &domain.ValidationError{Field: "targetUrl", Reason: "must be an absolute http(s) url"}
	}
	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return 100
	case limit > 500:
		return 500
	}
	return limit
}
