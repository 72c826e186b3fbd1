package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/observability"
)

// ClickUseCase serves click redirects. It never touches the automation
// lock: the only write is the atomic click increment.
type ClickUseCase struct {
	inventory port.ClickInventory
	urls      port.URLRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewClickUseCase creates the click path.
func NewClickUseCase(inventory port.ClickInventory, urls port.URLRepository, logger *slog.Logger) *ClickUseCase {
	return &ClickUseCase{inventory: inventory, urls: urls, logger: logger, now: time.Now}
}

// Serve picks a URL by weight and records the click. A URL that left the
// active status since the cache was loaded is dropped from the cache and
// the pick is repeated once.
func (u *ClickUseCase) Serve(ctx context.Context, campaignID int64) (*domain.Click, error) {
	for range 2 {
		picked, err := u.inventory.Pick(ctx, campaignID)
		if err != nil {
			if errors.Is(err, domain.ErrNoEligibleURL) {
				observability.ClicksServed.WithLabelValues("no_inventory").Inc()
			}
			return nil, err
		}

		stored, err := u.urls.IncrementClicks(ctx, picked.ID)
		if errors.Is(err, port.ErrURLNotServable) {
			u.inventory.Invalidate(campaignID)
			continue
		}
		if err != nil {
			return nil, err
		}

		click := &domain.Click{
			CampaignID: campaignID,
			URLID:      stored.ID,
			TargetURL:  stored.TargetURL,
			Clicks:     stored.Clicks,
			ClickLimit: stored.ClickLimit,
			ServedAt:   u.now(),
		}
		if click.LimitReached() {
			u.inventory.Invalidate(campaignID)
			u.logger.Info("url reached its click limit",
				slog.Int64("campaign_id", campaignID),
				slog.Int64("url_id", stored.ID),
				slog.Int64("click_limit", stored.ClickLimit))
		}
		observability.ClicksServed.WithLabelValues("served").Inc()
		return click, nil
	}
	observability.ClicksServed.WithLabelValues("no_inventory").Inc()
	return nil, domain.ErrNoEligibleURL
}
