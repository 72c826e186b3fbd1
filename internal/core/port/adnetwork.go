package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
)

// AdNetwork is the outbound port to the external ad-buying network. Errors
// are *domain.TransientNetworkError, *domain.AuthError or *domain.APIError.
type AdNetwork interface {
	// Token returns a valid access token, refreshing it when near expiry.
	Token(ctx context.Context) (string, error)
	// GetCampaign reads the network campaign.
	GetCampaign(ctx context.Context, networkID string) (*domain.NetworkCampaign, error)
	// PatchCampaign applies a partial update to the network campaign.
	PatchCampaign(ctx context.Context, networkID string, patch domain.CampaignPatch) error
	// GetDailySpend returns the money spent on the UTC day of date.
	GetDailySpend(ctx context.Context, networkID string, date time.Time) (decimal.Decimal, error)
}

// ClickInventory is the click-serving view of campaign URLs.
type ClickInventory interface {
	// URLs returns the campaign URLs, possibly up to one TTL stale.
	URLs(ctx context.Context, campaignID int64) ([]domain.URL, error)
	// Pick chooses an eligible URL by weight or fails with
	// domain.ErrNoEligibleURL.
	Pick(ctx context.Context, campaignID int64) (domain.URL, error)
	// RemainingClicks sums remaining clicks over active URLs.
	RemainingClicks(ctx context.Context, campaignID int64) (int64, error)
	// Invalidate drops the cached entry of a campaign.
	Invalidate(campaignID int64)
}

type campaignCtxKey struct{}

// WithCampaignID tags ctx with the local campaign id so outbound adapters
// can attribute failures.
func WithCampaignID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, campaignCtxKey{}, id)
}

// CampaignIDFromContext returns the id set by WithCampaignID.
func CampaignIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(campaignCtxKey{}).(int64)
	return id, ok
}
