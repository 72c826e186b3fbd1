package port

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
)

// ErrStaleAutomation is returned by SaveAutomation when automation was
// enabled or disabled after the campaign was loaded.
var ErrStaleAutomation = errors.New("automation changed concurrently")

// ErrURLNotServable is returned by IncrementClicks when the URL left the
// active status before the click was recorded.
var ErrURLNotServable = errors.New("url not servable")

// CampaignRepository persists campaigns and their automation fields.
// Lookups return nil, nil for unknown ids.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListAutomationEnabled returns the ids of campaigns with automation on.
	ListAutomationEnabled(ctx context.Context) ([]int64, error)
	// ListWithPendingBudgets returns campaigns holding pending URL budgets.
	ListWithPendingBudgets(ctx context.Context) ([]domain.Campaign, error)
	// SaveAutomation stores the state machine fields when a.Generation
	// still matches the stored generation, otherwise ErrStaleAutomation.
	SaveAutomation(ctx context.Context, id int64, a domain.Automation) error
	// AddPendingBudget atomically records a pending URL budget delta. It
	// reports false when the URL is already pending or budgeted.
	AddPendingBudget(ctx context.Context, campaignID, urlID int64, delta decimal.Decimal, at time.Time) (bool, error)
	// CommitPendingBudgets moves urlIDs from pending to budgeted and stores
	// the applied budget.
	CommitPendingBudgets(ctx context.Context, campaignID int64, urlIDs []int64, applied decimal.Decimal, at time.Time) error
	// SetAutomationEnabled toggles automation, resets the state to idle and
	// bumps the generation.
	SetAutomationEnabled(ctx context.Context, id int64, enabled bool) (*domain.Automation, error)
	// SetWaitMinutes changes the waiting period of a campaign.
	SetWaitMinutes(ctx context.Context, id int64, minutes int) error
	// UpdateMultiplier stores a new multiplier and recomputes the click
	// limit of every URL from its original click limit.
	UpdateMultiplier(ctx context.Context, id int64, multiplier decimal.Decimal) (int64, error)
}

// URLRepository persists URLs. Implementations must enforce the original
// click limit protection at this boundary.
type URLRepository interface {
	// ListByCampaign returns all URLs of a campaign ordered by creation.
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.URL, error)
	// ListServable returns the active URLs below their limit. It backs the
	// uncached fallback of the click path.
	ListServable(ctx context.Context, campaignID int64) ([]domain.URL, error)
	// GetURL returns a URL by id.
	GetURL(ctx context.Context, id int64) (*domain.URL, error)
	// CreateURL inserts u, deriving ClickLimit from the campaign multiplier.
	CreateURL(ctx context.Context, u *domain.URL) error
	// IncrementClicks atomically adds one click to an active URL.
	IncrementClicks(ctx context.Context, id int64) (*domain.URL, error)
	// UpdateURL applies an administrative update. The original click limit
	// only changes when bypass is set for this single update.
	UpdateURL(ctx context.Context, id int64, upd domain.URLUpdate, bypass bool) (*URLUpdateResult, error)
	// ListClickLimitWarnings returns recent discarded baseline writes.
	ListClickLimitWarnings(ctx context.Context, limit int) ([]domain.ClickLimitWarning, error)
}

// URLUpdateResult reports the stored URL after an update and whether a
// protected baseline write was discarded.
type URLUpdateResult struct {
	URL              domain.URL
	BaselineRejected bool
}

// Violation returns domain.ErrProtectionViolation when the baseline write
// was discarded, nil otherwise.
func (r *URLUpdateResult) Violation() error {
	if r == nil || !r.BaselineRejected {
		return nil
	}
	return fmt.Errorf("url %d: %w", r.URL.ID, domain.ErrProtectionViolation)
}

// SettingsRepository persists the singleton automation settings row.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, s domain.Settings) error
}

// ErrorLogRepository persists failed external calls.
type ErrorLogRepository interface {
	// RecordError stores e, assigning ID and CreatedAt when empty.
	RecordError(ctx context.Context, e *domain.ErrorLogEntry) error
	// ListUnresolved returns unresolved entries, newest first.
	ListUnresolved(ctx context.Context, limit int) ([]domain.ErrorLogEntry, error)
	// Resolve marks one entry resolved. It reports false for unknown ids.
	Resolve(ctx context.Context, id uuid.UUID) (bool, error)
	// Clear deletes every entry and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}
