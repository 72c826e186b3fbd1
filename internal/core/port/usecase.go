package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
)

// AutomationUseCase exposes the traffic sender controls to the dashboard.
type AutomationUseCase interface {
	// Status returns the automation view of a campaign.
	Status(ctx context.Context, campaignID int64) (*AutomationStatus, error)
	// RunNow forces one evaluation, waiting for any in-flight one.
	RunNow(ctx context.Context, campaignID int64) (*AutomationStatus, error)
	// Configure enables or disables automation and sets the wait period.
	Configure(ctx context.Context, campaignID int64, req ConfigureAutomationReq) (*AutomationStatus, error)
}

// ConfigureAutomationReq carries optional automation changes.
type ConfigureAutomationReq struct {
	Enabled     *bool
	WaitMinutes *int
}

// AutomationStatus is the read model of a campaign's automation.
type AutomationStatus struct {
	CampaignID        int64
	Enabled           bool
	State             domain.AutomationState
	WaitMinutes       int
	WaitStartTime     *time.Time
	DailySpent        decimal.Decimal
	DailySpentDate    string
	RemainingClicks   int64
	AppliedBudget     decimal.Decimal
	PendingURLBudgets map[int64]decimal.Decimal
	BudgetedURLIDs    []int64
	LastAction        *time.Time
}

// ClickUseCase serves clicks.
type ClickUseCase interface {
	// Serve picks a URL of the campaign and records the click.
	Serve(ctx context.Context, campaignID int64) (*domain.Click, error)
}

// URLUseCase manages campaign URLs.
type URLUseCase interface {
	ListURLs(ctx context.Context, campaignID int64) ([]domain.URL, error)
	CreateURL(ctx context.Context, req CreateURLReq) (*domain.URL, error)
	UpdateURL(ctx context.Context, id int64, upd domain.URLUpdate, bypass bool) (*URLUpdateResult, error)
	SetMultiplier(ctx context.Context, campaignID int64, multiplier decimal.Decimal) (int64, error)
	ListWarnings(ctx context.Context, limit int) ([]domain.ClickLimitWarning, error)
}

// CreateURLReq describes a new URL.
type CreateURLReq struct {
	CampaignID         int64
	TargetURL          string
	OriginalClickLimit int64
	Weight             int
}

// SettingsUseCase reads and validates operator settings.
type SettingsUseCase interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)
}

// ErrorLogUseCase lets operators review failed external calls.
type ErrorLogUseCase interface {
	ListUnresolved(ctx context.Context, limit int) ([]domain.ErrorLogEntry, error)
	Resolve(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) (int64, error)
}

// BudgetEvents receives URL creation events for budget aggregation.
type BudgetEvents interface {
	// URLCreated queues the budget delta of a new URL. Duplicate URL ids
	// are ignored.
	URLCreated(ctx context.Context, ev domain.URLCreated) error
}
