package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// URLCreated is emitted by every URL creation path (the ingestion
// collaborator, the HTTP API) and consumed by the budget aggregator.
type URLCreated struct {
	CampaignID       int64
	URLID            int64
	ClickLimit       int64
	Clicks           int64
	Status           URLStatus
	PricePerThousand decimal.Decimal
	At               time.Time
}

// BudgetDelta is the budget a new URL adds to its campaign. It is zero for
// inactive or unlimited URLs.
func (e URLCreated) BudgetDelta() decimal.Decimal {
	if e.Status != URLStatusActive || e.ClickLimit <= 0 || e.Clicks >= e.ClickLimit {
		return decimal.Zero
	}
	return decimal.NewFromInt(e.ClickLimit - e.Clicks).Mul(e.PricePerThousand).Div(decimal.NewFromInt(1000))
}

// Click is the outcome of a served click.
type Click struct {
	CampaignID int64
	URLID      int64
	TargetURL  string
	Clicks     int64 // click count after the increment
	ClickLimit int64
	ServedAt   time.Time
}

// LimitReached reports whether this click exhausted the URL.
func (c Click) LimitReached() bool {
	return c.ClickLimit > 0 && c.Clicks >= c.ClickLimit
}
