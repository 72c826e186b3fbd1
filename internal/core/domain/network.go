package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Network campaign statuses as reported by the ad network.
const (
	NetworkStatusActive = "active"
	NetworkStatusPaused = "paused"
)

// NetworkCampaign is the ad network's view of a campaign.
type NetworkCampaign struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Active          bool            `json:"active"`
	MaxDaily        decimal.Decimal `json:"max_daily"`
	ScheduleEndTime *time.Time      `json:"schedule_end_time,omitempty"`
}

// IsActive reports whether the network is currently delivering traffic.
func (c NetworkCampaign) IsActive() bool {
	return c.Active && c.Status == NetworkStatusActive
}

// CampaignPatch is a partial campaign update. Nil fields are left untouched
// on the network.
type CampaignPatch struct {
	Status          *string
	Active          *bool
	MaxDaily        *decimal.Decimal
	ScheduleEndTime *time.Time
}

// PausePatch stops delivery.
func PausePatch() CampaignPatch {
	status, active := NetworkStatusPaused, false
	return CampaignPatch{Status: &status, Active: &active}
}

// ActivatePatch resumes delivery until end. A zero end leaves the schedule
// untouched.
func ActivatePatch(end time.Time) CampaignPatch {
	status, active := NetworkStatusActive, true
	p := CampaignPatch{Status: &status, Active: &active}
	if !end.IsZero() {
		p.ScheduleEndTime = &end
	}
	return p
}

// BudgetPatch sets the daily budget without touching activation.
func BudgetPatch(maxDaily decimal.Decimal) CampaignPatch {
	return CampaignPatch{MaxDaily: &maxDaily}
}

// EndOfDayUTC returns 23:59 UTC on the day of t.
func EndOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, time.UTC)
}

// SpendDate formats the UTC day used for spend reports.
func SpendDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
