package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// AutomationState is the traffic sender state of a campaign.
type AutomationState string

const (
	StateIdle       AutomationState = "idle"
	StateWaiting    AutomationState = "waiting"
	StateCondition1 AutomationState = "condition1" // click-based regime
	StateCondition2 AutomationState = "condition2" // budget-based regime
)

// ErrUnknownState is returned by ParseAutomationState for values outside the
// closed set of states.
var ErrUnknownState = errors.New("unknown automation state")

// ParseAutomationState converts a stored value into an AutomationState.
// Unrecognised values yield StateIdle together with ErrUnknownState so the
// caller can log the corruption and continue from a safe state.
func ParseAutomationState(s string) (AutomationState, error) {
	switch st := AutomationState(s); st {
	case StateIdle, StateWaiting, StateCondition1, StateCondition2:
		return st, nil
	case "":
		return StateIdle, nil
	default:
		return StateIdle, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// Campaign represents an advertising campaign mirrored on the ad network.
// Money values are expressed in dollars.
type Campaign struct {
	ID                int64
	Name              string
	NetworkCampaignID string
	PricePerThousand  decimal.Decimal // price per thousand clicks
	Multiplier        decimal.Decimal // clickLimit = originalClickLimit * multiplier
	Automation        Automation
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Automation holds the persisted traffic sender fields of a campaign. It is
// mutated only by the state machine and the budget aggregator.
type Automation struct {
	Enabled       bool
	State         AutomationState
	WaitStartTime *time.Time
	WaitMinutes   int

	// BudgetedURLIDs and the keys of PendingURLBudgets are disjoint: a URL
	// id is either waiting for the next aggregated budget call or already
	// merged into an applied budget.
	BudgetedURLIDs    []int64
	PendingURLBudgets map[int64]decimal.Decimal

	DailySpent     decimal.Decimal
	DailySpentDate string // YYYY-MM-DD, UTC
	AppliedBudget  decimal.Decimal
	LastAction     *time.Time
	LastEventAt    *time.Time

	// Generation is bumped every time automation is enabled or disabled.
	// Saves carrying an older generation are refused.
	Generation int64
}

// IsBudgeted reports whether the URL id already contributed to an applied
// budget.
func (a *Automation) IsBudgeted(urlID int64) bool {
	return slices.Contains(a.BudgetedURLIDs, urlID)
}

// IsPending reports whether the URL id has a pending budget delta.
func (a *Automation) IsPending(urlID int64) bool {
	_, ok := a.PendingURLBudgets[urlID]
	return ok
}

// PendingTotal sums all pending budget deltas.
func (a *Automation) PendingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range a.PendingURLBudgets {
		total = total.Add(d)
	}
	return total
}

// CommitPending moves every pending URL id into BudgetedURLIDs and clears
// the pending map. The returned ids are sorted.
func (a *Automation) CommitPending() []int64 {
	ids := slices.Sorted(maps.Keys(a.PendingURLBudgets))
	for _, id := range ids {
		if !slices.Contains(a.BudgetedURLIDs, id) {
			a.BudgetedURLIDs = append(a.BudgetedURLIDs, id)
		}
	}
	a.PendingURLBudgets = map[int64]decimal.Decimal{}
	return ids
}

// Reset returns the automation to idle, keeping budget bookkeeping intact.
func (a *Automation) Reset() {
	a.State = StateIdle
	a.WaitStartTime = nil
}

// WaitElapsed reports whether the waiting period has passed at now.
func (a *Automation) WaitElapsed(now time.Time) bool {
	if a.WaitStartTime == nil {
		return true
	}
	return now.Sub(*a.WaitStartTime) >= time.Duration(a.WaitMinutes)*time.Minute
}
