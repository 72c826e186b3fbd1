package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// URLStatus is the lifecycle status of a tracked URL.
type URLStatus string

const (
	URLStatusActive    URLStatus = "active"
	URLStatusPaused    URLStatus = "paused"
	URLStatusCompleted URLStatus = "completed"
	URLStatusDeleted   URLStatus = "deleted"
	URLStatusRejected  URLStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s URLStatus) Valid() bool {
	switch s {
	case URLStatusActive, URLStatusPaused, URLStatusCompleted, URLStatusDeleted, URLStatusRejected:
		return true
	}
	return false
}

// ActiveStatus is the derived serving eligibility of a URL. It is never
// stored.
type ActiveStatus string

const (
	ActiveStatusActive       ActiveStatus = "active"
	ActiveStatusLimitReached ActiveStatus = "limit-reached"
	ActiveStatusInactive     ActiveStatus = "inactive"
)

// UnlimitedRemaining stands in for the remaining clicks of a URL without a
// click limit.
const UnlimitedRemaining int64 = 1_000_000_000

// URL is a click destination belonging to a campaign.
type URL struct {
	ID                 int64
	CampaignID         int64
	TargetURL          string
	ClickLimit         int64 // 0 means unlimited
	OriginalClickLimit int64
	Clicks             int64
	Weight             int
	Status             URLStatus
	CreatedAt          time.Time
}

// ActiveStatus derives serving eligibility from status, limit and clicks.
func (u URL) ActiveStatus() ActiveStatus {
	if u.Status != URLStatusActive {
		return ActiveStatusInactive
	}
	if u.ClickLimit > 0 && u.Clicks >= u.ClickLimit {
		return ActiveStatusLimitReached
	}
	return ActiveStatusActive
}

// RemainingClicks returns the clicks left before the limit, or
// UnlimitedRemaining for an unlimited URL.
func (u URL) RemainingClicks() int64 {
	if u.ClickLimit <= 0 {
		return UnlimitedRemaining
	}
	return max(0, u.ClickLimit-u.Clicks)
}

// EffectiveWeight returns the selection weight, defaulting to 1.
func (u URL) EffectiveWeight() int {
	if u.Weight <= 0 {
		return 1
	}
	return u.Weight
}

// RemainingClicks sums the remaining clicks of all URLs with status active.
// The total saturates at UnlimitedRemaining.
func RemainingClicks(urls []URL) int64 {
	var total int64
	for _, u := range urls {
		if u.Status != URLStatusActive {
			continue
		}
		total += u.RemainingClicks()
		if total >= UnlimitedRemaining {
			return UnlimitedRemaining
		}
	}
	return total
}

// DeriveClickLimit applies the campaign multiplier to a baseline limit. A
// zero baseline stays unlimited.
func DeriveClickLimit(original int64, multiplier decimal.Decimal) int64 {
	if original <= 0 {
		return 0
	}
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(original).Mul(multiplier).Round(0).IntPart()
}

// URLUpdate is an administrative change to a URL. Nil fields are left
// untouched.
type URLUpdate struct {
	TargetURL          *string
	Status             *URLStatus
	Weight             *int
	OriginalClickLimit *int64
}

// ApplyUpdate returns u with upd applied. When upd changes the protected
// baseline without bypass the baseline write is discarded, ClickLimit keeps
// its previous value and the second result is true. The other fields of the
// update still apply.
func (u URL) ApplyUpdate(upd URLUpdate, multiplier decimal.Decimal, bypass bool) (URL, bool) {
	if upd.TargetURL != nil {
		u.TargetURL = *upd.TargetURL
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Weight != nil {
		u.Weight = *upd.Weight
	}
	if upd.OriginalClickLimit == nil || *upd.OriginalClickLimit == u.OriginalClickLimit {
		return u, false
	}
	if !bypass {
		return u, true
	}
	u.OriginalClickLimit = *upd.OriginalClickLimit
	u.ClickLimit = DeriveClickLimit(u.OriginalClickLimit, multiplier)
	return u, false
}

// ClickLimitWarning records a discarded write to a protected baseline.
type ClickLimitWarning struct {
	ID             int64
	URLID          int64
	AttemptedValue int64
	RetainedValue  int64
	CreatedAt      time.Time
}
