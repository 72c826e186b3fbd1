package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings are the operator-tunable automation thresholds. A single row is
// stored per deployment.
type Settings struct {
	MinimumClicksThreshold   int64
	RemainingClicksThreshold int64
	SpendThreshold           decimal.Decimal
	DefaultWaitMinutes       int
	DebounceWindow           time.Duration
	StagedThreshold          decimal.Decimal
	StagedIncrement          decimal.Decimal
	UpdatedAt                time.Time
}

// DefaultSettings returns the values a fresh deployment starts with.
func DefaultSettings() Settings {
	return Settings{
		MinimumClicksThreshold:   5000,
		RemainingClicksThreshold: 15000,
		SpendThreshold:           decimal.NewFromInt(10),
		DefaultWaitMinutes:       2,
		DebounceWindow:           11 * time.Minute,
		StagedThreshold:          decimal.NewFromInt(50),
		StagedIncrement:          decimal.NewFromInt(25),
	}
}

// Validate checks the documented ranges. The first violation is returned as
// a *ValidationError.
func (s Settings) Validate() error {
	switch {
	case s.MinimumClicksThreshold < 100 || s.MinimumClicksThreshold > 100_000:
		return &ValidationError{Field: "minimumClicksThreshold", Reason: "must be between 100 and 100000"}
	case s.RemainingClicksThreshold < 1000 || s.RemainingClicksThreshold > 1_000_000:
		return &ValidationError{Field: "remainingClicksThreshold", Reason: "must be between 1000 and 1000000"}
	case s.MinimumClicksThreshold >= s.RemainingClicksThreshold:
		return &ValidationError{Field: "minimumClicksThreshold", Reason: "must be lower than remainingClicksThreshold"}
	case !ValidWaitMinutes(s.DefaultWaitMinutes):
		return &ValidationError{Field: "defaultWaitMinutes", Reason: "must be between 1 and 60"}
	case s.DebounceWindow < time.Minute || s.DebounceWindow > time.Hour:
		return &ValidationError{Field: "debounceWindow", Reason: "must be between 1 and 60 minutes"}
	case !s.SpendThreshold.IsPositive():
		return &ValidationError{Field: "spendThreshold", Reason: "must be positive"}
	case !s.StagedThreshold.IsPositive():
		return &ValidationError{Field: "stagedThreshold", Reason: "must be positive"}
	case !s.StagedIncrement.IsPositive():
		return &ValidationError{Field: "stagedIncrement", Reason: "must be positive"}
	}
	return nil
}

// ValidWaitMinutes reports whether m is an accepted wait period.
func ValidWaitMinutes(m int) bool {
	return m >= 1 && m <= 60
}
