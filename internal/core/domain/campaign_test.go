package domain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAutomationState(t *testing.T) {
	for _, s := range []string{"idle", "waiting", "condition1", "condition2"} {
		got, err := ParseAutomationState(s)
		require.NoError(t, err)
		assert.Equal(t, AutomationState(s), got)
	}

	got, err := ParseAutomationState("")
	require.NoError(t, err)
	assert.Equal(t, StateIdle, got)

	got, err = ParseAutomationState("condition3")
	require.ErrorIs(t, err, ErrUnknownState)
	assert.Equal(t, StateIdle, got)
}

func TestCommitPending(t *testing.T) {
	a := Automation{
		BudgetedURLIDs: []int64{1},
		PendingURLBudgets: map[int64]decimal.Decimal{
			7: decimal.RequireFromString("1.5"),
			3: decimal.RequireFromString("0.25"),
		},
	}
	assert.True(t, a.IsPending(7))
	assert.True(t, a.PendingTotal().Equal(decimal.RequireFromString("1.75")))

	ids := a.CommitPending()
	assert.Equal(t, []int64{3, 7}, ids)
	assert.Equal(t, []int64{1, 3, 7}, a.BudgetedURLIDs)
	assert.Empty(t, a.PendingURLBudgets)
	assert.True(t, a.IsBudgeted(7))
	assert.False(t, a.IsPending(7))
}

func TestWaitElapsed(t *testing.T) {
	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	a := Automation{WaitMinutes: 2, WaitStartTime: &start}

	assert.False(t, a.WaitElapsed(start.Add(119*time.Second)))
	assert.True(t, a.WaitElapsed(start.Add(2*time.Minute)))
	assert.True(t, (&Automation{WaitMinutes: 2}).WaitElapsed(start))

	a.Reset()
	assert.Equal(t, StateIdle, a.State)
	assert.Nil(t, a.WaitStartTime)
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())

	tests := []struct {
		field  string
		mutate func(*Settings)
	}{
		{"minimumClicksThreshold", func(s *Settings) { s.MinimumClicksThreshold = 99 }},
		{"remainingClicksThreshold", func(s *Settings) { s.RemainingClicksThreshold = 2_000_000 }},
		{"minimumClicksThreshold", func(s *Settings) { s.MinimumClicksThreshold = s.RemainingClicksThreshold }},
		{"defaultWaitMinutes", func(s *Settings) { s.DefaultWaitMinutes = 0 }},
		{"debounceWindow", func(s *Settings) { s.DebounceWindow = 30 * time.Second }},
		{"spendThreshold", func(s *Settings) { s.SpendThreshold = decimal.Zero }},
		{"stagedIncrement", func(s *Settings) { s.StagedIncrement = decimal.NewFromInt(-1) }},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		tt.mutate(&s)
		var verr *ValidationError
		require.ErrorAs(t, s.Validate(), &verr)
		assert.Equal(t, tt.field, verr.Field)
	}
}

func TestPatches(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.FixedZone("EST", -5*3600))
	end := EndOfDayUTC(now)
	assert.Equal(t, time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC), end)
	assert.Equal(t, "2026-03-04", SpendDate(now))

	p := ActivatePatch(end)
	assert.Equal(t, NetworkStatusActive, *p.Status)
	assert.True(t, *p.Active)
	assert.Nil(t, p.MaxDaily)
	assert.Nil(t, ActivatePatch(time.Time{}).ScheduleEndTime)

	assert.False(t, *PausePatch().Active)
	assert.Nil(t, BudgetPatch(decimal.NewFromInt(5)).Status)
}

func TestSummarizePayload(t *testing.T) {
	assert.Equal(t, `{"a":1}`, SummarizePayload([]byte(`{"a":1}`)))

	long := SummarizePayload([]byte(strings.Repeat("x", MaxPayloadSummary+10)))
	assert.True(t, strings.HasSuffix(long, "...(truncated)"))
	assert.Len(t, long, MaxPayloadSummary+len("...(truncated)"))

	accented := SummarizePayload([]byte(strings.Repeat("a", MaxPayloadSummary-1) + "é"))
	assert.True(t, utf8.ValidString(accented))
	assert.Equal(t, strings.Repeat("a", MaxPayloadSummary-1)+"...(truncated)", accented)
}
