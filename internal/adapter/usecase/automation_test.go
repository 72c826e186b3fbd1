package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/core/port/mocks"
)

var t0 = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type automationDeps struct {
	campaigns *mocks.MockCampaignRepository
	settings  *mocks.MockSettingsRepository
	network   *mocks.MockAdNetwork
	inventory *mocks.MockClickInventory
	errLog    *mocks.MockErrorLogRepository
	locks     *CampaignLocker
}

func newAutomation(t *testing.T, now time.Time) (*AutomationUseCase, automationDeps) {
	t.Helper()
	d := automationDeps{
		campaigns: mocks.NewMockCampaignRepository(t),
		settings:  mocks.NewMockSettingsRepository(t),
		network:   mocks.NewMockAdNetwork(t),
		inventory: mocks.NewMockClickInventory(t),
		errLog:    mocks.NewMockErrorLogRepository(t),
		locks:     NewCampaignLocker(),
	}
	u := NewAutomationUseCase(d.campaigns, d.settings, d.network, d.inventory, d.errLog, d.locks, discardLogger(), time.Minute)
	u.now = func() time.Time { return now }
	return u, d
}

func campaignIn(state domain.AutomationState, mutate ...func(*domain.Campaign)) *domain.Campaign {
	c := &domain.Campaign{
		ID:                1,
		NetworkCampaignID: "net-1",
		PricePerThousand:  dec("0.50"),
		Multiplier:        decimal.NewFromInt(1),
		Automation: domain.Automation{
			Enabled:     true,
			State:       state,
			WaitMinutes: 2,
			Generation:  3,
		},
	}
	for _, m := range mutate {
		m(c)
	}
	return c
}

func waitingSince(start time.Time) func(*domain.Campaign) {
	return func(c *domain.Campaign) { c.Automation.WaitStartTime = &start }
}

func (d automationDeps) expectLoad(c *domain.Campaign) {
	d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil).Once()
	d.settings.EXPECT().GetSettings(mock.Anything).Return(domain.DefaultSettings(), nil).Once()
}

func savedAs(state domain.AutomationState, extra func(domain.Automation) bool) any {
	return mock.MatchedBy(func(a domain.Automation) bool {
		return a.State == state && a.Generation == 3 && (extra == nil || extra(a))
	})
}

func TestIdlePausesAndStartsWaiting(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateIdle))

	d.network.EXPECT().PatchCampaign(mock.Anything, "net-1", domain.PausePatch()).Return(nil).Once()
	d.campaigns.EXPECT().
		SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateWaiting, func(a domain.Automation) bool {
			return a.WaitStartTime != nil && a.WaitStartTime.Equal(t0)
		})).
		Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestPauseFailureDoesNotAdvanceState(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateIdle))

	netErr := &domain.TransientNetworkError{Endpoint: "patch_campaign", StatusCode: 503, Err: errors.New("unavailable")}
	d.network.EXPECT().PatchCampaign(mock.Anything, "net-1", mock.Anything).Return(netErr).Once()

	err := u.Tick(context.Background(), 1)
	var transient *domain.TransientNetworkError
	require.ErrorAs(t, err, &transient)
	d.campaigns.AssertNotCalled(t, "SaveAutomation", mock.Anything, mock.Anything, mock.Anything)
}

func TestWaitingHonoursWaitMinutes(t *testing.T) {
	// Scenario C: waitMinutes=2, tick at T+1:59 stays waiting.
	u, d := newAutomation(t, t0.Add(time.Minute+59*time.Second))
	d.expectLoad(campaignIn(domain.StateWaiting, waitingSince(t0)))

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestWaitingElapsedChecksSpend(t *testing.T) {
	// Scenario C: tick at T+2:01 proceeds to the spend check.
	now := t0.Add(2*time.Minute + time.Second)
	u, d := newAutomation(t, now)
	d.expectLoad(campaignIn(domain.StateWaiting, waitingSince(t0)))

	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", now).Return(dec("3"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(10_000), nil).Once()
	d.campaigns.EXPECT().
		SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition1, func(a domain.Automation) bool {
			return a.DailySpent.Equal(dec("3")) && a.DailySpentDate == "2026-03-04"
		})).
		Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestScenarioAActivatesUntilEndOfDay(t *testing.T) {
	now := t0.Add(5 * time.Minute)
	u, d := newAutomation(t, now)
	d.expectLoad(campaignIn(domain.StateWaiting, waitingSince(t0)))

	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", now).Return(dec("7.50"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(20_000), nil).Once()
	d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
		Return(&domain.NetworkCampaign{ID: "net-1", Status: domain.NetworkStatusPaused}, nil).Once()

	end := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)
	d.network.EXPECT().PatchCampaign(mock.Anything, "net-1", domain.ActivatePatch(end)).Return(nil).Once()
	d.campaigns.EXPECT().
		SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition1, func(a domain.Automation) bool {
			return a.LastAction != nil && a.LastAction.Equal(now)
		})).
		Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestAlreadyActiveCampaignIsNotPatchedAgain(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateCondition1))

	end := domain.EndOfDayUTC(t0)
	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("1"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(50_000), nil).Once()
	d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
		Return(&domain.NetworkCampaign{Status: domain.NetworkStatusActive, Active: true, ScheduleEndTime: &end}, nil).Once()
	d.campaigns.EXPECT().SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition1, nil)).Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestScenarioBAppliesBudgetDirectly(t *testing.T) {
	now := t0.Add(5 * time.Minute)
	u, d := newAutomation(t, now)
	d.expectLoad(campaignIn(domain.StateWaiting, waitingSince(t0)))

	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", now).Return(dec("12.00"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(3_000), nil).Once()
	d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
		Return(&domain.NetworkCampaign{Status: domain.NetworkStatusActive, Active: true, MaxDaily: dec("10")}, nil).Once()
	d.network.EXPECT().
		PatchCampaign(mock.Anything, "net-1", mock.MatchedBy(func(p domain.CampaignPatch) bool {
			return p.MaxDaily != nil && p.MaxDaily.Equal(dec("13.50")) && p.Status == nil && p.Active == nil
		})).
		Return(nil).Once()
	d.campaigns.EXPECT().
		SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition2, func(a domain.Automation) bool {
			return a.AppliedBudget.Equal(dec("13.50"))
		})).
		Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestStagedBudgetActivatesPausedCampaign(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateCondition2, func(c *domain.Campaign) {
		c.PricePerThousand = dec("1")
		c.Automation.AppliedBudget = dec("60")
	}))

	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("40"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(200_000), nil).Once()
	d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
		Return(&domain.NetworkCampaign{Status: domain.NetworkStatusPaused, MaxDaily: dec("60")}, nil).Once()
	d.network.EXPECT().
		PatchCampaign(mock.Anything, "net-1", mock.MatchedBy(func(p domain.CampaignPatch) bool {
			return p.MaxDaily != nil && p.MaxDaily.Equal(dec("85")) &&
				p.Status != nil && *p.Status == domain.NetworkStatusActive &&
				p.Active != nil && *p.Active &&
				p.ScheduleEndTime != nil && p.ScheduleEndTime.Equal(domain.EndOfDayUTC(t0))
		})).
		Return(nil).Once()
	d.campaigns.EXPECT().
		SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition2, func(a domain.Automation) bool {
			return a.AppliedBudget.Equal(dec("85"))
		})).
		Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestScenarioDHysteresis(t *testing.T) {
	t.Run("below minimum pauses", func(t *testing.T) {
		u, d := newAutomation(t, t0)
		d.expectLoad(campaignIn(domain.StateCondition1))
		d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("2"), nil).Once()
		d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(4_999), nil).Once()
		d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
			Return(&domain.NetworkCampaign{Status: domain.NetworkStatusActive, Active: true}, nil).Once()
		d.network.EXPECT().PatchCampaign(mock.Anything, "net-1", domain.PausePatch()).Return(nil).Once()
		d.campaigns.EXPECT().SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition1, nil)).Return(nil).Once()

		require.NoError(t, u.Tick(context.Background(), 1))
	})

	t.Run("already paused is left alone", func(t *testing.T) {
		u, d := newAutomation(t, t0)
		d.expectLoad(campaignIn(domain.StateCondition1))
		d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("2"), nil).Once()
		d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(5_000), nil).Once()
		d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
			Return(&domain.NetworkCampaign{Status: domain.NetworkStatusPaused}, nil).Once()
		d.campaigns.EXPECT().SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition1, nil)).Return(nil).Once()

		require.NoError(t, u.Tick(context.Background(), 1))
	})

	t.Run("inside band does nothing", func(t *testing.T) {
		u, d := newAutomation(t, t0)
		d.expectLoad(campaignIn(domain.StateCondition1))
		d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("2"), nil).Once()
		d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(5_001), nil).Once()
		d.campaigns.EXPECT().SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition1, nil)).Return(nil).Once()

		require.NoError(t, u.Tick(context.Background(), 1))
	})
}

func TestRegimeFollowsSpend(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateCondition1, func(c *domain.Campaign) {
		c.Automation.AppliedBudget = dec("15")
	}))
	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("10"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(0), nil).Once()
	d.network.EXPECT().GetCampaign(mock.Anything, "net-1").
		Return(&domain.NetworkCampaign{Status: domain.NetworkStatusActive, Active: true, MaxDaily: dec("10")}, nil).Once()
	d.campaigns.EXPECT().
		SaveAutomation(mock.Anything, int64(1), savedAs(domain.StateCondition2, func(a domain.Automation) bool {
			return a.AppliedBudget.Equal(dec("10"))
		})).
		Return(nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestStaleGenerationIsNotApplied(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateIdle))
	d.network.EXPECT().PatchCampaign(mock.Anything, "net-1", mock.Anything).Return(nil).Once()
	d.campaigns.EXPECT().SaveAutomation(mock.Anything, int64(1), mock.Anything).Return(port.ErrStaleAutomation).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestDisabledCampaignIsNotEvaluated(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(campaignIn(domain.StateIdle, func(c *domain.Campaign) { c.Automation.Enabled = false }), nil).Once()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestLocalFailureIsRecorded(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaignIn(domain.StateIdle), nil).Once()
	d.settings.EXPECT().GetSettings(mock.Anything).Return(domain.Settings{}, errors.New("connection reset")).Once()
	d.errLog.EXPECT().
		RecordError(mock.Anything, mock.MatchedBy(func(e *domain.ErrorLogEntry) bool {
			return e.Method == "TICK" && e.CampaignID != nil && *e.CampaignID == 1 && e.Message == "connection reset"
		})).
		Return(nil).Once()

	require.EqualError(t, u.Tick(context.Background(), 1), "connection reset")
}

func TestPanicIsRecovered(t *testing.T) {
	u, d := newAutomation(t, t0)
	d.expectLoad(campaignIn(domain.StateCondition1))
	d.network.EXPECT().GetDailySpend(mock.Anything, "net-1", t0).Return(dec("1"), nil).Once()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (int64, error) { panic("boom") }).Once()
	d.errLog.EXPECT().RecordError(mock.Anything, mock.Anything).Return(nil).Once()

	err := u.Tick(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	// the lock was released
	release, ok := d.locks.TryAcquire(1)
	require.True(t, ok)
	release()
}

func TestTickSkipsBusyCampaign(t *testing.T) {
	u, d := newAutomation(t, t0)
	release, ok := d.locks.TryAcquire(1)
	require.True(t, ok)
	defer release()

	require.NoError(t, u.Tick(context.Background(), 1))
}

func TestRunNowWaitsForInFlightEvaluation(t *testing.T) {
	u, d := newAutomation(t, t0)
	release, ok := d.locks.TryAcquire(1)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := u.RunNow(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(campaignIn(domain.StateIdle, func(c *domain.Campaign) { c.Automation.Enabled = false }), nil).Twice()
	d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(42), nil).Once()

	st, err := u.RunNow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), st.RemainingClicks)
	assert.Equal(t, domain.StateIdle, st.State)
}

func TestConfigure(t *testing.T) {
	t.Run("rejects wait minutes out of range", func(t *testing.T) {
		u, _ := newAutomation(t, t0)
		minutes := 61
		_, err := u.Configure(context.Background(), 1, port.ConfigureAutomationReq{WaitMinutes: &minutes})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "waitMinutes", verr.Field)
	})

	t.Run("enables and sets wait", func(t *testing.T) {
		u, d := newAutomation(t, t0)
		disabled := campaignIn(domain.StateIdle, func(c *domain.Campaign) { c.Automation.Enabled = false })
		enabled := campaignIn(domain.StateIdle, func(c *domain.Campaign) { c.Automation.WaitMinutes = 5 })
		d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(disabled, nil).Once()
		d.campaigns.EXPECT().SetWaitMinutes(mock.Anything, int64(1), 5).Return(nil).Once()
		d.campaigns.EXPECT().SetAutomationEnabled(mock.Anything, int64(1), true).Return(&enabled.Automation, nil).Once()
		d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(enabled, nil).Once()
		d.inventory.EXPECT().RemainingClicks(mock.Anything, int64(1)).Return(int64(7), nil).Once()

		on, minutes := true, 5
		st, err := u.Configure(context.Background(), 1, port.ConfigureAutomationReq{Enabled: &on, WaitMinutes: &minutes})
		require.NoError(t, err)
		assert.True(t, st.Enabled)
		assert.Equal(t, 5, st.WaitMinutes)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		u, d := newAutomation(t, t0)
		d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, nil).Once()
		on := true
		_, err := u.Configure(context.Background(), 1, port.ConfigureAutomationReq{Enabled: &on})
		require.ErrorIs(t, err, domain.ErrCampaignNotFound)
	})
}

func TestStagedBudget(t *testing.T) {
	threshold, increment := dec("50"), dec("25")
	cases := []struct {
		name         string
		target, base string
		want         string
	}{
		{"below threshold applied directly", "13.5", "0", "13.5"},
		{"large jump is capped", "240", "60", "85"},
		{"within one increment applied directly", "60", "40", "60"},
		{"decrease applied directly", "55", "100", "55"},
		{"rounded to cents", "13.456", "0", "13.46"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StagedBudget(dec(tc.target), dec(tc.base), threshold, increment)
			assert.True(t, got.Equal(dec(tc.want)), "got %s", got)
		})
	}
}

func TestTargetBudget(t *testing.T) {
	got := TargetBudget(dec("12.00"), dec("0.50"), 3000)
	assert.True(t, got.Equal(dec("13.50")), "got %s", got)
}
