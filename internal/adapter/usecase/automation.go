package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/observability"
)

var thousand = decimal.NewFromInt(1000)

// AutomationUseCase drives the per-campaign traffic sender state machine.
// Evaluations of one campaign are serialised through the shared
// CampaignLocker; persisted state only advances after the ad network
// confirmed the corresponding call.
type AutomationUseCase struct {
	campaigns port.CampaignRepository
	settings  port.SettingsRepository
	network   port.AdNetwork
	inventory port.ClickInventory
	errLog    port.ErrorLogRepository
	locks     *CampaignLocker
	logger    *slog.Logger

	evalTimeout time.Duration
	now         func() time.Time
}

// NewAutomationUseCase wires the state machine. evalTimeout bounds a single
// evaluation; zero means no bound beyond the caller's context.
func NewAutomationUseCase(
	campaigns port.CampaignRepository,
	settings port.SettingsRepository,
	network port.AdNetwork,
	inventory port.ClickInventory,
	errLog port.ErrorLogRepository,
	locks *CampaignLocker,
	logger *slog.Logger,
	evalTimeout time.Duration,
) *AutomationUseCase {
	return &AutomationUseCase{
		campaigns:   campaigns,
		settings:    settings,
		network:     network,
		inventory:   inventory,
		errLog:      errLog,
		locks:       locks,
		logger:      logger,
		evalTimeout: evalTimeout,
		now:         time.Now,
	}
}

// Tick evaluates one campaign on behalf of the scheduler. A campaign whose
// previous evaluation is still running is skipped.
func (u *AutomationUseCase) Tick(ctx context.Context, campaignID int64) error {
	release, ok := u.locks.TryAcquire(campaignID)
	if !ok {
		u.logger.Debug("evaluation in flight, skipping tick", slog.Int64("campaign_id", campaignID))
		return nil
	}
	defer release()
	return u.evaluate(ctx, campaignID)
}

// RunNow forces one evaluation, waiting for an in-flight one to finish.
func (u *AutomationUseCase) RunNow(ctx context.Context, campaignID int64) (*port.AutomationStatus, error) {
	release, ok := u.locks.Acquire(ctx, campaignID)
	if !ok {
		return nil, ctx.Err()
	}
	err := u.evaluate(ctx, campaignID)
	release()
	if err != nil {
		return nil, err
	}
	return u.Status(ctx, campaignID)
}

// Status returns the automation view of a campaign.
func (u *AutomationUseCase) Status(ctx context.Context, campaignID int64) (*port.AutomationStatus, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	remaining, err := u.inventory.RemainingClicks(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	a := c.Automation
	return &port.AutomationStatus{
		CampaignID:        c.ID,
		Enabled:           a.Enabled,
		State:             a.State,
		WaitMinutes:       a.WaitMinutes,
		WaitStartTime:     a.WaitStartTime,
		DailySpent:        a.DailySpent,
		DailySpentDate:    a.DailySpentDate,
		RemainingClicks:   remaining,
		AppliedBudget:     a.AppliedBudget,
		PendingURLBudgets: a.PendingURLBudgets,
		BudgetedURLIDs:    a.BudgetedURLIDs,
		LastAction:        a.LastAction,
	}, nil
}

// Configure enables or disables automation and changes the wait period.
// Toggling resets the state to idle and invalidates in-flight evaluations.
func (u *AutomationUseCase) Configure(ctx context.Context, campaignID int64, req port.ConfigureAutomationReq) (*port.AutomationStatus, error) {
	if req.WaitMinutes != nil && !domain.ValidWaitMinutes(*req.WaitMinutes) {
		return nil, &domain.ValidationError{Field: "waitMinutes", Reason: "must be between 1 and 60"}
	}
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	if req.WaitMinutes != nil {
		if err = u.campaigns.SetWaitMinutes(ctx, campaignID, *req.WaitMinutes); err != nil {
			return nil, err
		}
	}
	if req.Enabled != nil && *req.Enabled != c.Automation.Enabled {
		if _, err = u.campaigns.SetAutomationEnabled(ctx, campaignID, *req.Enabled); err != nil {
			return nil, err
		}
		u.logger.Info("automation toggled",
			slog.Int64("campaign_id", campaignID),
			slog.Bool("enabled", *req.Enabled))
	}
	return u.Status(ctx, campaignID)
}

// evaluate runs one state machine step. The caller holds the campaign lock.
func (u *AutomationUseCase) evaluate(ctx context.Context, campaignID int64) (err error) {
	if u.evalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.evalTimeout)
		defer cancel()
	}
	ctx = port.WithCampaignID(ctx, campaignID)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("automation of campaign %d panicked: %v", campaignID, r)
		}
		if err != nil {
			observability.TickErrors.Inc()
			u.recordFailure(ctx, campaignID, err)
		}
	}()

	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCampaignNotFound
	}
	if !c.Automation.Enabled {
		return nil
	}
	settings, err := u.settings.GetSettings(ctx)
	if err != nil {
		return err
	}

	now := u.now().UTC()
	a := c.Automation
	from := a.State

	switch a.State {
	case domain.StateIdle:
		err = u.enterWaiting(ctx, c, &a, now)
	case domain.StateWaiting:
		if !domain.ValidWaitMinutes(a.WaitMinutes) {
			a.WaitMinutes = settings.DefaultWaitMinutes
		}
		if !a.WaitElapsed(now) {
			return nil
		}
		err = u.evaluateRegime(ctx, c, &a, settings, now)
	case domain.StateCondition1, domain.StateCondition2:
		err = u.evaluateRegime(ctx, c, &a, settings, now)
	default:
		// unreachable: the repository maps unknown values to idle
		return fmt.Errorf("%w: %q", domain.ErrUnknownState, a.State)
	}
	if err != nil {
		return err
	}

	if err = u.campaigns.SaveAutomation(ctx, campaignID, a); err != nil {
		if errors.Is(err, port.ErrStaleAutomation) {
			u.logger.Info("automation changed during evaluation, result not applied",
				slog.Int64("campaign_id", campaignID),
				slog.String("computed_state", string(a.State)))
			return nil
		}
		return err
	}
	if from != a.State {
		observability.Transitions.WithLabelValues(string(from), string(a.State)).Inc()
		u.logger.Info("automation state changed",
			slog.Int64("campaign_id", campaignID),
			slog.String("from", string(from)),
			slog.String("to", string(a.State)))
	}
	return nil
}

// enterWaiting pauses the network campaign and starts the waiting period.
func (u *AutomationUseCase) enterWaiting(ctx context.Context, c *domain.Campaign, a *domain.Automation, now time.Time) error {
	if err := u.network.PatchCampaign(ctx, c.NetworkCampaignID, domain.PausePatch()); err != nil {
		return err
	}
	a.State = domain.StateWaiting
	a.WaitStartTime = &now
	a.LastAction = &now
	return nil
}

// evaluateRegime classifies the campaign by today's spend and runs the
// action of the selected regime in the same evaluation.
func (u *AutomationUseCase) evaluateRegime(ctx context.Context, c *domain.Campaign, a *domain.Automation, s domain.Settings, now time.Time) error {
	spent, err := u.network.GetDailySpend(ctx, c.NetworkCampaignID, now)
	if err != nil {
		return err
	}
	remaining, err := u.inventory.RemainingClicks(ctx, c.ID)
	if err != nil {
		return err
	}
	a.DailySpent = spent
	a.DailySpentDate = domain.SpendDate(now)

	if spent.LessThan(s.SpendThreshold) {
		a.State = domain.StateCondition1
		return u.clickRegime(ctx, c, a, s, remaining, now)
	}
	a.State = domain.StateCondition2
	return u.budgetRegime(ctx, c, a, s, spent, remaining, now)
}

// clickRegime activates or pauses based on remaining clicks with a
// hysteresis band between the two thresholds.
func (u *AutomationUseCase) clickRegime(ctx context.Context, c *domain.Campaign, a *domain.Automation, s domain.Settings, remaining int64, now time.Time) error {
	switch {
	case remaining > s.RemainingClicksThreshold:
		end := domain.EndOfDayUTC(now)
		nc, err := u.network.GetCampaign(ctx, c.NetworkCampaignID)
		if err != nil {
			return err
		}
		if nc.IsActive() && nc.ScheduleEndTime != nil && nc.ScheduleEndTime.Equal(end) {
			return nil
		}
		if err = u.network.PatchCampaign(ctx, c.NetworkCampaignID, domain.ActivatePatch(end)); err != nil {
			return err
		}
		a.LastAction = &now
	case remaining <= s.MinimumClicksThreshold:
		nc, err := u.network.GetCampaign(ctx, c.NetworkCampaignID)
		if err != nil {
			return err
		}
		if !nc.IsActive() {
			return nil
		}
		if err = u.network.PatchCampaign(ctx, c.NetworkCampaignID, domain.PausePatch()); err != nil {
			return err
		}
		a.LastAction = &now
	}
	return nil
}

// budgetRegime sets the daily budget from spend and remaining inventory.
// Large targets are approached in steps of StagedIncrement.
func (u *AutomationUseCase) budgetRegime(ctx context.Context, c *domain.Campaign, a *domain.Automation, s domain.Settings, spent decimal.Decimal, remaining int64, now time.Time) error {
	nc, err := u.network.GetCampaign(ctx, c.NetworkCampaignID)
	if err != nil {
		return err
	}
	target := StagedBudget(
		TargetBudget(spent, c.PricePerThousand, remaining),
		budgetBase(a.AppliedBudget, nc.MaxDaily, spent),
		s.StagedThreshold,
		s.StagedIncrement,
	)

	if nc.IsActive() && nc.MaxDaily.Equal(target) {
		a.AppliedBudget = target
		return nil
	}
	patch := domain.BudgetPatch(target)
	if !nc.IsActive() {
		act := domain.ActivatePatch(domain.EndOfDayUTC(now))
		patch.Status, patch.Active, patch.ScheduleEndTime = act.Status, act.Active, act.ScheduleEndTime
	}
	if err = u.network.PatchCampaign(ctx, c.NetworkCampaignID, patch); err != nil {
		return err
	}
	a.AppliedBudget = target
	a.LastAction = &now
	return nil
}

// TargetBudget is spent + pricePerThousand/1000 × remaining.
func TargetBudget(spent, pricePerThousand decimal.Decimal, remaining int64) decimal.Decimal {
	return spent.Add(pricePerThousand.Div(thousand).Mul(decimal.NewFromInt(remaining)))
}

// StagedBudget returns the budget to apply now. Targets at or above
// threshold that exceed base by more than increment are capped at
// base + increment. The result is rounded to cents.
func StagedBudget(target, base, threshold, increment decimal.Decimal) decimal.Decimal {
	if target.GreaterThanOrEqual(threshold) && target.GreaterThan(base.Add(increment)) {
		target = base.Add(increment)
	}
	return target.Round(2)
}

func budgetBase(applied, networkMax, spent decimal.Decimal) decimal.Decimal {
	switch {
	case applied.IsPositive():
		return applied
	case networkMax.IsPositive():
		return networkMax
	default:
		return spent
	}
}

// recordFailure logs a failed evaluation. Ad network failures are already
// in the error log, so only local failures are recorded here.
func (u *AutomationUseCase) recordFailure(ctx context.Context, campaignID int64, err error) {
	u.logger.Error("automation evaluation failed",
		slog.Int64("campaign_id", campaignID),
		slog.Any("error", err))
	if isNetworkError(err) || errors.Is(err, context.Canceled) || errors.Is(err, domain.ErrCampaignNotFound) {
		return
	}
	id := campaignID
	entry := &domain.ErrorLogEntry{
		CampaignID: &id,
		Endpoint:   "automation",
		Method:     "TICK",
		Message:    err.Error(),
	}
	if rerr := u.errLog.RecordError(context.WithoutCancel(ctx), entry); rerr != nil {
		u.logger.Error("failed to record automation error", slog.Any("error", rerr))
	}
}

func isNetworkError(err error) bool {
	var (
		transient *domain.TransientNetworkError
		auth      *domain.AuthError
		api       *domain.APIError
	)
	return errors.As(err, &transient) || errors.As(err, &auth) || errors.As(err, &api)
}
