package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/observability"
)

type debounceTimer struct {
	timer *time.Timer
	seq   uint64
}

// BudgetAggregator merges budget deltas of newly created URLs into one
// max_daily increase per campaign. Each event restarts a trailing timer of
// the configured debounce window; when it fires the pending deltas are
// applied in a single network call under the campaign lock.
type BudgetAggregator struct {
	campaigns port.CampaignRepository
	settings  port.SettingsRepository
	network   port.AdNetwork
	errLog    port.ErrorLogRepository
	locks     *CampaignLocker
	logger    *slog.Logger

	fireTimeout time.Duration
	now         func() time.Time

	mu      sync.Mutex
	timers  map[int64]*debounceTimer
	seq     uint64
	stopped bool
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// NewBudgetAggregator creates an aggregator. fireTimeout bounds one flush.
func NewBudgetAggregator(
	campaigns port.CampaignRepository,
	settings port.SettingsRepository,
	network port.AdNetwork,
	errLog port.ErrorLogRepository,
	locks *CampaignLocker,
	logger *slog.Logger,
	fireTimeout time.Duration,
) *BudgetAggregator {
	ctx, cancel := context.WithCancel(context.Background())
	return &BudgetAggregator{
		campaigns:   campaigns,
		settings:    settings,
		network:     network,
		errLog:      errLog,
		locks:       locks,
		logger:      logger,
		fireTimeout: fireTimeout,
		now:         time.Now,
		timers:      make(map[int64]*debounceTimer),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// URLCreated queues the budget delta of a new URL and restarts the
// campaign's debounce timer. Inactive or unlimited URLs, campaigns without
// automation and URLs already pending or budgeted are ignored.
func (a *BudgetAggregator) URLCreated(ctx context.Context, ev domain.URLCreated) error {
	delta := ev.BudgetDelta()
	if !delta.IsPositive() {
		return nil
	}
	c, err := a.campaigns.GetCampaign(ctx, ev.CampaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCampaignNotFound
	}
	if !c.Automation.Enabled || c.Automation.IsPending(ev.URLID) || c.Automation.IsBudgeted(ev.URLID) {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = a.now()
	}
	added, err := a.campaigns.AddPendingBudget(ctx, ev.CampaignID, ev.URLID, delta, at)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	a.arm(ev.CampaignID, a.window(ctx))
	a.logger.Debug("url budget queued",
		slog.Int64("campaign_id", ev.CampaignID),
		slog.Int64("url_id", ev.URLID),
		slog.String("delta", delta.String()))
	return nil
}

// Start re-arms timers of campaigns that still hold pending budgets, firing
// after what is left of their debounce window.
func (a *BudgetAggregator) Start(ctx context.Context) error {
	pending, err := a.campaigns.ListWithPendingBudgets(ctx)
	if err != nil {
		return err
	}
	window := a.window(ctx)
	now := a.now()
	for _, c := range pending {
		d := window
		if last := c.Automation.LastEventAt; last != nil {
			d = max(window-now.Sub(*last), 0)
		}
		a.arm(c.ID, d)
	}
	a.logger.Info("budget aggregator started", slog.Int("pending_campaigns", len(pending)))
	return nil
}

// Stop cancels all timers and waits for running flushes.
func (a *BudgetAggregator) Stop() {
	a.mu.Lock()
	a.stopped = true
	for id, t := range a.timers {
		t.timer.Stop()
		delete(a.timers, id)
	}
	a.mu.Unlock()
	a.cancel()
	a.wg.Wait()
}

func (a *BudgetAggregator) window(ctx context.Context) time.Duration {
	s, err := a.settings.GetSettings(ctx)
	if err != nil || s.DebounceWindow <= 0 {
		if err != nil {
			a.logger.Warn("settings unavailable, using default debounce window", slog.Any("error", err))
		}
		return domain.DefaultSettings().DebounceWindow
	}
	return s.DebounceWindow
}

// arm replaces the campaign timer, so at most one is outstanding.
func (a *BudgetAggregator) arm(campaignID int64, d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	if t, ok := a.timers[campaignID]; ok {
		t.timer.Stop()
	}
	a.seq++
	seq := a.seq
	a.timers[campaignID] = &debounceTimer{
		seq:   seq,
		timer: time.AfterFunc(d, func() { a.fire(campaignID, seq) }),
	}
}

func (a *BudgetAggregator) fire(campaignID int64, seq uint64) {
	a.mu.Lock()
	t, ok := a.timers[campaignID]
	if a.stopped || !ok || t.seq != seq {
		a.mu.Unlock()
		return
	}
	delete(a.timers, campaignID)
	a.wg.Add(1)
	a.mu.Unlock()
	defer a.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("budget flush panicked", slog.Int64("campaign_id", campaignID), slog.Any("panic", r))
		}
	}()

	retry, err := a.flush(a.ctx, campaignID)
	if err == nil {
		return
	}
	observability.BudgetFlushes.WithLabelValues("error").Inc()
	a.logger.Error("budget flush failed",
		slog.Int64("campaign_id", campaignID),
		slog.Bool("retry", retry),
		slog.Any("error", err))
	if retry && a.ctx.Err() == nil {
		a.arm(campaignID, a.window(a.ctx))
	}
}

// flush applies all pending deltas of a campaign in one PATCH. retry
// reports whether the pending deltas are still unapplied.
func (a *BudgetAggregator) flush(ctx context.Context, campaignID int64) (retry bool, err error) {
	if a.fireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.fireTimeout)
		defer cancel()
	}
	ctx = port.WithCampaignID(ctx, campaignID)

	release, ok := a.locks.Acquire(ctx, campaignID)
	if !ok {
		return true, ctx.Err()
	}
	defer release()

	c, err := a.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return true, err
	}
	if c == nil {
		return false, nil
	}
	auto := c.Automation
	if len(auto.PendingURLBudgets) == 0 {
		return false, nil
	}

	base := auto.AppliedBudget
	if !base.IsPositive() {
		nc, err := a.network.GetCampaign(ctx, c.NetworkCampaignID)
		if err != nil {
			return true, err
		}
		base = nc.MaxDaily
	}
	total := auto.PendingTotal()
	budget := base.Add(total).Round(2)

	if err = a.network.PatchCampaign(ctx, c.NetworkCampaignID, domain.BudgetPatch(budget)); err != nil {
		return true, err
	}

	ids := auto.CommitPending()
	if err = a.campaigns.CommitPendingBudgets(ctx, campaignID, ids, budget, a.now()); err != nil {
		// The network already holds the new budget; flushing again would
		// add the same deltas twice.
		id := campaignID
		if rerr := a.errLog.RecordError(context.WithoutCancel(ctx), &domain.ErrorLogEntry{
			CampaignID: &id,
			Endpoint:   "budget_aggregator",
			Method:     "COMMIT",
			Message:    "budget " + budget.String() + " applied but not stored: " + err.Error(),
		}); rerr != nil {
			a.logger.Error("failed to record aggregator error", slog.Any("error", rerr))
		}
		return false, err
	}

	observability.BudgetFlushes.WithLabelValues("ok").Inc()
	a.logger.Info("aggregated budget applied",
		slog.Int64("campaign_id", campaignID),
		slog.Int("urls", len(ids)),
		slog.String("increase", total.String()),
		slog.String("max_daily", budget.String()))
	return false, nil
}
