package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"traffic-sender/internal/core/port"
)

// Ticker evaluates one campaign per call.
type Ticker interface {
	Tick(ctx context.Context, campaignID int64) error
}

// Scheduler ticks every automation-enabled campaign on a fixed interval.
// Campaigns are evaluated concurrently up to the configured limit; a failing
// campaign never stops the others or the loop.
type Scheduler struct {
	campaigns   port.CampaignRepository
	ticker      Ticker
	interval    time.Duration
	concurrency int
	logger      *slog.Logger
}

// NewScheduler creates a scheduler.
func NewScheduler(campaigns port.CampaignRepository, ticker Ticker, interval time.Duration, concurrency int, logger *slog.Logger) *Scheduler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scheduler{
		campaigns:   campaigns,
		ticker:      ticker,
		interval:    interval,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.logger.Info("automation scheduler started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("automation scheduler stopped")
			return
		case <-t.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce evaluates every enabled campaign once and waits for all of them.
func (s *Scheduler) RunOnce(ctx context.Context) {
	logger := s.logger.With(slog.String("run_id", uuid.NewString()))

	ids, err := s.campaigns.ListAutomationEnabled(ctx)
	if err != nil {
		logger.Error("list automation campaigns", slog.Any("error", err))
		return
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("campaign tick panicked", slog.Int64("campaign_id", id), slog.Any("panic", r))
				}
			}()
			if err := s.ticker.Tick(ctx, id); err != nil {
				logger.Warn("campaign tick failed", slog.Int64("campaign_id", id), slog.Any("error", err))
			}
			return nil
		})
	}
	_ = g.Wait()
	logger.Debug("automation tick finished", slog.Int("campaigns", len(ids)))
}
