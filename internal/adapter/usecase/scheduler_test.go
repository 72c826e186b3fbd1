package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-sender/internal/core/port/mocks"
)

type tickerFunc func(ctx context.Context, campaignID int64) error

func (f tickerFunc) Tick(ctx context.Context, campaignID int64) error { return f(ctx, campaignID) }

func TestRunOnceTicksEveryCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().ListAutomationEnabled(mock.Anything).Return([]int64{1, 2, 3, 4}, nil).Once()

	var (
		mu   sync.Mutex
		seen []int64
	)
	ticker := tickerFunc(func(_ context.Context, id int64) error {
		mu.Lock()
		seen = append(seen, id)
		mu.Unlock()
		switch id {
		case 2:
			return errors.New("network down")
		case 3:
			panic("boom")
		}
		return nil
	})

	NewScheduler(campaigns, ticker, time.Minute, 2, discardLogger()).RunOnce(context.Background())
	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, seen)
}

func TestRunOnceRespectsConcurrency(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().ListAutomationEnabled(mock.Anything).Return([]int64{1, 2, 3, 4, 5, 6}, nil).Once()

	var running, peak atomic.Int32
	ticker := tickerFunc(func(context.Context, int64) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return nil
	})

	NewScheduler(campaigns, ticker, time.Minute, 2, discardLogger()).RunOnce(context.Background())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunStopsWithContext(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().ListAutomationEnabled(mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewScheduler(campaigns, tickerFunc(func(context.Context, int64) error { return nil }),
			5*time.Millisecond, 1, discardLogger()).Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "scheduler did not stop")
	}
}

func TestCampaignLocker(t *testing.T) {
	l := NewCampaignLocker()

	release, ok := l.TryAcquire(1)
	require.True(t, ok)

	_, ok = l.TryAcquire(1)
	assert.False(t, ok)

	other, ok := l.TryAcquire(2)
	require.True(t, ok)
	other()

	acquired := make(chan struct{})
	go func() {
		r, ok := l.Acquire(context.Background(), 1)
		if ok {
			close(acquired)
			r()
		}
	}()
	time.Sleep(10 * time.Millisecond)
	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		require.Fail(t, "waiter was not released")
	}
}
