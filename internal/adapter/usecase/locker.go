package usecase

import (
	"context"
	"sync"
)

// CampaignLocker serialises automation work per campaign. Each campaign
// owns a one-slot channel semaphore.
type CampaignLocker struct {
	mu   sync.Mutex
	sems map[int64]chan struct{}
}

func NewCampaignLocker() *CampaignLocker {
	return &CampaignLocker{sems: make(map[int64]chan struct{})}
}

func (l *CampaignLocker) sem(id int64) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sems[id]
	if !ok {
		s = make(chan struct{}, 1)
		l.sems[id] = s
	}
	return s
}

// Acquire waits for the campaign slot. ok is false when ctx ends first.
func (l *CampaignLocker) Acquire(ctx context.Context, id int64) (release func(), ok bool) {
	s := l.sem(id)
	select {
	case s <- struct{}{}:
		return func() { <-s }, true
	case <-ctx.Done():
		return nil, false
	}
}

// TryAcquire takes the campaign slot only if it is free.
func (l *CampaignLocker) TryAcquire(id int64) (release func(), ok bool) {
	s := l.sem(id)
	select {
	case s <- struct{}{}:
		return func() { <-s }, true
	default:
		return nil, false
	}
}
