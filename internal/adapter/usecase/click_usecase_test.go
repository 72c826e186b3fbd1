package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/core/port/mocks"
)

func TestServeRecordsClick(t *testing.T) {
	inventory := mocks.NewMockClickInventory(t)
	urls := mocks.NewMockURLRepository(t)
	u := NewClickUseCase(inventory, urls, discardLogger())

	inventory.EXPECT().Pick(mock.Anything, int64(9)).
		Return(domain.URL{ID: 3, CampaignID: 9, TargetURL: "https://stale"}, nil).Once()
	urls.EXPECT().IncrementClicks(mock.Anything, int64(3)).
		Return(&domain.URL{ID: 3, CampaignID: 9, TargetURL: "https://landing", ClickLimit: 100, Clicks: 41}, nil).Once()

	click, err := u.Serve(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "https://landing", click.TargetURL)
	assert.Equal(t, int64(41), click.Clicks)
	assert.False(t, click.LimitReached())
}

func TestServeInvalidatesWhenLimitReached(t *testing.T) {
	inventory := mocks.NewMockClickInventory(t)
	urls := mocks.NewMockURLRepository(t)
	u := NewClickUseCase(inventory, urls, discardLogger())

	inventory.EXPECT().Pick(mock.Anything, int64(9)).Return(domain.URL{ID: 3}, nil).Once()
	urls.EXPECT().IncrementClicks(mock.Anything, int64(3)).
		Return(&domain.URL{ID: 3, TargetURL: "https://landing", ClickLimit: 100, Clicks: 100}, nil).Once()
	inventory.EXPECT().Invalidate(int64(9)).Once()

	click, err := u.Serve(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, click.LimitReached())
}

func TestServeRetriesOnceAfterStalePick(t *testing.T) {
	inventory := mocks.NewMockClickInventory(t)
	urls := mocks.NewMockURLRepository(t)
	u := NewClickUseCase(inventory, urls, discardLogger())

	inventory.EXPECT().Pick(mock.Anything, int64(9)).Return(domain.URL{ID: 3}, nil).Once()
	urls.EXPECT().IncrementClicks(mock.Anything, int64(3)).Return(nil, port.ErrURLNotServable).Once()
	inventory.EXPECT().Invalidate(int64(9)).Once()
	inventory.EXPECT().Pick(mock.Anything, int64(9)).Return(domain.URL{ID: 4}, nil).Once()
	urls.EXPECT().IncrementClicks(mock.Anything, int64(4)).
		Return(&domain.URL{ID: 4, TargetURL: "https://other"}, nil).Once()

	click, err := u.Serve(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(4), click.URLID)
}

func TestServeGivesUpAfterSecondStalePick(t *testing.T) {
	inventory := mocks.NewMockClickInventory(t)
	urls := mocks.NewMockURLRepository(t)
	u := NewClickUseCase(inventory, urls, discardLogger())

	inventory.EXPECT().Pick(mock.Anything, int64(9)).Return(domain.URL{ID: 3}, nil).Twice()
	urls.EXPECT().IncrementClicks(mock.Anything, int64(3)).Return(nil, port.ErrURLNotServable).Twice()
	inventory.EXPECT().Invalidate(int64(9)).Twice()

	_, err := u.Serve(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrNoEligibleURL)
}

func TestServeWithoutInventory(t *testing.T) {
	inventory := mocks.NewMockClickInventory(t)
	u := NewClickUseCase(inventory, mocks.NewMockURLRepository(t), discardLogger())

	inventory.EXPECT().Pick(mock.Anything, int64(9)).Return(domain.URL{}, domain.ErrNoEligibleURL).Once()

	_, err := u.Serve(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrNoEligibleURL)
}

func TestServeStorageError(t *testing.T) {
	inventory := mocks.NewMockClickInventory(t)
	urls := mocks.NewMockURLRepository(t)
	u := NewClickUseCase(inventory, urls, discardLogger())

	inventory.EXPECT().Pick(mock.Anything, int64(9)).Return(domain.URL{ID: 3}, nil).Once()
	urls.EXPECT().IncrementClicks(mock.Anything, int64(3)).Return(nil, errors.New("pool closed")).Once()

	_, err := u.Serve(context.Background(), 9)
	require.EqualError(t, err, "pool closed")
}
