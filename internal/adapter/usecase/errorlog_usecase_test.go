package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port/mocks"
)

func TestErrorLogResolve(t *testing.T) {
	repo := mocks.NewMockErrorLogRepository(t)
	u := NewErrorLogUseCase(repo)
	known, unknown := uuid.New(), uuid.New()

	repo.EXPECT().Resolve(mock.Anything, known).Return(true, nil).Once()
	repo.EXPECT().Resolve(mock.Anything, unknown).Return(false, nil).Once()

	require.NoError(t, u.Resolve(context.Background(), known))
	require.ErrorIs(t, u.Resolve(context.Background(), unknown), domain.ErrErrorLogNotFound)
}

func TestErrorLogListAndClear(t *testing.T) {
	repo := mocks.NewMockErrorLogRepository(t)
	u := NewErrorLogUseCase(repo)

	entries := []domain.ErrorLogEntry{{ID: uuid.New(), Endpoint: "/campaigns/net-1", Method: "PATCH"}}
	repo.EXPECT().ListUnresolved(mock.Anything, 20).Return(entries, nil).Once()
	repo.EXPECT().Clear(mock.Anything).Return(int64(1), nil).Once()

	got, err := u.ListUnresolved(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	n, err := u.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
