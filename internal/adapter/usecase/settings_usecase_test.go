package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port/mocks"
)

func TestUpdateSettings(t *testing.T) {
	t.Run("valid values are stored", func(t *testing.T) {
		repo := mocks.NewMockSettingsRepository(t)
		u := NewSettingsUseCase(repo)

		s := domain.DefaultSettings()
		s.MinimumClicksThreshold = 2000
		repo.EXPECT().SaveSettings(mock.Anything, s).Return(nil).Once()
		repo.EXPECT().GetSettings(mock.Anything).Return(s, nil).Once()

		got, err := u.UpdateSettings(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), got.MinimumClicksThreshold)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		repo := mocks.NewMockSettingsRepository(t)
		u := NewSettingsUseCase(repo)

		s := domain.DefaultSettings()
		s.MinimumClicksThreshold = 20_000 // above remainingClicksThreshold
		_, err := u.UpdateSettings(context.Background(), s)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "minimumClicksThreshold", verr.Field)
	})
}
