package usecase

import (
	"context"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
)

// SettingsUseCase validates operator settings before storing them.
type SettingsUseCase struct {
	repo port.SettingsRepository
}

func NewSettingsUseCase(repo port.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetSettings(ctx context.Context) (domain.Settings, error) {
	return u.repo.GetSettings(ctx)
}

// UpdateSettings rejects out-of-range values with a *domain.ValidationError
// and keeps the stored values in that case.
func (u *SettingsUseCase) UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	if err := u.repo.SaveSettings(ctx, s); err != nil {
		return domain.Settings{}, err
	}
	return u.repo.GetSettings(ctx)
}
