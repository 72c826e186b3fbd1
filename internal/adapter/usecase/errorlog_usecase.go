package usecase

import (
	"context"

	"github.com/google/uuid"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
)

// ErrorLogUseCase exposes failed external calls to operators.
type ErrorLogUseCase struct {
	repo port.ErrorLogRepository
}

func NewErrorLogUseCase(repo port.ErrorLogRepository) *ErrorLogUseCase {
	return &ErrorLogUseCase{repo: repo}
}

// ListUnresolved returns unresolved entries, newest first. limit is clamped
// to [1, 500] with 100 as default.
func (u *ErrorLogUseCase) ListUnresolved(ctx context.Context, limit int) ([]domain.ErrorLogEntry, error) {
	return u.repo.ListUnresolved(ctx, clampLimit(limit))
}

func (u *ErrorLogUseCase) Resolve(ctx context.Context, id uuid.UUID) error {
	ok, err := u.repo.Resolve(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrErrorLogNotFound
	}
	return nil
}

func (u *ErrorLogUseCase) Clear(ctx context.Context) (int64, error) {
	return u.repo.Clear(ctx)
}
