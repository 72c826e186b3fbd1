package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
)

// SettingsRepository implements port.SettingsRepository on the singleton
// automation_settings row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a new repository instance.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// GetSettings returns the stored settings, or the defaults when the row is
// missing.
func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	var (
		s                       domain.Settings
		spend, stagedT, stagedI string
		debounceSeconds         int
	)
	err := r.pool.QueryRow(ctx, `
        SELECT minimum_clicks_threshold,
               remaining_clicks_threshold,
               spend_threshold::text,
               default_wait_minutes,
               debounce_window_seconds,
               staged_threshold::text,
               staged_increment::text,
               updated_at
        FROM automation_settings
        WHERE id = 1`).Scan(
		&s.MinimumClicksThreshold,
		&s.RemainingClicksThreshold,
		&spend,
		&s.DefaultWaitMinutes,
		&debounceSeconds,
		&stagedT,
		&stagedI,
		&s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	if s.SpendThreshold, err = decimal.NewFromString(spend); err != nil {
		return domain.Settings{}, err
	}
	if s.StagedThreshold, err = decimal.NewFromString(stagedT); err != nil {
		return domain.Settings{}, err
	}
	if s.StagedIncrement, err = decimal.NewFromString(stagedI); err != nil {
		return domain.Settings{}, err
	}
	s.DebounceWindow = time.Duration(debounceSeconds) * time.Second
	return s, nil
}

// SaveSettings upserts the settings row.
func (r *SettingsRepository) SaveSettings(ctx context.Context, s domain.Settings) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO automation_settings (
            id, minimum_clicks_threshold, remaining_clicks_threshold, spend_threshold,
            default_wait_minutes, debounce_window_seconds, staged_threshold, staged_increment, updated_at)
        VALUES (1, $1, $2, $3::numeric, $4, $5, $6::numeric, $7::numeric, now())
        ON CONFLICT (id) DO UPDATE SET
            minimum_clicks_threshold = EXCLUDED.minimum_clicks_threshold,
            remaining_clicks_threshold = EXCLUDED.remaining_clicks_threshold,
            spend_threshold = EXCLUDED.spend_threshold,
            default_wait_minutes = EXCLUDED.default_wait_minutes,
            debounce_window_seconds = EXCLUDED.debounce_window_seconds,
            staged_threshold = EXCLUDED.staged_threshold,
            staged_increment = EXCLUDED.staged_increment,
            updated_at = now()`,
		s.MinimumClicksThreshold,
		s.RemainingClicksThreshold,
		s.SpendThreshold.String(),
		s.DefaultWaitMinutes,
		int(s.DebounceWindow/time.Second),
		s.StagedThreshold.String(),
		s.StagedIncrement.String(),
	)
	return err
}
