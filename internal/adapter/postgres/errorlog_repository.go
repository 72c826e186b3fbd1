package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"traffic-sender/internal/core/domain"
)

// ErrorLogRepository implements port.ErrorLogRepository.
type ErrorLogRepository struct {
	pool *pgxpool.Pool
}

// NewErrorLogRepository returns a new repository instance.
func NewErrorLogRepository(pool *pgxpool.Pool) *ErrorLogRepository {
	return &ErrorLogRepository{pool: pool}
}

// RecordError stores e, assigning ID and CreatedAt when empty.
func (r *ErrorLogRepository) RecordError(ctx context.Context, e *domain.ErrorLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO error_logs (id, campaign_id, endpoint, method, payload, message, retry_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.CampaignID, e.Endpoint, e.Method, e.Payload, e.Message, e.RetryCount, e.CreatedAt)
	return err
}

// ListUnresolved returns unresolved entries, newest first.
func (r *ErrorLogRepository) ListUnresolved(ctx context.Context, limit int) ([]domain.ErrorLogEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, endpoint, method, payload, message, retry_count, resolved, created_at, resolved_at
        FROM error_logs
        WHERE NOT resolved
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ErrorLogEntry])
}

// Resolve marks an entry resolved.
func (r *ErrorLogRepository) Resolve(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE error_logs SET resolved = TRUE, resolved_at = now() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Clear deletes all entries.
func (r *ErrorLogRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM error_logs`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
