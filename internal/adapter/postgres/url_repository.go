package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
	"traffic-sender/internal/observability"
)

// URLRepository implements port.URLRepository using pgxpool. Writes to
// original_click_limit are guarded here and, for any other write path, by
// the trg_protect_original_click_limit trigger.
type URLRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewURLRepository returns a new repository instance.
func NewURLRepository(pool *pgxpool.Pool, logger *slog.Logger) *URLRepository {
	return &URLRepository{pool: pool, logger: logger}
}

const urlColumns = `id, campaign_id, target_url, click_limit, original_click_limit, clicks, weight, status, created_at`

func scanURL(row pgx.CollectableRow) (domain.URL, error) {
	var (
		u      domain.URL
		status string
	)
	err := row.Scan(&u.ID, &u.CampaignID, &u.TargetURL, &u.ClickLimit, &u.OriginalClickLimit, &u.Clicks, &u.Weight, &status, &u.CreatedAt)
	u.Status = domain.URLStatus(status)
	return u, err
}

// ListByCampaign returns all URLs of a campaign ordered by creation.
func (r *URLRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.URL, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+urlColumns+` FROM urls WHERE campaign_id = $1 ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanURL)
}

// ListServable returns the active URLs that still have clicks left.
func (r *URLRepository) ListServable(ctx context.Context, campaignID int64) ([]domain.URL, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+urlColumns+`
        FROM urls
        WHERE campaign_id = $1
          AND status = 'active'
          AND (click_limit = 0 OR clicks < click_limit)
        ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanURL)
}

// GetURL returns a URL by id.
func (r *URLRepository) GetURL(ctx context.Context, id int64) (*domain.URL, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+urlColumns+` FROM urls WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectOneRow(rows, scanURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateURL inserts u. ClickLimit is derived from OriginalClickLimit and
// the campaign multiplier inside the statement.
func (r *URLRepository) CreateURL(ctx context.Context, u *domain.URL) error {
	if u.Status == "" {
		u.Status = domain.URLStatusActive
	}
	weight := u.EffectiveWeight()
	err := r.pool.QueryRow(ctx, `
        INSERT INTO urls (campaign_id, target_url, original_click_limit, click_limit, weight, status)
        SELECT c.id, $2, $3,
               CASE WHEN $3 = 0 THEN 0 ELSE round($3 * c.multiplier)::bigint END,
               $4, $5
        FROM campaigns c
        WHERE c.id = $1
        RETURNING id, click_limit, clicks, created_at`,
		u.CampaignID, u.TargetURL, u.OriginalClickLimit, weight, string(u.Status),
	).Scan(&u.ID, &u.ClickLimit, &u.Clicks, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCampaignNotFound
	}
	if err != nil {
		return err
	}
	u.Weight = weight
	return nil
}

// IncrementClicks adds one click to an active URL in a single statement.
func (r *URLRepository) IncrementClicks(ctx context.Context, id int64) (*domain.URL, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE urls SET clicks = clicks + 1
        WHERE id = $1 AND status = 'active'
        RETURNING `+urlColumns, id)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectOneRow(rows, scanURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrURLNotServable
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateURL applies an administrative update in one transaction. A change
// of original_click_limit without bypass is discarded, a warning row is
// written and the remaining fields are still updated. With bypass the
// transaction-local traffic.click_limit_bypass setting is asserted so the
// trigger lets the single update through.
func (r *URLRepository) UpdateURL(ctx context.Context, id int64, upd domain.URLUpdate, bypass bool) (res *port.URLUpdateResult, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var multiplierRaw string
	rows, err := tx.Query(ctx, `
        SELECT `+urlColumns+`
        FROM urls WHERE id = $1
        FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	current, err := pgx.CollectOneRow(rows, scanURL)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrURLNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if err = tx.QueryRow(ctx, `SELECT multiplier::text FROM campaigns WHERE id = $1`, current.CampaignID).Scan(&multiplierRaw); err != nil {
		return nil, err
	}
	multiplier, err := decimal.NewFromString(multiplierRaw)
	if err != nil {
		return nil, err
	}

	next, rejected := current.ApplyUpdate(upd, multiplier, bypass)
	if rejected {
		observability.ProtectionViolations.Inc()
		r.logger.Warn("discarded write to protected original click limit",
			slog.Int64("url_id", id),
			slog.Int64("attempted", *upd.OriginalClickLimit),
			slog.Int64("retained", current.OriginalClickLimit))
		if _, err = tx.Exec(ctx, `INSERT INTO click_limit_warnings (url_id, attempted_value, retained_value) VALUES ($1, $2, $3)`,
			id, *upd.OriginalClickLimit, current.OriginalClickLimit); err != nil {
			return nil, fmt.Errorf("record click limit warning: %w", err)
		}
	}
	if bypass && next.OriginalClickLimit != current.OriginalClickLimit {
		if _, err = tx.Exec(ctx, `SELECT set_config('traffic.click_limit_bypass', 'on', true)`); err != nil {
			return nil, err
		}
	}

	rows, err = tx.Query(ctx, `
        UPDATE urls SET
            target_url = $2,
            status = $3,
            weight = $4,
            original_click_limit = $5,
            click_limit = $6
        WHERE id = $1
        RETURNING `+urlColumns,
		id, next.TargetURL, string(next.Status), next.Weight, next.OriginalClickLimit, next.ClickLimit)
	if err != nil {
		return nil, err
	}
	stored, err := pgx.CollectOneRow(rows, scanURL)
	if err != nil {
		return nil, err
	}
	return &port.URLUpdateResult{URL: stored, BaselineRejected: rejected}, nil
}

// ListClickLimitWarnings returns the most recent discarded baseline writes.
func (r *URLRepository) ListClickLimitWarnings(ctx context.Context, limit int) ([]domain.ClickLimitWarning, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, url_id, attempted_value, retained_value, created_at
        FROM click_limit_warnings
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ClickLimitWarning])
}
