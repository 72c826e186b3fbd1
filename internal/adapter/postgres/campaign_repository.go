package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool, logger *slog.Logger) *CampaignRepository {
	return &CampaignRepository{pool: pool, logger: logger}
}

const campaignColumns = `
    id,
    name,
    network_campaign_id,
    price_per_thousand::text,
    multiplier::text,
    created_at,
    updated_at,` + automationColumns

const automationColumns = `
    automation_enabled,
    automation_state,
    wait_start_time,
    wait_minutes,
    budgeted_url_ids,
    pending_url_budgets,
    daily_spent::text,
    daily_spent_date,
    applied_budget::text,
    last_action,
    last_event_at,
    automation_generation`

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, r.scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAutomationEnabled returns ids of campaigns the scheduler must tick.
func (r *CampaignRepository) ListAutomationEnabled(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM campaigns WHERE automation_enabled ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// ListWithPendingBudgets returns campaigns whose aggregator timer must be
// re-armed.
func (r *CampaignRepository) ListWithPendingBudgets(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE pending_url_budgets <> '{}'::jsonb ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, r.scanCampaign)
}

// SaveAutomation stores the state machine fields guarded by the
// generation. Pending and budgeted URL ids are owned by AddPendingBudget and
// CommitPendingBudgets; wait_minutes and automation_enabled by the control
// surface.
func (r *CampaignRepository) SaveAutomation(ctx context.Context, id int64, a domain.Automation) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET
            automation_state = $2,
            wait_start_time = $3,
            daily_spent = $4::numeric,
            daily_spent_date = $5,
            applied_budget = $6::numeric,
            last_action = $7,
            updated_at = now()
        WHERE id = $1 AND automation_generation = $8`,
		id,
		string(a.State),
		a.WaitStartTime,
		a.DailySpent.String(),
		a.DailySpentDate,
		a.AppliedBudget.String(),
		a.LastAction,
		a.Generation,
	)
	if err != nil {
		return fmt.Errorf("save automation of campaign %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrStaleAutomation
	}
	return nil
}

// AddPendingBudget records the budget delta of a URL unless the URL is
// already pending or budgeted.
func (r *CampaignRepository) AddPendingBudget(ctx context.Context, campaignID, urlID int64, delta decimal.Decimal, at time.Time) (bool, error) {
	key := strconv.FormatInt(urlID, 10)
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET
            pending_url_budgets = pending_url_budgets || jsonb_build_object($2::text, $3::text),
            last_event_at = $4,
            updated_at = now()
        WHERE id = $1
          AND NOT (pending_url_budgets ? $2::text)
          AND NOT ($5::bigint = ANY (budgeted_url_ids))`,
		campaignID, key, delta.String(), at, urlID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CommitPendingBudgets moves urlIDs from the pending map into the budgeted
// set and stores the applied budget confirmed by the network.
func (r *CampaignRepository) CommitPendingBudgets(ctx context.Context, campaignID int64, urlIDs []int64, applied decimal.Decimal, at time.Time) error {
	keys := make([]string, len(urlIDs))
	for i, id := range urlIDs {
		keys[i] = strconv.FormatInt(id, 10)
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET
            pending_url_budgets = pending_url_budgets - $2::text[],
            budgeted_url_ids = ARRAY(SELECT DISTINCT unnest(budgeted_url_ids || $3::bigint[]) ORDER BY 1),
            applied_budget = $4::numeric,
            last_action = $5,
            updated_at = now()
        WHERE id = $1`,
		campaignID, keys, urlIDs, applied.String(), at)
	if err != nil {
		return fmt.Errorf("commit pending budgets of campaign %d: %w", campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// SetAutomationEnabled toggles automation and resets the state to idle.
func (r *CampaignRepository) SetAutomationEnabled(ctx context.Context, id int64, enabled bool) (*domain.Automation, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE campaigns SET
            automation_enabled = $2,
            automation_state = 'idle',
            wait_start_time = NULL,
            automation_generation = automation_generation + 1,
            updated_at = now()
        WHERE id = $1
        RETURNING `+automationColumns, id, enabled)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, func(row pgx.CollectableRow) (domain.Automation, error) {
		var (
			a   domain.Automation
			raw automationRaw
		)
		if err := row.Scan(automationDest(&a, &raw)...); err != nil {
			return a, err
		}
		return a, r.decodeAutomation(id, &a, &raw)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetWaitMinutes changes the waiting period of a campaign.
func (r *CampaignRepository) SetWaitMinutes(ctx context.Context, id int64, minutes int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET wait_minutes = $2, updated_at = now() WHERE id = $1`, id, minutes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// UpdateMultiplier stores the multiplier and recomputes every click limit
// from the original click limit. Baselines are not written, so the
// protection trigger never fires here.
func (r *CampaignRepository) UpdateMultiplier(ctx context.Context, id int64, multiplier decimal.Decimal) (updated int64, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE campaigns SET multiplier = $2::numeric, updated_at = now() WHERE id = $1`, id, multiplier.String())
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrCampaignNotFound
		return 0, err
	}
	tag, err = tx.Exec(ctx, `
        UPDATE urls SET click_limit = CASE
            WHEN original_click_limit = 0 THEN 0
            ELSE round(original_click_limit * $2::numeric)::bigint
        END
        WHERE campaign_id = $1`, id, multiplier.String())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// automationRaw holds columns that need decoding after Scan.
type automationRaw struct {
	state    string
	pending  []byte
	spent    string
	applied  string
	budgeted []int64
}

func automationDest(a *domain.Automation, raw *automationRaw) []any {
	return []any{
		&a.Enabled,
		&raw.state,
		&a.WaitStartTime,
		&a.WaitMinutes,
		&raw.budgeted,
		&raw.pending,
		&raw.spent,
		&a.DailySpentDate,
		&raw.applied,
		&a.LastAction,
		&a.LastEventAt,
		&a.Generation,
	}
}

func (r *CampaignRepository) decodeAutomation(id int64, a *domain.Automation, raw *automationRaw) error {
	state, err := domain.ParseAutomationState(raw.state)
	if err != nil {
		r.logger.Warn("unrecognised automation state, falling back to idle",
			slog.Int64("campaign_id", id), slog.Any("error", err))
	}
	a.State = state
	a.BudgetedURLIDs = raw.budgeted
	if a.PendingURLBudgets, err = decodePending(raw.pending); err != nil {
		return fmt.Errorf("campaign %d pending budgets: %w", id, err)
	}
	if a.DailySpent, err = decimal.NewFromString(raw.spent); err != nil {
		return err
	}
	if a.AppliedBudget, err = decimal.NewFromString(raw.applied); err != nil {
		return err
	}
	return nil
}

func (r *CampaignRepository) scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c               domain.Campaign
		ppk, multiplier string
		raw             automationRaw
	)
	dest := []any{&c.ID, &c.Name, &c.NetworkCampaignID, &ppk, &multiplier, &c.CreatedAt, &c.UpdatedAt}
	dest = append(dest, automationDest(&c.Automation, &raw)...)
	if err := row.Scan(dest...); err != nil {
		return c, err
	}
	var err error
	if c.PricePerThousand, err = decimal.NewFromString(ppk); err != nil {
		return c, err
	}
	if c.Multiplier, err = decimal.NewFromString(multiplier); err != nil {
		return c, err
	}
	return c, r.decodeAutomation(c.ID, &c.Automation, &raw)
}

// pending_url_budgets is stored as {"<url id>": "<decimal>"}.
func decodePending(b []byte) (map[int64]decimal.Decimal, error) {
	out := map[int64]decimal.Decimal{}
	if len(b) == 0 {
		return out, nil
	}
	var raw map[string]decimal.Decimal
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	for k, d := range raw {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}
	return out, nil
}
