package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and URLs. Existing rows are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		networkID := fmt.Sprintf("net-%04d", i)
		ppk := []string{"0.50", "0.75", "1.20"}[i-1]
		var campaignID int64
		err := db.QueryRow(ctx, `INSERT INTO campaigns (name, network_campaign_id, price_per_thousand, multiplier)
VALUES ($1, $2, $3::numeric, 1)
ON CONFLICT (network_campaign_id) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, name, networkID, ppk).Scan(&campaignID)
		if err != nil {
			return err
		}

		for j := 1; j <= 5; j++ {
			limit := int64(1000 * (1 + r.Intn(10)))
			if j == 5 {
				limit = 0 // one unlimited URL per campaign
			}
			_, err = db.Exec(ctx, `INSERT INTO urls (campaign_id, target_url, click_limit, original_click_limit, weight)
SELECT $1, $2, $3, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM urls WHERE campaign_id = $1 AND target_url = $2)`,
				campaignID, fmt.Sprintf("https://example.com/landing/%d/%d", i, j), limit, 1+r.Intn(3))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
