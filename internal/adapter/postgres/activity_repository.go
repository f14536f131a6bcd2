package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
)

// ActivityRepository implements port.ActivityRepository on PostgreSQL.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

var _ port.ActivityRepository = (*ActivityRepository)(nil)

// NewActivityRepository returns a repository backed by pool.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Record inserts a. Zero identifiers are stored as NULL.
func (r *ActivityRepository) Record(ctx context.Context, a domain.Activity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO activity (kind, seller_id, product_id, campaign_id, summary, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		string(a.Kind), nullID(a.SellerID), nullID(a.ProductID), nullID(a.CampaignID), a.Summary, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, kind, seller_id, product_id, campaign_id, summary, created_at
FROM activity
ORDER BY created_at DESC, id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Activity, error) {
		var (
			a                               domain.Activity
			kind                            string
			sellerID, productID, campaignID *int64
		)
		err := row.Scan(&a.ID, &kind, &sellerID, &productID, &campaignID, &a.Summary, &a.CreatedAt)
		a.Kind = domain.ActivityKind(kind)
		a.SellerID, a.ProductID, a.CampaignID = deref(sellerID), deref(productID), deref(campaignID)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	return entries, nil
}

func nullID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
