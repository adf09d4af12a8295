package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ActivityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewActivityRepo(db *dbpg.DB) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	schedule, err := json.Marshal(a.Schedule)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	query := `INSERT INTO activities (id, venue_id, organization_id, name, capacity, price_cents, schedule, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(ctx, r.strategy, query,
		a.ID, a.VenueID, a.OrganizationID, a.Name,
		a.Capacity, a.PriceCents, schedule, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT id, venue_id, organization_id, name, capacity, price_cents, schedule, created_at, updated_at
			  FROM activities
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	a, err := scanActivity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}

	return a, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT id, venue_id, organization_id, name, capacity, price_cents, schedule, created_at, updated_at
			  FROM activities
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

// Update applies exactly the fields carried by upd and returns the fresh
// row. COALESCE keeps untouched columns; the schedule is replaced whole,
// never merged.
func (r *ActivityRepository) Update(ctx context.Context, id string, upd domain.ActivityUpdate) (*domain.Activity, error) {
	var schedule []byte
	if upd.Schedule != nil {
		b, err := json.Marshal(upd.Schedule)
		if err != nil {
			return nil, fmt.Errorf("marshal schedule: %w", err)
		}
		schedule = b
	}

	query := `UPDATE activities
			  SET name        = COALESCE($2, name),
			      capacity    = COALESCE($3, capacity),
			      price_cents = COALESCE($4, price_cents),
			      schedule    = COALESCE($5, schedule),
			      updated_at  = now()
			  WHERE id = $1
			  RETURNING id, venue_id, organization_id, name, capacity, price_cents, schedule, created_at, updated_at`

	var capacity sql.NullInt64
	if upd.Capacity != nil {
		capacity = sql.NullInt64{Int64: int64(*upd.Capacity), Valid: true}
	}
	var price sql.NullInt64
	if upd.PriceCents != nil {
		price = sql.NullInt64{Int64: *upd.PriceCents, Valid: true}
	}
	var name sql.NullString
	if upd.Name != nil {
		name = sql.NullString{String: *upd.Name, Valid: true}
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, name, capacity, price, schedule)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	a, err := scanActivity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}

	return a, nil
}

func scanActivity(scan func(dest ...any) error) (*domain.Activity, error) {
	var a domain.Activity
	var schedule []byte
	if err := scan(
		&a.ID, &a.VenueID, &a.OrganizationID, &a.Name,
		&a.Capacity, &a.PriceCents, &schedule, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(schedule, &a.Schedule); err != nil {
		return nil, fmt.Errorf("unmarshal schedule: %w", err)
	}
	return &a, nil
}
