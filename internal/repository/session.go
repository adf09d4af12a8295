package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const sessionColumns = `id, activity_id, venue_id, organization_id, start_time, end_time,
			capacity_total, capacity_remaining, price_cents, is_closed, created_at`

// BulkInsert writes one batch of generated sessions as a single multi-row
// statement, so a batch is either fully durable or not written at all. The
// unique (activity_id, start_time) index rejects regeneration of an already
// stored slot.
func (r *SessionRepository) BulkInsert(ctx context.Context, sessions []*domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO sessions (` + sessionColumns + `) VALUES `)
	args := make([]any, 0, len(sessions)*11)
	for i, s := range sessions {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * 11
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11)
		args = append(args,
			s.ID, s.ActivityID, s.VenueID, s.OrganizationID, s.StartTime, s.EndTime,
			s.CapacityTotal, s.CapacityRemaining, s.PriceCents, s.IsClosed, s.CreatedAt,
		)
	}

	if _, err := r.db.Master.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("bulk insert sessions: %w", err)
	}

	return nil
}

func (r *SessionRepository) LatestStartTime(ctx context.Context, activityID string) (time.Time, bool, error) {
	query := `SELECT max(start_time) FROM sessions WHERE activity_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, activityID)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("latest start time: %w", err)
	}

	var latest sql.NullTime
	if err = row.Scan(&latest); err != nil {
		return time.Time{}, false, fmt.Errorf("scan latest start time: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}

	return latest.Time.UTC(), true, nil
}

func (r *SessionRepository) ListAvailable(ctx context.Context, activityID string, from, to time.Time) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE activity_id = $1
			    AND start_time < $3
			    AND end_time > $2
			    AND is_closed = false
			    AND capacity_remaining > 0
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list available sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return s, nil
}

func (r *SessionRepository) SetClosed(ctx context.Context, id string, closed bool) error {
	query := `UPDATE sessions SET is_closed = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, closed)
	if err != nil {
		return fmt.Errorf("set session closed: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("session rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// AcquireGenerationLock serializes generation per activity with a postgres
// advisory lock. The lock is session-scoped, so it pins a dedicated
// connection until release is called.
func (r *SessionRepository) AcquireGenerationLock(ctx context.Context, activityID string) (func(), bool, error) {
	conn, err := r.db.Master.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock conn: %w", err)
	}

	var locked bool
	err = conn.QueryRowContext(ctx,
		`SELECT pg_try_advisory_lock(hashtextextended($1, 0))`, activityID,
	).Scan(&locked)
	if err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("try advisory lock: %w", err)
	}
	if !locked {
		_ = conn.Close()
		return nil, false, nil
	}

	release := func() {
		_, _ = conn.ExecContext(context.Background(),
			`SELECT pg_advisory_unlock(hashtextextended($1, 0))`, activityID)
		_ = conn.Close()
	}

	return release, true, nil
}

func scanSession(scan func(dest ...any) error) (*domain.Session, error) {
	var s domain.Session
	if err := scan(
		&s.ID, &s.ActivityID, &s.VenueID, &s.OrganizationID, &s.StartTime, &s.EndTime,
		&s.CapacityTotal, &s.CapacityRemaining, &s.PriceCents, &s.IsClosed, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.StartTime = s.StartTime.UTC()
	s.EndTime = s.EndTime.UTC()
	return &s, nil
}
