package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, booking_number, session_id, activity_id, customer_id, organization_id,
			party_size, status, payment_status, payment_ref, total_price_cents, capacity_restored,
			created_at, updated_at`

// Create is the booking transaction. The capacity claim is a conditional
// decrement: under concurrent callers the row lock serializes them and the
// predicate rejects whichever caller finds too little capacity left. The
// decrement, the booking row and the customer aggregates commit together or
// not at all.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	claim := `UPDATE sessions
			  SET capacity_remaining = capacity_remaining - $2
			  WHERE id = $1
			    AND is_closed = false
			    AND capacity_remaining >= $2`
	res, err := tx.ExecContext(ctx, claim, b.SessionID, b.PartySize)
	if err != nil {
		return fmt.Errorf("claim capacity: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("claim rows affected: %w", err)
	}
	if rows == 0 {
		// Decide why: missing session, closed, or not enough seats left.
		var isClosed bool
		err = tx.QueryRowContext(ctx, `SELECT is_closed FROM sessions WHERE id = $1`, b.SessionID).Scan(&isClosed)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("inspect session: %w", err)
		}
		if isClosed {
			return domain.ErrSessionClosed
		}
		return domain.ErrInsufficientCapacity
	}

	insert := `INSERT INTO bookings (` + bookingColumns + `)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(ctx, insert,
		b.ID, b.BookingNumber, b.SessionID, b.ActivityID, b.CustomerID, b.OrganizationID,
		b.PartySize, b.Status, b.PaymentStatus, b.PaymentRef, b.TotalPriceCents, b.CapacityRestored,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("booking number collision: %w", err)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	aggregate := `UPDATE customers
				  SET total_bookings = total_bookings + 1,
				      total_spent_cents = total_spent_cents + $2
				  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, aggregate, b.CustomerID, b.TotalPriceCents); err != nil {
		return fmt.Errorf("update customer aggregates: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Cancel flips the booking to cancelled and credits its party size back to
// the session. The status predicate plus the capacity_restored guard make
// the credit fire exactly once; cancelling twice fails on the second call.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE bookings
			   SET status = $2, capacity_restored = true, updated_at = now()
			   WHERE id = $1
			     AND status = ANY($3)
			     AND capacity_restored = false
			   RETURNING ` + bookingColumns
	row := tx.QueryRowContext(ctx, update, id, domain.BookingStatusCancelled, pq.Array(domain.CancellableStatuses))

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if scanErr := tx.QueryRowContext(ctx,
				`SELECT true FROM bookings WHERE id = $1`, id,
			).Scan(&exists); errors.Is(scanErr, sql.ErrNoRows) {
				return nil, domain.ErrBookingNotFound
			}
			return nil, domain.ErrBookingNotCancellable
		}
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	restore := `UPDATE sessions
				SET capacity_remaining = LEAST(capacity_total, capacity_remaining + $2)
				WHERE id = $1`
	if _, err = tx.ExecContext(ctx, restore, b.SessionID, b.PartySize); err != nil {
		return nil, fmt.Errorf("restore capacity: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Complete(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT true FROM bookings WHERE id = $1`, id)
		if scanErr == nil {
			scanErr = row.Scan(&exists)
		}
		if errors.Is(scanErr, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

// RecordPaymentResult applies a payment webhook to the independent payment
// axis. A successful capture also flips a pending booking to confirmed
// (the payment-intent path); refunds only apply to paid bookings.
func (r *BookingRepository) RecordPaymentResult(ctx context.Context, res domain.PaymentResult) (*domain.Booking, error) {
	var query string
	switch res.Outcome {
	case domain.PaymentOutcomeSucceeded:
		query = `UPDATE bookings
				 SET payment_status = 'paid',
				     status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END,
				     payment_ref = $2,
				     updated_at = now()
				 WHERE id = $1 AND payment_status = 'pending' AND status <> 'cancelled'
				 RETURNING ` + bookingColumns
	case domain.PaymentOutcomeFailed:
		query = `UPDATE bookings
				 SET payment_status = 'failed', payment_ref = $2, updated_at = now()
				 WHERE id = $1 AND payment_status = 'pending'
				 RETURNING ` + bookingColumns
	case domain.PaymentOutcomeRefunded:
		query = `UPDATE bookings
				 SET payment_status = 'refunded', payment_ref = $2, updated_at = now()
				 WHERE id = $1 AND payment_status = 'paid'
				 RETURNING ` + bookingColumns
	default:
		return nil, domain.ErrInvalidTransition
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, res.BookingID, res.PaymentRef)
	if err != nil {
		return nil, fmt.Errorf("record payment result: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			checkRow, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy,
				`SELECT true FROM bookings WHERE id = $1`, res.BookingID)
			if checkErr == nil {
				checkErr = checkRow.Scan(&exists)
			}
			if errors.Is(checkErr, sql.ErrNoRows) {
				return nil, domain.ErrBookingNotFound
			}
			return nil, domain.ErrInvalidTransition
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// CancelStalePending sweeps payment-intent bookings whose webhook never
// arrived. Same guard and compensation as Cancel, batched.
func (r *BookingRepository) CancelStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE bookings
			   SET status = 'cancelled', capacity_restored = true, updated_at = now()
			   WHERE status = 'pending'
			     AND payment_status = 'pending'
			     AND payment_ref <> ''
			     AND capacity_restored = false
			     AND created_at + make_interval(secs => $1) < now()
			   RETURNING ` + bookingColumns

	rows, err := tx.QueryContext(ctx, update, olderThan.Seconds())
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}

	var cancelled []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		cancelled = append(cancelled, b)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate stale bookings: %w", err)
	}
	rows.Close()

	restore := `UPDATE sessions
				SET capacity_remaining = LEAST(capacity_total, capacity_remaining + $2)
				WHERE id = $1`
	for _, b := range cancelled {
		if _, err = tx.ExecContext(ctx, restore, b.SessionID, b.PartySize); err != nil {
			return nil, fmt.Errorf("restore capacity: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sweep: %w", err)
	}

	return cancelled, nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	if err := scan(
		&b.ID, &b.BookingNumber, &b.SessionID, &b.ActivityID, &b.CustomerID, &b.OrganizationID,
		&b.PartySize, &b.Status, &b.PaymentStatus, &b.PaymentRef, &b.TotalPriceCents, &b.CapacityRestored,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
