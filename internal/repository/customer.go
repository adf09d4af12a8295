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

const uniqueViolation = "23505"

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, organization_id, first_name, last_name, email, phone,
				total_bookings, total_spent_cents, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.OrganizationID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.TotalBookings, c.TotalSpentCents, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, organizationID, email string) (*domain.Customer, error) {
	query := `SELECT id, organization_id, first_name, last_name, email, phone,
				total_bookings, total_spent_cents, created_at
			  FROM customers
			  WHERE organization_id = $1 AND email = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, organizationID, email)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	c, err := scanCustomer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT id, organization_id, first_name, last_name, email, phone,
				total_bookings, total_spent_cents, created_at
			  FROM customers
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	c, err := scanCustomer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return c, nil
}

func scanCustomer(scan func(dest ...any) error) (*domain.Customer, error) {
	var c domain.Customer
	if err := scan(
		&c.ID, &c.OrganizationID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.TotalBookings, &c.TotalSpentCents, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
