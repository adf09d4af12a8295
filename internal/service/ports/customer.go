package ports

import (
	"context"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
)

type CustomerRepo interface {
	// Create inserts a new customer; a (organization, email) uniqueness
	// conflict surfaces as domain.ErrCustomerExists.
	Create(ctx context.Context, c *domain.Customer) error
	FindByEmail(ctx context.Context, organizationID, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
