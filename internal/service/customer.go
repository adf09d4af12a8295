package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports"
)

// CustomerResolver finds or lazily creates the customer identity a booking
// belongs to, keyed by (organization, normalized email).
type CustomerResolver interface {
	Resolve(ctx context.Context, organizationID string, details domain.CustomerDetails) (*domain.Customer, error)
}

type CustomerService struct {
	repo ports.CustomerRepo
}

func NewCustomerService(repo ports.CustomerRepo) *CustomerService {
	return &CustomerService{repo: repo}
}

// Resolve is safe under concurrent calls for the same email: the store's
// (organization, email) uniqueness constraint turns the lookup-then-insert
// race into a conflict that is retried as a lookup.
func (s *CustomerService) Resolve(ctx context.Context, organizationID string, details domain.CustomerDetails) (*domain.Customer, error) {
	email := domain.NormalizeEmail(details.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: customer email is required", domain.ErrValidation)
	}

	customer, err := s.repo.FindByEmail(ctx, organizationID, email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	customer = &domain.Customer{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		FirstName:      details.FirstName,
		LastName:       details.LastName,
		Email:          email,
		Phone:          details.Phone,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrCustomerExists) {
			// Lost the race; the winner's row is the identity.
			return s.repo.FindByEmail(ctx, organizationID, email)
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}
