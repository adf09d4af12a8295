package service

import (
	"context"
	"errors"
	"testing"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Resolve_ExistingCustomer(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	existing := &domain.Customer{ID: "c1", OrganizationID: "org1", Email: "alice@example.com"}
	repo.EXPECT().FindByEmail(mock.Anything, "org1", "alice@example.com").Return(existing, nil)

	customer, err := svc.Resolve(context.Background(), "org1", domain.CustomerDetails{
		Email: "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "c1", customer.ID)
}

func TestCustomerService_Resolve_NormalizesEmail(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	existing := &domain.Customer{ID: "c1", Email: "alice@example.com"}
	repo.EXPECT().FindByEmail(mock.Anything, "org1", "alice@example.com").Return(existing, nil)

	customer, err := svc.Resolve(context.Background(), "org1", domain.CustomerDetails{
		Email: "  Alice@Example.COM ",
	})

	require.NoError(t, err)
	assert.Equal(t, "c1", customer.ID)
}

func TestCustomerService_Resolve_CreatesWhenMissing(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	repo.EXPECT().FindByEmail(mock.Anything, "org1", "bob@example.com").Return(nil, domain.ErrCustomerNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, c *domain.Customer) {
		assert.Equal(t, "org1", c.OrganizationID)
		assert.Equal(t, "bob@example.com", c.Email)
		assert.Equal(t, "Bob", c.FirstName)
		assert.NotEmpty(t, c.ID)
	}).Return(nil)

	customer, err := svc.Resolve(context.Background(), "org1", domain.CustomerDetails{
		FirstName: "Bob",
		Email:     "Bob@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", customer.Email)
}

func TestCustomerService_Resolve_RetriesOnConcurrentCreate(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	winner := &domain.Customer{ID: "c-winner", Email: "carol@example.com"}

	repo.EXPECT().FindByEmail(mock.Anything, "org1", "carol@example.com").Return(nil, domain.ErrCustomerNotFound).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCustomerExists)
	repo.EXPECT().FindByEmail(mock.Anything, "org1", "carol@example.com").Return(winner, nil).Once()

	customer, err := svc.Resolve(context.Background(), "org1", domain.CustomerDetails{
		Email: "carol@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "c-winner", customer.ID)
}

func TestCustomerService_Resolve_EmptyEmail(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	_, err := svc.Resolve(context.Background(), "org1", domain.CustomerDetails{Email: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomerService_Resolve_LookupError(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	repo.EXPECT().FindByEmail(mock.Anything, "org1", "dave@example.com").Return(nil, errors.New("db error"))

	_, err := svc.Resolve(context.Background(), "org1", domain.CustomerDetails{Email: "dave@example.com"})

	require.Error(t, err)
}
