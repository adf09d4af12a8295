package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availabilityActivity(leadDays int) *domain.Activity {
	a := generatorActivity()
	a.Schedule.AdvanceBookingDays = leadDays
	return a
}

func TestAvailabilityService_ListAvailable_NoCache(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, nil, 0, newTestLogger(t))

	from := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	sessions := []*domain.Session{{ID: "s1", ActivityID: "a1"}}

	activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(availabilityActivity(0), nil)
	sessionRepo.EXPECT().ListAvailable(mock.Anything, "a1", from, to).Return(sessions, nil)

	got, err := svc.ListAvailable(context.Background(), "a1", from, to)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAvailabilityService_ListAvailable_InvalidWindow(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, nil, 0, newTestLogger(t))

	from := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.ListAvailable(context.Background(), "a1", from, to)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_ListAvailable_AdvanceBookingClampsWindow(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, nil, 0, newTestLogger(t))
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	from := now
	to := now.AddDate(0, 0, 7)
	clamped := now.AddDate(0, 0, 2)

	activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(availabilityActivity(2), nil)
	sessionRepo.EXPECT().ListAvailable(mock.Anything, "a1", clamped, to).Return(nil, nil)

	got, err := svc.ListAvailable(context.Background(), "a1", from, to)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAvailabilityService_ListAvailable_WindowCollapsedByLeadTime(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, nil, 0, newTestLogger(t))
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(availabilityActivity(14), nil)

	got, err := svc.ListAvailable(context.Background(), "a1", now, now.AddDate(0, 0, 7))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAvailabilityService_ListAvailable_CacheHit(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, cache, 30*time.Second, newTestLogger(t))

	from := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	cached, err := json.Marshal([]*domain.Session{{ID: "s1"}})
	require.NoError(t, err)

	activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(availabilityActivity(0), nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(cached, true, nil)

	got, err := svc.ListAvailable(context.Background(), "a1", from, to)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestAvailabilityService_ListAvailable_CacheMissPopulates(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, cache, 30*time.Second, newTestLogger(t))

	from := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	sessions := []*domain.Session{{ID: "s1"}}

	activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(availabilityActivity(0), nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	sessionRepo.EXPECT().ListAvailable(mock.Anything, "a1", from, to).Return(sessions, nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, 30*time.Second).Return(nil)

	got, err := svc.ListAvailable(context.Background(), "a1", from, to)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAvailabilityService_ListAvailable_CacheErrorFallsThrough(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, cache, 30*time.Second, newTestLogger(t))

	from := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(availabilityActivity(0), nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))
	sessionRepo.EXPECT().ListAvailable(mock.Anything, "a1", from, to).Return([]*domain.Session{{ID: "s1"}}, nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	got, err := svc.ListAvailable(context.Background(), "a1", from, to)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAvailabilityService_ListAvailable_ActivityMissing(t *testing.T) {
	activityRepo := mocks.NewMockActivityRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewAvailabilityService(activityRepo, sessionRepo, nil, 0, newTestLogger(t))

	from := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	activityRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrActivityNotFound)

	_, err := svc.ListAvailable(context.Background(), "missing", from, from.AddDate(0, 0, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}
