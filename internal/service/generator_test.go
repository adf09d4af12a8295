package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type generatorFixture struct {
	activityRepo *mocks.MockActivityRepo
	venueRepo    *mocks.MockVenueRepo
	sessionRepo  *mocks.MockSessionRepo
	publisher    *mocks.MockEventPublisher
	svc          *GeneratorService
}

func newGeneratorFixture(t *testing.T, horizonDays, chunkSize int) *generatorFixture {
	t.Helper()
	f := &generatorFixture{
		activityRepo: mocks.NewMockActivityRepo(t),
		venueRepo:    mocks.NewMockVenueRepo(t),
		sessionRepo:  mocks.NewMockSessionRepo(t),
		publisher:    mocks.NewMockEventPublisher(t),
	}
	f.svc = NewGeneratorService(
		f.activityRepo, f.venueRepo, f.sessionRepo, f.publisher,
		newTestLogger(t), horizonDays, chunkSize,
	)
	// 2025-06-02 is a Monday.
	f.svc.now = func() time.Time {
		return time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	}
	return f
}

func generatorActivity() *domain.Activity {
	return &domain.Activity{
		ID:             "a1",
		VenueID:        "v1",
		OrganizationID: "org1",
		Name:           "Escape Room",
		Capacity:       8,
		PriceCents:     4500,
		Schedule: domain.ScheduleRules{
			OperatingDays:       []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			StartTime:           "10:00",
			EndTime:             "12:00",
			SlotIntervalMinutes: 60,
		},
	}
}

func TestGeneratorService_Generate_FreshActivity(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(func() {}, true, nil)
	f.sessionRepo.EXPECT().LatestStartTime(mock.Anything, "a1").Return(time.Time{}, false, nil)

	var stored []*domain.Session
	f.sessionRepo.EXPECT().BulkInsert(mock.Anything, mock.Anything).Run(func(ctx context.Context, sessions []*domain.Session) {
		stored = append(stored, sessions...)
	}).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, "sessions.generated", mock.Anything).Return(nil)

	// 3-day horizon, two hourly slots per day.
	generated, err := f.svc.Generate(context.Background(), "a1", 3)

	require.NoError(t, err)
	assert.Equal(t, 6, generated)
	require.Len(t, stored, 6)

	first := stored[0]
	assert.Equal(t, time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, time.Date(2025, time.June, 2, 11, 0, 0, 0, time.UTC), first.EndTime)
	assert.Equal(t, 8, first.CapacityTotal)
	assert.Equal(t, 8, first.CapacityRemaining)
	assert.Equal(t, int64(4500), first.PriceCents)
	assert.Equal(t, "org1", first.OrganizationID)
}

func TestGeneratorService_Generate_ResumesAfterLatestSession(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}
	latest := time.Date(2025, time.June, 3, 11, 0, 0, 0, time.UTC)

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(func() {}, true, nil)
	f.sessionRepo.EXPECT().LatestStartTime(mock.Anything, "a1").Return(latest, true, nil)

	var stored []*domain.Session
	f.sessionRepo.EXPECT().BulkInsert(mock.Anything, mock.Anything).Run(func(ctx context.Context, sessions []*domain.Session) {
		stored = append(stored, sessions...)
	}).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, "sessions.generated", mock.Anything).Return(nil)

	// Window covers June 2-4; June 2-3 already exist, so only June 4 is new.
	generated, err := f.svc.Generate(context.Background(), "a1", 3)

	require.NoError(t, err)
	assert.Equal(t, 2, generated)
	require.Len(t, stored, 2)
	assert.Equal(t, time.Date(2025, time.June, 4, 10, 0, 0, 0, time.UTC), stored[0].StartTime)
}

func TestGeneratorService_Generate_NothingNewToGenerate(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}
	latest := time.Date(2025, time.June, 10, 11, 0, 0, 0, time.UTC)

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(func() {}, true, nil)
	f.sessionRepo.EXPECT().LatestStartTime(mock.Anything, "a1").Return(latest, true, nil)

	generated, err := f.svc.Generate(context.Background(), "a1", 3)

	require.NoError(t, err)
	assert.Equal(t, 0, generated)
}

func TestGeneratorService_Generate_LockHeldByAnotherRun(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(nil, false, nil)

	_, err := f.svc.Generate(context.Background(), "a1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationInProgress)
}

func TestGeneratorService_Generate_ChunkedInserts(t *testing.T) {
	f := newGeneratorFixture(t, 30, 3)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(func() {}, true, nil)
	f.sessionRepo.EXPECT().LatestStartTime(mock.Anything, "a1").Return(time.Time{}, false, nil)

	batches := 0
	f.sessionRepo.EXPECT().BulkInsert(mock.Anything, mock.Anything).Run(func(ctx context.Context, sessions []*domain.Session) {
		batches++
	}).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, "sessions.generated", mock.Anything).Return(nil)

	generated, err := f.svc.Generate(context.Background(), "a1", 3)

	require.NoError(t, err)
	assert.Equal(t, 6, generated)
	assert.GreaterOrEqual(t, batches, 2)
}

func TestGeneratorService_Generate_InsertFailureAbortsRun(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(func() {}, true, nil)
	f.sessionRepo.EXPECT().LatestStartTime(mock.Anything, "a1").Return(time.Time{}, false, nil)
	f.sessionRepo.EXPECT().BulkInsert(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.svc.Generate(context.Background(), "a1", 3)

	require.Error(t, err)
}

func TestGeneratorService_Generate_InvalidScheduleRules(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	activity.Schedule.SlotIntervalMinutes = 0

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)

	_, err := f.svc.Generate(context.Background(), "a1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGeneratorService_Generate_UnknownTimezone(t *testing.T) {
	f := newGeneratorFixture(t, 30, 500)

	activity := generatorActivity()
	venue := &domain.Venue{ID: "v1", Timezone: "Mars/Olympus"}

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(activity, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)

	_, err := f.svc.Generate(context.Background(), "a1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGeneratorService_RefreshAll_ContinuesOnFailure(t *testing.T) {
	f := newGeneratorFixture(t, 3, 500)

	good := generatorActivity()
	bad := generatorActivity()
	bad.ID = "a2"
	venue := &domain.Venue{ID: "v1", Timezone: "UTC"}

	f.activityRepo.EXPECT().List(mock.Anything).Return([]*domain.Activity{bad, good}, nil)

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a2").Return(nil, errors.New("gone"))

	f.activityRepo.EXPECT().GetByID(mock.Anything, "a1").Return(good, nil)
	f.venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	f.sessionRepo.EXPECT().AcquireGenerationLock(mock.Anything, "a1").Return(func() {}, true, nil)
	f.sessionRepo.EXPECT().LatestStartTime(mock.Anything, "a1").Return(time.Time{}, false, nil)
	f.sessionRepo.EXPECT().BulkInsert(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, "sessions.generated", mock.Anything).Return(nil)

	require.NoError(t, f.svc.RefreshAll(context.Background()))
}
