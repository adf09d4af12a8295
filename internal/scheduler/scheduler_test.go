package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_ExpireTick_SweepsStalePending(t *testing.T) {
	refresher := mocks.NewMockSessionRefresher(t)
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(refresher, expirer, time.Hour, 50*time.Millisecond, 15*time.Minute, log)

	cancelled := []*domain.Booking{
		{ID: "b1", SessionID: "s1"},
	}
	expirer.EXPECT().ExpireStalePending(mock.Anything, 15*time.Minute).Return(cancelled, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_RefreshTick_RollsWindowForward(t *testing.T) {
	refresher := mocks.NewMockSessionRefresher(t)
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(refresher, expirer, 50*time.Millisecond, time.Hour, 15*time.Minute, log)

	refresher.EXPECT().RefreshAll(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_Tick_HandlesErrors(t *testing.T) {
	refresher := mocks.NewMockSessionRefresher(t)
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(refresher, expirer, 40*time.Millisecond, 40*time.Millisecond, time.Minute, log)

	refresher.EXPECT().RefreshAll(mock.Anything).Return(errors.New("db error"))
	expirer.EXPECT().ExpireStalePending(mock.Anything, time.Minute).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	refresher := mocks.NewMockSessionRefresher(t)
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(refresher, expirer, time.Second, time.Second, time.Minute, log) // intervals longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleExpireTicks(t *testing.T) {
	refresher := mocks.NewMockSessionRefresher(t)
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(refresher, expirer, time.Hour, 30*time.Millisecond, time.Minute, log)

	expirer.EXPECT().ExpireStalePending(mock.Anything, time.Minute).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}
