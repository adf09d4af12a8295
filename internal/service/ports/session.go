package ports

import (
	"context"
	"time"

	"github.com/marketingadvisorai/BookingTMS-2.0---Antigravity-sub012/internal/domain"
)

type SessionRepo interface {
	// BulkInsert stores a batch of generated sessions. It either commits the
	// whole batch or none of it, so the generator's resume point only ever
	// reflects durably written rows.
	BulkInsert(ctx context.Context, sessions []*domain.Session) error
	// LatestStartTime reports the max start_time generated for an activity.
	// ok is false when no sessions exist yet.
	LatestStartTime(ctx context.Context, activityID string) (latest time.Time, ok bool, err error)
	ListAvailable(ctx context.Context, activityID string, from, to time.Time) ([]*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	SetClosed(ctx context.Context, id string, closed bool) error
	// AcquireGenerationLock takes the per-activity advisory lock serializing
	// generation runs. ok is false when another run holds it; release must be
	// called when ok is true.
	AcquireGenerationLock(ctx context.Context, activityID string) (release func(), ok bool, err error)
}
