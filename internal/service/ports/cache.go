package ports

import (
	"context"
	"time"
)

// AvailabilityCache is a short-TTL byte cache in front of availability
// reads. Remaining capacity is allowed to be eventually consistent on the
// read path; the booking transaction is the safety boundary.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) (payload []byte, hit bool, err error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
