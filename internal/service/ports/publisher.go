package ports

import "context"

// EventPublisher hands booking and generation events to the message broker
// for downstream consumers (analytics, exports). Implementations must be
// safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}
