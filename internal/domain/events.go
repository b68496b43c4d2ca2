package domain

import "context"

// Routing keys for domain events.
const (
	EventApplicationUpserted    = "application.upserted"
	EventApplicationUpdated     = "application.updated"
	EventScreeningRecorded      = "screening.recorded"
	EventPasswordResetRequested = "auth.password_reset_requested"
)

// EventPublisher sends domain events to an out-of-process consumer.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
