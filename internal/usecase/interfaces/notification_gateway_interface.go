package interfaces

import (
	"context"

	"chennai_builders/internal/domain/entities"
)

// INotificationGateway abstracts the external notification collaborator
// (e.g. EmailJS) that relays a contact request to the company inbox.
//
// Implementations must bound the outbound call (timeout/cancellation via
// ctx); the usecase never talks to the network directly.
type INotificationGateway interface {
	Send(ctx context.Context, req entities.ContactRequest) error
}
