package interfaces

import (
	"context"
	"errors"

	"chennai_builders/internal/domain/entities"
)

// ErrLeadAlreadyExists is returned by Create when the lead id is
// already taken (the conditional put lost the race).
var ErrLeadAlreadyExists = errors.New("lead already exists")

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// The service must be able to:
//   - create a lead when a contact request is submitted (conditional on
//     the id not existing yet, which is the duplicate-submit guard)
//   - update the lead status after the notification outcome
//   - fetch a lead so callers can observe the submission state

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}
