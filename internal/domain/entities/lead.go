package entities

import "time"

// LeadStatus represents the submission outcome of a contact request.
//
// Status transitions:
//   - submitting -> sent    (notification gateway accepted the request)
//   - submitting -> failed  (delivery failed; the lead may be resubmitted)
//
// A lead in "submitting" blocks a second dispatch with the same id, so a
// duplicate submit while the first is in flight is rejected.

type LeadStatus string

const (
	LeadStatusSubmitting LeadStatus = "submitting"
	LeadStatusSent       LeadStatus = "sent"
	LeadStatusFailed     LeadStatus = "failed"
)

// Lead is a persisted contact-request submission.
//
// Storage model (DynamoDB):
//   - PK: id (client-supplied request id, or generated)
//
// Message keeps the rendered cost breakdown exactly as it was handed to
// the notification gateway, for traceability.

type Lead struct {
	ID        string        `json:"id"`
	Fields    ContactFields `json:"fields"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    LeadStatus    `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
