package request

import (
	"strings"

	"chennai_builders/internal/domain/entities"
)

// ContactRequest is the submission payload: contact fields plus the
// calculator inputs the estimate is recomputed from. The server never
// trusts client-computed totals.
//
// RequestID is optional; when present it makes the submission
// idempotent (a resubmit while the first is in flight is rejected).
type ContactRequest struct {
	RequestID string          `json:"request_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Location  string          `json:"location"`
	LandArea  string          `json:"land_area"`
	Estimate  EstimateRequest `json:"estimate"`
}

func (r ContactRequest) ResolveRequestID() string {
	return strings.TrimSpace(r.RequestID)
}

// ToContactFields maps the payload onto the domain fields. The package
// display name and floor choice come from the resolved catalog
// selection, so the notification always names what was actually priced.
func (r ContactRequest) ToContactFields(packageName, floorChoice string) entities.ContactFields {
	return entities.ContactFields{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Location:    r.Location,
		LandArea:    r.LandArea,
		FloorChoice: floorChoice,
		PackageName: packageName,
	}
}
