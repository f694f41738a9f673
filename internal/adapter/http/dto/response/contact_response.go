package response

import (
	"time"

	"chennai_builders/internal/domain/entities"
)

// LeadResponse exposes a submitted contact request and its delivery
// status.
type LeadResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	LandArea    string    `json:"land_area,omitempty"`
	FloorChoice string    `json:"floor_choice,omitempty"`
	PackageName string    `json:"package_name,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		Name:        l.Fields.Name,
		Email:       l.Fields.Email,
		Phone:       l.Fields.Phone,
		Location:    l.Fields.Location,
		LandArea:    l.Fields.LandArea,
		FloorChoice: l.Fields.FloorChoice,
		PackageName: l.Fields.PackageName,
		Subject:     l.Subject,
		Message:     l.Message,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
