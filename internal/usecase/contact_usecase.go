package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"chennai_builders/internal/domain/entities"
	"chennai_builders/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrInvalidLeadID        = errors.New("invalid lead id")
	ErrSubmissionInFlight   = errors.New("submission already in flight")
	ErrLeadAlreadySubmitted = errors.New("lead already submitted")
	ErrNotificationDelivery = errors.New("notification delivery failed")
)

// MissingRequiredFieldError reports every mandatory contact field that
// was empty or whitespace-only at submit time. Validation fails closed:
// no payload is produced and nothing reaches the gateway.
type MissingRequiredFieldError struct {
	Fields []string
}

func (e *MissingRequiredFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// IContactUseCase owns the contact-request submission flow.
//
// BuildContactRequest is pure (validate + render). Submit drives the
// lead through submitting -> sent/failed and is the only place the
// notification gateway is invoked.

type IContactUseCase interface {
	BuildContactRequest(fields entities.ContactFields, est entities.Estimate) (entities.ContactRequest, error)
	Submit(ctx context.Context, leadID string, fields entities.ContactFields, est entities.Estimate) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
}

type ContactUseCase struct {
	repo    interfaces.ILeadRepository
	gateway interfaces.INotificationGateway
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.ILeadRepository, gateway interfaces.INotificationGateway) *ContactUseCase {
	return &ContactUseCase{repo: repo, gateway: gateway}
}

// BuildContactRequest validates the contact fields and renders the
// submission payload. All missing mandatory fields are reported at
// once, not just the first.
func (u *ContactUseCase) BuildContactRequest(fields entities.ContactFields, est entities.Estimate) (entities.ContactRequest, error) {
	fields = trimFields(fields)

	var missing []string
	if fields.Name == "" {
		missing = append(missing, "name")
	}
	if fields.Email == "" {
		missing = append(missing, "email")
	}
	if fields.Phone == "" {
		missing = append(missing, "phone")
	}
	if fields.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return entities.ContactRequest{}, &MissingRequiredFieldError{Fields: missing}
	}

	return entities.ContactRequest{
		Fields:  fields,
		Subject: "Construction Cost Estimate - " + fields.Location,
		Message: renderMessage(fields, est),
		Date:    time.Now().Format("Monday, 2 January 2006"),
	}, nil
}

// Submit validates, persists the lead as submitting and relays the
// contact request through the notification gateway.
//
// The lead id doubles as the duplicate-submit guard: a second submit
// with the same id while the first is in flight gets
// ErrSubmissionInFlight, and a lead already sent gets
// ErrLeadAlreadySubmitted. Only a failed lead may be resubmitted; its
// fields are preserved so the user never loses input on failure.
func (u *ContactUseCase) Submit(ctx context.Context, leadID string, fields entities.ContactFields, est entities.Estimate) (entities.Lead, error) {
	req, err := u.BuildContactRequest(fields, est)
	if err != nil {
		return entities.Lead{}, err
	}

	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		leadID = uuid.NewString()
	}
	log.Printf("[contact][usecase] submit start lead_id=%s", leadID)

	if u.repo == nil {
		return entities.Lead{}, errors.New("lead repository not configured")
	}
	if u.gateway == nil {
		return entities.Lead{}, errors.New("notification gateway not configured")
	}

	existing, err := u.repo.GetByID(ctx, leadID)
	if err != nil {
		log.Printf("[contact][usecase] lead lookup failed lead_id=%s err=%v", leadID, err)
		return entities.Lead{}, err
	}

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:        leadID,
		Fields:    req.Fields,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    entities.LeadStatusSubmitting,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch {
	case existing.ID == "":
		if lead, err = u.repo.Create(ctx, lead); err != nil {
			if errors.Is(err, interfaces.ErrLeadAlreadyExists) {
				// Lost the race against a concurrent submit.
				log.Printf("[contact][usecase] duplicate submit blocked lead_id=%s", leadID)
				return entities.Lead{}, ErrSubmissionInFlight
			}
			log.Printf("[contact][usecase] lead create failed lead_id=%s err=%v", leadID, err)
			return entities.Lead{}, err
		}
	case existing.Status == entities.LeadStatusFailed:
		// Retry path: the earlier delivery failed, flip back to
		// submitting and dispatch again.
		if lead, err = u.repo.UpdateStatusByID(ctx, leadID, entities.LeadStatusSubmitting); err != nil {
			log.Printf("[contact][usecase] lead retry update failed lead_id=%s err=%v", leadID, err)
			return entities.Lead{}, err
		}
	case existing.Status == entities.LeadStatusSubmitting:
		log.Printf("[contact][usecase] duplicate submit blocked lead_id=%s", leadID)
		return existing, ErrSubmissionInFlight
	default:
		log.Printf("[contact][usecase] lead already submitted lead_id=%s", leadID)
		return existing, ErrLeadAlreadySubmitted
	}

	log.Printf("[contact][usecase] dispatching notification lead_id=%s", leadID)
	if err := u.gateway.Send(ctx, req); err != nil {
		log.Printf("[contact][usecase] notification failed lead_id=%s err=%v", leadID, err)
		failed, uErr := u.repo.UpdateStatusByID(ctx, leadID, entities.LeadStatusFailed)
		if uErr != nil {
			log.Printf("[contact][usecase] failed-status update failed lead_id=%s err=%v", leadID, uErr)
			return entities.Lead{}, uErr
		}
		return failed, fmt.Errorf("%w: %v", ErrNotificationDelivery, err)
	}

	sent, err := u.repo.UpdateStatusByID(ctx, leadID, entities.LeadStatusSent)
	if err != nil {
		log.Printf("[contact][usecase] sent-status update failed lead_id=%s err=%v", leadID, err)
		return entities.Lead{}, err
	}
	log.Printf("[contact][usecase] submit success lead_id=%s", leadID)
	return sent, nil
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func trimFields(f entities.ContactFields) entities.ContactFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Location = strings.TrimSpace(f.Location)
	f.LandArea = strings.TrimSpace(f.LandArea)
	f.FloorChoice = strings.TrimSpace(f.FloorChoice)
	f.PackageName = strings.TrimSpace(f.PackageName)
	return f
}

// renderMessage formats the breakdown the way the company inbox expects
// it: one "label: qty unit x ₹rate = ₹cost" line per included item,
// category subtotals, then the grand total.
func renderMessage(fields entities.ContactFields, est entities.Estimate) string {
	var b strings.Builder
	b.WriteString("New Construction Estimate Request:\n")
	b.WriteString("---------------------------------\n")
	fmt.Fprintf(&b, "Name: %s\n", fields.Name)
	fmt.Fprintf(&b, "Phone: %s\n", fields.Phone)
	fmt.Fprintf(&b, "Email: %s\n", fields.Email)
	fmt.Fprintf(&b, "Location: %s\n", fields.Location)
	if fields.LandArea != "" {
		fmt.Fprintf(&b, "Total Land Area: %s\n", fields.LandArea)
	}
	if fields.FloorChoice != "" {
		fmt.Fprintf(&b, "Number of Floors: %s\n", fields.FloorChoice)
	}
	if fields.PackageName != "" {
		fmt.Fprintf(&b, "Package: %s\n", fields.PackageName)
	}

	b.WriteString("\nCost Breakdown:\n")
	for _, item := range est.Items {
		fmt.Fprintf(&b, "%s: %s %s x ₹%s = ₹%s\n",
			item.Label, item.Quantity.String(), item.Unit, formatAmount(item.Rate), formatAmount(item.Cost))
	}
	fmt.Fprintf(&b, "Floor Total: ₹%s\n", formatAmount(est.FloorTotal))
	fmt.Fprintf(&b, "Utility Total: ₹%s\n", formatAmount(est.UtilityTotal))
	fmt.Fprintf(&b, "Compound Wall Total: ₹%s\n", formatAmount(est.CompoundTotal))
	fmt.Fprintf(&b, "\nTOTAL ESTIMATED COST: ₹%s", formatAmount(est.GrandTotal))
	return b.String()
}

// formatAmount rounds at display time only; all arithmetic upstream
// stays exact.
func formatAmount(d decimal.Decimal) string {
	return d.RoundBank(2).String()
}
