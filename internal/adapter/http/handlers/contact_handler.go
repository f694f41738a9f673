package handlers

import (
	"errors"
	"log"
	"net/http"

	request "chennai_builders/internal/adapter/http/dto/request"
	response "chennai_builders/internal/adapter/http/dto/response"
	"chennai_builders/internal/usecase"
	"chennai_builders/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact request payload", http.StatusBadRequest)

// ContactHandler handles contact-request submissions.
//
// The estimate is recomputed server-side from the calculator inputs in
// the payload before anything is dispatched, so the relayed breakdown
// always matches the catalog rates.

type ContactHandler struct {
	engine  usecase.IEstimateUseCase
	contact usecase.IContactUseCase
}

func NewContactHandler(engine usecase.IEstimateUseCase, contact usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{engine: engine, contact: contact}
}

// SubmitContactRequest validates the contact fields, recomputes the
// estimate and hands both to the submission flow.
func (h *ContactHandler) SubmitContactRequest(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	pkgTier, est, appErr := computeFromRequest(h.engine, payload.Estimate)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	floorChoice := payload.Estimate.ResolveFloorChoice()
	fields := payload.ToContactFields(pkgTier.DisplayName, floorChoice)

	lead, err := h.contact.Submit(c.Request.Context(), payload.ResolveRequestID(), fields, est)
	if err != nil {
		log.Printf("[contact][handler] submit failed request_id=%q err=%v", payload.RequestID, err)

		var missing *usecase.MissingRequiredFieldError
		if errors.As(err, &missing) {
			appErr := pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", "Missing required contact fields", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(missing.Fields))
			return
		}

		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contact][handler] submit success lead_id=%s status=%s", lead.ID, lead.Status)

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// GetContactRequest returns a lead and its submission status.
func (h *ContactHandler) GetContactRequest(c *gin.Context) {
	id := c.Param("id")

	lead, err := h.contact.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Contact request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission with this request id is already in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "This contact request was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotificationDelivery):
		return pkg.NewDomainErrorSimple("NOTIFICATION_DELIVERY_FAILED", "Failed to deliver the notification; the request was kept and can be resubmitted", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
