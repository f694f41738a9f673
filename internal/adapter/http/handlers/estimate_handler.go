package handlers

import (
	"errors"
	"log"
	"net/http"

	request "chennai_builders/internal/adapter/http/dto/request"
	response "chennai_builders/internal/adapter/http/dto/response"
	"chennai_builders/internal/domain/entities"
	"chennai_builders/internal/usecase"
	"chennai_builders/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for cost estimates.
//
// The computation is synchronous and pure; the handler only translates
// the wire payload into engine inputs and the estimate back out.

type EstimateHandler struct {
	engine usecase.IEstimateUseCase
}

func NewEstimateHandler(engine usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{engine: engine}
}

// ComputeEstimate recomputes the full cost breakdown for the submitted
// calculator state.
func (h *EstimateHandler) ComputeEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	_, est, appErr := computeFromRequest(h.engine, payload)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// computeFromRequest resolves the package, floor plan and quantities
// and runs the engine. Shared by the estimate and contact handlers so
// both price the exact same way.
func computeFromRequest(engine usecase.IEstimateUseCase, payload request.EstimateRequest) (entities.Package, entities.Estimate, *pkg.AppError) {
	pkgTier := engine.SelectPackage(payload.ResolvePackageID())

	activeFloors, err := engine.ResolveActiveFloorCount(payload.ResolveFloorChoice())
	if err != nil {
		log.Printf("[estimate][handler] floor choice rejected choice=%q err=%v", payload.FloorChoice, err)
		return entities.Package{}, entities.Estimate{}, mapEstimateError(err)
	}

	items := entities.LineItemCatalog()
	for _, q := range payload.Quantities {
		items, err = engine.ApplyQuantity(items, q.ItemID, q.Value)
		if err != nil {
			log.Printf("[estimate][handler] quantity rejected item_id=%q err=%v", q.ItemID, err)
			return entities.Package{}, entities.Estimate{}, mapEstimateError(err)
		}
	}

	return pkgTier, engine.ComputeEstimate(pkgTier, items, activeFloors), nil
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownFloorChoice):
		return pkg.NewDomainErrorSimple("UNKNOWN_FLOOR_CHOICE", "Unknown floor choice", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
