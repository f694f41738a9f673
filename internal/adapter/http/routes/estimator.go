package routes

import (
	"chennai_builders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog         = "/catalog"
	PathEstimates       = "/estimates"
	PathContactRequests = "/contact-requests"
)

func addEstimatorRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, estimateHandler *handlers.EstimateHandler, contactHandler *handlers.ContactHandler) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)

	estimates := rg.Group(PathEstimates)
	{
		// Pure recomputation; safe to call on every input change.
		estimates.POST("", estimateHandler.ComputeEstimate)
	}

	contacts := rg.Group(PathContactRequests)
	{
		contacts.POST("", contactHandler.SubmitContactRequest)
		contacts.GET("/:id", contactHandler.GetContactRequest)
	}
}
