package handlers

import (
	"net/http"

	response "chennai_builders/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static pricing catalog the calculator UI is
// rendered from.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewCatalogResponse())
}
