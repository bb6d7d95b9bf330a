package handlers

import (
	"net/http"

	request "poolworks/internal/adapter/http/dto/request"
	response "poolworks/internal/adapter/http/dto/response"
	"poolworks/internal/usecase"
	"poolworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)

// InventoryHandler handles material availability checks.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// CheckInventory reports simulated stock availability for each item.
func (h *InventoryHandler) CheckInventory(c *gin.Context) {
	var payload request.InventoryCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	availability, err := h.usecase.CheckAvailability(c.Request.Context(), payload.ResolveItems())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryAvailability(availability))
}
