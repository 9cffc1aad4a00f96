package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traiders/practice-backend/internal/apperrors"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
	"github.com/traiders/practice-backend/internal/dto"
	"github.com/traiders/practice-backend/internal/middleware"
)

// equipmentHandler handles HTTP requests for the tradable equipment
// registry.
type equipmentHandler struct {
	equipmentService portssvc.EquipmentSvcFacade
}

func newEquipmentHandler(es portssvc.EquipmentSvcFacade) *equipmentHandler {
	return &equipmentHandler{
		equipmentService: es,
	}
}

// registerEquipmentRoutes registers routes related to equipment.
func registerEquipmentRoutes(rg *gin.RouterGroup, equipmentService portssvc.EquipmentSvcFacade) {
	h := newEquipmentHandler(equipmentService)

	equipment := rg.Group("/equipment")
	{
		equipment.GET("", h.listEquipment)
		equipment.GET("/:symbol", h.getEquipmentBySymbol)
	}
}

// listEquipment godoc
// @Summary List all equipment
// @Description Retrieves every tradable currency known to the registry
// @Tags equipment
// @Produce json
// @Success 200 {array} dto.EquipmentResponse
// @Failure 500 {object} ErrorResponse
// @Router /equipment [get]
func (h *equipmentHandler) listEquipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	equipment, err := h.equipmentService.ListEquipment(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list equipment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list equipment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEquipmentResponse(equipment))
}

// getEquipmentBySymbol godoc
// @Summary Get equipment by symbol
// @Description Retrieves one registry entry by its 3-letter symbol
// @Tags equipment
// @Produce json
// @Param symbol path string true "Currency symbol (3 uppercase letters)"
// @Success 200 {object} dto.EquipmentResponse
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Failure 500 {object} ErrorResponse
// @Router /equipment/{symbol} [get]
func (h *equipmentHandler) getEquipmentBySymbol(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	symbol := c.Param("symbol")

	if !symbolPattern.MatchString(symbol) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Symbol must be 3 uppercase letters"})
		return
	}

	equipment, err := h.equipmentService.GetEquipmentBySymbol(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Equipment not found"})
			return
		}
		logger.Error("Failed to get equipment", slog.String("symbol", symbol), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve equipment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}
