package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/traiders/practice-backend/internal/apperrors"
	"github.com/traiders/practice-backend/internal/core/domain"
	portssvc "github.com/traiders/practice-backend/internal/core/ports/services"
	"github.com/traiders/practice-backend/internal/dto"
	"github.com/traiders/practice-backend/internal/middleware"
)

// parityHandler handles HTTP requests against the parity query engine.
type parityHandler struct {
	parityService portssvc.ParitySvcFacade
}

func newParityHandler(ps portssvc.ParitySvcFacade) *parityHandler {
	return &parityHandler{
		parityService: ps,
	}
}

// registerParityRoutes registers routes related to parities. The date
// segment doubles as the keyword "latest", so both shapes share one
// route and the handler branches.
func registerParityRoutes(rg *gin.RouterGroup, parityService portssvc.ParitySvcFacade) {
	h := newParityHandler(parityService)

	parities := rg.Group("/parities")
	{
		parities.GET("", h.listPairs)
		parities.GET("/:date", h.getParities)
	}
}

// listPairs godoc
// @Summary List recorded parity pairs
// @Description Retrieves the distinct (base, target) pairs that have at least one recorded parity
// @Tags parities
// @Produce json
// @Success 200 {array} dto.ParityPairResponse
// @Failure 500 {object} ErrorResponse
// @Router /parities [get]
func (h *parityHandler) listPairs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pairs, err := h.parityService.ListPairs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parity pairs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list parity pairs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListParityPairResponse(pairs))
}

// getParities godoc
// @Summary Query parities
// @Description With date "latest", returns the most recent parity per pair. With a YYYY-MM-DD date, returns the latest parity per pair recorded within that UTC day. Optional base and target query filters narrow the pairs.
// @Tags parities
// @Produce json
// @Param date path string true "Either the keyword latest or a date in YYYY-MM-DD"
// @Param base query string false "Base symbol filter (3 uppercase letters)"
// @Param target query string false "Target symbol filter (3 uppercase letters)"
// @Success 200 {array} dto.ParityResponse
// @Failure 400 {object} ErrorResponse "Malformed date or symbol"
// @Failure 404 {object} ErrorResponse "Unknown symbol, or no parity for a fully specified pair"
// @Failure 500 {object} ErrorResponse
// @Router /parities/{date} [get]
func (h *parityHandler) getParities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter dto.ParityFilterParams
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter: " + err.Error()})
		return
	}

	dateParam := c.Param("date")

	var (
		parities []domain.Parity
		err      error
	)
	if dateParam == "latest" {
		parities, err = h.parityService.Latest(c.Request.Context(), filter.BasePtr(), filter.TargetPtr())
	} else {
		var day time.Time
		day, err = time.ParseInLocation("2006-01-02", dateParam, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Date must be 'latest' or YYYY-MM-DD"})
			return
		}
		parities, err = h.parityService.Historic(c.Request.Context(), day, filter.BasePtr(), filter.TargetPtr())
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to query parities", slog.String("date", dateParam), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to query parities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListParityResponse(parities))
}
