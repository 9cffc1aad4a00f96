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

// defaultSettlementSymbol is used when a profit query names no
// settlement currency.
const defaultSettlementSymbol = "TRY"

// investmentHandler handles HTTP requests for the authenticated user's
// investment ledger.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
	profitService     portssvc.ProfitSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade, ps portssvc.ProfitSvcFacade) *investmentHandler {
	return &investmentHandler{
		investmentService: is,
		profitService:     ps,
	}
}

// registerInvestmentRoutes registers routes related to the ledger.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade, profitService portssvc.ProfitSvcFacade) {
	h := newInvestmentHandler(investmentService, profitService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/:investmentID", h.getInvestment)
		investments.DELETE("/:investmentID", h.deleteInvestment)
		investments.GET("/:investmentID/profit", h.getInvestmentProfit)
	}
}

// registerProfitRoutes registers the ledger-wide profit route. It lives
// in its own group to keep it off the /investments/:investmentID
// wildcard.
func registerProfitRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade, profitService portssvc.ProfitSvcFacade) {
	h := newInvestmentHandler(investmentService, profitService)

	profit := rg.Group("/profit")
	{
		profit.GET("/total", h.getTotalProfit)
	}
}

// createInvestment godoc
// @Summary Record an investment
// @Description Records a manual investment between two registered currencies for the authenticated user
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency symbol"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investment, err := h.investmentService.Record(c.Request.Context(), ownerUserID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record investment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record investment"})
		return
	}

	logger.Info("Investment recorded", slog.String("investment_id", investment.InvestmentID))
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// listInvestments godoc
// @Summary List investments
// @Description Retrieves all investments recorded by the authenticated user
// @Tags investments
// @Produce json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investments, err := h.investmentService.ListForOwner(c.Request.Context(), ownerUserID)
	if err != nil {
		logger.Error("Failed to list investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list investments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentsResponse(investments))
}

// getInvestment godoc
// @Summary Get an investment
// @Description Retrieves one investment owned by the authenticated user
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No such investment for this user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investmentID := c.Param("investmentID")
	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), ownerUserID, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
			return
		}
		logger.Error("Failed to get investment", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve investment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// deleteInvestment godoc
// @Summary Remove an investment
// @Description Deletes one investment owned by the authenticated user
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 204 "Removed"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No such investment for this user"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investmentID := c.Param("investmentID")
	if err := h.investmentService.Remove(c.Request.Context(), ownerUserID, investmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
			return
		}
		logger.Error("Failed to remove investment", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove investment"})
		return
	}

	logger.Info("Investment removed", slog.String("investment_id", investmentID))
	c.Status(http.StatusNoContent)
}

// getInvestmentProfit godoc
// @Summary Profit of one investment
// @Description Computes the current profit of one investment expressed in the settlement currency (default TRY)
// @Tags profit
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Param symbol query string false "Settlement currency symbol" default(TRY)
// @Success 200 {object} dto.ProfitResponse
// @Failure 400 {object} ErrorResponse "Malformed symbol"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Investment, symbol, or required parity missing"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID}/profit [get]
func (h *investmentHandler) getInvestmentProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settlementSymbol, ok := settlementSymbolFromQuery(c)
	if !ok {
		return
	}

	investmentID := c.Param("investmentID")
	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), ownerUserID, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
			return
		}
		logger.Error("Failed to get investment for profit", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve investment"})
		return
	}

	profit, err := h.profitService.ProfitOf(c.Request.Context(), *investment, settlementSymbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute profit", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute profit"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitResponse(investmentID, settlementSymbol, profit))
}

// getTotalProfit godoc
// @Summary Total profit of the ledger
// @Description Sums the profit of every investment of the authenticated user, expressed in the settlement currency (default TRY)
// @Tags profit
// @Produce json
// @Param symbol query string false "Settlement currency symbol" default(TRY)
// @Success 200 {object} dto.TotalProfitResponse
// @Failure 400 {object} ErrorResponse "Malformed symbol"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Symbol or required parity missing"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profit/total [get]
func (h *investmentHandler) getTotalProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settlementSymbol, ok := settlementSymbolFromQuery(c)
	if !ok {
		return
	}

	investments, err := h.investmentService.ListForOwner(c.Request.Context(), ownerUserID)
	if err != nil {
		logger.Error("Failed to list investments for total profit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list investments"})
		return
	}

	total, err := h.profitService.TotalProfit(c.Request.Context(), investments, settlementSymbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute total profit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute total profit"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalProfitResponse(settlementSymbol, total))
}

// settlementSymbolFromQuery reads the optional symbol query parameter,
// defaulting to TRY. It writes the 400 response itself on a malformed
// symbol.
func settlementSymbolFromQuery(c *gin.Context) (string, bool) {
	symbol := c.DefaultQuery("symbol", defaultSettlementSymbol)
	if !symbolPattern.MatchString(symbol) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Symbol must be 3 uppercase letters"})
		return "", false
	}
	return symbol, true
}
