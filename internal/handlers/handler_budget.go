package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/dto"
	"github.com/SscSPs/wealthsync_backend/internal/middleware"
	"github.com/SscSPs/wealthsync_backend/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles budget calculation and history requests.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// RegisterBudgetRoutes registers routes related to budgets.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budget := rg.Group("/budget")
	{
		budget.POST("", h.calculateBudget)
		budget.POST("/history", h.getBudgetHistory)
	}
}

// calculateBudget godoc
// @Summary Calculate a budget
// @Description Evaluates income, expenses and a savings goal against the economic profile of a location, records the result and returns recommendations
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   budget body dto.CalculateBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input or amounts out of range"
// @Failure 404 {object} map[string]string "Country or continent not found"
// @Failure 500 {object} map[string]string "Failed to calculate budget"
// @Router /budget [post]
func (h *budgetHandler) calculateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	input := mapping.ToDomainBudgetInput(req)
	logger = logger.With(
		slog.String("continent", input.Continent),
		slog.String("country", input.Country),
		slog.String("currency", input.CurrencyCode),
	)

	result, err := h.budgetService.CalculateBudget(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Location not found for budget")
			c.JSON(http.StatusNotFound, gin.H{"error": "Country or continent not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Budget amounts out of range", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts are out of range"})
			return
		}
		logger.Error("Failed to calculate budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(result))
}

// getBudgetHistory godoc
// @Summary Get budget history
// @Description Returns every budget recorded for an email address, oldest first
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   request body dto.BudgetHistoryRequest true "Email to look up"
// @Success 200 {array} dto.BudgetEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to retrieve budget history"
// @Router /budget/history [post]
func (h *budgetHandler) getBudgetHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BudgetHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GetBudgetHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.budgetService.GetBudgetHistory(c.Request.Context(), req.Email)
	if err != nil {
		logger.Error("Failed to retrieve budget history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetEntryResponse(entries))
}
