package handlers

import (
	"net/http"

	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests for the debt ledger.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers all debt-related routes.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listOwnDebts)
		debts.POST("/:id/settle", h.settleDebt)
	}
}

// listOwnDebts godoc
// @Summary List the caller's debts
// @Description Retrieves every debt where the caller is debtor or creditor
// @Tags debts
// @Produce  json
// @Success 200 {array} dto.DebtRecord
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listOwnDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debts, err := h.debtService.ListDebtsForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list debts")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtRecords(debts))
}

// settleDebt godoc
// @Summary Settle a debt
// @Description Marks a debt as settled. Only the creditor may confirm they have been paid.
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtRecord
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{id}/settle [post]
func (h *debtHandler) settleDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.SettleDebt(c.Request.Context(), debtID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to settle debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtRecord(debt))
}
