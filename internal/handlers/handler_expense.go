package handlers

import (
	"net/http"

	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/fairsplit/fairsplit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for expenses, splits and shares.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers expense, split and share routes.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	groups := rg.Group("/groups/:id/expenses")
	{
		groups.POST("", h.createExpense)
		groups.GET("", h.listGroupExpenses)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
		expenses.POST("/:id/split", h.saveSplit)
		expenses.GET("/:id/shares", h.getExpenseShares)
	}

	shares := rg.Group("/shares")
	{
		shares.GET("", h.getOwnShares)
		shares.PUT("/:id/status", h.updateShareStatus)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records a new expense in a group. The split is saved separately.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Group ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), groupID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listGroupExpenses godoc
// @Summary List group expenses
// @Tags expenses
// @Produce  json
// @Param   id path string true "Group ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/expenses [get]
func (h *expenseHandler) listGroupExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expenses, err := h.expenseService.ListGroupExpenses(c.Request.Context(), groupID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Updates expense fields. Changing the amount discards the existing split.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Removes the expense together with its shares and debts
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// saveSplit godoc
// @Summary Save an expense split
// @Description Replaces the full split of an expense with the declared per-user amounts. Amounts must sum to the expense total. For payment expenses, matching outstanding debts are settled automatically.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   split body dto.SaveSplitRequest true "Declared allocations"
// @Success 200 {array} dto.ShareRecord
// @Failure 400 {object} map[string]string "Invalid split"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense or participant not found"
// @Security BearerAuth
// @Router /expenses/{id}/split [post]
func (h *expenseHandler) saveSplit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shares, err := h.expenseService.SaveSplit(c.Request.Context(), expenseID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save split")
		return
	}

	c.JSON(http.StatusOK, dto.ToShareRecords(shares))
}

// getExpenseShares godoc
// @Summary Get the shares of an expense
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {array} dto.ShareRecord
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id}/shares [get]
func (h *expenseHandler) getExpenseShares(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shares, err := h.expenseService.GetSharesByExpense(c.Request.Context(), expenseID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve shares")
		return
	}

	c.JSON(http.StatusOK, dto.ToShareRecords(shares))
}

// getOwnShares godoc
// @Summary Get the caller's shares
// @Tags shares
// @Produce  json
// @Success 200 {array} dto.ShareRecord
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /shares [get]
func (h *expenseHandler) getOwnShares(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shares, err := h.expenseService.GetSharesByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve shares")
		return
	}

	c.JSON(http.StatusOK, dto.ToShareRecords(shares))
}

// updateShareStatus godoc
// @Summary Toggle a share between PAID and UNPAID
// @Description Updates a share's payment status; the matching debts flip in the same transaction.
// @Tags shares
// @Accept  json
// @Produce  json
// @Param   id path string true "Share ID"
// @Param   status body dto.UpdateShareStatusRequest true "New status"
// @Success 200 {object} dto.ShareRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Share not found"
// @Security BearerAuth
// @Router /shares/{id}/status [put]
func (h *expenseHandler) updateShareStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shareID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateShareStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	share, err := h.expenseService.UpdateShareStatus(c.Request.Context(), shareID, req.Status, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update share status")
		return
	}

	c.JSON(http.StatusOK, dto.ToShareRecord(share))
}
