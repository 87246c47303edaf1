package dto

import (
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
// IsPayment is the caller-supplied classification signal: true marks the
// expense as a repayment between members rather than a shared cost.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required,notblank"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaidBy      string          `json:"paidBy" binding:"required"`
	IsPayment   bool            `json:"isPayment"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateExpenseRequest struct {
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	IsPayment   *bool            `json:"isPayment"`
}

// ExpenseResponse is the public shape of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	GroupID     string          `json:"groupID"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      string          `json:"paidBy"`
	IsPayment   bool            `json:"isPayment"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		IsPayment:   e.IsPayment,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to response DTOs.
func ToListExpensesResponse(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
