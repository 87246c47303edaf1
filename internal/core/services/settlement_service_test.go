package services_test

import (
	"context"
	"testing"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	mockDebtRepo *MockDebtRepository
	service      portssvc.SettlementSvc
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.service = services.NewSettlementService(suite.mockDebtRepo, false)
}

func paymentExpense(amount string) domain.Expense {
	return domain.Expense{
		ExpenseID: "pay-1",
		GroupID:   "trip",
		PaidBy:    "bob",
		Amount:    dec(amount),
		IsPayment: true,
	}
}

func paymentShare(userID, amount string) domain.Share {
	return domain.Share{
		ShareID:   "share-1",
		ExpenseID: "pay-1",
		UserID:    userID,
		Amount:    decimal.NullDecimal{Decimal: dec(amount), Valid: true},
	}
}

func unsettled(id, expenseID, amount string) domain.Debt {
	return domain.Debt{
		DebtID:     id,
		ExpenseID:  expenseID,
		FromUserID: "bob",
		ToUserID:   "alice",
		Amount:     dec(amount),
		Status:     domain.DebtUnsettled,
	}
}

// Bob owes Alice 100, 50, 30 from three expenses, oldest first. A payment
// of exactly 150 settles the first two plus the payment's own reverse debt.
func (suite *SettlementServiceTestSuite) TestExactMatchSettlesOldestDebts() {
	ctx := context.Background()
	oldDebts := []domain.Debt{
		unsettled("d1", "e1", "100"),
		unsettled("d2", "e2", "50"),
		unsettled("d3", "e3", "30"),
	}
	reverse := []domain.Debt{{DebtID: "rev-1", ExpenseID: "pay-1", FromUserID: "alice", ToUserID: "bob", Amount: dec("150"), Status: domain.DebtUnsettled}}

	suite.mockDebtRepo.On("FindUnsettledBetween", ctx, "bob", "alice", "trip").Return(oldDebts, nil).Once()
	suite.mockDebtRepo.On("FindByExpenseAndDebtor", ctx, "pay-1", "alice").Return(reverse, nil).Once()
	suite.mockDebtRepo.On("MarkDebtsSettled", ctx, []string{"d1", "d2", "rev-1"}, mock.Anything, mock.Anything).Return(nil).Once()

	suite.service.ApplyPaymentNetting(ctx, paymentExpense("150"), []domain.Share{paymentShare("alice", "150")})

	suite.mockDebtRepo.AssertExpectations(suite.T())
}

// A payment of 120 cannot be matched by consuming whole debts (100+50=150),
// so nothing is settled.
func (suite *SettlementServiceTestSuite) TestPartialMatchSettlesNothing() {
	ctx := context.Background()
	oldDebts := []domain.Debt{
		unsettled("d1", "e1", "100"),
		unsettled("d2", "e2", "50"),
		unsettled("d3", "e3", "30"),
	}

	suite.mockDebtRepo.On("FindUnsettledBetween", ctx, "bob", "alice", "trip").Return(oldDebts, nil).Once()
	suite.mockDebtRepo.On("FindByExpenseAndDebtor", ctx, "pay-1", "alice").Return(nil, nil).Once()

	suite.service.ApplyPaymentNetting(ctx, paymentExpense("120"), []domain.Share{paymentShare("alice", "120")})

	suite.mockDebtRepo.AssertNotCalled(suite.T(), "MarkDebtsSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Replaying netting after the debts are already settled finds nothing
// outstanding and quietly does nothing.
func (suite *SettlementServiceTestSuite) TestReplayIsNoOp() {
	ctx := context.Background()

	suite.mockDebtRepo.On("FindUnsettledBetween", ctx, "bob", "alice", "trip").Return(nil, nil).Once()
	suite.mockDebtRepo.On("FindByExpenseAndDebtor", ctx, "pay-1", "alice").Return(nil, nil).Once()

	suite.service.ApplyPaymentNetting(ctx, paymentExpense("150"), []domain.Share{paymentShare("alice", "150")})

	suite.mockDebtRepo.AssertNotCalled(suite.T(), "MarkDebtsSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// An exact single-debt match settles only that debt.
func (suite *SettlementServiceTestSuite) TestSingleDebtExactMatch() {
	ctx := context.Background()
	oldDebts := []domain.Debt{
		unsettled("d1", "e1", "100"),
		unsettled("d2", "e2", "50"),
	}

	suite.mockDebtRepo.On("FindUnsettledBetween", ctx, "bob", "alice", "trip").Return(oldDebts, nil).Once()
	suite.mockDebtRepo.On("FindByExpenseAndDebtor", ctx, "pay-1", "alice").Return(nil, nil).Once()
	suite.mockDebtRepo.On("MarkDebtsSettled", ctx, []string{"d1"}, mock.Anything, mock.Anything).Return(nil).Once()

	suite.service.ApplyPaymentNetting(ctx, paymentExpense("100"), []domain.Share{paymentShare("alice", "100")})

	suite.mockDebtRepo.AssertExpectations(suite.T())
}

// Repository failures are logged and swallowed; the caller never sees them.
func (suite *SettlementServiceTestSuite) TestRepositoryErrorIsSwallowed() {
	ctx := context.Background()

	suite.mockDebtRepo.On("FindUnsettledBetween", ctx, "bob", "alice", "trip").Return(nil, assert.AnError).Once()

	suite.NotPanics(func() {
		suite.service.ApplyPaymentNetting(ctx, paymentExpense("150"), []domain.Share{paymentShare("alice", "150")})
	})
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "MarkDebtsSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Non-payment expenses never trigger netting.
func (suite *SettlementServiceTestSuite) TestNonPaymentIsIgnored() {
	ctx := context.Background()
	expense := paymentExpense("150")
	expense.IsPayment = false
	expense.Description = "Groceries"

	suite.service.ApplyPaymentNetting(ctx, expense, []domain.Share{paymentShare("alice", "150")})

	suite.mockDebtRepo.AssertNotCalled(suite.T(), "FindUnsettledBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// The payer's own share of a payment is skipped.
func (suite *SettlementServiceTestSuite) TestPayerShareIsSkipped() {
	ctx := context.Background()

	suite.service.ApplyPaymentNetting(ctx, paymentExpense("150"), []domain.Share{paymentShare("bob", "150")})

	suite.mockDebtRepo.AssertNotCalled(suite.T(), "FindUnsettledBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestIsPaymentFlag() {
	suite.True(suite.service.IsPayment(domain.Expense{IsPayment: true, Description: "Groceries"}))
	suite.False(suite.service.IsPayment(domain.Expense{Description: "Groceries"}))
	// Keyword fallback disabled: description alone does not classify.
	suite.False(suite.service.IsPayment(domain.Expense{Description: "payment for dinner"}))
}

func (suite *SettlementServiceTestSuite) TestIsPaymentKeywordFallback() {
	svc := services.NewSettlementService(suite.mockDebtRepo, true)

	suite.True(svc.IsPayment(domain.Expense{Description: "Payment for dinner"}))
	suite.True(svc.IsPayment(domain.Expense{Description: "paid back Bob"}))
	suite.True(svc.IsPayment(domain.Expense{Description: "settle up"}))
	suite.False(svc.IsPayment(domain.Expense{Description: "Groceries"}))
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
